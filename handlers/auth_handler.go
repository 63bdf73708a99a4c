package handlers

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/dto"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/middleware"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxPhotoSize = 5 << 20 // 5MB

// PhotoStorage stores the optional registration photo; S3 in production.
type PhotoStorage interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader, key string) (string, error)
}

type AuthHandler struct {
	svc    *services.AuthService
	photos PhotoStorage
}

func NewAuthHandler(svc *services.AuthService, photos PhotoStorage) *AuthHandler {
	return &AuthHandler{svc: svc, photos: photos}
}

// POST /api/auth/register (multipart form)
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	in := services.RegisterInput{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		CPF:      c.FormValue("cpf"),
	}

	photoPath, err := h.storePhoto(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	in.PhotoPath = photoPath

	result, err := h.svc.Register(c.Context(), in)
	if err != nil {
		return authError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Message: "user registered successfully",
		Token:   result.Token,
		User:    dto.NewUserSummary(result.User),
	})
}

func (h *AuthHandler) storePhoto(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		if err == http.ErrMissingFile || strings.Contains(err.Error(), "there is no uploaded file") {
			return "", nil
		}
		// Non-multipart requests simply have no photo.
		return "", nil
	}

	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		return "", errors.New("photo must be an image file")
	}
	if fileHeader.Size > maxPhotoSize {
		return "", errors.New("photo must be 5MB or smaller")
	}
	if h.photos == nil {
		return "", errors.New("photo storage is not configured")
	}

	ext := filepath.Ext(fileHeader.Filename)
	key := fmt.Sprintf("photos/%s%s", uuid.NewString(), ext)
	return h.photos.Upload(c.Context(), fileHeader, key)
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid JSON body"})
	}

	result, err := h.svc.Login(c.Context(), req.Email, req.Password, req.RememberMe)
	if err != nil {
		return authError(c, err)
	}

	return c.JSON(dto.AuthResponse{
		Message: "login successful",
		Token:   result.Token,
		User:    dto.NewUserSummary(result.User),
	})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := middleware.GetSessionClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "authorization context missing"})
	}

	user, err := h.svc.Me(c.Context(), claims.UserID)
	if err != nil {
		return authError(c, err)
	}

	return c.JSON(fiber.Map{"user": dto.NewUserSummary(*user)})
}

// POST /api/auth/forgot-password
//
// The response is the same whether or not the email exists.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid JSON body"})
	}

	if err := h.svc.ForgotPassword(c.Context(), req.Email); err != nil {
		return authError(c, err)
	}

	return c.JSON(fiber.Map{"message": "If the email exists, a reset link has been sent"})
}

// POST /api/auth/validate-reset-token
func (h *AuthHandler) ValidateResetToken(c *fiber.Ctx) error {
	var req dto.ValidateResetTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid JSON body"})
	}

	if err := h.svc.ValidateResetToken(c.Context(), req.Token); err != nil {
		return authError(c, err)
	}

	return c.JSON(fiber.Map{"message": "reset token is valid"})
}

// POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.PasswordResetSubmission
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid JSON body"})
	}

	if err := h.svc.ResetPassword(c.Context(), req.Token, req.Password); err != nil {
		return authError(c, err)
	}

	return c.JSON(fiber.Map{"message": "password updated successfully"})
}

// authError maps service errors onto HTTP statuses. Anything unexpected
// becomes a generic 500 so internals never leak to the client.
func authError(c *fiber.Ctx, err error) error {
	var ve *services.ValidationError

	status := fiber.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.As(err, &ve):
		status, message = fiber.StatusBadRequest, ve.Message
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrCPFTaken),
		errors.Is(err, services.ErrResetTokenInvalid),
		errors.Is(err, services.ErrResetTokenUsed),
		errors.Is(err, services.ErrResetTokenExpired):
		status, message = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrInvalidCredentials):
		status, message = fiber.StatusUnauthorized, err.Error()
	case errors.Is(err, services.ErrUserNotFound):
		status, message = fiber.StatusNotFound, err.Error()
	}

	return c.Status(status).JSON(fiber.Map{"message": message})
}

package handlers

import (
	"errors"
	"strings"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/dto"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/middleware"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/models"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func currentUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(middleware.ContextUserIDKey).(uint)
	return id, ok
}

type AccountHandler struct {
	db *gorm.DB
}

func NewAccountHandler(db *gorm.DB) *AccountHandler {
	return &AccountHandler{db: db}
}

// POST /api/accounts
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	var req dto.AccountCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	account := models.Account{
		UserID:  userID,
		Name:    strings.TrimSpace(req.Name),
		Type:    req.Type,
		Balance: req.Balance,
		Color:   strings.TrimSpace(req.Color),
	}

	if err := h.db.Create(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create account", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "account created successfully", dto.NewAccountResponse(account))
}

// GET /api/accounts
func (h *AccountHandler) List(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	var accounts []models.Account
	if err := h.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to list accounts", err.Error())
	}

	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, dto.NewAccountResponse(account))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "accounts retrieved successfully", out)
}

// GET /api/accounts/:id
func (h *AccountHandler) Get(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	var account models.Account
	if err := h.db.First(&account, "id = ? AND user_id = ?", c.Params("id"), userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "account not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve account", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "account retrieved successfully", dto.NewAccountResponse(account))
}

// PUT /api/accounts/:id
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	var req dto.AccountUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	var account models.Account
	if err := h.db.First(&account, "id = ? AND user_id = ?", c.Params("id"), userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "account not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve account", err.Error())
	}

	if req.Name != nil {
		account.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		account.Type = *req.Type
	}
	if req.Color != nil {
		account.Color = strings.TrimSpace(*req.Color)
	}

	if err := h.db.Save(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update account", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "account updated successfully", dto.NewAccountResponse(account))
}

// DELETE /api/accounts/:id
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	res := h.db.Where("id = ? AND user_id = ?", c.Params("id"), userID).Delete(&models.Account{})
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete account", res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "account not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "account deleted successfully", nil)
}

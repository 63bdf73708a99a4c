package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/models"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/store"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/utils"
)

var (
	// ErrInvalidCredentials is deliberately the same for an unknown email
	// and a wrong password, so login responses never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailTaken = errors.New("email already registered")
	ErrCPFTaken   = errors.New("CPF already registered")

	ErrUserNotFound = errors.New("user not found")

	ErrResetTokenInvalid = errors.New("invalid or expired reset token")
	ErrResetTokenUsed    = errors.New("reset token already used")
	ErrResetTokenExpired = errors.New("reset token expired")
)

// ValidationError reports a specific, actionable input defect.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(message string) error {
	return &ValidationError{Message: message}
}

// Mailer dispatches the password reset email. Implementations may be slow
// or unavailable; the service treats delivery failure as non-fatal.
type Mailer interface {
	SendPasswordResetEmail(toEmail, resetLink string) error
}

// AuthService implements registration, login, session identity and the
// password-reset token lifecycle. It is stateless: every call re-reads the
// store, and all exclusion (unique email/CPF, single-use tokens) is
// delegated to the store's atomic operations.
type AuthService struct {
	store    store.CredentialStore
	issuer   *utils.TokenIssuer
	mailer   Mailer
	logger   *slog.Logger
	resetURL string
	now      func() time.Time
}

func NewAuthService(st store.CredentialStore, issuer *utils.TokenIssuer, mailer Mailer, logger *slog.Logger, resetURL string) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		store:    st,
		issuer:   issuer,
		mailer:   mailer,
		logger:   logger,
		resetURL: resetURL,
		now:      time.Now,
	}
}

type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	CPF       string
	PhotoPath string
}

type AuthResult struct {
	Token string
	User  models.User
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.CPF = strings.TrimSpace(in.CPF)

	if in.Name == "" {
		return nil, validationErr("name is required")
	}
	if in.Email == "" {
		return nil, validationErr("email is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, validationErr("invalid email format")
	}
	if in.Password == "" {
		return nil, validationErr("password is required")
	}
	// The length check runs before the full policy on purpose, so "too
	// short" always wins the error ordering.
	if len(in.Password) < 8 {
		return nil, validationErr(utils.ErrPasswordTooShort.Error())
	}
	if err := utils.ValidatePassword(in.Password); err != nil {
		return nil, validationErr(err.Error())
	}

	if _, err := s.store.FindUserByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if in.CPF != "" {
		if _, err := s.store.FindUserByCPF(ctx, in.CPF); err == nil {
			return nil, ErrCPFTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	passwordHash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: passwordHash,
		PhotoPath:    in.PhotoPath,
	}
	if in.CPF != "" {
		user.CPF = &in.CPF
	}

	if err := s.store.CreateUser(ctx, &user); err != nil {
		// The pre-checks above can lose a race; the unique indexes are the
		// source of truth. Re-check to name the conflicting field.
		if errors.Is(err, store.ErrConflict) {
			if _, lookupErr := s.store.FindUserByEmail(ctx, in.Email); lookupErr == nil {
				return nil, ErrEmailTaken
			}
			return nil, ErrCPFTaken
		}
		return nil, err
	}

	token, _, err := s.issuer.Issue(user, false)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string, rememberMe bool) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, validationErr("email is required")
	}
	if password == "" {
		return nil, validationErr("password is required")
	}

	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, _, err := s.issuer.Issue(*user, rememberMe)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &AuthResult{Token: token, User: *user}, nil
}

func (s *AuthService) Me(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.store.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// ForgotPassword issues a reset token and mails the link. The outcome is
// identical whether or not the email exists, and a mail delivery failure is
// logged but never surfaced: the token stays valid regardless.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return validationErr("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return validationErr("invalid email format")
	}

	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	rawToken, tokenHash, err := generateResetToken()
	if err != nil {
		return err
	}

	resetToken := models.PasswordResetToken{
		Email:     user.Email,
		TokenHash: tokenHash,
		ExpiresAt: s.now().Add(models.PasswordResetTokenTTL),
	}
	if err := s.store.CreateResetToken(ctx, &resetToken); err != nil {
		return err
	}

	resetLink := buildResetLink(s.resetURL, rawToken)
	if err := s.mailer.SendPasswordResetEmail(user.Email, resetLink); err != nil {
		s.logger.Error("password reset email delivery failed", "error", err)
	}

	return nil
}

func (s *AuthService) ValidateResetToken(ctx context.Context, rawToken string) error {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return validationErr("token is required")
	}

	token, err := s.store.FindResetToken(ctx, hashResetToken(rawToken))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}

	return mapTokenState(token.Validate(s.now()))
}

// ResetPassword re-validates the token from scratch (time may have passed
// since any validate call), checks the new password against the same policy
// as registration, and then consumes the token and replaces the password
// hash inside one store transaction. The consume runs first, so even a
// partial failure cannot leave the token reusable.
func (s *AuthService) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return validationErr("token is required")
	}

	tokenHash := hashResetToken(rawToken)
	token, err := s.store.FindResetToken(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}
	if err := mapTokenState(token.Validate(s.now())); err != nil {
		return err
	}

	if newPassword == "" {
		return validationErr("password is required")
	}
	if len(newPassword) < 8 {
		return validationErr(utils.ErrPasswordTooShort.Error())
	}
	if err := utils.ValidatePassword(newPassword); err != nil {
		return validationErr(err.Error())
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.store.WithTx(ctx, func(tx store.CredentialStore) error {
		if err := tx.ConsumeResetToken(ctx, tokenHash, s.now()); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrResetTokenInvalid
			}
			return mapTokenState(err)
		}
		return tx.UpdateUserPassword(ctx, token.Email, passwordHash)
	})
}

func mapTokenState(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrPasswordResetTokenUsed):
		return ErrResetTokenUsed
	case errors.Is(err, models.ErrPasswordResetTokenExpired):
		return ErrResetTokenExpired
	default:
		return err
	}
}

// generateResetToken returns the raw token handed to the user and the
// SHA-256 hex digest stored at rest.
func generateResetToken() (string, string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", "", err
	}
	raw := hex.EncodeToString(tokenBytes)
	return raw, hashResetToken(raw), nil
}

func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func buildResetLink(base, token string) string {
	escapedToken := url.QueryEscape(token)
	if strings.Contains(base, "?") {
		if strings.HasSuffix(base, "?") || strings.HasSuffix(base, "&") {
			return base + "token=" + escapedToken
		}
		return base + "&token=" + escapedToken
	}
	return base + "?token=" + escapedToken
}

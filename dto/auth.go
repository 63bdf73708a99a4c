package dto

import (
	"time"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/models"
)

type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type ValidateResetTokenRequest struct {
	Token string `json:"token"`
}

type PasswordResetSubmission struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// UserSummary is the user record as returned by the API: never carries the
// password hash.
type UserSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CPF       string `json:"cpf,omitempty"`
	PhotoPath string `json:"photo,omitempty"`
	CreatedAt string `json:"created_at"`
}

func NewUserSummary(user models.User) UserSummary {
	summary := UserSummary{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		PhotoPath: user.PhotoPath,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
	if user.CPF != nil {
		summary.CPF = *user.CPF
	}
	return summary
}

type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

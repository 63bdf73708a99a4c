package dto

import (
	"strings"
	"time"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/models"
)

type AccountCreateRequest struct {
	Name    string             `json:"name"`
	Type    models.AccountType `json:"type"`
	Balance int64              `json:"balance"`
	Color   string             `json:"color"`
}

type AccountUpdateRequest struct {
	Name  *string             `json:"name"`
	Type  *models.AccountType `json:"type"`
	Color *string             `json:"color"`
}

type AccountResponse struct {
	ID        uint               `json:"id"`
	Name      string             `json:"name"`
	Type      models.AccountType `json:"type"`
	Balance   int64              `json:"balance"`
	Color     string             `json:"color,omitempty"`
	CreatedAt string             `json:"created_at"`
	UpdatedAt string             `json:"updated_at"`
}

func (r *AccountCreateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "name is required"
	}
	if !r.Type.IsValid() {
		errors["type"] = "type must be checking, savings, wallet, or investment"
	}

	return errors
}

func (r *AccountUpdateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errors["name"] = "name must not be empty"
	}
	if r.Type != nil && !r.Type.IsValid() {
		errors["type"] = "type must be checking, savings, wallet, or investment"
	}

	return errors
}

func NewAccountResponse(account models.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Type:      account.Type,
		Balance:   account.Balance,
		Color:     account.Color,
		CreatedAt: account.CreatedAt.Format(time.RFC3339),
		UpdatedAt: account.UpdatedAt.Format(time.RFC3339),
	}
}

package dto

import (
	"strings"
	"time"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/models"
)

type CardCreateRequest struct {
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	CreditLimit int64  `json:"credit_limit"`
	ClosingDay  int    `json:"closing_day"`
	DueDay      int    `json:"due_day"`
}

type CardUpdateRequest struct {
	Name        *string `json:"name"`
	Brand       *string `json:"brand"`
	CreditLimit *int64  `json:"credit_limit"`
	ClosingDay  *int    `json:"closing_day"`
	DueDay      *int    `json:"due_day"`
}

type CardResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand,omitempty"`
	CreditLimit int64  `json:"credit_limit"`
	ClosingDay  int    `json:"closing_day"`
	DueDay      int    `json:"due_day"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func validDayOfMonth(day int) bool {
	return day >= 1 && day <= 31
}

func (r *CardCreateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "name is required"
	}
	if r.CreditLimit < 0 {
		errors["credit_limit"] = "credit_limit must not be negative"
	}
	if !validDayOfMonth(r.ClosingDay) {
		errors["closing_day"] = "closing_day must be between 1 and 31"
	}
	if !validDayOfMonth(r.DueDay) {
		errors["due_day"] = "due_day must be between 1 and 31"
	}

	return errors
}

func (r *CardUpdateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errors["name"] = "name must not be empty"
	}
	if r.CreditLimit != nil && *r.CreditLimit < 0 {
		errors["credit_limit"] = "credit_limit must not be negative"
	}
	if r.ClosingDay != nil && !validDayOfMonth(*r.ClosingDay) {
		errors["closing_day"] = "closing_day must be between 1 and 31"
	}
	if r.DueDay != nil && !validDayOfMonth(*r.DueDay) {
		errors["due_day"] = "due_day must be between 1 and 31"
	}

	return errors
}

func NewCardResponse(card models.Card) CardResponse {
	return CardResponse{
		ID:          card.ID,
		Name:        card.Name,
		Brand:       card.Brand,
		CreditLimit: card.CreditLimit,
		ClosingDay:  card.ClosingDay,
		DueDay:      card.DueDay,
		CreatedAt:   card.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   card.UpdatedAt.Format(time.RFC3339),
	}
}

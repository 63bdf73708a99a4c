package dto

import (
	"strings"
	"time"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/models"
)

const transactionDateLayout = "2006-01-02"

type TransactionCreateRequest struct {
	Description string                 `json:"description"`
	Amount      int64                  `json:"amount"`
	Type        models.TransactionType `json:"type"`
	Category    string                 `json:"category"`
	Date        string                 `json:"date"`
	AccountID   *uint                  `json:"account_id"`
	CardID      *uint                  `json:"card_id"`
}

type TransactionUpdateRequest struct {
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Date        *string `json:"date"`
}

type TransactionResponse struct {
	ID          uint                   `json:"id"`
	Description string                 `json:"description"`
	Amount      int64                  `json:"amount"`
	Type        models.TransactionType `json:"type"`
	Category    string                 `json:"category,omitempty"`
	Date        string                 `json:"date"`
	AccountID   *uint                  `json:"account_id,omitempty"`
	CardID      *uint                  `json:"card_id,omitempty"`
	CreatedAt   string                 `json:"created_at"`
}

func (r *TransactionCreateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Description) == "" {
		errors["description"] = "description is required"
	}
	if r.Amount <= 0 {
		errors["amount"] = "amount must be a positive number of cents"
	}
	if !r.Type.IsValid() {
		errors["type"] = "type must be income or expense"
	}
	if _, err := r.ParsedDate(); err != nil {
		errors["date"] = "date must be formatted as YYYY-MM-DD"
	}
	if r.AccountID != nil && r.CardID != nil {
		errors["account_id"] = "a transaction belongs to an account or a card, not both"
	}

	return errors
}

func (r *TransactionCreateRequest) ParsedDate() (time.Time, error) {
	return time.Parse(transactionDateLayout, strings.TrimSpace(r.Date))
}

func (r *TransactionUpdateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Description != nil && strings.TrimSpace(*r.Description) == "" {
		errors["description"] = "description must not be empty"
	}
	if r.Date != nil {
		if _, err := time.Parse(transactionDateLayout, strings.TrimSpace(*r.Date)); err != nil {
			errors["date"] = "date must be formatted as YYYY-MM-DD"
		}
	}

	return errors
}

func NewTransactionResponse(txn models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID,
		Description: txn.Description,
		Amount:      txn.Amount,
		Type:        txn.Type,
		Category:    txn.Category,
		Date:        txn.Date.Format(transactionDateLayout),
		AccountID:   txn.AccountID,
		CardID:      txn.CardID,
		CreatedAt:   txn.CreatedAt.Format(time.RFC3339),
	}
}

func NewTransactionListResponse(txns []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, NewTransactionResponse(txn))
	}
	return out
}

package dto

import (
	"strings"
	"time"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/models"
)

const budgetMonthLayout = "2006-01"

type BudgetCreateRequest struct {
	Category    string `json:"category"`
	LimitAmount int64  `json:"limit_amount"`
	Month       string `json:"month"`
}

type BudgetUpdateRequest struct {
	LimitAmount *int64 `json:"limit_amount"`
}

// BudgetResponse carries the spent-so-far figure computed from expense
// transactions in the budget's month.
type BudgetResponse struct {
	ID          uint   `json:"id"`
	Category    string `json:"category"`
	LimitAmount int64  `json:"limit_amount"`
	Month       string `json:"month"`
	Spent       int64  `json:"spent"`
}

func (r *BudgetCreateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Category) == "" {
		errors["category"] = "category is required"
	}
	if r.LimitAmount <= 0 {
		errors["limit_amount"] = "limit_amount must be a positive number of cents"
	}
	if _, err := time.Parse(budgetMonthLayout, strings.TrimSpace(r.Month)); err != nil {
		errors["month"] = "month must be formatted as YYYY-MM"
	}

	return errors
}

func (r *BudgetUpdateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.LimitAmount != nil && *r.LimitAmount <= 0 {
		errors["limit_amount"] = "limit_amount must be a positive number of cents"
	}

	return errors
}

func NewBudgetResponse(budget models.Budget, spent int64) BudgetResponse {
	return BudgetResponse{
		ID:          budget.ID,
		Category:    budget.Category,
		LimitAmount: budget.LimitAmount,
		Month:       budget.Month,
		Spent:       spent,
	}
}

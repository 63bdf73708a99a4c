package dto

import (
	"strings"
	"time"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/models"
)

type GoalCreateRequest struct {
	Name         string `json:"name"`
	TargetAmount int64  `json:"target_amount"`
	SavedAmount  int64  `json:"saved_amount"`
	Deadline     string `json:"deadline"`
}

type GoalUpdateRequest struct {
	Name         *string `json:"name"`
	TargetAmount *int64  `json:"target_amount"`
	Deadline     *string `json:"deadline"`
}

type GoalContributeRequest struct {
	Amount int64 `json:"amount"`
}

type GoalResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	TargetAmount int64  `json:"target_amount"`
	SavedAmount  int64  `json:"saved_amount"`
	Deadline     string `json:"deadline,omitempty"`
	CreatedAt    string `json:"created_at"`
}

func (r *GoalCreateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "name is required"
	}
	if r.TargetAmount <= 0 {
		errors["target_amount"] = "target_amount must be a positive number of cents"
	}
	if r.SavedAmount < 0 {
		errors["saved_amount"] = "saved_amount must not be negative"
	}
	if strings.TrimSpace(r.Deadline) != "" {
		if _, err := r.ParsedDeadline(); err != nil {
			errors["deadline"] = "deadline must be formatted as YYYY-MM-DD"
		}
	}

	return errors
}

func (r *GoalCreateRequest) ParsedDeadline() (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(r.Deadline))
}

func (r *GoalUpdateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errors["name"] = "name must not be empty"
	}
	if r.TargetAmount != nil && *r.TargetAmount <= 0 {
		errors["target_amount"] = "target_amount must be a positive number of cents"
	}
	if r.Deadline != nil && strings.TrimSpace(*r.Deadline) != "" {
		if _, err := time.Parse("2006-01-02", strings.TrimSpace(*r.Deadline)); err != nil {
			errors["deadline"] = "deadline must be formatted as YYYY-MM-DD"
		}
	}

	return errors
}

func (r *GoalContributeRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Amount <= 0 {
		errors["amount"] = "amount must be a positive number of cents"
	}

	return errors
}

func NewGoalResponse(goal models.Goal) GoalResponse {
	resp := GoalResponse{
		ID:           goal.ID,
		Name:         goal.Name,
		TargetAmount: goal.TargetAmount,
		SavedAmount:  goal.SavedAmount,
		CreatedAt:    goal.CreatedAt.Format(time.RFC3339),
	}
	if goal.Deadline != nil {
		resp.Deadline = goal.Deadline.Format("2006-01-02")
	}
	return resp
}

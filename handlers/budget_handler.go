package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/dto"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/models"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BudgetHandler struct {
	db *gorm.DB
}

func NewBudgetHandler(db *gorm.DB) *BudgetHandler {
	return &BudgetHandler{db: db}
}

// POST /api/budgets
func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	var req dto.BudgetCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	budget := models.Budget{
		UserID:      userID,
		Category:    strings.TrimSpace(req.Category),
		LimitAmount: req.LimitAmount,
		Month:       strings.TrimSpace(req.Month),
	}

	if err := h.db.Create(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "a budget for this category and month already exists", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create budget", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "budget created successfully", dto.NewBudgetResponse(budget, 0))
}

// GET /api/budgets?month=
func (h *BudgetHandler) List(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	q := h.db.Where("user_id = ?", userID)
	if month := strings.TrimSpace(c.Query("month")); month != "" {
		if _, err := time.Parse("2006-01", month); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "month must be formatted as YYYY-MM", nil)
		}
		q = q.Where("month = ?", month)
	}

	var budgets []models.Budget
	if err := q.Order("month DESC, category ASC").Find(&budgets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to list budgets", err.Error())
	}

	out := make([]dto.BudgetResponse, 0, len(budgets))
	for _, budget := range budgets {
		spent, err := h.spentForBudget(userID, budget)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to compute budget usage", err.Error())
		}
		out = append(out, dto.NewBudgetResponse(budget, spent))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "budgets retrieved successfully", out)
}

// PUT /api/budgets/:id
func (h *BudgetHandler) Update(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	var req dto.BudgetUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	var budget models.Budget
	if err := h.db.First(&budget, "id = ? AND user_id = ?", c.Params("id"), userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "budget not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve budget", err.Error())
	}

	if req.LimitAmount != nil {
		budget.LimitAmount = *req.LimitAmount
	}

	if err := h.db.Save(&budget).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update budget", err.Error())
	}

	spent, err := h.spentForBudget(userID, budget)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to compute budget usage", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "budget updated successfully", dto.NewBudgetResponse(budget, spent))
}

// DELETE /api/budgets/:id
func (h *BudgetHandler) Delete(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	res := h.db.Where("id = ? AND user_id = ?", c.Params("id"), userID).Delete(&models.Budget{})
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete budget", res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "budget not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "budget deleted successfully", nil)
}

func (h *BudgetHandler) spentForBudget(userID uint, budget models.Budget) (int64, error) {
	start, err := time.Parse("2006-01", budget.Month)
	if err != nil {
		return 0, err
	}

	var spent int64
	err = h.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ? AND category = ? AND date >= ? AND date < ?",
			userID, models.TransactionExpense, budget.Category, start, start.AddDate(0, 1, 0)).
		Scan(&spent).Error
	return spent, err
}

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

type GoalHandler struct {
	db *gorm.DB
}

func NewGoalHandler(db *gorm.DB) *GoalHandler {
	return &GoalHandler{db: db}
}

// POST /api/goals
func (h *GoalHandler) Create(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	var req dto.GoalCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	goal := models.Goal{
		UserID:       userID,
		Name:         strings.TrimSpace(req.Name),
		TargetAmount: req.TargetAmount,
		SavedAmount:  req.SavedAmount,
	}
	if strings.TrimSpace(req.Deadline) != "" {
		deadline, _ := req.ParsedDeadline()
		goal.Deadline = &deadline
	}

	if err := h.db.Create(&goal).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create goal", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "goal created successfully", dto.NewGoalResponse(goal))
}

// GET /api/goals
func (h *GoalHandler) List(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	var goals []models.Goal
	if err := h.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&goals).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to list goals", err.Error())
	}

	out := make([]dto.GoalResponse, 0, len(goals))
	for _, goal := range goals {
		out = append(out, dto.NewGoalResponse(goal))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "goals retrieved successfully", out)
}

// PUT /api/goals/:id
func (h *GoalHandler) Update(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	var req dto.GoalUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	var goal models.Goal
	if err := h.db.First(&goal, "id = ? AND user_id = ?", c.Params("id"), userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "goal not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve goal", err.Error())
	}

	if req.Name != nil {
		goal.Name = strings.TrimSpace(*req.Name)
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
	}
	if req.Deadline != nil {
		if strings.TrimSpace(*req.Deadline) == "" {
			goal.Deadline = nil
		} else {
			deadline, _ := time.Parse("2006-01-02", strings.TrimSpace(*req.Deadline))
			goal.Deadline = &deadline
		}
	}

	if err := h.db.Save(&goal).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update goal", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "goal updated successfully", dto.NewGoalResponse(goal))
}

// POST /api/goals/:id/contribute
func (h *GoalHandler) Contribute(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	var req dto.GoalContributeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	res := h.db.Model(&models.Goal{}).
		Where("id = ? AND user_id = ?", c.Params("id"), userID).
		UpdateColumn("saved_amount", gorm.Expr("saved_amount + ?", req.Amount))
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to record contribution", res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "goal not found", nil)
	}

	var goal models.Goal
	if err := h.db.First(&goal, "id = ? AND user_id = ?", c.Params("id"), userID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve goal", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "contribution recorded successfully", dto.NewGoalResponse(goal))
}

// DELETE /api/goals/:id
func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	res := h.db.Where("id = ? AND user_id = ?", c.Params("id"), userID).Delete(&models.Goal{})
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete goal", res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "goal not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "goal deleted successfully", nil)
}

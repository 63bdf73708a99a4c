package handlers

import (
	"errors"
	"strings"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/dto"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/models"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CardHandler struct {
	db *gorm.DB
}

func NewCardHandler(db *gorm.DB) *CardHandler {
	return &CardHandler{db: db}
}

// POST /api/cards
func (h *CardHandler) Create(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	var req dto.CardCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	card := models.Card{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Brand:       strings.TrimSpace(req.Brand),
		CreditLimit: req.CreditLimit,
		ClosingDay:  req.ClosingDay,
		DueDay:      req.DueDay,
	}

	if err := h.db.Create(&card).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create card", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "card created successfully", dto.NewCardResponse(card))
}

// GET /api/cards
func (h *CardHandler) List(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	var cards []models.Card
	if err := h.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&cards).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to list cards", err.Error())
	}

	out := make([]dto.CardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, dto.NewCardResponse(card))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "cards retrieved successfully", out)
}

// GET /api/cards/:id
func (h *CardHandler) Get(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	var card models.Card
	if err := h.db.First(&card, "id = ? AND user_id = ?", c.Params("id"), userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "card not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve card", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "card retrieved successfully", dto.NewCardResponse(card))
}

// PUT /api/cards/:id
func (h *CardHandler) Update(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	var req dto.CardUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	var card models.Card
	if err := h.db.First(&card, "id = ? AND user_id = ?", c.Params("id"), userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "card not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve card", err.Error())
	}

	if req.Name != nil {
		card.Name = strings.TrimSpace(*req.Name)
	}
	if req.Brand != nil {
		card.Brand = strings.TrimSpace(*req.Brand)
	}
	if req.CreditLimit != nil {
		card.CreditLimit = *req.CreditLimit
	}
	if req.ClosingDay != nil {
		card.ClosingDay = *req.ClosingDay
	}
	if req.DueDay != nil {
		card.DueDay = *req.DueDay
	}

	if err := h.db.Save(&card).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update card", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "card updated successfully", dto.NewCardResponse(card))
}

// DELETE /api/cards/:id
func (h *CardHandler) Delete(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	res := h.db.Where("id = ? AND user_id = ?", c.Params("id"), userID).Delete(&models.Card{})
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete card", res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "card not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "card deleted successfully", nil)
}

package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/dto"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/models"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TransactionHandler struct {
	db *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{db: db}
}

// POST /api/transactions
//
// Creating an account-linked transaction adjusts the account balance in the
// same database transaction, so the two rows can never drift apart.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	var req dto.TransactionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	date, _ := req.ParsedDate()
	txn := models.Transaction{
		UserID:      userID,
		Description: strings.TrimSpace(req.Description),
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    strings.TrimSpace(req.Category),
		Date:        date,
		AccountID:   req.AccountID,
		CardID:      req.CardID,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if txn.AccountID != nil {
			if err := ensureOwnedAccount(tx, userID, *txn.AccountID); err != nil {
				return err
			}
		}
		if txn.CardID != nil {
			if err := ensureOwnedCard(tx, userID, *txn.CardID); err != nil {
				return err
			}
		}

		if err := tx.Create(&txn).Error; err != nil {
			return err
		}
		return applyBalanceDelta(tx, txn.AccountID, txn.BalanceDelta())
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "linked account or card not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create transaction", err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "transaction created successfully", dto.NewTransactionResponse(txn))
}

// GET /api/transactions?page=&limit=&month=&type=&account_id=
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	q := h.db.Model(&models.Transaction{}).Where("user_id = ?", userID)

	if month := strings.TrimSpace(c.Query("month")); month != "" {
		start, err := time.Parse("2006-01", month)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "month must be formatted as YYYY-MM", nil)
		}
		q = q.Where("date >= ? AND date < ?", start, start.AddDate(0, 1, 0))
	}
	if txnType := strings.TrimSpace(c.Query("type")); txnType != "" {
		if !models.TransactionType(txnType).IsValid() {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "type must be income or expense", nil)
		}
		q = q.Where("type = ?", txnType)
	}
	if accountID := strings.TrimSpace(c.Query("account_id")); accountID != "" {
		q = q.Where("account_id = ?", accountID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to count transactions", err.Error())
	}

	var txns []models.Transaction
	if err := q.Order("date DESC, id DESC").Limit(limit).Offset(offset).Find(&txns).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to list transactions", err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "transactions retrieved successfully", fiber.Map{
		"items": dto.NewTransactionListResponse(txns),
		"page":  page,
		"limit": limit,
		"total": total,
	})
}

// GET /api/transactions/:id
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	var txn models.Transaction
	if err := h.db.First(&txn, "id = ? AND user_id = ?", c.Params("id"), userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "transaction not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve transaction", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "transaction retrieved successfully", dto.NewTransactionResponse(txn))
}

// PUT /api/transactions/:id
//
// Only descriptive fields are updatable. Amount, type and account links are
// immutable; delete and recreate to restate a movement, which keeps the
// balance arithmetic in one place.
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	var req dto.TransactionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	var txn models.Transaction
	if err := h.db.First(&txn, "id = ? AND user_id = ?", c.Params("id"), userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "transaction not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve transaction", err.Error())
	}

	if req.Description != nil {
		txn.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		txn.Category = strings.TrimSpace(*req.Category)
	}
	if req.Date != nil {
		date, _ := time.Parse("2006-01-02", strings.TrimSpace(*req.Date))
		txn.Date = date
	}

	if err := h.db.Save(&txn).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update transaction", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "transaction updated successfully", dto.NewTransactionResponse(txn))
}

// DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var txn models.Transaction
		if err := tx.First(&txn, "id = ? AND user_id = ?", c.Params("id"), userID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&txn).Error; err != nil {
			return err
		}
		// Reverse the balance effect the movement had.
		return applyBalanceDelta(tx, txn.AccountID, -txn.BalanceDelta())
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "transaction not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete transaction", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "transaction deleted successfully", nil)
}

func ensureOwnedAccount(tx *gorm.DB, userID, accountID uint) error {
	var count int64
	if err := tx.Model(&models.Account{}).Where("id = ? AND user_id = ?", accountID, userID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func ensureOwnedCard(tx *gorm.DB, userID, cardID uint) error {
	var count int64
	if err := tx.Model(&models.Card{}).Where("id = ? AND user_id = ?", cardID, userID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func applyBalanceDelta(tx *gorm.DB, accountID *uint, delta int64) error {
	if accountID == nil || delta == 0 {
		return nil
	}
	return tx.Model(&models.Account{}).
		Where("id = ?", *accountID).
		UpdateColumn("balance", gorm.Expr("balance + ?", delta)).Error
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is a single money movement. Amount is in cents and always
// positive; Type decides the direction.
type Transaction struct {
	gorm.Model
	UserID      uint            `gorm:"not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      int64           `gorm:"not null"`
	Type        TransactionType `gorm:"type:enum('income','expense');not null;index"`
	Category    string          `gorm:"type:varchar(100);index"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	AccountID   *uint           `gorm:"index"`
	CardID      *uint           `gorm:"index"`

	User    User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Account *Account `gorm:"constraint:OnDelete:SET NULL"`
	Card    *Card    `gorm:"constraint:OnDelete:SET NULL"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionIncome, TransactionExpense:
		return true
	default:
		return false
	}
}

// BalanceDelta is the signed effect this transaction has on its linked
// account balance.
func (t Transaction) BalanceDelta() int64 {
	if t.Type == TransactionExpense {
		return -t.Amount
	}
	return t.Amount
}

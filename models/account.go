package models

import "gorm.io/gorm"

type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountWallet     AccountType = "wallet"
	AccountInvestment AccountType = "investment"
)

// Account is a money source. Balance is kept in cents and adjusted inside
// the same database transaction that writes the linked Transaction row.
type Account struct {
	gorm.Model
	UserID  uint        `gorm:"not null;index"`
	Name    string      `gorm:"type:varchar(150);not null"`
	Type    AccountType `gorm:"type:enum('checking','savings','wallet','investment');not null;index"`
	Balance int64       `gorm:"not null;default:0"`
	Color   string      `gorm:"type:varchar(20)"`

	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Account) TableName() string {
	return "accounts"
}

func (t AccountType) IsValid() bool {
	switch t {
	case AccountChecking, AccountSavings, AccountWallet, AccountInvestment:
		return true
	default:
		return false
	}
}

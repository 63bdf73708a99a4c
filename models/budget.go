package models

import "gorm.io/gorm"

// Budget is a monthly spending cap for a category. Month is "YYYY-MM".
type Budget struct {
	gorm.Model
	UserID      uint   `gorm:"not null;uniqueIndex:idx_budget_user_category_month"`
	Category    string `gorm:"type:varchar(100);not null;uniqueIndex:idx_budget_user_category_month"`
	LimitAmount int64  `gorm:"not null"`
	Month       string `gorm:"type:varchar(7);not null;uniqueIndex:idx_budget_user_category_month"`

	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Budget) TableName() string {
	return "budgets"
}

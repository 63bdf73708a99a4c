package models

import "gorm.io/gorm"

type Card struct {
	gorm.Model
	UserID      uint   `gorm:"not null;index"`
	Name        string `gorm:"type:varchar(150);not null"`
	Brand       string `gorm:"type:varchar(50)"`
	CreditLimit int64  `gorm:"not null;default:0"`
	ClosingDay  int    `gorm:"not null;default:1"`
	DueDay      int    `gorm:"not null;default:10"`

	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Card) TableName() string {
	return "cards"
}

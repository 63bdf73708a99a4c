package models

import (
	"time"

	"gorm.io/gorm"
)

type Goal struct {
	gorm.Model
	UserID       uint   `gorm:"not null;index"`
	Name         string `gorm:"type:varchar(150);not null"`
	TargetAmount int64  `gorm:"not null"`
	SavedAmount  int64  `gorm:"not null;default:0"`
	Deadline     *time.Time

	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Goal) TableName() string {
	return "goals"
}

package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrPasswordResetTokenExpired = errors.New("password reset token expired")
	ErrPasswordResetTokenUsed    = errors.New("password reset token already used")
)

const PasswordResetTokenTTL = time.Hour

// PasswordResetToken stores the SHA-256 hash of the opaque token mailed to
// the user; the raw token never touches the database. The owning user is
// referenced by email string, matching how the reset link flow looks it up.
type PasswordResetToken struct {
	gorm.Model
	Email     string    `gorm:"type:varchar(191);not null;index"`
	TokenHash string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null;default:false"`
	UsedAt    *time.Time
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}

func (t PasswordResetToken) IsExpired(reference time.Time) bool {
	if reference.IsZero() {
		reference = time.Now()
	}
	return reference.After(t.ExpiresAt)
}

func (t PasswordResetToken) Validate(reference time.Time) error {
	if reference.IsZero() {
		reference = time.Now()
	}
	if t.Used {
		return ErrPasswordResetTokenUsed
	}
	if t.IsExpired(reference) {
		return ErrPasswordResetTokenExpired
	}
	return nil
}

package models

import (
	"errors"
	"testing"
	"time"
)

func TestPasswordResetTokenValidate(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	token := PasswordResetToken{
		Email:     "ana@x.com",
		TokenHash: "deadbeef",
		ExpiresAt: issued.Add(PasswordResetTokenTTL),
	}

	t.Run("valid right after issuance", func(t *testing.T) {
		if err := token.Validate(issued); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("valid at exactly the expiry instant", func(t *testing.T) {
		if err := token.Validate(token.ExpiresAt); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("expired one minute past the hour", func(t *testing.T) {
		err := token.Validate(issued.Add(61 * time.Minute))
		if !errors.Is(err, ErrPasswordResetTokenExpired) {
			t.Fatalf("expected expired error, got %v", err)
		}
	})

	t.Run("used wins over expired", func(t *testing.T) {
		used := token
		used.Used = true
		err := used.Validate(issued.Add(2 * time.Hour))
		if !errors.Is(err, ErrPasswordResetTokenUsed) {
			t.Fatalf("expected used error, got %v", err)
		}
	})
}

func TestPasswordResetTokenIsExpired(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	token := PasswordResetToken{ExpiresAt: issued.Add(time.Hour)}

	if token.IsExpired(issued) {
		t.Fatal("token must not be expired at issuance")
	}
	if token.IsExpired(token.ExpiresAt) {
		t.Fatal("token must still be valid at the expiry instant")
	}
	if !token.IsExpired(token.ExpiresAt.Add(time.Second)) {
		t.Fatal("token must be expired after the expiry instant")
	}
}

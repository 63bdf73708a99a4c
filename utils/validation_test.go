package utils

import (
	"errors"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     error
	}{
		{"accepts minimal valid password", "Abcdefg1", nil},
		{"accepts long mixed password", "Tr0picalSunset99", nil},
		{"rejects empty", "", ErrPasswordTooShort},
		{"rejects seven characters even when mixed", "Abcdef1", ErrPasswordTooShort},
		{"rejects short regardless of composition", "A1b2c3!", ErrPasswordTooShort},
		{"rejects missing digit and uppercase", "abcdefgh", ErrPasswordNoUpper},
		{"rejects missing lowercase", "ABCDEFG1", ErrPasswordNoLower},
		{"rejects missing uppercase", "abcdefg1", ErrPasswordNoUpper},
		{"rejects missing digit", "Abcdefgh", ErrPasswordNoDigit},
		{"no special character required", "Password1", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidatePassword(tc.password)
			if !errors.Is(got, tc.want) {
				t.Fatalf("ValidatePassword(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}

func TestValidatePasswordOrderOfChecks(t *testing.T) {
	// Lowercase is reported before uppercase and digit when several rules
	// fail at once.
	if err := ValidatePassword("12345678"); !errors.Is(err, ErrPasswordNoLower) {
		t.Fatalf("expected lowercase violation first, got %v", err)
	}
	if err := ValidatePassword("ABCDEFGH"); !errors.Is(err, ErrPasswordNoLower) {
		t.Fatalf("expected lowercase violation before digit, got %v", err)
	}
}

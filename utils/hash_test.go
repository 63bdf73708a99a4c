package utils

import "testing"

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Abcdef12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "Abcdef12" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPassword(hash, "Abcdef12") {
		t.Fatal("expected correct password to verify")
	}
	if CheckPassword(hash, "Abcdef13") {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("Abcdef12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("Abcdef12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password must differ by salt")
	}
}

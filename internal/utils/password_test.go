package utils

import "testing"

func TestNewTempPassword(t *testing.T) {
	a, err := NewTempPassword()
	if err != nil {
		t.Fatalf("NewTempPassword: %v", err)
	}
	if len(a) != 12 {
		t.Errorf("password length = %d, want 12 hex chars", len(a))
	}
	b, _ := NewTempPassword()
	if a == b {
		t.Error("two generated passwords must differ")
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the plain password")
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Error("correct password must verify")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("wrong password must not verify")
	}
}

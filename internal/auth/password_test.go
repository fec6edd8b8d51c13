package auth

import "testing"

func TestPasswordHashingLifecycle(t *testing.T) {
	password := "S3curePass!"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error hashing password: %v", err)
	}
	if hash == "" {
		t.Fatal("expected hash to be populated")
	}

	if err := VerifyPassword(hash, password); err != nil {
		t.Fatalf("expected password to verify, got error: %v", err)
	}

	if err := VerifyPassword(hash, "wrong"); err == nil {
		t.Fatal("expected verification to fail for wrong password")
	}
}

func TestHashPasswordSalts(t *testing.T) {
	first, err := HashPassword("repeated-password")
	if err != nil {
		t.Fatalf("unexpected error hashing password: %v", err)
	}
	second, err := HashPassword("repeated-password")
	if err != nil {
		t.Fatalf("unexpected error hashing password: %v", err)
	}
	if first == second {
		t.Fatal("expected per-hash salt to produce distinct digests")
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashPassword("   "); err == nil {
		t.Fatal("expected error for blank password")
	}
}

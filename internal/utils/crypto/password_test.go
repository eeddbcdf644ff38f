package crypto

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatalf("hash must not equal plaintext")
	}

	ok, err := ComparePassword("correct horse battery", hash)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !ok {
		t.Fatalf("expected matching password to compare true")
	}

	ok, err = ComparePassword("wrong password", hash)
	if err != nil {
		t.Fatalf("mismatch must not be an error, got %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch to compare false")
	}
}

func TestComparePasswordMalformedHash(t *testing.T) {
	if _, err := ComparePassword("anything", "not-a-bcrypt-hash"); err == nil {
		t.Fatalf("expected error for malformed hash")
	}
}

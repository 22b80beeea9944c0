package auth

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hashed == "s3cret" {
		t.Fatalf("password stored in plain text")
	}

	if err := ComparePassword(hashed, "s3cret"); err != nil {
		t.Fatalf("compare matching: %v", err)
	}
	if err := ComparePassword(hashed, "wrong"); err == nil {
		t.Fatalf("compare accepted wrong password")
	}
}

func TestHashPasswordClampsCost(t *testing.T) {
	// Out-of-range costs must not error; they fall back to the default.
	for _, cost := range []int{-1, 0, 99} {
		if _, err := HashPassword("s3cret", cost); err != nil {
			t.Fatalf("cost %d: %v", cost, err)
		}
	}
}

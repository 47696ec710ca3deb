package password_test

import (
	"errors"
	"strings"
	"testing"

	"lodge/shared/password"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "valid password",
			password: "correct-horse-battery-staple",
		},
		{
			name:     "short password",
			password: "a",
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
		},
		{
			name:     "over bcrypt length limit",
			password: strings.Repeat("x", 73),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if hash == tt.password {
				t.Error("hash must not equal the plain password")
			}

			if err := password.Verify(tt.password, hash); err != nil {
				t.Errorf("hashed password failed verification: %v", err)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	testPassword := "secret-password-123"

	validHash, err := password.Hash(testPassword)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	tests := []struct {
		name        string
		password    string
		hash        string
		expectedErr error
	}{
		{
			name:     "correct password",
			password: testPassword,
			hash:     validHash,
		},
		{
			name:        "wrong password",
			password:    "wrong-password",
			hash:        validHash,
			expectedErr: password.ErrInvalidPassword,
		},
		{
			name:        "empty password",
			password:    "",
			hash:        validHash,
			expectedErr: password.ErrInvalidPassword,
		},
		{
			name:        "empty hash",
			password:    testPassword,
			hash:        "",
			expectedErr: password.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}

				return
			}

			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	err := password.Verify("some-password", "not-a-bcrypt-hash")
	if err == nil {
		t.Error("expected error for malformed hash, got nil")
	}

	if errors.Is(err, password.ErrInvalidPassword) {
		t.Error("malformed hash should not report an invalid password")
	}
}

func TestHashConsistency(t *testing.T) {
	pwd := "consistency-check"

	first, err := password.Hash(pwd)
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	second, err := password.Hash(pwd)
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	// bcrypt salts every hash, so two hashes of the same password differ.
	if first == second {
		t.Error("expected different hashes for the same password")
	}

	if err := password.Verify(pwd, first); err != nil {
		t.Errorf("first hash failed verification: %v", err)
	}

	if err := password.Verify(pwd, second); err != nil {
		t.Errorf("second hash failed verification: %v", err)
	}
}

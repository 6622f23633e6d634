package backend

import (
	"context"
	"crypto/pbkdf2"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const (
	passwordSalt       = "thunderlab-app-password-salt-v1"
	passwordIterations = 100000
	passwordKeyLen     = 32
)

// HashAppPassword derives the hash sent to the backend: PBKDF2-SHA256 with
// a fixed salt, 100000 iterations and a 32-byte key, as lowercase hex.
func HashAppPassword(password string) (string, error) {
	key, err := pbkdf2.Key(sha256.New, password, []byte(passwordSalt), passwordIterations, passwordKeyLen)
	if err != nil {
		return "", fmt.Errorf("backend: hash password: %w", err)
	}
	return hex.EncodeToString(key), nil
}

// Unlock hashes password and tries to unlock b with it.
func Unlock(ctx context.Context, b Backend, password string) (bool, error) {
	h, err := HashAppPassword(password)
	if err != nil {
		return false, err
	}
	return b.UnlockAccount(ctx, h)
}

// SetPassword hashes password and stores it as the app password.
func SetPassword(ctx context.Context, b Backend, password string) error {
	h, err := HashAppPassword(password)
	if err != nil {
		return err
	}
	return b.SaveAppPassword(ctx, h)
}

// ChangePassword verifies current and then stores next. It returns false
// without saving when current is wrong.
func ChangePassword(ctx context.Context, b Backend, current, next string) (bool, error) {
	ok, err := Unlock(ctx, b, current)
	if err != nil || !ok {
		return false, err
	}
	if err := SetPassword(ctx, b, next); err != nil {
		return false, err
	}
	return true, nil
}

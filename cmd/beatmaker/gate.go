package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caffeinepub/thunderlab/internal/backend"
)

var (
	errWrongPassword    = errors.New("wrong app password")
	errPasswordMismatch = errors.New("passwords do not match")
	errEmptyPassword    = errors.New("app password must not be empty")
)

type promptFunc func(label string) (string, error)

// openBackend returns an unlocked in-memory backend. With an existing hash
// file the password is checked against it; otherwise a new password is
// chosen and its hash written to path.
func openBackend(ctx context.Context, path string, prompt promptFunc) (*backend.Memory, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		return unlockExisting(ctx, strings.TrimSpace(string(data)), prompt)
	case errors.Is(err, os.ErrNotExist):
		return setupPassword(ctx, path, prompt)
	default:
		return nil, err
	}
}

func unlockExisting(ctx context.Context, hash string, prompt promptFunc) (*backend.Memory, error) {
	b := backend.NewMemory(backend.WithPasswordHash(hash))
	pw, err := prompt("App password: ")
	if err != nil {
		return nil, err
	}
	ok, err := backend.Unlock(ctx, b, pw)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errWrongPassword
	}
	return b, nil
}

func setupPassword(ctx context.Context, path string, prompt promptFunc) (*backend.Memory, error) {
	pw, err := prompt("New app password: ")
	if err != nil {
		return nil, err
	}
	if pw == "" {
		return nil, errEmptyPassword
	}
	again, err := prompt("Repeat app password: ")
	if err != nil {
		return nil, err
	}
	if pw != again {
		return nil, errPasswordMismatch
	}

	hash, err := backend.HashAppPassword(pw)
	if err != nil {
		return nil, err
	}
	b := backend.NewMemory()
	if err := b.SaveAppPassword(ctx, hash); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(hash+"\n"), 0o600); err != nil {
		return nil, fmt.Errorf("store password hash: %w", err)
	}
	return b, nil
}

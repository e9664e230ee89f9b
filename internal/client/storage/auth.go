package storage

import (
	"context"
)

// AuthStorage defines interface for storing the sync session on client.
// This is the lowest storage layer - it works with raw data (already encrypted token)
// and doesn't perform any encryption/decryption itself.
type AuthStorage interface {
	// SaveAuth stores session data as-is (token should already be encrypted)
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored session data as-is (token will be encrypted)
	// Returns ErrAuthNotFound if no session exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored session data (logout)
	DeleteAuth(ctx context.Context) error
}

// AuthData represents the persisted sync session.
// SealedToken is the AES-GCM encrypted access token; Salt is the Argon2id
// salt used to derive the key from the local passphrase.
type AuthData struct {
	Fingerprint string `json:"fingerprint"` // короткий отпечаток токена для статуса
	SealedToken []byte `json:"sealed_token"`
	Salt        []byte `json:"salt"`
	UserID      int64  `json:"user_id"`    // id пользователя на сервере
	ExpiresAt   int64  `json:"expires_at"` // unix seconds, 0 - без срока
}

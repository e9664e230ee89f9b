// Package auth хранит сессию синхронизации: токен сервера, зашифрованный
// ключом из локальной парольной фразы, и id текущего пользователя.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/tasksync/internal/client/storage"
	"github.com/iudanet/tasksync/internal/crypto"
)

// ErrNotLoggedIn is returned when there is no usable session.
var ErrNotLoggedIn = errors.New("not logged in")

// Status describes the stored session without exposing the token.
type Status struct {
	ExpiresAt   time.Time // нулевое значение - без срока
	Fingerprint string
	UserID      int64
	LoggedIn    bool
}

// Session implements the session provider of the sync engine.
// The decrypted token is cached in memory after the first successful read.
type Session struct {
	storage    storage.AuthStorage
	now        func() time.Time
	cached     *session
	passphrase string
	mu         sync.Mutex
}

type session struct {
	token     string
	userID    int64
	expiresAt int64
}

// NewSession creates a session provider on top of storage.
// passphrase unlocks the stored token.
func NewSession(storage storage.AuthStorage, passphrase string) *Session {
	return &Session{
		storage:    storage,
		passphrase: passphrase,
		now:        time.Now,
	}
}

// Login encrypts and stores a new session, replacing the previous one.
// expiresAt is unix seconds, 0 means the token does not expire locally.
func (s *Session) Login(ctx context.Context, userID int64, token string, expiresAt int64) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}
	if userID <= 0 {
		return fmt.Errorf("invalid user id %d", userID)
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return err
	}
	key, err := crypto.DeriveSessionKey(s.passphrase, salt)
	if err != nil {
		return fmt.Errorf("failed to derive session key: %w", err)
	}
	sealed, err := crypto.Seal([]byte(token), key, additionalData(userID))
	if err != nil {
		return fmt.Errorf("failed to encrypt token: %w", err)
	}

	auth := &storage.AuthData{
		UserID:      userID,
		SealedToken: sealed,
		Salt:        salt,
		ExpiresAt:   expiresAt,
		Fingerprint: crypto.Fingerprint(token),
	}
	if err := s.storage.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.mu.Lock()
	s.cached = &session{token: token, userID: userID, expiresAt: expiresAt}
	s.mu.Unlock()
	return nil
}

// Logout removes the stored session
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()

	if err := s.storage.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// IsLoggedIn reports whether a valid, unexpired token is available
func (s *Session) IsLoggedIn(ctx context.Context) bool {
	_, err := s.load(ctx)
	return err == nil
}

// Token returns the session token or ErrNotLoggedIn
func (s *Session) Token(ctx context.Context) (string, error) {
	sess, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	return sess.token, nil
}

// CurrentUserID returns the remote id of the logged in user
func (s *Session) CurrentUserID(ctx context.Context) (int64, error) {
	sess, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return sess.userID, nil
}

// Status returns the stored session state without decrypting the token
func (s *Session) Status(ctx context.Context) (*Status, error) {
	auth, err := s.storage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return &Status{}, nil
		}
		return nil, err
	}

	st := &Status{
		UserID:      auth.UserID,
		Fingerprint: auth.Fingerprint,
		LoggedIn:    s.IsLoggedIn(ctx),
	}
	if auth.ExpiresAt > 0 {
		st.ExpiresAt = time.Unix(auth.ExpiresAt, 0)
	}
	return st, nil
}

// load возвращает расшифрованную сессию, проверяя срок действия
func (s *Session) load(ctx context.Context) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached == nil {
		sess, err := s.decrypt(ctx)
		if err != nil {
			return nil, err
		}
		s.cached = sess
	}

	if s.expired(s.cached) {
		return nil, fmt.Errorf("%w: token expired", ErrNotLoggedIn)
	}
	return s.cached, nil
}

func (s *Session) decrypt(ctx context.Context) (*session, error) {
	auth, err := s.storage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
	}

	key, err := crypto.DeriveSessionKey(s.passphrase, auth.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
	}
	token, err := crypto.Open(auth.SealedToken, key, additionalData(auth.UserID))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
	}

	return &session{token: string(token), userID: auth.UserID, expiresAt: auth.ExpiresAt}, nil
}

// expired проверяет exp у JWT токена, для непрозрачных токенов
// используется сохраненный expiresAt
func (s *Session) expired(sess *session) bool {
	now := s.now()

	if exp, ok := jwtExpiry(sess.token); ok {
		return !now.Before(exp)
	}
	if sess.expiresAt > 0 {
		return !now.Before(time.Unix(sess.expiresAt, 0))
	}
	return false
}

// jwtExpiry читает exp без проверки подписи: токен проверяет сервер
func jwtExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func additionalData(userID int64) []byte {
	return []byte("user:" + strconv.FormatInt(userID, 10))
}

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSession indicates that no usable session credential is available
var ErrNoSession = errors.New("no active session")

//go:generate moq -out provider_mock.go . Provider

// Provider supplies the authorization credential attached to every
// replayed mutation. Obtaining the credential (login flows, refresh) is
// out of scope; the sync engine only reads it.
type Provider interface {
	// AccessToken returns the current access token
	// Returns ErrNoSession if none is stored or the stored one expired
	AccessToken(ctx context.Context) (string, error)
}

// TokenStorage is the persistence surface the provider reads tokens from
type TokenStorage interface {
	SaveToken(ctx context.Context, token string) error
	GetToken(ctx context.Context) (string, error)
	DeleteToken(ctx context.Context) error
}

// Store is a TokenStorage-backed Provider with a local expiry check
type Store struct {
	storage TokenStorage
}

// NewStore creates a session store over the given token storage
func NewStore(storage TokenStorage) *Store {
	return &Store{storage: storage}
}

// SaveToken persists a freshly issued access token
func (s *Store) SaveToken(ctx context.Context, token string) error {
	if err := s.storage.SaveToken(ctx, token); err != nil {
		return fmt.Errorf("failed to save session token: %w", err)
	}
	return nil
}

// AccessToken returns the stored access token if it has not expired.
// The token is parsed without signature verification: the client only
// inspects the exp claim, validation is the server's job.
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	token, err := s.storage.GetToken(ctx)
	if err != nil {
		return "", ErrNoSession
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		// Opaque (non-JWT) tokens are passed through as-is
		return token, nil
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return token, nil
	}

	if time.Now().After(exp.Time) {
		return "", ErrNoSession
	}

	return token, nil
}

// Clear removes the stored session token
func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.DeleteToken(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/elaibiton11/colman-web-development-assignments/internal/app_errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var signingMethod = jwt.SigningMethodHS256

// TokenManager mints and verifies both token classes. Access and refresh
// tokens are signed with distinct secrets so compromise of one cannot forge
// the other. To everything outside this package a token is an opaque string.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenManager takes the secrets as explicit parameters; nothing in this
// package reads the environment.
func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

type tokenClaims struct {
	UserID string `json:"_id"`
	jwt.RegisteredClaims
}

func (m *TokenManager) IssueAccess(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(signingMethod, tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
	})

	signed, err := token.SignedString(m.accessSecret)
	if err != nil {
		return "", fmt.Errorf("access token signing failed: %w", err)
	}
	return signed, nil
}

// IssueRefresh mints a refresh token. The random token id keeps two tokens
// minted for the same user in the same second distinct; an expiry claim is
// set only when a refresh TTL is configured (0 = no expiry).
func (m *TokenManager) IssueRefresh(userID string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if m.refreshTTL != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.refreshTTL))
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(m.refreshSecret)
	if err != nil {
		return "", fmt.Errorf("refresh token signing failed: %w", err)
	}
	return signed, nil
}

func (m *TokenManager) VerifyAccess(token string) (string, error) {
	return m.verify(token, m.accessSecret)
}

func (m *TokenManager) VerifyRefresh(token string) (string, error) {
	return m.verify(token, m.refreshSecret)
}

func (m *TokenManager) verify(token string, secret []byte) (string, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != signingMethod {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", app_errors.ErrTokenExpired
		}
		return "", app_errors.ErrInvalidToken
	}
	if claims.UserID == "" {
		return "", app_errors.ErrInvalidToken
	}
	return claims.UserID, nil
}

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"meetingplanner/internal/domain"
)

// Sentinel errors for token verification failures. The middleware maps these
// to machine-readable 401 codes.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenRevoked = errors.New("token revoked")
)

// TokenManager issues and verifies HS256-signed access and refresh JWTs.
// Access and refresh tokens use distinct secrets. Revoked access tokens are
// rejected via the injected RevocationStore; refresh tokens are not
// revocation-checked, their revocation lives in the users table.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	revoked       domain.RevocationStore
}

// NewTokenManager returns a TokenManager signing with the given secrets and TTLs.
func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration, revoked domain.RevocationStore) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		revoked:       revoked,
	}
}

func (m *TokenManager) issue(subject string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// IssueAccess signs a short-lived access token for the subject.
func (m *TokenManager) IssueAccess(subject string) (string, error) {
	return m.issue(subject, m.accessSecret, m.accessTTL)
}

// IssueRefresh signs a long-lived refresh token for the subject.
func (m *TokenManager) IssueRefresh(subject string) (string, error) {
	return m.issue(subject, m.refreshSecret, m.refreshTTL)
}

func verify(tokenString string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}

// VerifyAccess returns the subject of a valid, unrevoked access token.
// Revocation is checked before the signature so a revoked token never
// authenticates regardless of its remaining lifetime.
func (m *TokenManager) VerifyAccess(tokenString string) (string, error) {
	if m.revoked.Contains(tokenString) {
		return "", ErrTokenRevoked
	}
	return verify(tokenString, m.accessSecret)
}

// VerifyRefresh returns the subject of a valid refresh token.
func (m *TokenManager) VerifyRefresh(tokenString string) (string, error) {
	return verify(tokenString, m.refreshSecret)
}

// Revoke adds an access token to the revocation store. The store entry is kept
// until the token's own expiry, after which ordinary expiry checks take over.
// Unparseable tokens are retained for a full access TTL.
func (m *TokenManager) Revoke(tokenString string) {
	expiresAt := time.Now().Add(m.accessTTL)
	claims := &jwt.RegisteredClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.accessSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})); err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	m.revoked.Add(tokenString, expiresAt)
}

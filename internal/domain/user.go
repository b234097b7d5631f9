package domain

import (
	"context"
	"time"
)

// User represents a registered account. RefreshToken holds the single live
// refresh token for the user; empty means none (cleared on logout).
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser returns a new User. ID is set by the repository on create.
func NewUser(email, passwordHash, salt string, createdAt time.Time) *User {
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		Salt:         salt,
		CreatedAt:    createdAt,
	}
}

// TokenPair bundles the access and refresh tokens issued at login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues signed, expiring tokens for an authenticated subject.
// Access and refresh tokens are signed with distinct secrets.
type TokenIssuer interface {
	IssueAccess(subject string) (string, error)
	IssueRefresh(subject string) (string, error)
}

// TokenVerifier verifies a token and returns the signed subject. Failures are
// reported through the auth adapter's sentinel errors (expired, invalid,
// revoked); malformed input is an ordinary verification failure, never a panic.
type TokenVerifier interface {
	VerifyAccess(token string) (subject string, err error)
	VerifyRefresh(token string) (subject string, err error)
}

// TokenRevoker invalidates an access token before its natural expiry.
type TokenRevoker interface {
	Revoke(token string)
}

// RevocationStore tracks revoked access tokens until they would have expired
// anyway. Implementations must be safe for concurrent use.
type RevocationStore interface {
	Add(token string, expiresAt time.Time)
	Contains(token string) bool
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByRefreshToken(ctx context.Context, refreshToken string) (*User, error)
	// UpdateRefreshToken overwrites the stored refresh token; pass "" to clear it.
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string) error
	List(ctx context.Context, params PaginationParams) ([]*User, int, error)
}

// RegisterResult reports the outcome of a registration attempt. Created is
// false when the email was already taken and the soft duplicate policy applies.
type RegisterResult struct {
	User    *User
	Created bool
}

// UserService defines registration, authentication, and account lookup.
type UserService interface {
	Register(ctx context.Context, email, password string) (*RegisterResult, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	// Logout revokes the access token and clears the stored refresh token when
	// refreshToken is non-empty and matches a user.
	Logout(ctx context.Context, accessToken, refreshToken string) error
	// Refresh mints a new access token for the holder of a valid, stored refresh token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, params PaginationParams) ([]*User, int, error)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"meetingplanner/internal/domain"
)

const minPasswordLen = 8

// DuplicatePolicy controls how Register reports an already-taken email.
type DuplicatePolicy string

const (
	// DuplicateConflict rejects duplicate registrations with ErrDuplicateEmail.
	DuplicateConflict DuplicatePolicy = "conflict"
	// DuplicateSoft reports duplicates as a non-created success, matching the
	// historical behavior of the API.
	DuplicateSoft DuplicatePolicy = "soft"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type userService struct {
	userRepo        domain.UserRepository
	hasher          domain.PasswordHasher
	issuer          domain.TokenIssuer
	verifier        domain.TokenVerifier
	revoker         domain.TokenRevoker
	emailService    domain.EmailService
	duplicatePolicy DuplicatePolicy
}

// NewUserService creates a UserService with the given collaborators.
func NewUserService(
	userRepo domain.UserRepository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	verifier domain.TokenVerifier,
	revoker domain.TokenRevoker,
	emailService domain.EmailService,
	duplicatePolicy DuplicatePolicy,
) domain.UserService {
	return &userService{
		userRepo:        userRepo,
		hasher:          hasher,
		issuer:          issuer,
		verifier:        verifier,
		revoker:         revoker,
		emailService:    emailService,
		duplicatePolicy: duplicatePolicy,
	}
}

func (s *userService) Register(ctx context.Context, email, password string) (*domain.RegisterResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		if s.duplicatePolicy == DuplicateSoft {
			return &domain.RegisterResult{Created: false}, nil
		}
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.NewUser(email, hash, salt, time.Now())
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			// Lost a race with a concurrent registration for the same email.
			if s.duplicatePolicy == DuplicateSoft {
				return &domain.RegisterResult{Created: false}, nil
			}
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Fire-and-forget; registration does not depend on email delivery.
	go func() {
		_ = s.emailService.SendWelcomeMessage(context.Background(), &domain.WelcomeMessageEmailData{Email: user.Email})
	}()

	return &domain.RegisterResult{User: user, Created: true}, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.issuer.IssueAccess(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refreshToken, err := s.issuer.IssueRefresh(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	// At most one live refresh token per user: each login overwrites the last.
	if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &domain.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *userService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	s.revoker.Revoke(accessToken)

	if refreshToken == "" {
		return nil
	}
	user, err := s.userRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Unknown refresh token; the access token is revoked regardless.
			return nil
		}
		return fmt.Errorf("get user by refresh token: %w", err)
	}
	if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, ""); err != nil {
		return fmt.Errorf("clear refresh token: %w", err)
	}
	return nil
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if _, err := s.verifier.VerifyRefresh(refreshToken); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	user, err := s.userRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user by refresh token: %w", err)
	}
	accessToken, err := s.issuer.IssueAccess(user.Email)
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}
	return accessToken, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.User, int, error) {
	users, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

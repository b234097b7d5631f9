package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"meetingplanner/internal/adapters/auth"
	h "meetingplanner/internal/delivery/http/helpers"
	"meetingplanner/internal/domain"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	emailKey  contextKey = "email"
)

// SetUser returns a context with the authenticated user's ID and email set.
func SetUser(ctx context.Context, userID, email string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, emailKey, email)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// EmailFromContext returns the authenticated user's email from the context, if present.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok
}

// TokenFromRequest pulls the access token from the Authorization header,
// falling back to the accessToken cookie. Returns "" when neither carries a
// token. The header scheme is exactly "Bearer" followed by a single space;
// any extra whitespace stays in the returned value and fails verification.
func TokenFromRequest(r *http.Request) string {
	const prefix = "Bearer "
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, prefix) {
		return header[len(prefix):]
	}
	if cookie, err := r.Cookie("accessToken"); err == nil {
		return cookie.Value
	}
	return ""
}

// Authenticate resolves the access token on every request. Requests without a
// token pass through unauthenticated so public routes keep working; a token
// that is present but unusable is rejected here with a typed 401 code, so
// clients can tell an expired token from a malformed or revoked one.
func Authenticate(verifier domain.TokenVerifier, users domain.UserRepository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			subject, err := verifier.VerifyAccess(token)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrTokenExpired):
					h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeExpiredToken, "access token expired")
				case errors.Is(err, auth.ErrTokenRevoked), errors.Is(err, auth.ErrTokenInvalid):
					h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeInvalidToken, "invalid access token")
				default:
					logger.ErrorContext(r.Context(), "token verification failed", "err", err)
					h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnknownError, "authentication failed")
				}
				return
			}

			user, err := users.GetByEmail(r.Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeNotFoundToken, "unknown token subject")
					return
				}
				logger.ErrorContext(r.Context(), "token subject lookup failed", "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnknownError, "authentication failed")
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUser(r.Context(), user.ID, user.Email)))
		})
	}
}

// RequireUser wraps a handler that needs an authenticated caller. It responds
// 401 when Authenticate did not place a user in the context.
func RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserIDFromContext(r.Context()); !ok {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeNotFoundToken, "missing access token")
			return
		}
		next(w, r)
	}
}

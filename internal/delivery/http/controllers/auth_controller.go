package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "meetingplanner/internal/delivery/http/helpers"
	"meetingplanner/internal/delivery/http/middleware"
	"meetingplanner/internal/domain"
)

// RegisterRequest is the request body for POST /api/auth/register
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (r RegisterRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginRequest is the request body for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LogoutRequest is the optional request body for POST /api/auth/logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshRequest is the request body for POST /api/auth/refresh
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Validate implements Validator.
func (r RefreshRequest) Validate() []string {
	if strings.TrimSpace(r.RefreshToken) == "" {
		return []string{"refresh_token is required"}
	}
	return nil
}

// RefreshResponse is the response body for POST /api/auth/refresh
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewAuthController(logger *slog.Logger, svc domain.UserService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create an account with email and password. The password is stored hashed; a welcome email is sent asynchronously.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} helpers.APIResponse "data contains the created user"
// @Success 200 {object} helpers.APIResponse "email already registered (soft policy)"
// @Failure 400 {object} helpers.APIResponse "code: BAD_REQUEST or CONFLICT"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Router /auth/register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	if !result.Created {
		h.WriteJSONSuccess(w, http.StatusOK, nil)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, result.User)
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password. Returns an access/refresh token pair; the access token is also set as the accessToken cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} helpers.APIResponse "data contains access_token and refresh_token"
// @Failure 400 {object} helpers.APIResponse "code: BAD_REQUEST"
// @Failure 401 {object} helpers.APIResponse "code: UNAUTHORIZED"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	pair, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    pair.AccessToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.WriteJSONSuccess(w, http.StatusOK, pair)
}

// Logout godoc
// @Summary Log out
// @Description Revoke the current access token and clear the stored refresh token if one is supplied. Succeeds even for an unknown refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LogoutRequest false "Refresh token to invalidate"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "code: NOT_FOUND_TOKEN"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Security BearerAuth
// @Router /auth/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	var req LogoutRequest
	if r.Body != nil && r.ContentLength > 0 {
		if !h.DecodeAndValidate(w, r, &req) {
			return
		}
	}
	accessToken := middleware.TokenFromRequest(r)
	if err := c.Service.Logout(r.Context(), accessToken, req.RefreshToken); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.WriteJSONSuccess(w, http.StatusOK, nil)
}

// Refresh godoc
// @Summary Refresh the access token
// @Description Exchange a valid, stored refresh token for a new access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RefreshRequest true "Refresh token"
// @Success 200 {object} helpers.APIResponse "data contains access_token"
// @Failure 400 {object} helpers.APIResponse "code: BAD_REQUEST"
// @Failure 401 {object} helpers.APIResponse "code: UNAUTHORIZED"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	accessToken, err := c.Service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, RefreshResponse{AccessToken: accessToken})
}

// UserListResponse is the paginated response body for GET /api/users
type UserListResponse struct {
	Users      []*domain.User   `json:"users"`
	Pagination h.PaginationMeta `json:"pagination"`
}

// ListUsers godoc
// @Summary List registered users
// @Description Paginated listing of accounts, newest first. Query params: page, size.
// @Tags users
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size (max 100)"
// @Success 200 {object} helpers.APIResponse "data contains users and pagination"
// @Failure 401 {object} helpers.APIResponse "code: NOT_FOUND_TOKEN"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Security BearerAuth
// @Router /users [get]
func (c *AuthController) ListUsers(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	users, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, UserListResponse{
		Users:      users,
		Pagination: h.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// GetUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} helpers.APIResponse "data contains the user"
// @Failure 401 {object} helpers.APIResponse "code: NOT_FOUND_TOKEN"
// @Failure 404 {object} helpers.APIResponse "code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Security BearerAuth
// @Router /users/{userID} [get]
func (c *AuthController) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := c.Service.GetByID(r.Context(), r.PathValue("userID"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, user)
}

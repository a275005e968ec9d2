package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vidstream/account-system/internal/api/metrics"
	"github.com/vidstream/account-system/internal/core/domain"
	"github.com/vidstream/account-system/internal/core/ports"
)

// ActivityRecorder is the interface the handler uses to enqueue auth activity
// records for asynchronous persistence.
type ActivityRecorder interface {
	Enqueue(activity domain.Activity)
}

type AuthHandler struct {
	authService ports.AuthService
	recorder    ActivityRecorder
}

func NewAuthHandler(authService ports.AuthService, recorder ActivityRecorder) *AuthHandler {
	return &AuthHandler{authService: authService, recorder: recorder}
}

// Signup creates a new user account and returns it with a session token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "All fields are required"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "All fields are required", Error: err.Error()})
	}

	user, token, err := h.authService.Signup(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch err {
		case domain.ErrEmailExists:
			metrics.SignupsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Message: "Email already exists"})
		case domain.ErrUsernameExists:
			metrics.SignupsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Message: "Username already exists"})
		case domain.ErrMissingFields:
			metrics.SignupsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Message: "All fields are required"})
		}
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	h.record(c, domain.ActivitySignup, user.ID, user.Email)

	return c.JSON(http.StatusCreated, authResponse{
		Success: true,
		Message: "User registered successfully",
		User:    user,
		Token:   token,
	})
}

// Login authenticates a user by email and returns a session token. An unknown
// email and a wrong password surface as distinct messages, both 401.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Email and password are required"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Email and password are required", Error: err.Error()})
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
			h.record(c, domain.ActivityLoginFailed, "", req.Email)
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: "User not found"})
		case domain.ErrInvalidCredentials:
			metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
			h.record(c, domain.ActivityLoginFailed, "", req.Email)
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: "Invalid email or password"})
		case domain.ErrMissingFields:
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Message: "Email and password are required"})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	h.record(c, domain.ActivityLogin, user.ID, user.Email)

	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		Message: "Sign in successful",
		User:    user,
		Token:   token,
	})
}

// CheckAuth resolves the bearer token's user id to the current account.
//
// @Summary      Check authentication status
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  checkAuthResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/auth/check-auth [get]
func (h *AuthHandler) CheckAuth(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.CheckAuth(c.Request().Context(), userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, errorResponse{Message: "User not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, checkAuthResponse{User: user})
}

// Signout acknowledges a signout. Tokens are stateless, so there is no
// server-side session to tear down; the client is expected to discard the
// token. Calling this twice with a still-valid token succeeds both times.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  signoutResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/signout [post]
func (h *AuthHandler) Signout(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	h.record(c, domain.ActivitySignout, userID, "")

	return c.JSON(http.StatusOK, signoutResponse{
		Success: true,
		Message: "Signed out successfully",
	})
}

// Users returns every account without credentials. Deliberately
// unauthenticated for contract parity with the legacy API, which exposed the
// listing on GET /api/auth/login without a token.
//
// @Summary      List users
// @Tags         auth
// @Produce      json
// @Success      200  {array}  domain.User
// @Failure      500  {object}  errorResponse
// @Router       /api/auth/login [get]
func (h *AuthHandler) Users(c echo.Context) error {
	users, err := h.authService.Users(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AuthHandler) record(c echo.Context, kind domain.ActivityKind, userID, email string) {
	if h.recorder == nil {
		return
	}
	h.recorder.Enqueue(domain.Activity{
		Kind:      kind,
		UserID:    userID,
		Email:     email,
		RemoteIP:  c.RealIP(),
		Timestamp: time.Now().UTC(),
	})
}

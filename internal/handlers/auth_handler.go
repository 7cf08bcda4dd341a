package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "aureus/internal/errors"
	"aureus/internal/middleware"
	"aureus/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	accounts services.AccountServicer
	sessions services.SessionServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accounts services.AccountServicer, sessions services.SessionServicer) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions}
}

// SignupRequest represents the signup request payload
type SignupRequest struct {
	Name     string `json:"name" binding:"required,not_blank,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,not_blank,max=128"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest represents the credential-change request payload
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// UserResponse represents the account data in the response
type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Signup handles account creation
// @Summary     Sign up
// @Description Create a new account and log it in
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body SignupRequest true "Account signup data"
// @Success     201 {object} AuthResponse "Account created and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Account already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidationRejected, err.Error()))
		return
	}

	email, account, err := h.accounts.Signup(req.Email, req.Name, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(email)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user": gin.H{
			"email": email,
			"name":  account.Name,
		},
	})
}

// Login handles account login
// @Summary     Log in
// @Description Authenticate an account and activate a session for it
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Login credentials"
// @Success     200 {object} AuthResponse "Account authenticated and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     404 {object} ErrorResponse "No such account"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidationRejected, err.Error()))
		return
	}

	email, account, err := h.accounts.Login(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(email)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"email": email,
			"name":  account.Name,
		},
	})
}

// Logout clears the active session
// @Summary     Log out
// @Description Clear the active session, invalidating outstanding tokens
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "Logged out"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// ChangePassword overwrites the account credential
// @Summary     Change password
// @Description Change the active account's password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ChangePasswordRequest true "Password change data"
// @Success     200 {object} map[string]string "Password updated"
// @Failure     400 {object} ErrorResponse "New passwords do not match"
// @Failure     401 {object} ErrorResponse "Current password is incorrect"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	email, err := getSessionEmail(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidationRejected, err.Error()))
		return
	}

	if err := h.accounts.ChangePassword(email, req.CurrentPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// GetProfile returns the active account's profile
// @Summary     Get profile
// @Description Get the active account's profile information
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} UserResponse "Account profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	email, err := getSessionEmail(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accounts.GetByEmail(email)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"email": email,
			"name":  account.Name,
		},
	})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"webepex/auth"
	"webepex/services"
	"webepex/store"
)

type AuthHandler struct {
	users  store.UserStore
	tokens *auth.TokenIssuer
	mailer *services.WelcomeMailer
	log    zerolog.Logger
}

func NewAuthHandler(users store.UserStore, tokens *auth.TokenIssuer, mailer *services.WelcomeMailer, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, mailer: mailer, log: log}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if msg := validateSignup(input); msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}

	// Hash before touching the store so no store lock is held while
	// bcrypt runs.
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		h.log.Error().Err(err).Msg("password hashing failed")
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.users.Create(c.Request.Context(), input.Email, strings.TrimSpace(input.FullName), hash)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			// Same message regardless of case variant.
			fail(c, http.StatusBadRequest, "User with this email already exists")
			return
		}
		h.log.Error().Err(err).Msg("user creation failed")
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.log.Error().Err(err).Msg("token issuance failed")
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	if h.mailer != nil {
		h.mailer.SendAsync(*user)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"token":   token,
		"user":    user,
	})
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var input SigninInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if msg := validateSignin(input); msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), input.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			h.failCredentials(c)
			return
		}
		h.log.Error().Err(err).Msg("user lookup failed")
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !auth.CheckPassword(input.Password, user.PasswordHash) {
		h.failCredentials(c)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.log.Error().Err(err).Msg("token issuance failed")
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// failCredentials is the single response for both unknown email and wrong
// password, so the API never reveals which one it was.
func (h *AuthHandler) failCredentials(c *gin.Context) {
	fail(c, http.StatusUnauthorized, "Invalid email or password")
}

// Logout acknowledges the request. Sessions are stateless JWTs; the client
// discards its token and nothing is invalidated server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

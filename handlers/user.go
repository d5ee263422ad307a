package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"webepex/models"
	"webepex/store"
)

type UserHandler struct {
	users store.UserStore
	log   zerolog.Logger
}

func NewUserHandler(users store.UserStore, log zerolog.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// Me returns the authenticated user's profile. The token may outlive the
// record (volatile store, process restart), so a valid identity can still
// miss the store.
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			fail(c, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error().Err(err).Msg("user lookup failed")
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

type statusInput struct {
	IsVip     *bool `json:"isVip"`
	IsPremium *bool `json:"isPremium"`
}

// UpdateStatus applies a partial update of the subscription flags. At least
// one flag must be supplied; omitted flags keep their stored values.
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	userID := c.GetString("userID")

	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "isVip or isPremium must be provided as boolean")
		return
	}

	if input.IsVip == nil && input.IsPremium == nil {
		fail(c, http.StatusBadRequest, "isVip or isPremium must be provided as boolean")
		return
	}

	user, err := h.users.UpdateStatus(c.Request.Context(), userID, models.StatusUpdate{
		IsVip:     input.IsVip,
		IsPremium: input.IsPremium,
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			fail(c, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error().Err(err).Msg("status update failed")
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User status updated successfully",
		"user":    user,
	})
}

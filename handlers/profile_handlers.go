// api/handlers/profile_handlers.go
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"showfolio/api/models"
	"showfolio/api/store"
	"showfolio/api/utils"
)

type ProfileHandlers struct {
	ProfileStore *store.ProfileStore
}

func NewProfileHandlers(profileStore *store.ProfileStore) *ProfileHandlers {
	return &ProfileHandlers{ProfileStore: profileStore}
}

// GetProfile returns the authenticated caller's profile.
func (h *ProfileHandlers) GetProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(int)

	profile, err := h.ProfileStore.GetProfileByUserID(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error getting profile for user %d: %v", userID, err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile replaces the editable profile fields.
func (h *ProfileHandlers) UpdateProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(int)

	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if !utils.IsValidUsername(req.Username) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username can only contain letters, numbers, underscores, and hyphens"})
		return
	}

	profile, err := h.ProfileStore.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		log.Printf("Error updating profile for user %d: %v", userID, err)
		if err.Error() == "username '"+req.Username+"' is already taken" {
			c.JSON(http.StatusConflict, gin.H{"error": "Username is already taken"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

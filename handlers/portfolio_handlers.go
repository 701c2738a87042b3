// api/handlers/portfolio_handlers.go
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"showfolio/api/store"
)

type PortfolioHandlers struct {
	ProfileStore *store.ProfileStore
	ProjectStore *store.ProjectStore
}

func NewPortfolioHandlers(profileStore *store.ProfileStore, projectStore *store.ProjectStore) *PortfolioHandlers {
	return &PortfolioHandlers{ProfileStore: profileStore, ProjectStore: projectStore}
}

// GetPortfolio serves the public portfolio page data: the public profile
// plus its public projects. Viewing a portfolio never depends on analytics;
// tracking happens through a separate fire-and-forget call.
func (h *PortfolioHandlers) GetPortfolio(c *gin.Context) {
	username := c.Param("username")

	profile, err := h.ProfileStore.GetPublicProfileByUsername(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio not found"})
		return
	}

	projects, err := h.ProjectStore.ListPublicProjectsByUser(c.Request.Context(), profile.UserID)
	if err != nil {
		log.Printf("Error listing public projects for user %d: %v", profile.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve portfolio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":  profile,
		"projects": projects,
	})
}

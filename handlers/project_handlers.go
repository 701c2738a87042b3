// api/handlers/project_handlers.go
package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"showfolio/api/models"
	"showfolio/api/store"
)

type ProjectHandlers struct {
	ProjectStore *store.ProjectStore
}

func NewProjectHandlers(projectStore *store.ProjectStore) *ProjectHandlers {
	return &ProjectHandlers{ProjectStore: projectStore}
}

// ListProjects returns the caller's projects, display order ascending.
func (h *ProjectHandlers) ListProjects(c *gin.Context) {
	userID := c.MustGet("user_id").(int)

	projects, err := h.ProjectStore.ListProjectsByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error listing projects for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandlers) CreateProject(c *gin.Context) {
	userID := c.MustGet("user_id").(int)

	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	project, err := h.ProjectStore.CreateProject(c.Request.Context(), userID, req)
	if err != nil {
		log.Printf("Error creating project for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateProject replaces a project's fields. Owner-scoped: a project id
// belonging to another user reads as not found.
func (h *ProjectHandlers) UpdateProject(c *gin.Context) {
	userID := c.MustGet("user_id").(int)
	projectID := c.Param("id")

	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	project, err := h.ProjectStore.UpdateProject(c.Request.Context(), userID, projectID, req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		log.Printf("Error updating project %s for user %d: %v", projectID, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandlers) DeleteProject(c *gin.Context) {
	userID := c.MustGet("user_id").(int)
	projectID := c.Param("id")

	if err := h.ProjectStore.DeleteProject(c.Request.Context(), userID, projectID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		log.Printf("Error deleting project %s for user %d: %v", projectID, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

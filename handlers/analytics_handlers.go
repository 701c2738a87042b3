// api/handlers/analytics_handlers.go
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"showfolio/api/analytics"
	"showfolio/api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventStore is the slice of the analytics store these handlers need.
type EventStore interface {
	InsertEvent(ctx context.Context, event models.AnalyticsEvent) error
	ListEventsSince(ctx context.Context, profileID string, since time.Time) ([]models.AnalyticsEvent, error)
}

// ProfileReader resolves the authenticated caller's profile.
type ProfileReader interface {
	GetProfileByUserID(ctx context.Context, userID int) (*models.Profile, error)
}

// TitleResolver joins project ids to titles for the summary response. The
// aggregator itself never touches the projects table.
type TitleResolver interface {
	GetProjectTitles(ctx context.Context, ids []string) (map[string]string, error)
}

type AnalyticsHandlers struct {
	Events   EventStore
	Profiles ProfileReader
	Projects TitleResolver
}

func NewAnalyticsHandlers(events EventStore, profiles ProfileReader, projects TitleResolver) *AnalyticsHandlers {
	return &AnalyticsHandlers{
		Events:   events,
		Profiles: profiles,
		Projects: projects,
	}
}

// cookieKV adapts gin cookie access to the analytics.KV capability so the
// visitor identification logic stays testable without HTTP.
type cookieKV struct {
	c *gin.Context
}

func (k cookieKV) Get(key string) (string, bool) {
	v, err := k.c.Cookie(key)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

func (k cookieKV) Set(key, value string) {
	k.c.SetCookie(
		key,
		value,
		int(365*24*time.Hour/time.Second),
		"/",
		"",
		false,
		true,
	)
}

// TrackEvent records a page view or project click from the public portfolio
// page. The write is fire-and-forget: a store failure is logged and never
// surfaced, so tracking can't degrade the visitor-facing experience.
func (h *AnalyticsHandlers) TrackEvent(c *gin.Context) {
	var req models.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if !models.IsValidEventType(req.EventType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown event_type. Must be 'page_view' or 'project_click'"})
		return
	}
	if req.EventType == models.EventProjectClick && req.ProjectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project_id is required for project_click events"})
		return
	}

	event := models.AnalyticsEvent{
		EventID:   uuid.New().String(),
		ProfileID: req.ProfileID,
		ProjectID: req.ProjectID,
		EventType: req.EventType,
		VisitorID: analytics.EnsureVisitorID(cookieKV{c}),
		CreatedAt: time.Now().UTC(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := h.Events.InsertEvent(ctx, event); err != nil {
			log.Printf("Error recording analytics event (EventID: %s): %v", event.EventID, err)
		}
	}()

	c.Status(http.StatusAccepted)
}

// GetSummary recomputes the trailing 30-day summary from the raw event list
// on every call; nothing derived is persisted or cached.
func (h *AnalyticsHandlers) GetSummary(c *gin.Context) {
	userID := c.MustGet("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	profile, err := h.Profiles.GetProfileByUserID(ctx, userID)
	if err != nil {
		// "No profile yet" and "no events yet" look the same to the dashboard.
		c.JSON(http.StatusOK, analytics.BuildSummary(nil))
		return
	}

	events, err := h.Events.ListEventsSince(ctx, profile.ID, analytics.WindowStart(time.Now().UTC()))
	if err != nil {
		log.Printf("Error listing analytics events for profile %s: %v", profile.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve analytics"})
		return
	}

	summary := analytics.BuildSummary(events)

	ids := make([]string, 0, len(summary.TopProjects))
	for _, tp := range summary.TopProjects {
		ids = append(ids, tp.ProjectID)
	}
	titles, err := h.Projects.GetProjectTitles(ctx, ids)
	if err != nil {
		// Titles are cosmetic; the summary is still valid without them.
		log.Printf("Error resolving project titles: %v", err)
	} else {
		for i := range summary.TopProjects {
			summary.TopProjects[i].Title = titles[summary.TopProjects[i].ProjectID]
		}
	}

	c.JSON(http.StatusOK, summary)
}

// GetEvents returns the raw in-window event list, newest first.
func (h *AnalyticsHandlers) GetEvents(c *gin.Context) {
	userID := c.MustGet("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	profile, err := h.Profiles.GetProfileByUserID(ctx, userID)
	if err != nil {
		c.JSON(http.StatusOK, []models.AnalyticsEvent{})
		return
	}

	events, err := h.Events.ListEventsSince(ctx, profile.ID, analytics.WindowStart(time.Now().UTC()))
	if err != nil {
		log.Printf("Error listing analytics events for profile %s: %v", profile.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve analytics events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

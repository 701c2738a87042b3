// api/models/analytics.go
package models

import "time"

// Analytics event types. This is a closed set: the tracking endpoint
// rejects anything else at the boundary.
const (
	EventPageView     = "page_view"
	EventProjectClick = "project_click"
)

// IsValidEventType reports whether t is a known analytics event type.
func IsValidEventType(t string) bool {
	switch t {
	case EventPageView, EventProjectClick:
		return true
	default:
		return false
	}
}

// AnalyticsEvent is a single immutable visit or click fact. ProjectID,
// VisitorID and Country are empty strings when absent.
type AnalyticsEvent struct {
	EventID   string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	ProjectID string    `json:"project_id,omitempty"`
	EventType string    `json:"event_type"`
	VisitorID string    `json:"visitor_id,omitempty"`
	Country   string    `json:"country,omitempty"` // reserved, not populated by the recorder yet
	CreatedAt time.Time `json:"created_at"`
}

// TrackRequest is the body accepted by the public tracking endpoint.
type TrackRequest struct {
	ProfileID string `json:"profile_id" binding:"required"`
	EventType string `json:"event_type" binding:"required"`
	ProjectID string `json:"project_id"`
}

// AnalyticsSummary holds the derived statistics for the trailing 30-day
// window. It is recomputed from the raw event list on every read and is
// never persisted.
type AnalyticsSummary struct {
	TotalViews     int             `json:"totalViews"`
	UniqueVisitors int             `json:"uniqueVisitors"`
	ProjectClicks  int             `json:"projectClicks"`
	ViewsByDate    []DailyViews    `json:"viewsByDate"`
	TopProjects    []ProjectClicks `json:"topProjects"`
}

// DailyViews is one calendar day's view count. Date is a UTC ISO 8601 day
// string, so lexicographic order equals chronological order.
type DailyViews struct {
	Date  string `json:"date"`
	Views int    `json:"views"`
}

// ProjectClicks ranks one project by click count. The aggregator leaves
// Title empty; callers that need it join against the projects table.
type ProjectClicks struct {
	ProjectID string `json:"id"`
	Title     string `json:"title"`
	Clicks    int    `json:"clicks"`
}

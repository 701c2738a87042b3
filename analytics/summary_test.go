package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showfolio/api/models"
)

func event(eventType, visitorID, projectID string, createdAt time.Time) models.AnalyticsEvent {
	return models.AnalyticsEvent{
		EventID:   "e-" + createdAt.Format(time.RFC3339Nano),
		ProfileID: "profile-1",
		ProjectID: projectID,
		EventType: eventType,
		VisitorID: visitorID,
		CreatedAt: createdAt,
	}
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuildSummaryEmpty(t *testing.T) {
	summary := BuildSummary(nil)

	assert.Equal(t, 0, summary.TotalViews)
	assert.Equal(t, 0, summary.UniqueVisitors)
	assert.Equal(t, 0, summary.ProjectClicks)
	assert.NotNil(t, summary.ViewsByDate)
	assert.NotNil(t, summary.TopProjects)
	assert.Empty(t, summary.ViewsByDate)
	assert.Empty(t, summary.TopProjects)
}

func TestBuildSummaryCountsOnlyPageViews(t *testing.T) {
	now := time.Now().UTC()
	events := []models.AnalyticsEvent{
		event(models.EventPageView, "v1", "", now),
		event(models.EventPageView, "v2", "", now),
		event(models.EventProjectClick, "v1", "p1", now),
		event("future_event_type", "v3", "", now),
	}

	summary := BuildSummary(events)

	assert.Equal(t, 2, summary.TotalViews)
	assert.Equal(t, 1, summary.ProjectClicks)
}

func TestBuildSummaryUniqueVisitorsDedupes(t *testing.T) {
	now := time.Now().UTC()
	var events []models.AnalyticsEvent
	// N repeat events from the same visitor count once.
	for i := 0; i < 7; i++ {
		events = append(events, event(models.EventPageView, "repeat", "", now))
	}
	// M distinct visitors, some of whom only clicked.
	events = append(events,
		event(models.EventPageView, "a", "", now),
		event(models.EventPageView, "b", "", now),
		event(models.EventProjectClick, "c", "p1", now),
	)
	// Missing visitor ids never count.
	events = append(events, event(models.EventPageView, "", "", now))

	summary := BuildSummary(events)

	assert.Equal(t, 4, summary.UniqueVisitors)
}

func TestBuildSummaryViewsByDateSparseAndSorted(t *testing.T) {
	events := []models.AnalyticsEvent{
		event(models.EventPageView, "v1", "", day("2024-03-05")),
		event(models.EventPageView, "v1", "", day("2024-03-01")),
		event(models.EventPageView, "v2", "", day("2024-03-05")),
		event(models.EventPageView, "v2", "", day("2024-03-09")),
	}

	summary := BuildSummary(events)

	require.Len(t, summary.ViewsByDate, 3)
	total := 0
	for i, dv := range summary.ViewsByDate {
		assert.Greater(t, dv.Views, 0)
		if i > 0 {
			assert.Less(t, summary.ViewsByDate[i-1].Date, dv.Date)
		}
		total += dv.Views
	}
	assert.Equal(t, summary.TotalViews, total)

	assert.Equal(t, models.DailyViews{Date: "2024-03-01", Views: 1}, summary.ViewsByDate[0])
	assert.Equal(t, models.DailyViews{Date: "2024-03-05", Views: 2}, summary.ViewsByDate[1])
	assert.Equal(t, models.DailyViews{Date: "2024-03-09", Views: 1}, summary.ViewsByDate[2])
}

func TestBuildSummaryViewDatesUseUTCDay(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	late := time.Date(2024, 3, 1, 23, 30, 0, 0, loc)

	summary := BuildSummary([]models.AnalyticsEvent{
		event(models.EventPageView, "v1", "", late),
	})

	require.Len(t, summary.ViewsByDate, 1)
	assert.Equal(t, "2024-03-02", summary.ViewsByDate[0].Date)
}

func TestBuildSummaryTopProjectsBoundedAndSorted(t *testing.T) {
	now := time.Now().UTC()
	var events []models.AnalyticsEvent
	for i := 0; i < 3; i++ {
		events = append(events, event(models.EventProjectClick, "v", "p1", now))
	}
	for i := 0; i < 2; i++ {
		events = append(events, event(models.EventProjectClick, "v", "p2", now))
	}
	// Nine more projects with one click each (eleven projects total).
	for i := 3; i <= 11; i++ {
		events = append(events, event(models.EventProjectClick, "v", fmt.Sprintf("p%d", i), now))
	}

	summary := BuildSummary(events)

	require.Len(t, summary.TopProjects, TopProjectLimit)
	assert.Equal(t, "p1", summary.TopProjects[0].ProjectID)
	assert.Equal(t, 3, summary.TopProjects[0].Clicks)
	assert.Equal(t, "p2", summary.TopProjects[1].ProjectID)
	for i := 1; i < len(summary.TopProjects); i++ {
		assert.GreaterOrEqual(t, summary.TopProjects[i-1].Clicks, summary.TopProjects[i].Clicks)
	}
	assert.Equal(t, 14, summary.ProjectClicks)
}

func TestBuildSummaryTopProjectTiesKeepInputOrder(t *testing.T) {
	now := time.Now().UTC()
	// Input arrives newest first, so among tied projects the one whose
	// click is encountered first (most recent) ranks first.
	events := []models.AnalyticsEvent{
		event(models.EventProjectClick, "v", "newer", now),
		event(models.EventProjectClick, "v", "older", now.Add(-time.Hour)),
	}

	summary := BuildSummary(events)

	require.Len(t, summary.TopProjects, 2)
	assert.Equal(t, "newer", summary.TopProjects[0].ProjectID)
	assert.Equal(t, "older", summary.TopProjects[1].ProjectID)
}

func TestBuildSummaryClickWithoutProjectExcludedFromRanking(t *testing.T) {
	now := time.Now().UTC()
	events := []models.AnalyticsEvent{
		event(models.EventProjectClick, "v1", "", now),
		event(models.EventProjectClick, "v1", "p1", now),
	}

	summary := BuildSummary(events)

	assert.Equal(t, 2, summary.ProjectClicks)
	require.Len(t, summary.TopProjects, 1)
	assert.Equal(t, "p1", summary.TopProjects[0].ProjectID)
}

func TestBuildSummaryAggregatorLeavesTitlesEmpty(t *testing.T) {
	summary := BuildSummary([]models.AnalyticsEvent{
		event(models.EventProjectClick, "v1", "p1", time.Now().UTC()),
	})

	require.Len(t, summary.TopProjects, 1)
	assert.Empty(t, summary.TopProjects[0].Title)
}

func TestBuildSummaryDeterministic(t *testing.T) {
	now := time.Now().UTC()
	events := []models.AnalyticsEvent{
		event(models.EventPageView, "v1", "", now),
		event(models.EventProjectClick, "v2", "p1", now),
		event(models.EventProjectClick, "v3", "p2", now.Add(-time.Minute)),
	}

	first := BuildSummary(events)
	second := BuildSummary(events)

	assert.Equal(t, first, second)
}

func TestBuildSummaryMixedTraffic(t *testing.T) {
	events := []models.AnalyticsEvent{
		event(models.EventPageView, "v1", "", day("2024-01-01")),
		event(models.EventPageView, "v1", "", day("2024-01-01")),
		event(models.EventPageView, "v2", "", day("2024-01-02")),
	}

	summary := BuildSummary(events)

	assert.Equal(t, 3, summary.TotalViews)
	assert.Equal(t, 2, summary.UniqueVisitors)
	assert.Equal(t, 0, summary.ProjectClicks)
	assert.Equal(t, []models.DailyViews{
		{Date: "2024-01-01", Views: 2},
		{Date: "2024-01-02", Views: 1},
	}, summary.ViewsByDate)
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), WindowStart(now))
}

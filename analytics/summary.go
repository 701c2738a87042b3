// Package analytics derives visit/click statistics from raw event lists.
package analytics

import (
	"sort"
	"time"

	"showfolio/api/models"
)

// Window is the trailing period a summary covers.
const Window = 30 * 24 * time.Hour

// TopProjectLimit caps the ranked top-projects list.
const TopProjectLimit = 5

// WindowStart returns the inclusive lower bound of the aggregation window
// relative to now.
func WindowStart(now time.Time) time.Time {
	return now.Add(-Window)
}

// BuildSummary computes an AnalyticsSummary from a flat in-window event
// list. It is a pure function of its input; storage, windowing and project
// title resolution belong to the caller. Events with an unknown type are
// skipped, and rows missing visitor_id or project_id are excluded from the
// affected metric instead of raising an error.
//
// Ties in topProjects keep input order (stable sort), so with the usual
// created_at-descending input the most recently clicked project wins a tie.
func BuildSummary(events []models.AnalyticsEvent) models.AnalyticsSummary {
	summary := models.AnalyticsSummary{
		ViewsByDate: []models.DailyViews{},
		TopProjects: []models.ProjectClicks{},
	}

	visitors := make(map[string]struct{})
	viewsByDate := make(map[string]int)
	clicksByProject := make(map[string]int)
	var projectOrder []string

	for _, e := range events {
		if e.VisitorID != "" {
			visitors[e.VisitorID] = struct{}{}
		}
		switch e.EventType {
		case models.EventPageView:
			summary.TotalViews++
			viewsByDate[e.CreatedAt.UTC().Format("2006-01-02")]++
		case models.EventProjectClick:
			summary.ProjectClicks++
			if e.ProjectID == "" {
				// Unattributable click: counted above, never ranked.
				continue
			}
			if _, seen := clicksByProject[e.ProjectID]; !seen {
				projectOrder = append(projectOrder, e.ProjectID)
			}
			clicksByProject[e.ProjectID]++
		}
	}

	summary.UniqueVisitors = len(visitors)

	days := make([]string, 0, len(viewsByDate))
	for day := range viewsByDate {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		summary.ViewsByDate = append(summary.ViewsByDate, models.DailyViews{Date: day, Views: viewsByDate[day]})
	}

	for _, id := range projectOrder {
		summary.TopProjects = append(summary.TopProjects, models.ProjectClicks{ProjectID: id, Clicks: clicksByProject[id]})
	}
	sort.SliceStable(summary.TopProjects, func(i, j int) bool {
		return summary.TopProjects[i].Clicks > summary.TopProjects[j].Clicks
	})
	if len(summary.TopProjects) > TopProjectLimit {
		summary.TopProjects = summary.TopProjects[:TopProjectLimit]
	}

	return summary
}

// api/store/analytics_store.go
package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"showfolio/api/database"
	"showfolio/api/models"
)

// AnalyticsStore persists and reads raw analytics events in ClickHouse.
// It performs no aggregation: summaries are derived in Go from the flat
// event list (see the analytics package).
type AnalyticsStore struct {
	DB *database.ClickHouseClient
}

func NewAnalyticsStore(chClient *database.ClickHouseClient) *AnalyticsStore {
	return &AnalyticsStore{
		DB: chClient,
	}
}

// InsertEvent appends a single event row. Events are immutable facts; there
// is no write-time deduplication.
func (s *AnalyticsStore) InsertEvent(ctx context.Context, event models.AnalyticsEvent) error {
	batch, err := s.DB.Conn.PrepareBatch(ctx, `
		INSERT INTO analytics (
			event_id, profile_id, project_id, event_type, visitor_id, country, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare event insert: %w", err)
	}

	if err := batch.Append(
		event.EventID,
		event.ProfileID,
		event.ProjectID,
		event.EventType,
		event.VisitorID,
		event.Country,
		event.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to append event (EventID: %s): %w", event.EventID, err)
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send event insert: %w", err)
	}

	return nil
}

// ListEventsSince returns the flat event list for a profile with
// created_at >= since, newest first. The descending order is a display
// convenience only; aggregation does not depend on it beyond the stable
// tiebreak on tied click counts.
func (s *AnalyticsStore) ListEventsSince(ctx context.Context, profileID string, since time.Time) ([]models.AnalyticsEvent, error) {
	rows, err := s.DB.Conn.Query(ctx, `
		SELECT event_id, profile_id, project_id, event_type, visitor_id, country, created_at
		FROM analytics
		WHERE profile_id = ? AND created_at >= ?
		ORDER BY created_at DESC
	`, profileID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query analytics events: %w", err)
	}
	defer rows.Close()

	events := []models.AnalyticsEvent{}
	for rows.Next() {
		var e models.AnalyticsEvent
		if err := rows.Scan(
			&e.EventID,
			&e.ProfileID,
			&e.ProjectID,
			&e.EventType,
			&e.VisitorID,
			&e.Country,
			&e.CreatedAt,
		); err != nil {
			log.Printf("Error scanning analytics event row: %v", err)
			continue
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during analytics events query: %w", err)
	}

	return events, nil
}

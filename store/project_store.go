// api/store/project_store.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"showfolio/api/models"
)

type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore instance.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

const projectColumns = `id, user_id, title, short_description, problem, solution, tools,
	role_responsibility, outcome, cover_image_url, is_public, display_order, created_at, updated_at`

func scanProject(row interface{ Scan(dest ...any) error }) (*models.Project, error) {
	p := &models.Project{}
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&p.ShortDescription,
		&p.Problem,
		&p.Solution,
		pq.Array(&p.Tools),
		&p.RoleResponsibility,
		&p.Outcome,
		&p.CoverImageURL,
		&p.IsPublic,
		&p.DisplayOrder,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Tools == nil {
		p.Tools = []string{}
	}
	return p, nil
}

func (s *ProjectStore) listProjects(ctx context.Context, query string, args ...any) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during projects query: %w", err)
	}
	return projects, nil
}

// ListProjectsByUser returns all of a user's projects, display order ascending.
func (s *ProjectStore) ListProjectsByUser(ctx context.Context, userID int) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 ORDER BY display_order ASC, created_at ASC;`
	return s.listProjects(ctx, query, userID)
}

// ListPublicProjectsByUser returns only the public projects, for the
// portfolio page.
func (s *ProjectStore) ListPublicProjectsByUser(ctx context.Context, userID int) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 AND is_public = TRUE ORDER BY display_order ASC, created_at ASC;`
	return s.listProjects(ctx, query, userID)
}

// GetProjectTitles resolves project ids to titles. Ids that don't resolve
// (deleted projects still present in old events) are simply absent from the
// result map.
func (s *ProjectStore) GetProjectTitles(ctx context.Context, ids []string) (map[string]string, error) {
	titles := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return titles, nil
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, title FROM projects WHERE id = ANY($1);`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to query project titles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, title string
		if err := rows.Scan(&id, &title); err != nil {
			return nil, fmt.Errorf("failed to scan project title row: %w", err)
		}
		titles[id] = title
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during project titles query: %w", err)
	}
	return titles, nil
}

// CreateProject inserts a new project for a user. is_public defaults to
// true when omitted.
func (s *ProjectStore) CreateProject(ctx context.Context, userID int, req models.ProjectRequest) (*models.Project, error) {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	tools := req.Tools
	if tools == nil {
		tools = []string{}
	}

	query := `
		INSERT INTO projects (id, user_id, title, short_description, problem, solution, tools,
			role_responsibility, outcome, cover_image_url, is_public, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + projectColumns + `;
	`
	project, err := scanProject(s.db.QueryRowContext(ctx, query,
		uuid.NewString(),
		userID,
		req.Title,
		req.ShortDescription,
		req.Problem,
		req.Solution,
		pq.Array(tools),
		req.RoleResponsibility,
		req.Outcome,
		req.CoverImageURL,
		isPublic,
		req.DisplayOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	log.Printf("Project created in DB: ID=%s, UserID=%d, Title=%s", project.ID, userID, project.Title)
	return project, nil
}

// UpdateProject replaces a project's fields, scoped to its owner.
func (s *ProjectStore) UpdateProject(ctx context.Context, userID int, projectID string, req models.ProjectRequest) (*models.Project, error) {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	tools := req.Tools
	if tools == nil {
		tools = []string{}
	}

	query := `
		UPDATE projects
		SET title = $3, short_description = $4, problem = $5, solution = $6, tools = $7,
			role_responsibility = $8, outcome = $9, cover_image_url = $10, is_public = $11,
			display_order = $12, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + projectColumns + `;
	`
	project, err := scanProject(s.db.QueryRowContext(ctx, query,
		projectID,
		userID,
		req.Title,
		req.ShortDescription,
		req.Problem,
		req.Solution,
		pq.Array(tools),
		req.RoleResponsibility,
		req.Outcome,
		req.CoverImageURL,
		isPublic,
		req.DisplayOrder,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project '%s' not found", projectID)
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// DeleteProject removes a project, scoped to its owner.
func (s *ProjectStore) DeleteProject(ctx context.Context, userID int, projectID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2;`, projectID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("project '%s' not found", projectID)
	}
	return nil
}

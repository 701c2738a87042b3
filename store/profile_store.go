// api/store/profile_store.go
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

type ProfileStore struct {
	db *sql.DB
}

// NewProfileStore creates a new ProfileStore instance.
func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

const profileColumns = `id, user_id, username, full_name, headline, bio, profession, location, skills,
	github_url, linkedin_url, twitter_url, website_url, avatar_url, theme, is_public,
	meta_title, meta_description, created_at, updated_at`

func scanProfile(row interface{ Scan(dest ...any) error }) (*models.Profile, error) {
	p := &models.Profile{}
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Username,
		&p.FullName,
		&p.Headline,
		&p.Bio,
		&p.Profession,
		&p.Location,
		pq.Array(&p.Skills),
		&p.GithubURL,
		&p.LinkedinURL,
		&p.TwitterURL,
		&p.WebsiteURL,
		&p.AvatarURL,
		&p.Theme,
		&p.IsPublic,
		&p.MetaTitle,
		&p.MetaDescription,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p, nil
}

// CreateProfile provisions the empty profile that backs a new account.
func (s *ProfileStore) CreateProfile(ctx context.Context, userID int, username string) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (id, user_id, username)
		VALUES ($1, $2, $3)
		RETURNING ` + profileColumns + `;
	`
	profile, err := scanProfile(s.db.QueryRowContext(ctx, query, uuid.NewString(), userID, username))
	if err != nil {
		if err.Error() == `pq: duplicate key value violates unique constraint "profiles_username_key"` {
			return nil, fmt.Errorf("username '%s' is already taken", username)
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	log.Printf("Profile created in DB: ID=%s, Username=%s", profile.ID, profile.Username)
	return profile, nil
}

// GetProfileByUserID returns the profile owned by a user.
func (s *ProfileStore) GetProfileByUserID(ctx context.Context, userID int) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1;`
	profile, err := scanProfile(s.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile for user %d not found", userID)
		}
		return nil, fmt.Errorf("failed to get profile by user id: %w", err)
	}
	return profile, nil
}

// GetPublicProfileByUsername returns a profile only if it is public.
func (s *ProfileStore) GetPublicProfileByUsername(ctx context.Context, username string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE username = $1 AND is_public = TRUE;`
	profile, err := scanProfile(s.db.QueryRowContext(ctx, query, username))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("public profile '%s' not found", username)
		}
		return nil, fmt.Errorf("failed to get public profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile replaces the editable profile fields for a user.
func (s *ProfileStore) UpdateProfile(ctx context.Context, userID int, req models.ProfileUpdateRequest) (*models.Profile, error) {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	query := `
		UPDATE profiles
		SET username = $2, full_name = $3, headline = $4, bio = $5, profession = $6,
			location = $7, skills = $8, github_url = $9, linkedin_url = $10,
			twitter_url = $11, website_url = $12, avatar_url = $13, theme = $14,
			is_public = $15, meta_title = $16, meta_description = $17, updated_at = now()
		WHERE user_id = $1
		RETURNING ` + profileColumns + `;
	`
	profile, err := scanProfile(s.db.QueryRowContext(ctx, query,
		userID,
		req.Username,
		req.FullName,
		req.Headline,
		req.Bio,
		req.Profession,
		req.Location,
		pq.Array(skills),
		req.GithubURL,
		req.LinkedinURL,
		req.TwitterURL,
		req.WebsiteURL,
		req.AvatarURL,
		req.Theme,
		isPublic,
		req.MetaTitle,
		req.MetaDescription,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile for user %d not found", userID)
		}
		if err.Error() == `pq: duplicate key value violates unique constraint "profiles_username_key"` {
			return nil, fmt.Errorf("username '%s' is already taken", req.Username)
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}

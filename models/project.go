// api/models/project.go
package models

import "time"

// Project is one portfolio entry. Public projects appear on the owner's
// portfolio page ordered by DisplayOrder ascending.
type Project struct {
	ID                 string    `json:"id"`
	UserID             int       `json:"user_id"`
	Title              string    `json:"title"`
	ShortDescription   string    `json:"short_description,omitempty"`
	Problem            string    `json:"problem,omitempty"`
	Solution           string    `json:"solution,omitempty"`
	Tools              []string  `json:"tools"`
	RoleResponsibility string    `json:"role_responsibility,omitempty"`
	Outcome            string    `json:"outcome,omitempty"`
	CoverImageURL      string    `json:"cover_image_url,omitempty"`
	IsPublic           bool      `json:"is_public"`
	DisplayOrder       int       `json:"display_order"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ProjectRequest is the create/update body. IsPublic is a pointer so an
// omitted value can default to true on create.
type ProjectRequest struct {
	Title              string   `json:"title" binding:"required,max=150"`
	ShortDescription   string   `json:"short_description" binding:"max=300"`
	Problem            string   `json:"problem" binding:"max=2000"`
	Solution           string   `json:"solution" binding:"max=2000"`
	Tools              []string `json:"tools" binding:"max=20,dive,max=50"`
	RoleResponsibility string   `json:"role_responsibility" binding:"max=1000"`
	Outcome            string   `json:"outcome" binding:"max=2000"`
	CoverImageURL      string   `json:"cover_image_url" binding:"omitempty,url,max=500"`
	IsPublic           *bool    `json:"is_public"`
	DisplayOrder       int      `json:"display_order"`
}

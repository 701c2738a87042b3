// api/models/profile.go
package models

import "time"

// Profile is the public-facing identity a user maintains for their
// portfolio page. One profile per user, created at signup.
type Profile struct {
	ID              string    `json:"id"`
	UserID          int       `json:"user_id"`
	Username        string    `json:"username"`
	FullName        string    `json:"full_name,omitempty"`
	Headline        string    `json:"headline,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	Profession      string    `json:"profession,omitempty"`
	Location        string    `json:"location,omitempty"`
	Skills          []string  `json:"skills"`
	GithubURL       string    `json:"github_url,omitempty"`
	LinkedinURL     string    `json:"linkedin_url,omitempty"`
	TwitterURL      string    `json:"twitter_url,omitempty"`
	WebsiteURL      string    `json:"website_url,omitempty"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	Theme           string    `json:"theme"`
	IsPublic        bool      `json:"is_public"`
	MetaTitle       string    `json:"meta_title,omitempty"`
	MetaDescription string    `json:"meta_description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProfileUpdateRequest carries the editable profile fields. Username format
// is checked separately (see utils.IsValidUsername) since the binding tags
// cannot express the character-set rule.
type ProfileUpdateRequest struct {
	Username        string   `json:"username" binding:"required,min=3,max=30"`
	FullName        string   `json:"full_name" binding:"max=100"`
	Headline        string   `json:"headline" binding:"max=150"`
	Bio             string   `json:"bio" binding:"max=2000"`
	Profession      string   `json:"profession" binding:"max=100"`
	Location        string   `json:"location" binding:"max=100"`
	Skills          []string `json:"skills" binding:"max=30,dive,max=50"`
	GithubURL       string   `json:"github_url" binding:"omitempty,url,max=500"`
	LinkedinURL     string   `json:"linkedin_url" binding:"omitempty,url,max=500"`
	TwitterURL      string   `json:"twitter_url" binding:"omitempty,url,max=500"`
	WebsiteURL      string   `json:"website_url" binding:"omitempty,url,max=500"`
	AvatarURL       string   `json:"avatar_url" binding:"omitempty,url,max=500"`
	Theme           string   `json:"theme" binding:"max=20"`
	IsPublic        *bool    `json:"is_public"`
	MetaTitle       string   `json:"meta_title" binding:"max=70"`
	MetaDescription string   `json:"meta_description" binding:"max=160"`
}

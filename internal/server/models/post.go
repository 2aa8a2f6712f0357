package models

import "time"

type Post struct {
	ID        string    `db:"id" json:"id"`
	AuthorID  string    `db:"author_id" json:"author_id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	CoverKey  *string   `db:"cover_key" json:"cover_key,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type PostPatch struct {
	Title   *string
	Content *string
}

// PresignedURL is a short-lived object storage link for a post cover.
type PresignedURL struct {
	URL       string    `json:"url"`
	Method    string    `json:"method"`
	ExpiresAt time.Time `json:"expiresAt"`
}

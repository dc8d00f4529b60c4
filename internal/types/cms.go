package types

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus tracks how far along a contact-form lead is.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusClosed    LeadStatus = "closed"
)

// Lead is one contact-form submission.
type Lead struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`
	Message    string     `json:"message"`
	SourcePage string     `json:"source_page"`
	Status     LeadStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CreateLeadParams is the public contact-form payload.
type CreateLeadParams struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Message    string `json:"message"`
	SourcePage string `json:"source_page"`
}

// Review is a customer review shown on the public site when published.
type Review struct {
	ID         uuid.UUID `json:"id"`
	Author     string    `json:"author"`
	City       string    `json:"city"`
	Rating     int       `json:"rating"`
	Body       string    `json:"body"`
	Published  bool      `json:"published"`
	ReviewedAt time.Time `json:"reviewed_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// UpsertReviewParams carries admin create/update fields for a review.
type UpsertReviewParams struct {
	Author     string    `json:"author"`
	City       string    `json:"city"`
	Rating     int       `json:"rating"`
	Body       string    `json:"body"`
	Published  bool      `json:"published"`
	ReviewedAt time.Time `json:"reviewed_at"`
}

// BlogPost is one blog entry. Meta fields are nullable; the audit falls back
// to the post title when they are absent.
type BlogPost struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         *string    `json:"excerpt,omitempty"`
	Body            string     `json:"body"`
	MetaTitle       *string    `json:"meta_title,omitempty"`
	MetaDescription *string    `json:"meta_description,omitempty"`
	Published       bool       `json:"published"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// UpsertBlogPostParams carries admin create/update fields for a post.
type UpsertBlogPostParams struct {
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	Excerpt         *string `json:"excerpt"`
	Body            string  `json:"body"`
	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
	Published       bool    `json:"published"`
}

// GalleryImage is stored image metadata. The binary lives in object storage;
// StoragePath points at it.
type GalleryImage struct {
	ID          uuid.UUID `json:"id"`
	StoragePath string    `json:"storage_path"`
	AltText     *string   `json:"alt_text,omitempty"`
	Category    string    `json:"category"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// UpsertGalleryImageParams carries admin create/update fields for an image.
type UpsertGalleryImageParams struct {
	StoragePath string  `json:"storage_path"`
	AltText     *string `json:"alt_text"`
	Category    string  `json:"category"`
	SortOrder   int     `json:"sort_order"`
}

// Redirect maps an old path to its replacement.
type Redirect struct {
	ID         uuid.UUID `json:"id"`
	FromPath   string    `json:"from_path"`
	ToPath     string    `json:"to_path"`
	StatusCode int       `json:"status_code"`
	CreatedAt  time.Time `json:"created_at"`
}

// UpsertRedirectParams carries admin create/update fields for a redirect.
type UpsertRedirectParams struct {
	FromPath   string `json:"from_path"`
	ToPath     string `json:"to_path"`
	StatusCode int    `json:"status_code"`
}

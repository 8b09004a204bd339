package models

import (
	"time"
)

// ContactSubmission is one row from the site contact form. Rows are
// write-only: the application inserts and never reads, updates or deletes.
// Identical resubmissions create distinct rows; no deduplication is done.
type ContactSubmission struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Entry is an accepted draft promoted to a stored entity. Field values are
// copied verbatim from the draft; nothing is escaped or rewritten.
type Entry struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"fullName"`
	Country     string    `json:"country"`
	YearOfBirth string    `json:"yob"`
	Position    string    `json:"position"`
	URL         string    `json:"url"`
	Risk        string    `json:"risk"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewEntry builds an entry from a draft that has already been evaluated as
// valid. Callers must not pass rejected drafts.
func NewEntry(id uuid.UUID, d Draft, now time.Time) *Entry {
	return &Entry{
		ID:          id,
		FullName:    d.String(FieldFullName),
		Country:     d.String(FieldCountry),
		YearOfBirth: d.String(FieldYOB),
		Position:    d.String(FieldPosition),
		URL:         d.String(FieldURL),
		Risk:        d.String(FieldRisk),
		CreatedAt:   now,
	}
}

package models

import "time"

// SearchEntry is one recorded lookup. Entries are append-only: nothing
// updates or deletes them after creation.
type SearchEntry struct {
	ID         int       `json:"id"`
	Word       string    `json:"word"`
	Definition string    `json:"definition"`
	UserID     int       `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}

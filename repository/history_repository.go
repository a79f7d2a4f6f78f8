package repository

import (
	"database/sql"

	"github.com/vanshikachilkoti/Wordlookup-Dictionary/models"
)

type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Record appends one lookup with the current server timestamp.
// Identical repeated lookups are stored as separate rows.
func (r *HistoryRepository) Record(userID int, word, definition string) (*models.SearchEntry, error) {
	var entry models.SearchEntry
	err := r.db.QueryRow(`
		INSERT INTO search_history (word, definition, user_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, word, definition, user_id, created_at`,
		word, definition, userID).Scan(
		&entry.ID, &entry.Word, &entry.Definition, &entry.UserID, &entry.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ForUser returns the user's lookups, most recent first.
func (r *HistoryRepository) ForUser(userID int) ([]*models.SearchEntry, error) {
	rows, err := r.db.Query(`
		SELECT id, word, definition, user_id, created_at
		FROM search_history
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.SearchEntry
	for rows.Next() {
		var entry models.SearchEntry
		if err := rows.Scan(&entry.ID, &entry.Word, &entry.Definition, &entry.UserID, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}

package handlers

import (
	"context"

	"github.com/vanshikachilkoti/Wordlookup-Dictionary/models"
)

// Handlers depend on these narrow interfaces rather than the concrete
// repositories so each operation can be exercised in isolation.

type UserStore interface {
	Create(username, password string) (*models.User, error)
	Verify(username, password string) (*models.User, error)
	GetByID(id int) (*models.User, error)
}

type SessionStore interface {
	Create(userID int) (string, error)
	UserIDForToken(token string) (int, error)
	Delete(token string) error
}

type HistoryStore interface {
	Record(userID int, word, definition string) (*models.SearchEntry, error)
	ForUser(userID int) ([]*models.SearchEntry, error)
}

// DefinitionFetcher returns displayable text for a word; lookup
// failures surface as text, never as errors.
type DefinitionFetcher interface {
	Fetch(ctx context.Context, word string) string
}

// Suggester ranks word-list candidates against a query. Degrades to an
// empty result when unconfigured or on remote failure.
type Suggester interface {
	Suggest(ctx context.Context, query string, limit int) []string
}

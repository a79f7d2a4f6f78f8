package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNoSession is returned when a token is unknown or expired.
var ErrNoSession = errors.New("no active session")

// sessionTTL bounds how long a login stays valid without a logout.
const sessionTTL = 24 * time.Hour

type SessionsRepository struct {
	db *sql.DB
}

func NewSessionsRepository(db *sql.DB) *SessionsRepository {
	return &SessionsRepository{db: db}
}

// Create opens a session for the user and returns its opaque token.
func (r *SessionsRepository) Create(userID int) (string, error) {
	token := uuid.NewString()
	_, err := r.db.Exec(`
		INSERT INTO sessions (token, user_id, created_at, expires_at)
		VALUES ($1, $2, NOW(), $3)`,
		token, userID, time.Now().Add(sessionTTL))
	if err != nil {
		return "", err
	}
	return token, nil
}

// UserIDForToken resolves a token to its user. Expired rows are treated
// as absent; they are physically removed by DeleteExpired.
func (r *SessionsRepository) UserIDForToken(token string) (int, error) {
	var userID int
	err := r.db.QueryRow(`
		SELECT user_id FROM sessions
		WHERE token = $1 AND expires_at > NOW()`, token).Scan(&userID)
	if err == sql.ErrNoRows {
		return 0, ErrNoSession
	}
	if err != nil {
		return 0, err
	}
	return userID, nil
}

func (r *SessionsRepository) Delete(token string) error {
	_, err := r.db.Exec(`DELETE FROM sessions WHERE token = $1`, token)
	return err
}

func (r *SessionsRepository) DeleteExpired() error {
	_, err := r.db.Exec(`DELETE FROM sessions WHERE expires_at <= NOW()`)
	return err
}

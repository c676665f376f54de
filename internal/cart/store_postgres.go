package cart

import (
	"database/sql"
	"time"
)

// PostgresStore persists carts in a `carts` table with one JSONB row per
// session. Legacy-shaped rows written by earlier versions are upgraded by
// Decode on every load; the next save rewrites them in the current shape.
type PostgresStore struct {
	db *sql.DB
}

const (
	loadCartQuery = `SELECT lines FROM carts WHERE session_id = $1`
	saveCartQuery = `
		INSERT INTO carts (session_id, lines, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id) DO UPDATE SET lines = $2, updated_at = $3
	`
	deleteCartQuery = `DELETE FROM carts WHERE session_id = $1`
)

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Load(sessionID string) (Cart, error) {
	var raw []byte
	if err := s.db.QueryRow(loadCartQuery, sessionID).Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return Cart{}, nil
		}
		return Cart{}, err
	}
	return Decode(raw)
}

func (s *PostgresStore) Save(sessionID string, c Cart) error {
	raw, err := Encode(c)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(saveCartQuery, sessionID, raw, time.Now().UTC().Format(time.RFC3339))
	return err
}

func (s *PostgresStore) Delete(sessionID string) error {
	_, err := s.db.Exec(deleteCartQuery, sessionID)
	return err
}

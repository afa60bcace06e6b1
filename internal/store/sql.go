package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// stateRow is the id of the single row holding the document.
const stateRow = 1

// SQLStore keeps the JSON document in the app_state table. The queries use
// $n placeholders, which both lib/pq and go-sqlite3 accept.
type SQLStore struct {
	DB *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{DB: db}
}

func (s *SQLStore) Load(ctx context.Context) (*Document, error) {
	var raw string
	err := s.DB.QueryRowContext(ctx, `
		SELECT document
		FROM app_state
		WHERE id = $1
	`, stateRow).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load app_state: %w", err)
	}
	return decode([]byte(raw))
}

func (s *SQLStore) Save(ctx context.Context, doc *Document) error {
	raw, err := encode(doc)
	if err != nil {
		return err
	}
	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO app_state (id, document, version, updated_at)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (id) DO UPDATE SET
			document = EXCLUDED.document,
			version = app_state.version + 1,
			updated_at = EXCLUDED.updated_at
	`, stateRow, string(raw), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save app_state: %w", err)
	}
	return nil
}

// Version returns how many times the document has been saved.
func (s *SQLStore) Version(ctx context.Context) (int64, error) {
	var v int64
	err := s.DB.QueryRowContext(ctx, `SELECT version FROM app_state WHERE id = $1`, stateRow).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return v, err
}

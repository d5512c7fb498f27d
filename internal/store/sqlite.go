package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore keeps every collection of one project in a single table.
type SQLiteStore struct {
	db      *sql.DB
	project string
	now     func() time.Time
}

func OpenSQLite(dsn, project string) (*SQLiteStore, error) {
	if dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db, project: project, now: time.Now}, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context, collection string) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, ord, data FROM documents WHERE project = ? AND collection = ? ORDER BY ord ASC, id ASC`,
		s.project, collection)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var doc Document
		var data string
		if err := rows.Scan(&doc.ID, &doc.Order, &data); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		doc.Data = []byte(data)
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *SQLiteStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	doc := Document{ID: id}
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT ord, data FROM documents WHERE project = ? AND collection = ? AND id = ?`,
		s.project, collection, id).Scan(&doc.Order, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	doc.Data = []byte(data)
	return &doc, nil
}

func (s *SQLiteStore) Add(ctx context.Context, collection string, data []byte) (string, error) {
	m, err := decodeObject(data)
	if err != nil {
		return "", err
	}
	body, ord, err := prepare(m)
	if err != nil {
		return "", err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (project, collection, id, ord, data, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		s.project, collection, id.String(), ord, string(body), s.timestamp())
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return id.String(), nil
}

// Update merges the given top-level fields into an existing document.
func (s *SQLiteStore) Update(ctx context.Context, collection, id string, fields []byte) error {
	patch, err := decodeObject(fields)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var current string
	err = tx.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE project = ? AND collection = ? AND id = ?`,
		s.project, collection, id).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("read %s/%s: %w", collection, id, err)
	}

	merged, err := decodeObject([]byte(current))
	if err != nil {
		return err
	}
	for k, v := range patch {
		merged[k] = v
	}
	body, ord, err := prepare(merged)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE documents SET ord = ?, data = ?, updated_at = ? WHERE project = ? AND collection = ? AND id = ?`,
		ord, string(body), s.timestamp(), s.project, collection, id)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return tx.Commit()
}

// Set creates or replaces the document with the given id.
func (s *SQLiteStore) Set(ctx context.Context, collection, id string, data []byte) error {
	m, err := decodeObject(data)
	if err != nil {
		return err
	}
	body, ord, err := prepare(m)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (project, collection, id, ord, data, updated_at) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (project, collection, id) DO UPDATE SET ord = excluded.ord, data = excluded.data, updated_at = excluded.updated_at`,
		s.project, collection, id, ord, string(body), s.timestamp())
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

// Delete removes a document. Deleting a missing document is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE project = ? AND collection = ? AND id = ?`,
		s.project, collection, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

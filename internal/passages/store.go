// Package passages keeps text passages and their embeddings in SQLite and
// answers nearest-passage queries over them.
package passages

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultName is the database file name under the gridpad home.
const DefaultName = "passages.db"

const schema = `
CREATE TABLE IF NOT EXISTS passages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS embeddings (
	passage_id INTEGER NOT NULL,
	model TEXT NOT NULL,
	vector BLOB NOT NULL,
	PRIMARY KEY (passage_id, model),
	FOREIGN KEY (passage_id) REFERENCES passages(id) ON DELETE CASCADE
);`

// Passage is one stored text.
type Passage struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// Entry pairs a passage with one of its embeddings. Model is empty and Vector
// nil for a passage with no embedding yet.
type Entry struct {
	Passage
	Model  string
	Vector []float64
}

// Store is a passage database.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Insert stores text and returns its id.
func (s *Store) Insert(ctx context.Context, text string) (int64, error) {
	res, err := s.db.ExecContext(ctx, "INSERT INTO passages (text) VALUES (?)", text)
	if err != nil {
		return 0, fmt.Errorf("insert passage: %w", err)
	}
	return res.LastInsertId()
}

// List returns every passage in id order.
func (s *Store) List(ctx context.Context) ([]Passage, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, text FROM passages ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list passages: %w", err)
	}
	defer rows.Close()

	var out []Passage
	for rows.Next() {
		var p Passage
		if err := rows.Scan(&p.ID, &p.Text); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SaveEmbedding stores vec for a passage and model, replacing any earlier one.
func (s *Store) SaveEmbedding(ctx context.Context, id int64, model string, vec []float64) error {
	blob, err := encodeVector(vec)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO embeddings (passage_id, model, vector) VALUES (?, ?, ?)",
		id, model, blob)
	if err != nil {
		return fmt.Errorf("save embedding for passage %d: %w", id, err)
	}
	return nil
}

// Embedding loads the vector for a passage and model. ok is false when none
// is stored.
func (s *Store) Embedding(ctx context.Context, id int64, model string) (vec []float64, ok bool, err error) {
	var blob []byte
	err = s.db.QueryRowContext(ctx,
		"SELECT vector FROM embeddings WHERE passage_id = ? AND model = ?", id, model).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load embedding for passage %d: %w", id, err)
	}
	vec, err = decodeVector(blob)
	if err != nil {
		return nil, false, fmt.Errorf("passage %d: %w", id, err)
	}
	return vec, true, nil
}

// Entries lists passages joined with their embeddings, one row per model.
func (s *Store) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.text, e.model, e.vector
		FROM passages p
		LEFT JOIN embeddings e ON p.id = e.passage_id
		ORDER BY p.id, e.model`)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e     Entry
			model sql.NullString
			blob  []byte
		)
		if err := rows.Scan(&e.ID, &e.Text, &model, &blob); err != nil {
			return nil, err
		}
		e.Model = model.String
		if blob != nil {
			if e.Vector, err = decodeVector(blob); err != nil {
				return nil, fmt.Errorf("passage %d: %w", e.ID, err)
			}
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Vectors are stored as little-endian float64s.
func encodeVector(vec []float64) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, vec); err != nil {
		return nil, fmt.Errorf("encode vector: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeVector(blob []byte) ([]float64, error) {
	if len(blob)%8 != 0 {
		return nil, fmt.Errorf("corrupt vector: %d bytes", len(blob))
	}
	vec := make([]float64, len(blob)/8)
	if err := binary.Read(bytes.NewReader(blob), binary.LittleEndian, vec); err != nil {
		return nil, fmt.Errorf("decode vector: %w", err)
	}
	return vec, nil
}

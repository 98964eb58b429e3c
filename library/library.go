// Package library keeps saved builds in a local SQLite database. Each row carries a little metadata for
// listing and the build itself as brotli compressed version 1 JSON.
package library

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Wayner84/minecraft-schematic-studio/buildfile"
	"github.com/Wayner84/minecraft-schematic-studio/layers"
	"github.com/andybalholm/brotli"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

var ErrNotFound = errors.New("build not found")

type Entry struct {
	ID        uuid.UUID
	Name      string
	SizeX     int
	SizeZ     int
	Blocks    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Library struct {
	db *sql.DB
	// Now stamps created/updated times; time.Now when nil.
	Now func() time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS builds (
	id         TEXT    PRIMARY KEY,
	name       TEXT    NOT NULL,
	size_x     INTEGER NOT NULL,
	size_z     INTEGER NOT NULL,
	blocks     INTEGER NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL,
	data       BLOB    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_builds_updated_at ON builds (updated_at);
`

// Open opens (creating if needed) the library database at path.
func Open(path string) (*Library, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("library: cannot create %v (%w)", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("library: open %v: %w", path, err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("library: open %v: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("library: create schema: %w", err)
	}
	return &Library{db: db}, nil
}

func (l *Library) Close() error {
	return l.db.Close()
}

func (l *Library) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

func encode(state *layers.State, name string, now time.Time) ([]byte, error) {
	buf := &bytes.Buffer{}
	bw := brotli.NewWriter(buf)
	if err := buildfile.Write(bw, buildfile.ExportV1(state, name, buildfile.DefaultHeightMax, now)); err != nil {
		bw.Close()
		return nil, err
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte) (*layers.State, error) {
	f, err := buildfile.Read(brotli.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, err
	}
	return buildfile.Import(f)
}

// Save stores state as a new build and returns its id.
func (l *Library) Save(ctx context.Context, name string, state *layers.State) (uuid.UUID, error) {
	id, err := uuid.NewUUID()
	if err != nil {
		return uuid.Nil, err
	}
	now := l.now()
	data, err := encode(state, name, now)
	if err != nil {
		return uuid.Nil, fmt.Errorf("library: encode %q: %w", name, err)
	}
	_, err = l.db.ExecContext(ctx,
		`INSERT INTO builds (id, name, size_x, size_z, blocks, created_at, updated_at, data) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(), name, state.SizeX, state.SizeZ, state.Count(), now.UnixNano(), now.UnixNano(), data)
	if err != nil {
		return uuid.Nil, fmt.Errorf("library: save %q: %w", name, err)
	}
	return id, nil
}

// Update replaces the content and name of an existing build.
func (l *Library) Update(ctx context.Context, id uuid.UUID, name string, state *layers.State) error {
	now := l.now()
	data, err := encode(state, name, now)
	if err != nil {
		return fmt.Errorf("library: encode %q: %w", name, err)
	}
	result, err := l.db.ExecContext(ctx,
		`UPDATE builds SET name = ?, size_x = ?, size_z = ?, blocks = ?, updated_at = ?, data = ? WHERE id = ?`,
		name, state.SizeX, state.SizeZ, state.Count(), now.UnixNano(), data, id.String())
	if err != nil {
		return fmt.Errorf("library: update %v: %w", id, err)
	}
	return affected(result, id)
}

// Load returns the metadata and content of a build.
func (l *Library) Load(ctx context.Context, id uuid.UUID) (*Entry, *layers.State, error) {
	var (
		entry   = &Entry{ID: id}
		created int64
		updated int64
		data    []byte
	)
	err := l.db.QueryRowContext(ctx,
		`SELECT name, size_x, size_z, blocks, created_at, updated_at, data FROM builds WHERE id = ?`, id.String()).
		Scan(&entry.Name, &entry.SizeX, &entry.SizeZ, &entry.Blocks, &created, &updated, &data)
	if err == sql.ErrNoRows {
		return nil, nil, fmt.Errorf("library: %v: %w", id, ErrNotFound)
	} else if err != nil {
		return nil, nil, fmt.Errorf("library: load %v: %w", id, err)
	}
	entry.CreatedAt = time.Unix(0, created)
	entry.UpdatedAt = time.Unix(0, updated)
	state, err := decode(data)
	if err != nil {
		return nil, nil, fmt.Errorf("library: decode %v: %w", id, err)
	}
	return entry, state, nil
}

// List returns every build, most recently updated first.
func (l *Library) List(ctx context.Context) ([]Entry, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, name, size_x, size_z, blocks, created_at, updated_at FROM builds ORDER BY updated_at DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("library: list: %w", err)
	}
	defer rows.Close()
	entries := make([]Entry, 0)
	for rows.Next() {
		var (
			e                Entry
			id               string
			created, updated int64
		)
		if err := rows.Scan(&id, &e.Name, &e.SizeX, &e.SizeZ, &e.Blocks, &created, &updated); err != nil {
			return nil, fmt.Errorf("library: list: %w", err)
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("library: list: bad id %q: %w", id, err)
		}
		e.CreatedAt = time.Unix(0, created)
		e.UpdatedAt = time.Unix(0, updated)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (l *Library) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := l.db.ExecContext(ctx, `DELETE FROM builds WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("library: delete %v: %w", id, err)
	}
	return affected(result, id)
}

func affected(result sql.Result, id uuid.UUID) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("library: %v: %w", id, ErrNotFound)
	}
	return nil
}

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SeamusWaldron/reorient"
	"github.com/SeamusWaldron/reorient/internal/prune"
)

// TableInfo describes a cached pruning table.
type TableInfo struct {
	Depth      int
	StateCount int
	BuiltAt    time.Time
}

// TableRepository caches pruning tables so later runs can skip the build.
type TableRepository struct {
	db *DB
}

// NewTableRepository creates a new table repository.
func NewTableRepository(db *DB) *TableRepository {
	return &TableRepository{db: db}
}

// Save stores t, replacing any table of the same depth.
func (r *TableRepository) Save(t *prune.Table) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM pruning_tables WHERE depth = ?", t.Depth()); err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}

		_, err := tx.Exec(`
			INSERT INTO pruning_tables (depth, state_count, built_at)
			VALUES (?, ?, ?)
		`, t.Depth(), t.Len(), time.Now().UTC().Format(timeLayout))
		if err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}

		stmt, err := tx.Prepare(`INSERT INTO pruning_entries (depth, state, distance) VALUES (?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare entry insert: %w", err)
		}
		defer stmt.Close()

		for _, e := range t.Entries() {
			if _, err := stmt.Exec(t.Depth(), e.State.Bytes(), e.Distance); err != nil {
				return fmt.Errorf("failed to insert entry: %w", err)
			}
		}
		return nil
	})
}

// Info returns metadata for the cached table of the given depth.
func (r *TableRepository) Info(depth int) (*TableInfo, error) {
	var info TableInfo
	var builtAt string
	err := r.db.QueryRow(`
		SELECT depth, state_count, built_at FROM pruning_tables WHERE depth = ?
	`, depth).Scan(&info.Depth, &info.StateCount, &builtAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: pruning table of depth %d", ErrNotFound, depth)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get table info: %w", err)
	}

	info.BuiltAt, err = time.Parse(timeLayout, builtAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built_at: %w", err)
	}
	return &info, nil
}

// Load rebuilds the cached table of the given depth.
func (r *TableRepository) Load(depth int) (*prune.Table, error) {
	info, err := r.Info(depth)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(`SELECT state, distance FROM pruning_entries WHERE depth = ?`, depth)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	defer rows.Close()

	entries := make([]prune.Entry, 0, info.StateCount)
	for rows.Next() {
		var state []byte
		var e prune.Entry
		if err := rows.Scan(&state, &e.Distance); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		if e.State, err = reorient.CubeFromBytes(state); err != nil {
			return nil, fmt.Errorf("failed to decode entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	if len(entries) != info.StateCount {
		return nil, fmt.Errorf("pruning table of depth %d is incomplete: %d of %d states", depth, len(entries), info.StateCount)
	}

	return prune.FromEntries(depth, entries)
}

// Delete removes the cached table of the given depth.
func (r *TableRepository) Delete(depth int) error {
	if _, err := r.db.Exec("DELETE FROM pruning_tables WHERE depth = ?", depth); err != nil {
		return fmt.Errorf("failed to delete table: %w", err)
	}
	return nil
}

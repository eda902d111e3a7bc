package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/reorient"
)

// timeLayout is fixed-width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Search is a recorded solver run.
type Search struct {
	SearchID      string
	CreatedAt     time.Time
	Algorithm     string
	Reorients     int
	STM           int
	SolutionCount int
	MinCost       int
	Notation      string
	MaxDepth      int
	TableDepth    int
}

// SearchSolution is one stored solution of a search.
type SearchSolution struct {
	Index   int
	Cost    int
	Display string
}

// SearchRepository provides CRUD operations for searches.
type SearchRepository struct {
	db *DB
}

// NewSearchRepository creates a new search repository.
func NewSearchRepository(db *DB) *SearchRepository {
	return &SearchRepository{db: db}
}

// Create records result with every solution and returns the new search ID.
func (r *SearchRepository) Create(result reorient.Result, notation reorient.Notation, maxDepth, tableDepth int) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO searches (search_id, created_at, algorithm, reorients, stm, solution_count,
				min_cost, notation, max_depth, table_depth)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, createdAt.Format(timeLayout), reorient.FormatMoves(result.Algorithm), result.Reorients,
			result.STM(), len(result.Solutions), result.MinCost(), notation.String(), maxDepth, tableDepth)
		if err != nil {
			return fmt.Errorf("failed to create search: %w", err)
		}

		stmt, err := tx.Prepare(`INSERT INTO search_solutions (search_id, idx, cost, display) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare solution insert: %w", err)
		}
		defer stmt.Close()

		for i, s := range result.Solutions {
			if _, err := stmt.Exec(id, i, s.Cost, s.Display); err != nil {
				return fmt.Errorf("failed to insert solution %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// Get retrieves a search by ID. A unique ID prefix is also accepted.
func (r *SearchRepository) Get(searchID string) (*Search, error) {
	rows, err := r.db.Query(`
		SELECT search_id, created_at, algorithm, reorients, stm, solution_count,
			min_cost, notation, max_depth, table_depth
		FROM searches
		WHERE search_id = ? OR search_id LIKE ? || '%'
		ORDER BY search_id = ? DESC
		LIMIT 2
	`, searchID, searchID, searchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get search: %w", err)
	}
	defer rows.Close()

	searches, err := scanSearches(rows)
	if err != nil {
		return nil, err
	}

	switch {
	case len(searches) == 0:
		return nil, fmt.Errorf("%w: search %s", ErrNotFound, searchID)
	case searches[0].SearchID == searchID, len(searches) == 1:
		return &searches[0], nil
	default:
		return nil, fmt.Errorf("search prefix %s is ambiguous", searchID)
	}
}

// List returns the most recent searches, newest first.
func (r *SearchRepository) List(limit int) ([]Search, error) {
	rows, err := r.db.Query(`
		SELECT search_id, created_at, algorithm, reorients, stm, solution_count,
			min_cost, notation, max_depth, table_depth
		FROM searches
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list searches: %w", err)
	}
	defer rows.Close()

	return scanSearches(rows)
}

// Solutions retrieves the stored solutions of a search in search order.
func (r *SearchRepository) Solutions(searchID string) ([]SearchSolution, error) {
	rows, err := r.db.Query(`
		SELECT idx, cost, display
		FROM search_solutions
		WHERE search_id = ?
		ORDER BY idx
	`, searchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get solutions: %w", err)
	}
	defer rows.Close()

	var solutions []SearchSolution
	for rows.Next() {
		var s SearchSolution
		if err := rows.Scan(&s.Index, &s.Cost, &s.Display); err != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", err)
		}
		solutions = append(solutions, s)
	}

	return solutions, rows.Err()
}

// Count returns the number of recorded searches.
func (r *SearchRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM searches").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count searches: %w", err)
	}
	return count, nil
}

// Delete removes a search and its solutions.
func (r *SearchRepository) Delete(searchID string) error {
	result, err := r.db.Exec("DELETE FROM searches WHERE search_id = ?", searchID)
	if err != nil {
		return fmt.Errorf("failed to delete search: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete search: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: search %s", ErrNotFound, searchID)
	}
	return nil
}

func scanSearches(rows *sql.Rows) ([]Search, error) {
	var searches []Search
	for rows.Next() {
		var s Search
		var createdAt string
		err := rows.Scan(&s.SearchID, &createdAt, &s.Algorithm, &s.Reorients, &s.STM, &s.SolutionCount,
			&s.MinCost, &s.Notation, &s.MaxDepth, &s.TableDepth)
		if err != nil {
			return nil, fmt.Errorf("failed to scan search: %w", err)
		}
		s.CreatedAt, err = time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		searches = append(searches, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read searches: %w", err)
	}
	return searches, nil
}

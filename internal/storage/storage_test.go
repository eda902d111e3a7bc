package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/reorient"
	"github.com/SeamusWaldron/reorient/internal/prune"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenAndMigrate(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func solveRU(t *testing.T) reorient.Result {
	t.Helper()
	table, err := prune.Build(2)
	require.NoError(t, err)

	alg, err := reorient.ParseMoves("R U")
	require.NoError(t, err)

	result, err := reorient.NewSolver(table).Solve(context.Background(), alg)
	require.NoError(t, err)
	return result
}

func TestMigrations(t *testing.T) {
	db := openTestDB(t)

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)

	// Applying again is a no-op.
	require.NoError(t, db.MigrateUp())
	version, err = db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)
}

func TestSearchRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewSearchRepository(db)
	result := solveRU(t)

	id, err := repo.Create(result, reorient.NotationXYZ, 3, 2)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	s, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "R U", s.Algorithm)
	assert.Equal(t, 1, s.Reorients)
	assert.Equal(t, 3, s.STM)
	assert.Equal(t, 4, s.SolutionCount)
	assert.Equal(t, 1, s.MinCost)
	assert.Equal(t, "xyz", s.Notation)
	assert.Equal(t, 3, s.MaxDepth)
	assert.Equal(t, 2, s.TableDepth)
	assert.False(t, s.CreatedAt.IsZero())

	byPrefix, err := repo.Get(id[:8])
	require.NoError(t, err)
	assert.Equal(t, id, byPrefix.SearchID)

	solutions, err := repo.Solutions(id)
	require.NoError(t, err)
	require.Len(t, solutions, 4)
	assert.Equal(t, SearchSolution{Index: 0, Cost: 1, Display: "R Oz' U"}, solutions[0])
	assert.Equal(t, 3, solutions[1].Cost)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSearchRepositoryList(t *testing.T) {
	db := openTestDB(t)
	repo := NewSearchRepository(db)
	result := solveRU(t)

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := repo.Create(result, reorient.NotationSticker, 3, 2)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	searches, err := repo.List(2)
	require.NoError(t, err)
	require.Len(t, searches, 2)
	assert.Equal(t, ids[2], searches[0].SearchID)
	assert.Equal(t, ids[1], searches[1].SearchID)
}

func TestSearchRepositoryNotFound(t *testing.T) {
	repo := NewSearchRepository(openTestDB(t))

	_, err := repo.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete("missing"), ErrNotFound)
}

func TestSearchRepositoryDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	repo := NewSearchRepository(db)

	id, err := repo.Create(solveRU(t), reorient.NotationXYZ, 3, 2)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(id))

	solutions, err := repo.Solutions(id)
	require.NoError(t, err)
	assert.Empty(t, solutions)
}

func TestTableRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewTableRepository(db)

	_, err := repo.Load(2)
	assert.ErrorIs(t, err, ErrNotFound)

	table, err := prune.Build(2)
	require.NoError(t, err)
	require.NoError(t, repo.Save(table))

	info, err := repo.Info(2)
	require.NoError(t, err)
	assert.Equal(t, table.Len(), info.StateCount)

	loaded, err := repo.Load(2)
	require.NoError(t, err)
	assert.Equal(t, table.Len(), loaded.Len())
	assert.Equal(t, table.Histogram(), loaded.Histogram())

	c := reorient.NewCube().ApplyMoves(reorient.SexyMove[:2])
	assert.Equal(t, table.LowerBound(c), loaded.LowerBound(c))

	// Saving again replaces the cached copy.
	require.NoError(t, repo.Save(table))
	loaded, err = repo.Load(2)
	require.NoError(t, err)
	assert.Equal(t, table.Len(), loaded.Len())

	require.NoError(t, repo.Delete(2))
	_, err = repo.Info(2)
	assert.ErrorIs(t, err, ErrNotFound)
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/reorient"
	"github.com/SeamusWaldron/reorient/internal/config"
	"github.com/SeamusWaldron/reorient/internal/prune"
	"github.com/SeamusWaldron/reorient/internal/storage"
)

// app carries everything a command needs, built once from the loaded
// settings.
type app struct {
	settings *config.Settings
	logger   zerolog.Logger
}

type appKey struct{}

func withApp(ctx context.Context, a *app) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, appKey{}, a)
}

func appFrom(ctx context.Context) *app {
	a, _ := ctx.Value(appKey{}).(*app)
	return a
}

func newApp(s *config.Settings) (*app, error) {
	level, err := s.Level()
	if err != nil {
		return nil, err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	return &app{settings: s, logger: logger}, nil
}

// openDB opens the configured database. Failures are logged and yield nil
// so commands can run without persistence.
func (a *app) openDB() *storage.DB {
	db, err := storage.OpenAndMigrate(a.settings.DB)
	if err != nil {
		a.logger.Warn().Err(err).Str("path", a.settings.DB).Msg("database-unavailable")
		return nil
	}
	return db
}

// loadTable returns the pruning table of the configured depth, from the
// cache when possible. rebuild skips the cache.
func (a *app) loadTable(db *storage.DB, rebuild bool) (*prune.Table, error) {
	depth := a.settings.Depth

	var tables *storage.TableRepository
	if db != nil {
		tables = storage.NewTableRepository(db)
		if !rebuild {
			table, err := tables.Load(depth)
			if err == nil {
				a.logger.Debug().Int("depth", depth).Int("states", table.Len()).Msg("table-loaded")
				return table, nil
			}
			if !errors.Is(err, storage.ErrNotFound) {
				a.logger.Warn().Err(err).Msg("table-cache-unreadable")
			}
		}
	}

	table, err := prune.Build(depth, prune.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}

	if tables != nil {
		if err := tables.Save(table); err != nil {
			a.logger.Warn().Err(err).Msg("table-cache-write-failed")
		}
	}
	return table, nil
}

func (a *app) newSolver(table *prune.Table, opts ...reorient.Option) (*reorient.Solver, error) {
	base, err := a.settings.SolverOptions(a.logger)
	if err != nil {
		return nil, err
	}
	return reorient.NewSolver(table, append(base, opts...)...), nil
}

// record stores result unless history is disabled.
func (a *app) record(db *storage.DB, result reorient.Result) {
	if db == nil || a.settings.NoHistory || !result.Found() {
		return
	}
	id, err := storage.NewSearchRepository(db).Create(result, a.settings.Notation(), a.settings.MaxDepth, a.settings.Depth)
	if err != nil {
		a.logger.Warn().Err(err).Msg("record-failed")
		return
	}
	a.logger.Debug().Str("search_id", id).Msg("search-recorded")
}

// session is a ready-to-use solver with its optional database.
type session struct {
	*app
	db     *storage.DB
	table  *prune.Table
	solver *reorient.Solver
}

func (a *app) openSession(opts ...reorient.Option) (*session, error) {
	db := a.openDB()
	table, err := a.loadTable(db, false)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, fmt.Errorf("failed to prepare pruning table: %w", err)
	}

	solver, err := a.newSolver(table, opts...)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, err
	}

	return &session{app: a, db: db, table: table, solver: solver}, nil
}

func (s *session) solve(ctx context.Context, alg []reorient.Move) (reorient.Result, error) {
	result, err := s.solver.Solve(ctx, alg)
	if err != nil {
		return result, err
	}
	s.record(s.db, result)
	return result, nil
}

func (s *session) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

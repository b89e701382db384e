// internal/store/sqlite.go
//
// SQLite-backed Store so in-flight web games survive a restart.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, immediate tx).
//   - Applying embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Saving sessions as their game.Record and rebuilding them with game.Restore.
//
// Finished sessions are kept only until the janitor prunes them; this is not
// a game history.

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

//go:embed sql/*.sql
var migrations embed.FS

// OpenSQLite opens (and creates if missing) a SQLite database file and
// applies migrations.
//
// - Ensures parent directory exists for relative DSNs (e.g. ./data/wordle.db).
// - Configures busy timeout and WAL journaling mode.
// - Begins transactions IMMEDIATE so concurrent Updates serialise.
func OpenSQLite(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate")
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// migrate applies the embedded SQL migrations in lexical order.
// A _migrations table records applied files; each runs in its own transaction.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(migrations, "sql", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// sqliteStore persists sessions in the sessions table.
type sqliteStore struct {
	db   *sql.DB
	dict game.Dictionary // needed to rebuild sessions that can keep playing
}

// NewSQLiteStore wraps an opened database. dict is handed to restored sessions.
func NewSQLiteStore(db *sql.DB, dict game.Dictionary) Store {
	return &sqliteStore{db: db, dict: dict}
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *sqliteStore) Save(ctx context.Context, sess *game.Session) error {
	return upsert(ctx, s.db, sess.Record())
}

func (s *sqliteStore) Get(ctx context.Context, id string) (*game.Session, error) {
	return s.load(ctx, s.db, id)
}

func (s *sqliteStore) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	sess, err := s.load(ctx, tx, id)
	if err != nil {
		return err
	}
	if err := fn(sess); err != nil {
		return err
	}
	if err := upsert(ctx, tx, sess.Record()); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *sqliteStore) Prune(ctx context.Context, before time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE updated_at < ?`, before.UnixMilli())
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (s *sqliteStore) load(ctx context.Context, q queryer, id string) (*game.Session, error) {
	var (
		rec              game.Record
		mode, status, gs string
		started, updated int64
	)
	err := q.QueryRowContext(ctx, `
        SELECT id, mode, secret, guesses, status, started_at, updated_at
        FROM sessions WHERE id=?`, id,
	).Scan(&rec.ID, &mode, &rec.Secret, &gs, &status, &started, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	rec.Mode = game.Mode(mode)
	rec.Status = game.Status(status)
	rec.Guesses = strings.Fields(gs)
	rec.StartedAt = time.UnixMilli(started)
	rec.UpdatedAt = time.UnixMilli(updated)
	return game.Restore(rec, s.dict)
}

func upsert(ctx context.Context, e execer, rec game.Record) error {
	_, err := e.ExecContext(ctx, `
        INSERT INTO sessions (id, mode, secret, guesses, status, started_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            guesses=excluded.guesses,
            status=excluded.status,
            updated_at=excluded.updated_at`,
		rec.ID, string(rec.Mode), rec.Secret, strings.Join(rec.Guesses, " "),
		string(rec.Status), rec.StartedAt.UnixMilli(), rec.UpdatedAt.UnixMilli(),
	)
	return err
}

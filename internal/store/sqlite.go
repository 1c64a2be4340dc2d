// internal/store/sqlite.go
//
// SQLite history backend.
// Responsibilities:
//   - Opening the database with WAL and a busy timeout.
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Loading and replacing the per-day history rows.

package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/runwords/internal/history"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLite stores one JSON record per day in the history table.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if missing) the database at dsn and migrates it.
func OpenSQLite(ctx context.Context, dsn string) (*SQLite, error) {
	db, err := openDB(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn != ":memory:" {
		dir := filepath.Dir(dsn)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	// A single connection keeps :memory: databases coherent and serializes writers.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, name).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", name).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", name, err)
		}
		log.Info().Str("migration", strings.TrimPrefix(name, "migrations/")).Msg("applied")
	}
	return nil
}

// Load reads every row. Rows that fail to decode or validate are skipped.
func (s *SQLite) Load(ctx context.Context) (history.Records, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT day, record FROM history ORDER BY day`)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	out := history.Records{}
	for rows.Next() {
		var (
			day int
			raw string
		)
		if err := rows.Scan(&day, &raw); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		r, err := history.DecodeRecord([]byte(raw))
		if err != nil {
			log.Warn().Err(err).Int("day", day).Msg("dropping unusable history row")
			continue
		}
		out[day] = r
	}
	return out, rows.Err()
}

// Save replaces the table contents with rs in one transaction.
func (s *SQLite) Save(ctx context.Context, rs history.Records) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO history(day, record) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, day := range rs.Days() {
		raw, err := json.Marshal(rs[day])
		if err != nil {
			return fmt.Errorf("encode day %d: %w", day, err)
		}
		if _, err := stmt.ExecContext(ctx, day, string(raw)); err != nil {
			return fmt.Errorf("insert day %d: %w", day, err)
		}
	}
	return tx.Commit()
}

// Close closes the database.
func (s *SQLite) Close() error { return s.db.Close() }

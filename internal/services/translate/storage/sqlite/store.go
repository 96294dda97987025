package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	sqlitemigrate "github.com/louisbranch/translating.space/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	"github.com/louisbranch/translating.space/internal/services/translate/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

var errNotConfigured = errors.New("storage is not configured")

// Store provides SQLite-backed persistence for the translation catalog.
type Store struct {
	sqlDB *sql.DB
	sq    sq.StatementBuilderType
}

var _ storage.Store = (*Store)(nil)

// Open opens and migrates a catalog SQLite store.
func Open(path string) (*Store, error) {
	return OpenContext(context.Background(), path)
}

// OpenContext opens and migrates a catalog SQLite store.
func OpenContext(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, sq: sq.StatementBuilder}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready() error {
	if s == nil || s.sqlDB == nil {
		return errNotConfigured
	}
	return nil
}

func (s *Store) queryRow(ctx context.Context, query sq.Sqlizer) (*sql.Row, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return s.sqlDB.QueryRowContext(ctx, sqlStr, args...), nil
}

func (s *Store) query(ctx context.Context, query sq.Sqlizer) (*sql.Rows, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return s.sqlDB.QueryContext(ctx, sqlStr, args...)
}

func (s *Store) exec(ctx context.Context, query sq.Sqlizer) (sql.Result, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return s.sqlDB.ExecContext(ctx, sqlStr, args...)
}

// execOne runs a single-row update and reports ErrNotFound when nothing
// matched.
func (s *Store) execOne(ctx context.Context, query sq.Sqlizer) error {
	result, err := s.exec(ctx, query)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	return err
}

// uniqueViolation maps unique and primary key violations to
// storage.ErrAlreadyExists.
func uniqueViolation(err error) error {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return fmt.Errorf("%w: %v", storage.ErrAlreadyExists, err)
		}
	}
	return err
}

func boolToInt(value bool) int64 {
	if value {
		return 1
	}
	return 0
}

func nullableID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id > 0}
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

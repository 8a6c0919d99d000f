package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sqlite "modernc.org/sqlite"

	"github.com/udining/pos-api/internal/domain"
)

// Códigos extendidos de SQLite para violaciones de unicidad.
const (
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

var _ Store = (*sqliteStore)(nil)

// sqliteStore adaptador del contrato Store sobre SQLite embebido (modernc, sin cgo).
// Un solo writer: SQLite serializa las escrituras de todos modos y limitar las
// conexiones evita SQLITE_BUSY bajo concurrencia.
type sqliteStore struct {
	db *sql.DB
}

// NewSQLite abre (o crea) la base local en path y activa las foreign keys.
func NewSQLite(ctx context.Context, path string) (Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Exec(ctx context.Context, query string, args ...any) error {
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return translateSQLiteErr(err)
	}
	return nil
}

func (s *sqliteStore) QueryRow(ctx context.Context, query string, args ...any) Row {
	return sqlRow{row: s.db.QueryRowContext(ctx, query, args...)}
}

func (s *sqliteStore) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateSQLiteErr(err)
	}
	return sqlRows{rows: rows}, nil
}

func (s *sqliteStore) Begin(ctx context.Context) (Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &sqliteTx{tx: tx}, nil
}

func (s *sqliteStore) ExecScript(ctx context.Context, script string) error {
	if _, err := s.db.ExecContext(ctx, script); err != nil {
		return fmt.Errorf("exec script: %w", err)
	}
	return nil
}

func (s *sqliteStore) Close() {
	_ = s.db.Close()
}

// sqliteTx adaptador de Tx sobre database/sql.
type sqliteTx struct {
	tx *sql.Tx
}

func (t *sqliteTx) Exec(ctx context.Context, query string, args ...any) error {
	if _, err := t.tx.ExecContext(ctx, query, args...); err != nil {
		return translateSQLiteErr(err)
	}
	return nil
}

func (t *sqliteTx) QueryRow(ctx context.Context, query string, args ...any) Row {
	return sqlRow{row: t.tx.QueryRowContext(ctx, query, args...)}
}

func (t *sqliteTx) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateSQLiteErr(err)
	}
	return sqlRows{rows: rows}, nil
}

func (t *sqliteTx) Commit(ctx context.Context) error   { return t.tx.Commit() }
func (t *sqliteTx) Rollback(ctx context.Context) error { return t.tx.Rollback() }

// sqlRow traduce sql.ErrNoRows al sentinel del paquete.
type sqlRow struct {
	row *sql.Row
}

func (r sqlRow) Scan(dest ...any) error {
	if err := r.row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoRows
		}
		return err
	}
	return nil
}

type sqlRows struct {
	rows *sql.Rows
}

func (r sqlRows) Next() bool             { return r.rows.Next() }
func (r sqlRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r sqlRows) Close()                 { _ = r.rows.Close() }
func (r sqlRows) Err() error             { return r.rows.Err() }

// translateSQLiteErr mapea las violaciones de unicidad (UNIQUE / PRIMARY KEY)
// a domain.ErrDuplicate, igual que el adaptador PostgreSQL con 23505.
func translateSQLiteErr(err error) error {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		if serr.Code() == sqliteConstraintUnique || serr.Code() == sqliteConstraintPrimaryKey {
			return fmt.Errorf("%w: %s", domain.ErrDuplicate, err)
		}
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, err)
	}
	return err
}

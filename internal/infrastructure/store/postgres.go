package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/udining/pos-api/internal/domain"
	"github.com/udining/pos-api/pkg/config"
)

var _ Store = (*postgresStore)(nil)

// postgresStore adaptador del contrato Store sobre pgxpool.
type postgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres crea el adaptador PostgreSQL con el pool configurado como en producción.
func NewPostgres(ctx context.Context, cfg config.DBConfig) (Store, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Codec NUMERIC/DECIMAL -> shopspring/decimal en todas las conexiones del pool.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return &postgresStore{pool: pool}, nil
}

func (s *postgresStore) Exec(ctx context.Context, sql string, args ...any) error {
	if _, err := s.pool.Exec(ctx, sql, args...); err != nil {
		return translatePgErr(err)
	}
	return nil
}

func (s *postgresStore) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return pgxRow{row: s.pool.QueryRow(ctx, sql, args...)}
}

func (s *postgresStore) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, translatePgErr(err)
	}
	return pgxRows{rows: rows}, nil
}

func (s *postgresStore) Begin(ctx context.Context) (Tx, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &postgresTx{tx: tx}, nil
}

func (s *postgresStore) ExecScript(ctx context.Context, sql string) error {
	if _, err := s.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("exec script: %w", err)
	}
	return nil
}

func (s *postgresStore) Close() {
	s.pool.Close()
}

// postgresTx adaptador de Tx sobre pgx.Tx.
type postgresTx struct {
	tx pgx.Tx
}

func (t *postgresTx) Exec(ctx context.Context, sql string, args ...any) error {
	if _, err := t.tx.Exec(ctx, sql, args...); err != nil {
		return translatePgErr(err)
	}
	return nil
}

func (t *postgresTx) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return pgxRow{row: t.tx.QueryRow(ctx, sql, args...)}
}

func (t *postgresTx) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rows, err := t.tx.Query(ctx, sql, args...)
	if err != nil {
		return nil, translatePgErr(err)
	}
	return pgxRows{rows: rows}, nil
}

func (t *postgresTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *postgresTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

// pgxRow traduce pgx.ErrNoRows al sentinel del paquete.
type pgxRow struct {
	row pgx.Row
}

func (r pgxRow) Scan(dest ...any) error {
	if err := r.row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNoRows
		}
		return err
	}
	return nil
}

type pgxRows struct {
	rows pgx.Rows
}

func (r pgxRows) Next() bool             { return r.rows.Next() }
func (r pgxRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r pgxRows) Close()                 { r.rows.Close() }
func (r pgxRows) Err() error             { return r.rows.Err() }

// translatePgErr mapea la violación de constraint único (23505) a
// domain.ErrDuplicate para que los llamadores respondan 4xx y no 500.
func translatePgErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, pgErr.ConstraintName)
	}
	if strings.Contains(err.Error(), "23505") {
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, err)
	}
	return err
}

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/mattn/go-sqlite3"
)

type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

func NewPostgresPool(ctx context.Context, dbURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("invalid DB URL: %w", err)
	}

	cfg.MaxConns = 10
	cfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	return pool, nil
}

func NewSQLite(path string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	return sqlDB, nil
}

// Conn is a backing-store handle produced by the factory, just enough
// surface to health-check and release it.
type Conn interface {
	Ping(ctx context.Context) error
	Close()
	Driver() Driver
}

// Factory builds a store handle from an enumerated driver tag.
type Factory struct {
	dbURL      string
	sqlitePath string
}

func NewFactory(dbURL, sqlitePath string) *Factory {
	return &Factory{dbURL: dbURL, sqlitePath: sqlitePath}
}

func (f *Factory) Drivers() []Driver {
	return []Driver{DriverPostgres, DriverSQLite}
}

func (f *Factory) Open(ctx context.Context, d Driver) (Conn, error) {
	switch d {
	case DriverPostgres:
		pool, err := NewPostgresPool(ctx, f.dbURL)
		if err != nil {
			return nil, err
		}
		return &pgxConn{pool: pool}, nil
	case DriverSQLite:
		sqlDB, err := NewSQLite(f.sqlitePath)
		if err != nil {
			return nil, err
		}
		return &sqliteConn{db: sqlDB}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", d)
	}
}

type pgxConn struct {
	pool *pgxpool.Pool
}

func (c *pgxConn) Ping(ctx context.Context) error { return c.pool.Ping(ctx) }
func (c *pgxConn) Close()                         { c.pool.Close() }
func (c *pgxConn) Driver() Driver                 { return DriverPostgres }

type sqliteConn struct {
	db *sql.DB
}

func (c *sqliteConn) Ping(ctx context.Context) error { return c.db.PingContext(ctx) }
func (c *sqliteConn) Close()                         { _ = c.db.Close() }
func (c *sqliteConn) Driver() Driver                 { return DriverSQLite }

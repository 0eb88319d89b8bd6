package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ KV = (*Postgres)(nil)

// Postgres implementación de KV sobre una tabla clave-valor en PostgreSQL
// (STORE_BACKEND=postgres), para instalaciones que ya tienen una base de
// datos y quieren respaldos centralizados.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres crea el pool de conexiones, verifica la conexión y asegura la
// tabla kv_inventario.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	const ddl = `
		CREATE TABLE IF NOT EXISTS kv_inventario (
			clave      TEXT PRIMARY KEY,
			valor      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		pool.Close()
		return nil, fmt.Errorf("crear tabla kv_inventario: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := p.pool.QueryRow(ctx,
		`SELECT valor FROM kv_inventario WHERE clave = $1`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return v, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO kv_inventario (clave, valor, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (clave)
		DO UPDATE SET valor = EXCLUDED.valor, updated_at = now()`, key, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, keys ...string) error {
	_, err := p.pool.Exec(ctx,
		`DELETE FROM kv_inventario WHERE clave = ANY($1)`, keys)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

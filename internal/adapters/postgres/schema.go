package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// images и features хранятся JSON-текстом, geohash считается при записи
const schemaDDL = `
CREATE TABLE IF NOT EXISTS properties (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	location    TEXT NOT NULL,
	address     TEXT NOT NULL DEFAULT '',
	price       TEXT NOT NULL DEFAULT '',
	price_value BIGINT NOT NULL DEFAULT 0,
	type        TEXT NOT NULL,
	beds        INTEGER NOT NULL DEFAULT 0,
	baths       DOUBLE PRECISION NOT NULL DEFAULT 0,
	sqft        INTEGER NOT NULL DEFAULT 0,
	year_built  INTEGER NOT NULL DEFAULT 0,
	description TEXT NOT NULL DEFAULT '',
	images      TEXT NOT NULL DEFAULT '[]',
	features    TEXT NOT NULL DEFAULT '[]',
	latitude    DOUBLE PRECISION,
	longitude   DOUBLE PRECISION,
	geohash     TEXT NOT NULL DEFAULT '',
	published   BOOLEAN NOT NULL DEFAULT TRUE,
	featured    BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_properties_geohash ON properties (geohash text_pattern_ops);
CREATE INDEX IF NOT EXISTS idx_properties_published_featured ON properties (published, featured);

CREATE TABLE IF NOT EXISTS inquiries (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	email          TEXT NOT NULL,
	phone          TEXT NOT NULL DEFAULT '',
	message        TEXT NOT NULL,
	property_id    TEXT NOT NULL DEFAULT '',
	property_title TEXT NOT NULL DEFAULT '',
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// EnsureSchema создает таблицы, если их еще нет
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const propertyColumns = `id, title, location, address, price, price_value, type, beds, baths, sqft,
	year_built, description, images, features, latitude, longitude, geohash, published, featured,
	created_at, updated_at`

const propertySelect = "SELECT " + propertyColumns + " FROM properties"

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) (*PropertyRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyRepository{pool: pool}, nil
}

func (r *PropertyRepository) List(ctx context.Context, q domain.PropertyQuery) ([]domain.Property, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PropertyRepository",
		"method":    "List",
	})

	query, args := applyPropertyQuery(q)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	props := make([]domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		props = append(props, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate properties: %w", err)
	}

	repoLogger.Debug("Properties loaded", port.Fields{"count": len(props)})
	return props, nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	row := r.pool.QueryRow(ctx, propertySelect+" WHERE id = $1", id)
	p, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PropertyRepository) Create(ctx context.Context, p domain.Property) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "Create",
		"property_id": p.ID,
	})

	images, features, err := encodeLists(p)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO properties (`+propertyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		p.ID, p.Title, p.Location, p.Address, p.Price, p.PriceValue, p.Type, p.Beds, p.Baths, p.Sqft,
		p.YearBuilt, p.Description, images, features, p.Latitude, p.Longitude, computeGeohash(p),
		p.Published, p.Featured, p.CreatedAt, p.UpdatedAt,
	)
	if isUniqueViolation(err) {
		repoLogger.Warn("Property id already taken", nil)
		return domain.ErrPropertyExists
	}
	if err != nil {
		repoLogger.Error("Failed to insert property", err, nil)
		return fmt.Errorf("failed to insert property: %w", err)
	}
	return nil
}

// isUniqueViolation: нарушение уникального ключа (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *PropertyRepository) Update(ctx context.Context, p domain.Property) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "Update",
		"property_id": p.ID,
	})

	images, features, err := encodeLists(p)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE properties SET
			title = $2, location = $3, address = $4, price = $5, price_value = $6, type = $7,
			beds = $8, baths = $9, sqft = $10, year_built = $11, description = $12,
			images = $13, features = $14, latitude = $15, longitude = $16, geohash = $17,
			published = $18, featured = $19, updated_at = $20
		WHERE id = $1`,
		p.ID, p.Title, p.Location, p.Address, p.Price, p.PriceValue, p.Type,
		p.Beds, p.Baths, p.Sqft, p.YearBuilt, p.Description,
		images, features, p.Latitude, p.Longitude, computeGeohash(p),
		p.Published, p.Featured, p.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to update property", err, nil)
		return fmt.Errorf("failed to update property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM properties WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM properties").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	return n, nil
}

func encodeLists(p domain.Property) (string, string, error) {
	images, err := encodeStringList(p.Images)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode images: %w", err)
	}
	features, err := encodeStringList(p.Features)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode features: %w", err)
	}
	return images, features, nil
}

func encodeStringList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeStringList: битый JSON: внутренняя ошибка для этой записи
func decodeStringList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	items := []string{}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var (
		p                      domain.Property
		imagesRaw, featuresRaw string
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Location, &p.Address, &p.Price, &p.PriceValue, &p.Type, &p.Beds, &p.Baths, &p.Sqft,
		&p.YearBuilt, &p.Description, &imagesRaw, &featuresRaw, &p.Latitude, &p.Longitude, &p.Geohash,
		&p.Published, &p.Featured, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan property: %w", err)
	}

	if p.Images, err = decodeStringList(imagesRaw); err != nil {
		return nil, fmt.Errorf("property %s: malformed images column: %w", p.ID, err)
	}
	if p.Features, err = decodeStringList(featuresRaw); err != nil {
		return nil, fmt.Errorf("property %s: malformed features column: %w", p.ID, err)
	}
	return &p, nil
}

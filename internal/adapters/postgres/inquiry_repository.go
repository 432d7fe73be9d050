package postgres

import (
	"context"
	"fmt"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InquiryRepository struct {
	pool *pgxpool.Pool
}

func NewInquiryRepository(pool *pgxpool.Pool) (*InquiryRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &InquiryRepository{pool: pool}, nil
}

func (r *InquiryRepository) Save(ctx context.Context, in domain.Inquiry) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":  "InquiryRepository",
		"method":     "Save",
		"inquiry_id": in.ID,
	})

	_, err := r.pool.Exec(ctx, `
		INSERT INTO inquiries (id, name, email, phone, message, property_id, property_title, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		in.ID, in.Name, in.Email, in.Phone, in.Message, in.PropertyID, in.PropertyTitle, in.CreatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to insert inquiry", err, nil)
		return fmt.Errorf("failed to insert inquiry: %w", err)
	}
	return nil
}

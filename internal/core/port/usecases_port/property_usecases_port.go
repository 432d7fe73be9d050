package usecases_port

import (
	"context"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
)

type ListPropertiesUseCase interface {
	Execute(ctx context.Context, query domain.PropertyQuery) ([]domain.Property, error)
}

type GetPropertyUseCase interface {
	Execute(ctx context.Context, id string) (*domain.Property, error)
}

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, prop domain.Property) (*domain.Property, error)
}

type UpdatePropertyUseCase interface {
	Execute(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error)
}

type DeletePropertyUseCase interface {
	Execute(ctx context.Context, id string) error
}

type SeedPropertiesUseCase interface {
	Execute(ctx context.Context, seeds []domain.Property) (int, error)
}

package port

import (
	"context"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
)

// PropertyStoragePort — хранилище объектов, единственный писатель сохраненных объектов
type PropertyStoragePort interface {
	List(ctx context.Context, query domain.PropertyQuery) ([]domain.Property, error)
	// GetByID возвращает domain.ErrPropertyNotFound, если объекта нет
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	Create(ctx context.Context, prop domain.Property) error
	Update(ctx context.Context, prop domain.Property) error
	// Delete возвращает domain.ErrPropertyNotFound, если удалять нечего
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

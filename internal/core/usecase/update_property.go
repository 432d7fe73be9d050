package usecase

import (
	"context"
	"time"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
)

type UpdatePropertyUseCase struct {
	storage port.PropertyStoragePort
	now     func() time.Time
}

func NewUpdatePropertyUseCase(storage port.PropertyStoragePort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{storage: storage, now: time.Now}
}

// Execute применяет частичное обновление: незаданные поля сохраняют прежние значения
func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": id,
	})

	current, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Warn("Cannot load property for update", port.Fields{"error": err.Error()})
		return nil, err
	}

	// Если цену поменяли числом, но не строкой, пересчитываем строку
	if patch.PriceValue != nil && patch.Price == nil {
		current.Price = ""
	}
	updated := normalizeProperty(patch.Apply(*current))
	if err := validateProperty(updated); err != nil {
		ucLogger.Warn("Patch rejected by validation", port.Fields{"error": err.Error()})
		return nil, err
	}
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = uc.now().UTC()

	if err := uc.storage.Update(ctx, updated); err != nil {
		ucLogger.Error("Failed to update property", err, nil)
		return nil, err
	}

	ucLogger.Info("Property updated", nil)
	return &updated, nil
}

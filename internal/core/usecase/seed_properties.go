package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
)

// SeedPropertiesUseCase заполняет пустое хранилище объектами из каталога
type SeedPropertiesUseCase struct {
	storage port.PropertyStoragePort
	now     func() time.Time
}

func NewSeedPropertiesUseCase(storage port.PropertyStoragePort) *SeedPropertiesUseCase {
	return &SeedPropertiesUseCase{storage: storage, now: time.Now}
}

// Execute возвращает число вставленных объектов. Непустое хранилище не трогается.
func (uc *SeedPropertiesUseCase) Execute(ctx context.Context, seeds []domain.Property) (int, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "SeedProperties"})

	count, err := uc.storage.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	if count > 0 {
		ucLogger.Info("Store is not empty, skipping seed", port.Fields{"existing": count})
		return 0, nil
	}

	inserted := 0
	for _, seed := range seeds {
		prop := normalizeProperty(seed)
		if err := validateProperty(prop); err != nil {
			return inserted, fmt.Errorf("seed %s: %w", seed.ID, err)
		}
		now := uc.now().UTC()
		prop.CreatedAt, prop.UpdatedAt = now, now
		if err := uc.storage.Create(ctx, prop); err != nil {
			return inserted, fmt.Errorf("seed %s: %w", seed.ID, err)
		}
		inserted++
	}

	ucLogger.Info("Catalog properties seeded", port.Fields{"inserted": inserted})
	return inserted, nil
}

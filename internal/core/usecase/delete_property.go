package usecase

import (
	"context"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
)

type DeletePropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewDeletePropertyUseCase(storage port.PropertyStoragePort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{storage: storage}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id string) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": id,
	})

	if err := uc.storage.Delete(ctx, id); err != nil {
		ucLogger.Warn("Delete failed", port.Fields{"error": err.Error()})
		return err
	}
	ucLogger.Info("Property deleted", nil)
	return nil
}

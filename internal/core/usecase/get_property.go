package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
)

type GetPropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewGetPropertyUseCase(storage port.PropertyStoragePort) *GetPropertyUseCase {
	return &GetPropertyUseCase{storage: storage}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, id string) (*domain.Property, error) {
	id = strings.TrimSpace(id)
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "GetProperty",
		"property_id": id,
	})
	if id == "" {
		return nil, domain.ErrPropertyNotFound
	}

	prop, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			ucLogger.Debug("Property not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}
	return prop, nil
}

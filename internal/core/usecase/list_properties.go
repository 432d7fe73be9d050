package usecase

import (
	"context"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type ListPropertiesUseCase struct {
	storage port.PropertyStoragePort
}

func NewListPropertiesUseCase(storage port.PropertyStoragePort) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{storage: storage}
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context, query domain.PropertyQuery) ([]domain.Property, error) {
	if query.Limit <= 0 {
		query.Limit = defaultListLimit
	}
	if query.Limit > maxListLimit {
		query.Limit = maxListLimit
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ListProperties",
		"type":     query.Type,
		"limit":    query.Limit,
		"offset":   query.Offset,
	})
	ucLogger.Debug("Use case started", nil)

	props, err := uc.storage.List(ctx, query)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"found": len(props)})
	return props, nil
}

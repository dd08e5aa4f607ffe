package usecase

import (
	"context"
	"fmt"

	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
)

const defaultSearchLimit = 20

// SearchPropertiesUseCase инкапсулирует фильтрованный поиск по активным объявлениям.
type SearchPropertiesUseCase struct {
	storage port.PropertySearchPort
}

func NewSearchPropertiesUseCase(storage port.PropertySearchPort) *SearchPropertiesUseCase {
	return &SearchPropertiesUseCase{storage: storage}
}

func (uc *SearchPropertiesUseCase) Execute(ctx context.Context, filters domain.SearchFilters) ([]domain.Property, error) {
	if filters.Limit <= 0 {
		filters.Limit = defaultSearchLimit
	}
	if filters.Limit > maxSearchLimit {
		filters.Limit = maxSearchLimit
	}

	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchProperties",
		"filters":  filters,
		"limit":    filters.Limit,
	})

	ucLogger.Debug("Use case started", nil)

	properties, err := uc.storage.FindWithFilters(ctx, filters)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("property search failed: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found": len(properties),
	})

	return properties, nil
}

package usecase

import (
	"context"
	"fmt"

	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
)

const (
	defaultNearbyLimit = 10
	maxSearchLimit     = 100
)

// FindNearbyUseCase инкапсулирует радиусный поиск объявлений.
type FindNearbyUseCase struct {
	storage port.PropertySearchPort
}

func NewFindNearbyUseCase(storage port.PropertySearchPort) *FindNearbyUseCase {
	return &FindNearbyUseCase{storage: storage}
}

// Execute выполняет поиск. Лимит зажимается до maxSearchLimit независимо от того,
// что запросил клиент.
func (uc *FindNearbyUseCase) Execute(ctx context.Context, query domain.NearbyQuery) ([]domain.NearbyProperty, error) {
	if query.Limit <= 0 {
		query.Limit = defaultNearbyLimit
	}
	if query.Limit > maxSearchLimit {
		query.Limit = maxSearchLimit
	}

	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindNearby",
		"lat":      query.Latitude,
		"lng":      query.Longitude,
		"radius_m": query.RadiusMeters,
		"limit":    query.Limit,
	})

	ucLogger.Debug("Use case started", nil)

	properties, err := uc.storage.FindNearby(ctx, query)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("nearby search failed: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found": len(properties),
	})

	return properties, nil
}

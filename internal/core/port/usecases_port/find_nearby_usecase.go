package usecases_port

import (
	"context"

	"property-search-service/internal/core/domain"
)

// FindNearbyUseCase — входящий порт радиусного поиска.
type FindNearbyUseCase interface {
	Execute(ctx context.Context, query domain.NearbyQuery) ([]domain.NearbyProperty, error)
}

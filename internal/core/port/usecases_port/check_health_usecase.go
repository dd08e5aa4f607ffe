package usecases_port

import (
	"context"

	"property-search-service/internal/core/domain"
)

// CheckHealthUseCase — входящий порт диагностики сервиса.
type CheckHealthUseCase interface {
	Execute(ctx context.Context) (*domain.HealthReport, error)
}

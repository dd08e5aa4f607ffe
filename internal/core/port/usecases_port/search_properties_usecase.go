package usecases_port

import (
	"context"

	"property-search-service/internal/core/domain"
)

// SearchPropertiesUseCase — входящий порт фильтрованного поиска.
type SearchPropertiesUseCase interface {
	Execute(ctx context.Context, filters domain.SearchFilters) ([]domain.Property, error)
}

package usecases_port

import (
	"context"

	"property-search-service/internal/core/domain"
)

// AddPropertyUseCase — входящий порт создания объявления.
// Возвращает идентификатор, присвоенный хранилищем.
type AddPropertyUseCase interface {
	Execute(ctx context.Context, property domain.NewProperty) (int64, error)
}

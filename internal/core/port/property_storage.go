package port

import (
	"context"

	"property-search-service/internal/core/domain"
)

// PropertySearchPort — исходящий порт для чтения объявлений из хранилища.
type PropertySearchPort interface {
	// FindNearby возвращает объявления в радиусе от точки,
	// отсортированные по дистанции.
	FindNearby(ctx context.Context, query domain.NearbyQuery) ([]domain.NearbyProperty, error)

	// FindWithFilters возвращает активные объявления по конъюнктивному
	// набору фильтров, отсортированные по цене.
	FindWithFilters(ctx context.Context, filters domain.SearchFilters) ([]domain.Property, error)
}

// PropertyWriterPort — исходящий порт для записи объявлений.
type PropertyWriterPort interface {
	// Insert сохраняет новое объявление и возвращает присвоенный БД идентификатор.
	Insert(ctx context.Context, property domain.NewProperty) (int64, error)
}

// HealthProbePort — исходящий порт для диагностики хранилища.
type HealthProbePort interface {
	Check(ctx context.Context) (*domain.HealthReport, error)
}

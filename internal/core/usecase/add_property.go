package usecase

import (
	"context"
	"fmt"

	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
)

// defaultPropertyType присваивается объявлениям без явно указанного типа.
const defaultPropertyType = "Unknown"

// AddPropertyUseCase инкапсулирует логику создания объявления.
type AddPropertyUseCase struct {
	storage port.PropertyWriterPort
}

func NewAddPropertyUseCase(storage port.PropertyWriterPort) *AddPropertyUseCase {
	return &AddPropertyUseCase{storage: storage}
}

// Execute сохраняет объявление и возвращает идентификатор, присвоенный БД.
func (uc *AddPropertyUseCase) Execute(ctx context.Context, property domain.NewProperty) (int64, error) {
	if property.PropertyType == "" {
		property.PropertyType = defaultPropertyType
	}

	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":      "AddProperty",
		"address":       property.Address,
		"property_type": property.PropertyType,
	})

	ucLogger.Debug("Use case started", nil)

	id, err := uc.storage.Insert(ctx, property)
	if err != nil {
		ucLogger.Error("Storage returned an error during insert", err, nil)
		return 0, fmt.Errorf("failed to add property: %w", err)
	}

	ucLogger.Info("Use case finished: property created", port.Fields{
		"property_id": id,
	})

	return id, nil
}

package usecase

import (
	"context"
	"fmt"

	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
)

// CheckHealthUseCase прогоняет диагностические запросы к хранилищу.
type CheckHealthUseCase struct {
	probe port.HealthProbePort
}

func NewCheckHealthUseCase(probe port.HealthProbePort) *CheckHealthUseCase {
	return &CheckHealthUseCase{probe: probe}
}

func (uc *CheckHealthUseCase) Execute(ctx context.Context) (*domain.HealthReport, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CheckHealth"})

	report, err := uc.probe.Check(ctx)
	if err != nil {
		ucLogger.Error("Health probe failed", err, nil)
		return nil, fmt.Errorf("health check failed: %w", err)
	}

	ucLogger.Debug("Health probe succeeded", port.Fields{
		"total_properties": report.DataSummary.TotalProperties,
	})

	return report, nil
}

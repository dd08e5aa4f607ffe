package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
)

// HealthProbeAdapter прогоняет диагностические запросы на одном соединении.
type HealthProbeAdapter struct {
	pool *pgxpool.Pool
}

func NewHealthProbeAdapter(pool *pgxpool.Pool) (*HealthProbeAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgx pool cannot be nil")
	}
	return &HealthProbeAdapter{pool: pool}, nil
}

// Check выполняет три проверки последовательно: базовая связность,
// версия PostGIS и счетчики по таблице properties. Любой сбой
// прерывает всю проверку.
func (a *HealthProbeAdapter) Check(ctx context.Context) (*domain.HealthReport, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	probeLogger := logger.WithFields(port.Fields{
		"component": "HealthProbeAdapter",
	})

	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		probeLogger.Error("Failed to acquire connection for health check", err, nil)
		return nil, fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
	}
	defer conn.Release()

	report := &domain.HealthReport{}

	// Базовая проверка связности
	var serverTime time.Time
	err = conn.QueryRow(ctx, "SELECT version(), current_database(), current_user, NOW();").Scan(
		&report.Database.Version,
		&report.Database.Database,
		&report.Database.User,
		&serverTime,
	)
	if err != nil {
		probeLogger.Error("Database connectivity probe failed", err, nil)
		return nil, fmt.Errorf("database connectivity probe failed: %w", err)
	}

	normalized, err := NormalizeValue(serverTime)
	if err != nil {
		return nil, err
	}
	report.Database.ServerTime = normalized.(string)

	// Проверка пространственного расширения
	err = conn.QueryRow(ctx, "SELECT PostGIS_Version();").Scan(&report.PostGIS.Version)
	if err != nil {
		probeLogger.Error("PostGIS probe failed", err, nil)
		return nil, fmt.Errorf("postgis probe failed: %w", err)
	}
	report.PostGIS.SpatialEnabled = true

	// Счетчики: все объявления и объявления с координатами
	err = conn.QueryRow(ctx, `
		SELECT COUNT(*) AS property_count,
			   COUNT(location) AS properties_with_location
		FROM properties;`).Scan(
		&report.DataSummary.TotalProperties,
		&report.DataSummary.PropertiesWithLocation,
	)
	if err != nil {
		probeLogger.Error("Data summary probe failed", err, nil)
		return nil, fmt.Errorf("data summary probe failed: %w", err)
	}

	return report, nil
}

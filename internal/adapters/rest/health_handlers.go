package rest

import (
	"net/http"
	"time"

	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port/usecases_port"
)

// HealthHandler обслуживает GET /health.
type HealthHandler struct {
	checkHealthUC usecases_port.CheckHealthUseCase
}

func NewHealthHandler(checkHealthUC usecases_port.CheckHealthUseCase) *HealthHandler {
	return &HealthHandler{checkHealthUC: checkHealthUC}
}

// Check выполняет диагностику. Сбой любой из проверок превращается в 500
// с текстом сбоя, но процесс не падает.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	report, err := h.checkHealthUC.Execute(r.Context())
	if err != nil {
		logger.Error("Health check failed", err, nil)
		RespondWithJSON(w, http.StatusInternalServerError, UnhealthyResponse{
			Status:    "unhealthy",
			Error:     err.Error(),
			Timestamp: time.Now().Format(domain.TimeLayoutISO),
		})
		return
	}

	RespondWithJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(domain.TimeLayoutISO),
		Database: DatabaseInfoResponse{
			Version:    report.Database.Version,
			Database:   report.Database.Database,
			User:       report.Database.User,
			ServerTime: report.Database.ServerTime,
		},
		PostGIS: PostGISInfoResponse{
			Version:        report.PostGIS.Version,
			SpatialEnabled: report.PostGIS.SpatialEnabled,
		},
		DataSummary: DataSummaryResponse{
			TotalProperties:        report.DataSummary.TotalProperties,
			PropertiesWithLocation: report.DataSummary.PropertiesWithLocation,
		},
	})
}

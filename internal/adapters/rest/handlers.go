package rest

import (
	"errors"
	"io"
	"net/http"

	"property-search-service/internal/contextkeys"
	"property-search-service/internal/contracts"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
	"property-search-service/internal/core/port/usecases_port"
)

// Значения по умолчанию для радиусного поиска (центр — Сан-Франциско,
// как в исходном наборе данных).
const (
	defaultLat    = 37.7749
	defaultLng    = -122.4194
	defaultRadius = 1000
	defaultLimit  = 10

	searchDefaultLimit = 20
	maxLimit           = 100
)

// PropertyHandler обслуживает все операции /api/properties*.
type PropertyHandler struct {
	findNearbyUC usecases_port.FindNearbyUseCase
	searchUC     usecases_port.SearchPropertiesUseCase
	addUC        usecases_port.AddPropertyUseCase
}

func NewPropertyHandler(
	findNearbyUC usecases_port.FindNearbyUseCase,
	searchUC usecases_port.SearchPropertiesUseCase,
	addUC usecases_port.AddPropertyUseCase) *PropertyHandler {
	return &PropertyHandler{
		findNearbyUC: findNearbyUC,
		searchUC:     searchUC,
		addUC:        addUC,
	}
}

// FindNearby обрабатывает GET /api/properties/nearby
func (h *PropertyHandler) FindNearby(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	query := r.URL.Query()

	// Непарсибельные координаты/радиус/лимит — ошибка клиента.
	lat, latErr := parseFloatOrDefault(query, "lat", defaultLat)
	lng, lngErr := parseFloatOrDefault(query, "lng", defaultLng)
	radius, radiusErr := parseIntOrDefault(query, "radius", defaultRadius)
	limit, limitErr := parseIntOrDefault(query, "limit", defaultLimit)
	if err := errors.Join(latErr, lngErr, radiusErr, limitErr); err != nil {
		logger.Warn("Invalid nearby search parameters", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid coordinates or radius")
		return
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":  "FindNearby",
		"lat":      lat,
		"lng":      lng,
		"radius_m": radius,
		"limit":    limit,
	})
	handlerLogger.Debug("Processing nearby search request", nil)

	properties, err := h.findNearbyUC.Execute(r.Context(), domain.NearbyQuery{
		Latitude:     lat,
		Longitude:    lng,
		RadiusMeters: radius,
		Limit:        limit,
	})
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	response := NearbySearchResponse{
		SearchCenter: SearchCenterResponse{Latitude: lat, Longitude: lng},
		RadiusMeters: radius,
		TotalFound:   len(properties),
		Properties:   make([]NearbyPropertyResponse, len(properties)),
	}
	for i, prop := range properties {
		response.Properties[i] = NearbyPropertyResponse{
			PropertyResponse: toPropertyResponse(prop.Property),
			DistanceMeters:   prop.DistanceMeters,
			Geohash:          prop.Geohash,
		}
	}

	handlerLogger.Info("Nearby search finished", port.Fields{"total_found": response.TotalFound})

	RespondWithJSON(w, http.StatusOK, response)
}

// Search обрабатывает GET /api/properties/search
func (h *PropertyHandler) Search(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	query := r.URL.Query()

	// Непарсибельные фильтры игнорируются: для поиска нет пути 400,
	// фильтр просто не применяется.
	filters := domain.SearchFilters{
		PriceMin:     parseOptionalInt(query, "price_min"),
		PriceMax:     parseOptionalInt(query, "price_max"),
		MinBedrooms:  parseOptionalInt(query, "bedrooms"),
		MinBathrooms: parseOptionalFloat(query, "bathrooms"),
		PropertyType: query.Get("property_type"),
	}

	limit := searchDefaultLimit
	if parsed := parseOptionalInt(query, "limit"); parsed != nil {
		limit = *parsed
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	filters.Limit = limit

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "Search",
		"limit":   limit,
	})
	handlerLogger.Debug("Processing filtered search request", nil)

	properties, err := h.searchUC.Execute(r.Context(), filters)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	response := SearchResponse{
		FiltersApplied: FiltersAppliedResponse{
			PriceRange:   [2]*int{filters.PriceMin, filters.PriceMax},
			MinBedrooms:  filters.MinBedrooms,
			MinBathrooms: filters.MinBathrooms,
			PropertyType: optionalString(filters.PropertyType),
		},
		TotalFound: len(properties),
		Properties: make([]PropertyResponse, len(properties)),
	}
	for i, prop := range properties {
		response.Properties[i] = toPropertyResponse(prop)
	}

	handlerLogger.Info("Filtered search finished", port.Fields{"total_found": response.TotalFound})

	RespondWithJSON(w, http.StatusOK, response)
}

// Add обрабатывает POST /api/properties
func (h *PropertyHandler) Add(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warn("Failed to read request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Схема проверяет обязательные поля и типы разом и называет
	// каждое нарушение, а не только первое.
	if err := contracts.ValidatePayload(contracts.SchemaPropertyCreate, body); err != nil {
		if domain.IsValidationError(err) {
			logger.Warn("Property payload failed validation", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Payload validation faulted", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to add property")
		return
	}

	req, err := decodeAddPropertyRequest(body)
	if err != nil {
		logger.Warn("Failed to decode property payload", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "Add",
		"address": req.Address,
	})
	handlerLogger.Debug("Processing add property request", nil)

	id, err := h.addUC.Execute(r.Context(), domain.NewProperty{
		Address:      req.Address,
		Price:        req.Price,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		SquareFeet:   req.SquareFeet,
		PropertyType: req.PropertyType,
	})
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to add property")
		return
	}

	handlerLogger.Info("Property created", port.Fields{"property_id": id})

	RespondWithJSON(w, http.StatusCreated, AddPropertyResponse{
		Success:    true,
		PropertyID: id,
		Message:    "Property added successfully",
	})
}

func toPropertyResponse(prop domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:            prop.ID,
		Address:       prop.Address,
		Price:         prop.Price,
		Bedrooms:      prop.Bedrooms,
		Bathrooms:     prop.Bathrooms,
		SquareFeet:    prop.SquareFeet,
		PropertyType:  prop.PropertyType,
		ListingStatus: prop.ListingStatus,
		Longitude:     prop.Longitude,
		Latitude:      prop.Latitude,
		CreatedAt:     prop.CreatedAt,
	}
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

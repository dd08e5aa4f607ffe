package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logger_adapter "property-search-service/internal/adapters/logger"
	"property-search-service/internal/core/domain"
)

// --- Фейки входящих портов ---

type fakeNearbyUC struct {
	gotQuery domain.NearbyQuery
	result   []domain.NearbyProperty
	err      error
}

func (f *fakeNearbyUC) Execute(_ context.Context, query domain.NearbyQuery) ([]domain.NearbyProperty, error) {
	f.gotQuery = query
	return f.result, f.err
}

type fakeSearchUC struct {
	gotFilters domain.SearchFilters
	result     []domain.Property
	err        error
}

func (f *fakeSearchUC) Execute(_ context.Context, filters domain.SearchFilters) ([]domain.Property, error) {
	f.gotFilters = filters
	return f.result, f.err
}

type fakeAddUC struct {
	gotProperty domain.NewProperty
	id          int64
	err         error
}

func (f *fakeAddUC) Execute(_ context.Context, property domain.NewProperty) (int64, error) {
	f.gotProperty = property
	return f.id, f.err
}

type fakeHealthUC struct {
	report *domain.HealthReport
	err    error
}

func (f *fakeHealthUC) Execute(_ context.Context) (*domain.HealthReport, error) {
	return f.report, f.err
}

type testEnv struct {
	nearby *fakeNearbyUC
	search *fakeSearchUC
	add    *fakeAddUC
	health *fakeHealthUC
	router http.Handler
}

func newTestEnv() *testEnv {
	env := &testEnv{
		nearby: &fakeNearbyUC{result: []domain.NearbyProperty{}},
		search: &fakeSearchUC{result: []domain.Property{}},
		add:    &fakeAddUC{id: 1},
		health: &fakeHealthUC{report: &domain.HealthReport{}},
	}
	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: io.Discard})
	env.router = newRouter(
		[]string{"*"},
		NewPropertyHandler(env.nearby, env.search, env.add),
		NewHealthHandler(env.health),
		logger,
	)
	return env
}

func (env *testEnv) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

// --- Радиусный поиск ---

func TestFindNearbyEmptyResult(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/properties/nearby?lat=37.7749&lng=-122.4194&radius=500&limit=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)

	center := payload["search_center"].(map[string]interface{})
	assert.Equal(t, 37.7749, center["latitude"])
	assert.Equal(t, -122.4194, center["longitude"])
	assert.Equal(t, float64(500), payload["radius_meters"])
	assert.Equal(t, float64(0), payload["total_found"])
	// Пустой результат — это [], а не null
	assert.JSONEq(t, `[]`, string(mustMarshal(t, payload["properties"])))
}

func TestFindNearbyDefaults(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/properties/nearby", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 37.7749, env.nearby.gotQuery.Latitude)
	assert.Equal(t, -122.4194, env.nearby.gotQuery.Longitude)
	assert.Equal(t, 1000, env.nearby.gotQuery.RadiusMeters)
	assert.Equal(t, 10, env.nearby.gotQuery.Limit)
}

func TestFindNearbyInvalidCoordinates(t *testing.T) {
	env := newTestEnv()

	for _, target := range []string{
		"/api/properties/nearby?lat=abc",
		"/api/properties/nearby?lng=xyz",
		"/api/properties/nearby?radius=1.5km",
		"/api/properties/nearby?limit=many",
	} {
		rec := env.do(t, http.MethodGet, target, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "Invalid coordinates or radius", decodeBody(t, rec)["error"])
	}
}

func TestFindNearbyLimitClamped(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/properties/nearby?limit=500", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 100, env.nearby.gotQuery.Limit)
}

func TestFindNearbyWithResults(t *testing.T) {
	env := newTestEnv()
	lng, lat := -122.41, 37.77
	env.nearby.result = []domain.NearbyProperty{
		{
			Property: domain.Property{
				ID:        7,
				Address:   "1 Main St",
				Price:     500000,
				Longitude: &lng,
				Latitude:  &lat,
				CreatedAt: "2024-05-01T12:30:15",
			},
			DistanceMeters: 42.5,
			Geohash:        "9q8yy",
		},
	}

	rec := env.do(t, http.MethodGet, "/api/properties/nearby", "")

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, float64(1), payload["total_found"])

	props := payload["properties"].([]interface{})
	require.Len(t, props, 1)
	prop := props[0].(map[string]interface{})
	assert.Equal(t, float64(7), prop["id"])
	assert.Equal(t, "1 Main St", prop["address"])
	assert.Equal(t, 42.5, prop["distance_meters"])
	assert.Equal(t, "9q8yy", prop["geohash"])
}

func TestFindNearbyStorageFailure(t *testing.T) {
	env := newTestEnv()
	env.nearby.err = errors.New("connection reset")

	rec := env.do(t, http.MethodGet, "/api/properties/nearby", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Search failed", decodeBody(t, rec)["error"])
}

// --- Фильтрованный поиск ---

func TestSearchEchoesFilters(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/properties/search?price_min=500000&property_type=condo", "")

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, env.search.gotFilters.PriceMin)
	assert.Equal(t, 500000, *env.search.gotFilters.PriceMin)
	assert.Nil(t, env.search.gotFilters.PriceMax)
	assert.Equal(t, "condo", env.search.gotFilters.PropertyType)
	assert.Equal(t, 20, env.search.gotFilters.Limit)

	payload := decodeBody(t, rec)
	filtersApplied := payload["filters_applied"].(map[string]interface{})
	priceRange := filtersApplied["price_range"].([]interface{})
	assert.Equal(t, float64(500000), priceRange[0])
	assert.Nil(t, priceRange[1])
	assert.Equal(t, "condo", filtersApplied["property_type"])
	assert.Nil(t, filtersApplied["min_bedrooms"])
}

func TestSearchLimitClamped(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/properties/search?limit=500", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 100, env.search.gotFilters.Limit)
}

func TestSearchUnparseableFilterIgnored(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/properties/search?bedrooms=many", "")

	// Для поиска нет пути 400: кривой фильтр просто не применяется
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, env.search.gotFilters.MinBedrooms)
}

func TestSearchStorageFailure(t *testing.T) {
	env := newTestEnv()
	env.search.err = errors.New("relation does not exist")

	rec := env.do(t, http.MethodGet, "/api/properties/search", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Search failed", decodeBody(t, rec)["error"])
}

// --- Создание объявления ---

func TestAddPropertySuccess(t *testing.T) {
	env := newTestEnv()
	env.add.id = 123

	rec := env.do(t, http.MethodPost, "/api/properties",
		`{"address":"1 Main St","price":500000,"latitude":37.77,"longitude":-122.41}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, float64(123), payload["property_id"])
	assert.Equal(t, "Property added successfully", payload["message"])

	assert.Equal(t, "1 Main St", env.add.gotProperty.Address)
	assert.Equal(t, 500000.0, env.add.gotProperty.Price)
	assert.Equal(t, 37.77, env.add.gotProperty.Latitude)
	assert.Equal(t, -122.41, env.add.gotProperty.Longitude)
}

func TestAddPropertyMissingFields(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/properties", `{"address":"1 Main St"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errMsg := decodeBody(t, rec)["error"].(string)
	for _, field := range []string{"price", "latitude", "longitude"} {
		assert.Contains(t, errMsg, field)
	}
	// Валидация не должна дойти до use case
	assert.Empty(t, env.add.gotProperty.Address)
}

func TestAddPropertyInvalidJSON(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/properties", `{broken`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddPropertyStoreFailure(t *testing.T) {
	env := newTestEnv()
	env.add.err = errors.New("constraint violation")

	rec := env.do(t, http.MethodPost, "/api/properties",
		`{"address":"1 Main St","price":500000,"latitude":37.77,"longitude":-122.41}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to add property", decodeBody(t, rec)["error"])
}

// --- Health и маршрутизация ---

func TestHealthHealthy(t *testing.T) {
	env := newTestEnv()
	env.health.report = &domain.HealthReport{
		Database: domain.DatabaseInfo{
			Version:  "PostgreSQL 15.4",
			Database: "properties_db",
			User:     "app",
		},
		PostGIS:     domain.PostGISInfo{Version: "3.4", SpatialEnabled: true},
		DataSummary: domain.DataSummary{TotalProperties: 10, PropertiesWithLocation: 8},
	}

	rec := env.do(t, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, "healthy", payload["status"])
	assert.NotEmpty(t, payload["timestamp"])

	db := payload["database"].(map[string]interface{})
	assert.Equal(t, "PostgreSQL 15.4", db["version"])

	postgis := payload["postgis"].(map[string]interface{})
	assert.Equal(t, true, postgis["spatial_enabled"])

	summary := payload["data_summary"].(map[string]interface{})
	assert.Equal(t, float64(10), summary["total_properties"])
	assert.Equal(t, float64(8), summary["properties_with_location"])
}

func TestHealthUnhealthy(t *testing.T) {
	env := newTestEnv()
	env.health.report = nil
	env.health.err = errors.New("postgis probe failed: extension missing")

	rec := env.do(t, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, "unhealthy", payload["status"])
	assert.Contains(t, payload["error"], "postgis probe failed")
	assert.NotEmpty(t, payload["timestamp"])
}

func TestNotFoundRoute(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/nonexistent", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Endpoint not found", decodeBody(t, rec)["error"])
}

func TestHomePage(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "property-search-service")
}

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

package rest

// PropertyResponse — DTO объявления в результатах фильтрованного поиска.
type PropertyResponse struct {
	ID            int64    `json:"id"`
	Address       string   `json:"address"`
	Price         float64  `json:"price"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *float64 `json:"bathrooms"`
	SquareFeet    *float64 `json:"square_feet"`
	PropertyType  *string  `json:"property_type"`
	ListingStatus *string  `json:"listing_status"`
	Longitude     *float64 `json:"longitude"`
	Latitude      *float64 `json:"latitude"`
	CreatedAt     string   `json:"created_at"`
}

// NearbyPropertyResponse — DTO объявления с дистанцией до точки поиска.
type NearbyPropertyResponse struct {
	PropertyResponse
	DistanceMeters float64 `json:"distance_meters"`
	Geohash        string  `json:"geohash"`
}

// SearchCenterResponse — точка, вокруг которой шел радиусный поиск.
type SearchCenterResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearbySearchResponse — ответ GET /api/properties/nearby.
type NearbySearchResponse struct {
	SearchCenter SearchCenterResponse     `json:"search_center"`
	RadiusMeters int                      `json:"radius_meters"`
	TotalFound   int                      `json:"total_found"`
	Properties   []NearbyPropertyResponse `json:"properties"`
}

// FiltersAppliedResponse — эхо примененных фильтров; незаданные — null.
type FiltersAppliedResponse struct {
	PriceRange   [2]*int  `json:"price_range"`
	MinBedrooms  *int     `json:"min_bedrooms"`
	MinBathrooms *float64 `json:"min_bathrooms"`
	PropertyType *string  `json:"property_type"`
}

// SearchResponse — ответ GET /api/properties/search.
type SearchResponse struct {
	FiltersApplied FiltersAppliedResponse `json:"filters_applied"`
	TotalFound     int                    `json:"total_found"`
	Properties     []PropertyResponse     `json:"properties"`
}

// AddPropertyRequest — тело POST /api/properties. Обязательность полей
// проверяется по JSON-схеме до анмаршалинга в эту структуру.
type AddPropertyRequest struct {
	Address      string   `json:"address"`
	Price        float64  `json:"price"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *float64 `json:"bathrooms"`
	SquareFeet   *float64 `json:"square_feet"`
	PropertyType string   `json:"property_type"`
}

// AddPropertyResponse — ответ 201 на успешное создание.
type AddPropertyResponse struct {
	Success    bool   `json:"success"`
	PropertyID int64  `json:"property_id"`
	Message    string `json:"message"`
}

// DatabaseInfoResponse — секция database в ответе /health.
type DatabaseInfoResponse struct {
	Version    string `json:"version"`
	Database   string `json:"database"`
	User       string `json:"user"`
	ServerTime string `json:"server_time"`
}

// PostGISInfoResponse — секция postgis в ответе /health.
type PostGISInfoResponse struct {
	Version        string `json:"version"`
	SpatialEnabled bool   `json:"spatial_enabled"`
}

// DataSummaryResponse — секция data_summary в ответе /health.
type DataSummaryResponse struct {
	TotalProperties        int64 `json:"total_properties"`
	PropertiesWithLocation int64 `json:"properties_with_location"`
}

// HealthResponse — ответ 200 на /health.
type HealthResponse struct {
	Status      string               `json:"status"`
	Timestamp   string               `json:"timestamp"`
	Database    DatabaseInfoResponse `json:"database"`
	PostGIS     PostGISInfoResponse  `json:"postgis"`
	DataSummary DataSummaryResponse  `json:"data_summary"`
}

// UnhealthyResponse — ответ 500 на /health.
type UnhealthyResponse struct {
	Status    string `json:"status"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

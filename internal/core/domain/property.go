package domain

// TimeLayoutISO — формат времени для всех JSON-ответов (ISO-8601 без смещения,
// время сервера БД, как его отдает Postgres).
const TimeLayoutISO = "2006-01-02T15:04:05.999999"

// Property — объявление из таблицы properties в том виде,
// в котором оно отдается клиенту.
type Property struct {
	ID            int64
	Address       string
	Price         float64
	Bedrooms      *int
	Bathrooms     *float64
	SquareFeet    *float64
	PropertyType  *string
	ListingStatus *string
	Longitude     *float64
	Latitude      *float64
	CreatedAt     string // ISO-8601, нормализуется сериализатором
}

// NearbyProperty — объект с вычисленной дистанцией до точки поиска.
// Geohash вычисляется сервисом по координатам из БД.
type NearbyProperty struct {
	Property
	DistanceMeters float64
	Geohash        string
}

// NearbyQuery — параметры радиусного поиска.
type NearbyQuery struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	Limit        int
}

// SearchFilters — опциональные фильтры для поиска по активным объявлениям.
// nil / пустая строка означает, что фильтр не задан и не попадает в запрос.
type SearchFilters struct {
	PriceMin     *int
	PriceMax     *int
	MinBedrooms  *int
	MinBathrooms *float64
	PropertyType string
	Limit        int
}

// NewProperty — данные для создания нового объявления.
type NewProperty struct {
	Address      string
	Price        float64
	Latitude     float64
	Longitude    float64
	Bedrooms     *int
	Bathrooms    *float64
	SquareFeet   *float64
	PropertyType string
}

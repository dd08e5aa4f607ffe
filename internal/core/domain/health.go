package domain

// DatabaseInfo — результат базовой проверки соединения с Postgres.
type DatabaseInfo struct {
	Version    string
	Database   string
	User       string
	ServerTime string
}

// PostGISInfo — версия пространственного расширения.
type PostGISInfo struct {
	Version        string
	SpatialEnabled bool
}

// DataSummary — счетчики по таблице properties.
type DataSummary struct {
	TotalProperties        int64
	PropertiesWithLocation int64
}

// HealthReport — агрегированный результат всех трех проверок.
type HealthReport struct {
	Database    DatabaseInfo
	PostGIS     PostGISInfo
	DataSummary DataSummary
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mmcloughlin/geohash"

	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
)

// PostgresStorageAdapter — реализация портов хранилища поверх пула pgx.
// Вся пространственная математика делегируется PostGIS: построение точки,
// дистанция и попадание в радиус считаются в SQL.
type PostgresStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewPostgresStorageAdapter(pool *pgxpool.Pool) (*PostgresStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgx pool cannot be nil")
	}
	return &PostgresStorageAdapter{pool: pool}, nil
}

// Точка поиска собирается из параметров, а не интерполируется в текст запроса.
// Каст к geography дает дистанцию и радиус в метрах, а не в градусах.
const nearbyQuery = `
	SELECT
		id,
		address,
		price,
		bedrooms,
		bathrooms,
		square_feet,
		property_type,
		listing_status,
		ST_X(location) AS longitude,
		ST_Y(location) AS latitude,
		ST_Distance(
			location::geography,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography
		) AS distance_meters,
		created_at
	FROM properties
	WHERE location IS NOT NULL
	AND ST_DWithin(
		location::geography,
		ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
		$3
	)
	ORDER BY distance_meters
	LIMIT $4;`

// FindNearby возвращает объявления в радиусе query.RadiusMeters от точки,
// по возрастанию дистанции.
func (a *PostgresStorageAdapter) FindNearby(ctx context.Context, query domain.NearbyQuery) ([]domain.NearbyProperty, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresStorageAdapter",
		"method":    "FindNearby",
	})

	rows, err := a.pool.Query(ctx, nearbyQuery,
		query.Longitude, query.Latitude, query.RadiusMeters, query.Limit)
	if err != nil {
		repoLogger.Error("Failed to query nearby properties", err, nil)
		return nil, fmt.Errorf("%w: nearby query: %v", domain.ErrQuery, err)
	}
	defer rows.Close()

	properties := make([]domain.NearbyProperty, 0, query.Limit)
	for rows.Next() {
		var (
			prop       domain.NearbyProperty
			price      pgtype.Numeric
			bathrooms  pgtype.Numeric
			squareFeet pgtype.Numeric
			createdAt  time.Time
		)
		if err := rows.Scan(
			&prop.ID, &prop.Address, &price, &prop.Bedrooms, &bathrooms,
			&squareFeet, &prop.PropertyType, &prop.ListingStatus,
			&prop.Longitude, &prop.Latitude, &prop.DistanceMeters, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scan nearby row: %v", domain.ErrQuery, err)
		}

		if err := normalizeProperty(&prop.Property, price, bathrooms, squareFeet, createdAt); err != nil {
			return nil, err
		}

		// location отфильтрован как NOT NULL, координаты здесь всегда есть
		if prop.Latitude != nil && prop.Longitude != nil {
			prop.Geohash = geohash.Encode(*prop.Latitude, *prop.Longitude)
		}

		properties = append(properties, prop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: nearby rows: %v", domain.ErrQuery, err)
	}

	repoLogger.Debug("Nearby query finished", port.Fields{"count": len(properties)})

	return properties, nil
}

// FindWithFilters возвращает активные объявления, удовлетворяющие всем
// переданным фильтрам одновременно, по возрастанию цены.
func (a *PostgresStorageAdapter) FindWithFilters(ctx context.Context, filters domain.SearchFilters) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresStorageAdapter",
		"method":    "FindWithFilters",
	})

	// Получаем WHERE и аргументы от билдера; лимит привязывается последним.
	whereClause, args := applyFilters(filters)
	query := fmt.Sprintf(`
		SELECT
			id, address, price, bedrooms, bathrooms, square_feet,
			property_type, listing_status,
			ST_X(location) AS longitude,
			ST_Y(location) AS latitude,
			created_at
		FROM properties
		%s
		ORDER BY price ASC
		LIMIT $%d;`, whereClause, len(args)+1)
	args = append(args, filters.Limit)

	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query properties with filters", err, port.Fields{"query": query})
		return nil, fmt.Errorf("%w: filtered query: %v", domain.ErrQuery, err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0, filters.Limit)
	for rows.Next() {
		var (
			prop       domain.Property
			price      pgtype.Numeric
			bathrooms  pgtype.Numeric
			squareFeet pgtype.Numeric
			createdAt  time.Time
		)
		if err := rows.Scan(
			&prop.ID, &prop.Address, &price, &prop.Bedrooms, &bathrooms,
			&squareFeet, &prop.PropertyType, &prop.ListingStatus,
			&prop.Longitude, &prop.Latitude, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scan filtered row: %v", domain.ErrQuery, err)
		}

		if err := normalizeProperty(&prop, price, bathrooms, squareFeet, createdAt); err != nil {
			return nil, err
		}

		properties = append(properties, prop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: filtered rows: %v", domain.ErrQuery, err)
	}

	repoLogger.Debug("Filtered query finished", port.Fields{"count": len(properties)})

	return properties, nil
}

const insertQuery = `
	INSERT INTO properties (
		address, price, bedrooms, bathrooms, square_feet,
		property_type, location
	) VALUES (
		$1, $2, $3, $4, $5, $6,
		ST_SetSRID(ST_MakePoint($7, $8), 4326)
	) RETURNING id;`

// Insert сохраняет объявление. Точка строится из (longitude, latitude) —
// именно в таком порядке осей, SRID 4326.
func (a *PostgresStorageAdapter) Insert(ctx context.Context, property domain.NewProperty) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresStorageAdapter",
		"method":    "Insert",
	})

	var id int64
	err := a.pool.QueryRow(ctx, insertQuery,
		property.Address,
		property.Price,
		property.Bedrooms,
		property.Bathrooms,
		property.SquareFeet,
		property.PropertyType,
		property.Longitude,
		property.Latitude,
	).Scan(&id)
	if err != nil {
		repoLogger.Error("Failed to insert property", err, nil)
		return 0, fmt.Errorf("%w: insert: %v", domain.ErrQuery, err)
	}

	repoLogger.Debug("Property inserted", port.Fields{"property_id": id})

	return id, nil
}

// normalizeProperty приводит numeric/timestamp колонки к JSON-безопасным типам.
func normalizeProperty(prop *domain.Property, price, bathrooms, squareFeet pgtype.Numeric, createdAt time.Time) error {
	var err error
	if prop.Price, err = numericToFloat(price); err != nil {
		return err
	}
	if prop.Bathrooms, err = numericToFloatPtr(bathrooms); err != nil {
		return err
	}
	if prop.SquareFeet, err = numericToFloatPtr(squareFeet); err != nil {
		return err
	}

	normalized, err := NormalizeValue(createdAt)
	if err != nil {
		return err
	}
	prop.CreatedAt = normalized.(string)

	return nil
}

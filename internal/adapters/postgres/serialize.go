package postgres

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"property-search-service/internal/core/domain"
)

// NormalizeValue приводит значение из БД к JSON-безопасному примитиву:
// numeric -> float64, timestamp -> строка ISO-8601 (время сервера, без
// перевода в UTC). Примитивы проходят без изменений, все остальное —
// ошибка сериализации.
func NormalizeValue(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case pgtype.Numeric:
		if !val.Valid {
			return nil, nil
		}
		f, err := val.Float64Value()
		if err != nil {
			return nil, fmt.Errorf("%w: numeric conversion: %v", domain.ErrSerialization, err)
		}
		return f.Float64, nil
	case time.Time:
		return val.Format(domain.TimeLayoutISO), nil
	case string, bool, int16, int32, int64, float32, float64:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", domain.ErrSerialization, v)
	}
}

// numericToFloatPtr нормализует nullable numeric-колонку в *float64.
func numericToFloatPtr(n pgtype.Numeric) (*float64, error) {
	v, err := NormalizeValue(n)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	f := v.(float64)
	return &f, nil
}

// numericToFloat нормализует NOT NULL numeric-колонку (price).
func numericToFloat(n pgtype.Numeric) (float64, error) {
	f, err := numericToFloatPtr(n)
	if err != nil {
		return 0, err
	}
	if f == nil {
		return 0, fmt.Errorf("%w: unexpected NULL numeric", domain.ErrSerialization)
	}
	return *f, nil
}

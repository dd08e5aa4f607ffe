package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-search-service/internal/core/domain"
)

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }

func TestApplyFiltersNoFilters(t *testing.T) {
	where, args := applyFilters(domain.SearchFilters{Limit: 20})

	assert.Equal(t, "WHERE listing_status = 'active'", where)
	assert.Empty(t, args)
}

func TestApplyFiltersAllFilters(t *testing.T) {
	filters := domain.SearchFilters{
		PriceMin:     intPtr(500000),
		PriceMax:     intPtr(1000000),
		MinBedrooms:  intPtr(3),
		MinBathrooms: floatPtr(2.5),
		PropertyType: "house",
		Limit:        20,
	}

	where, args := applyFilters(filters)

	// Порядок условий и аргументов должен совпадать: привязка позиционная.
	assert.Equal(t,
		"WHERE listing_status = 'active'"+
			" AND price >= $1"+
			" AND price <= $2"+
			" AND bedrooms >= $3"+
			" AND bathrooms >= $4"+
			" AND property_type ILIKE $5",
		where)
	require.Equal(t, []interface{}{500000, 1000000, 3, 2.5, "%house%"}, args)
}

func TestApplyFiltersPartial(t *testing.T) {
	filters := domain.SearchFilters{
		PriceMax:     intPtr(750000),
		PropertyType: "condo",
	}

	where, args := applyFilters(filters)

	// Отсутствующие фильтры не должны оставлять дыр в нумерации параметров.
	assert.Equal(t,
		"WHERE listing_status = 'active' AND price <= $1 AND property_type ILIKE $2",
		where)
	require.Equal(t, []interface{}{750000, "%condo%"}, args)
}

func TestApplyFiltersPropertyTypeWildcards(t *testing.T) {
	_, args := applyFilters(domain.SearchFilters{PropertyType: "town"})

	require.Len(t, args, 1)
	assert.Equal(t, "%town%", args[0])
}

func TestApplyFiltersZeroValuesArePresent(t *testing.T) {
	// Нулевое значение — это заданный фильтр, а не отсутствующий.
	where, args := applyFilters(domain.SearchFilters{PriceMin: intPtr(0)})

	assert.Contains(t, where, "price >= $1")
	require.Equal(t, []interface{}{0}, args)
}

package postgres

import (
	"fmt"
	"strings"

	"property-search-service/internal/core/domain"
)

// queryBuilder собирает конъюнктивный WHERE с позиционными параметрами.
// Порядок conditions и args строго совпадает: $n назначается в порядке
// добавления условий, от этого зависит корректность привязки параметров.
type queryBuilder struct {
	conditions []string
	args       []interface{}
	argID      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argID:      1,
		conditions: []string{"listing_status = 'active'"},
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argID))
	qb.args = append(qb.args, arg)
	qb.argID++
}

// build создает финальный WHERE и список аргументов в порядке добавления.
func (qb *queryBuilder) build() (string, []interface{}) {
	return "WHERE " + strings.Join(qb.conditions, " AND "), qb.args
}

// applyFilters разбирает фильтры и строит части запроса.
// Отсутствующие фильтры не попадают в условие вовсе.
func applyFilters(filters domain.SearchFilters) (string, []interface{}) {
	qb := newQueryBuilder()

	if filters.PriceMin != nil {
		qb.addCondition("%s >= $%d", "price", *filters.PriceMin)
	}
	if filters.PriceMax != nil {
		qb.addCondition("%s <= $%d", "price", *filters.PriceMax)
	}
	if filters.MinBedrooms != nil {
		qb.addCondition("%s >= $%d", "bedrooms", *filters.MinBedrooms)
	}
	if filters.MinBathrooms != nil {
		qb.addCondition("%s >= $%d", "bathrooms", *filters.MinBathrooms)
	}

	// Поиск подстроки без учета регистра
	if filters.PropertyType != "" {
		qb.addCondition("%s ILIKE $%d", "property_type", "%"+filters.PropertyType+"%")
	}

	return qb.build()
}

package postgres

import (
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-search-service/internal/core/domain"
)

func TestNormalizeValueNumeric(t *testing.T) {
	n := pgtype.Numeric{Int: big.NewInt(123450), Exp: -2, Valid: true}

	v, err := NormalizeValue(n)
	require.NoError(t, err)
	assert.Equal(t, 1234.5, v)
}

func TestNormalizeValueNullNumeric(t *testing.T) {
	v, err := NormalizeValue(pgtype.Numeric{})
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestNormalizeValueTimestamp(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 30, 15, 0, time.UTC)

	v, err := NormalizeValue(ts)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T12:30:15", v)
}

func TestNormalizeValuePassthrough(t *testing.T) {
	for _, value := range []any{"active", int64(42), 3.14, true, nil} {
		v, err := NormalizeValue(value)
		require.NoError(t, err)
		assert.Equal(t, value, v)
	}
}

func TestNormalizeValueUnsupportedType(t *testing.T) {
	_, err := NormalizeValue(struct{}{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSerialization)
}

func TestNumericToFloatRejectsNull(t *testing.T) {
	_, err := numericToFloat(pgtype.Numeric{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSerialization)
}

package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-search-service/internal/core/domain"
)

func TestValidatePayloadValid(t *testing.T) {
	body := []byte(`{
		"address": "1 Main St",
		"price": 500000,
		"latitude": 37.77,
		"longitude": -122.41,
		"bedrooms": 3,
		"bathrooms": 2.5,
		"square_feet": 1400,
		"property_type": "house"
	}`)

	assert.NoError(t, ValidatePayload(SchemaPropertyCreate, body))
}

func TestValidatePayloadRequiredOnly(t *testing.T) {
	body := []byte(`{"address":"1 Main St","price":500000,"latitude":37.77,"longitude":-122.41}`)

	assert.NoError(t, ValidatePayload(SchemaPropertyCreate, body))
}

func TestValidatePayloadAllMissing(t *testing.T) {
	err := ValidatePayload(SchemaPropertyCreate, []byte(`{}`))

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	// В сообщении должно быть названо каждое отсутствующее поле.
	for _, field := range []string{"address", "price", "latitude", "longitude"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestValidatePayloadPartiallyMissing(t *testing.T) {
	err := ValidatePayload(SchemaPropertyCreate, []byte(`{"address":"1 Main St","price":500000}`))

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Contains(t, err.Error(), "latitude")
	assert.Contains(t, err.Error(), "longitude")
	assert.NotContains(t, err.Error(), "address")
}

func TestValidatePayloadWrongTypes(t *testing.T) {
	body := []byte(`{"address":"1 Main St","price":"expensive","latitude":37.77,"longitude":-122.41}`)

	err := ValidatePayload(SchemaPropertyCreate, body)
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Contains(t, err.Error(), "price")
}

func TestValidatePayloadNegativePrice(t *testing.T) {
	body := []byte(`{"address":"1 Main St","price":-1,"latitude":37.77,"longitude":-122.41}`)

	err := ValidatePayload(SchemaPropertyCreate, body)
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestValidatePayloadInvalidJSON(t *testing.T) {
	err := ValidatePayload(SchemaPropertyCreate, []byte(`{not json`))

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestValidatePayloadUnknownSchema(t *testing.T) {
	err := ValidatePayload("Nonexistent/1.0.0", []byte(`{}`))

	require.Error(t, err)
	assert.False(t, domain.IsValidationError(err))
}

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "PropertyCreate/1.0.0", generateKeyFromPath("schemas/property-create.v1.json"))
}

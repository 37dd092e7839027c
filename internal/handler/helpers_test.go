package handler

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DecimalRegisteredAsNumeric(t *testing.T) {
	type payload struct {
		Amount decimal.Decimal `json:"amount" validate:"required,gt=0"`
	}

	// Without the custom type func, validator panics on decimal fields.
	assert.NoError(t, validate.Struct(payload{Amount: decimal.NewFromFloat(12.5)}))
	assert.Error(t, validate.Struct(payload{Amount: decimal.Zero}))
	assert.Error(t, validate.Struct(payload{Amount: decimal.NewFromFloat(-1)}))
}

func TestValidate_FieldErrorsUseJSONNames(t *testing.T) {
	type payload struct {
		Polygon json.RawMessage `json:"polygon" validate:"required,polygon"`
	}

	err := validate.Struct(payload{Polygon: json.RawMessage(`{"type":"Point","coordinates":[0,0]}`)})
	require.Error(t, err)

	verrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	require.Len(t, verrs, 1)
	assert.Equal(t, "polygon", verrs[0].Field())
	assert.Equal(t, "polygon", verrs[0].Tag())
}

package helper

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name  string `json:"name" validate:"notblank,max=10"`
	Role  string `json:"role" validate:"required,role"`
	Email string `json:"email" validate:"omitempty,email"`
	Ratio int    `json:"ratio" validate:"gte=1,lte=5"`
}

func TestValidator_Struct(t *testing.T) {
	v := NewValidator()

	assert.Nil(t, v.Struct(sampleForm{Name: "Ali", Role: "TEACHER", Ratio: 3}))

	errs := v.Struct(sampleForm{Name: "  ", Role: "JANITOR", Email: "nope", Ratio: 9})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"this field cannot be blank"}, errs["name"])
	assert.Equal(t, []string{"invalid role"}, errs["role"])
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "ratio")
	assert.Len(t, errs, 4)
}

func TestValidator_IsShared(t *testing.T) {
	assert.Same(t, NewValidator(), NewValidator())
}

type amountForm struct {
	Amount   decimal.Decimal  `json:"amount"   validate:"gt=0"`
	Discount *decimal.Decimal `json:"discount" validate:"omitempty,gte=0,lte=100"`
}

func TestValidator_DecimalAmounts(t *testing.T) {
	v := NewValidator()
	ten := decimal.NewFromInt(10)
	neg := decimal.RequireFromString("-0.01")

	assert.Nil(t, v.Struct(amountForm{Amount: decimal.RequireFromString("0.01")}))
	assert.Nil(t, v.Struct(amountForm{Amount: ten, Discount: &ten}))

	errs := v.Struct(amountForm{Amount: decimal.Zero, Discount: &neg})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "amount")
	assert.Contains(t, errs, "discount")
}

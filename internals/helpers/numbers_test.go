package helper

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.13, Round2(10.125000001))
	assert.Equal(t, 0.3, Round2(0.1+0.2))
	assert.Equal(t, -4.5, Round2(-4.499999))
}

func TestCents(t *testing.T) {
	assert.Equal(t, "10.13", Cents(decimal.RequireFromString("10.125")).StringFixed(2))
	assert.Equal(t, "-10.13", Cents(decimal.RequireFromString("-10.125")).StringFixed(2))
	assert.Nil(t, CentsPtr(nil))
	assert.Equal(t, "3.00", CentsPtr(ptrDec("2.999")).StringFixed(2))
}

func TestSumCents_NoBinaryDrift(t *testing.T) {
	// 0.1 + 0.2 in float64 is 0.30000000000000004
	got := SumCents(decimal.RequireFromString("0.1"), decimal.RequireFromString("0.2"))
	assert.True(t, got.Equal(decimal.RequireFromString("0.3")), got.String())
	assert.True(t, SumCents().IsZero())
}

func TestDecimal_JSONIsNumber(t *testing.T) {
	b, err := decimal.RequireFromString("1250.50").MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "1250.5", string(b))
}

func TestDocumentNumber(t *testing.T) {
	at := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	n := DocumentNumber("INV", at)
	assert.Regexp(t, regexp.MustCompile(`^INV-20240701-[0-9A-F]{6}$`), n)
	assert.NotEqual(t, n, DocumentNumber("INV", at))
}

func ptrDec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

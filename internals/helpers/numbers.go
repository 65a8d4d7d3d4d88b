package helper

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// amounts go out as JSON numbers, same as the numeric columns they come from
	decimal.MarshalJSONWithoutQuotes = true
}

// Cents rounds money and marks to two places, half away from zero.
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// CentsPtr is Cents for optional amounts.
func CentsPtr(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := Cents(*d)
	return &v
}

// SumCents adds amounts and rounds the result.
func SumCents(ds ...decimal.Decimal) decimal.Decimal {
	return Cents(decimal.Sum(decimal.Zero, ds...))
}

// Round2 rounds a measurement (height, rating) to two places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// DocumentNumber builds "<PREFIX>-YYYYMMDD-XXXXXX" with a random uppercase hex tail.
func DocumentNumber(prefix string, at time.Time) string {
	tail := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return prefix + "-" + at.Format("20060102") + "-" + tail
}

package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"schooloffice_backend/internals/features/finance/model"
)

func TestNotification_VerifySignature(t *testing.T) {
	n := Notification{OrderID: "RCPT-20260301-AB12", StatusCode: "200", GrossAmount: "150000.00"}
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + "server-key"))
	n.SignatureKey = hex.EncodeToString(sum[:])

	assert.True(t, n.VerifySignature("server-key"))
	assert.False(t, n.VerifySignature("other-key"))

	n.GrossAmount = "1.00"
	assert.False(t, n.VerifySignature("server-key"))

	n.SignatureKey = n.SignatureKey[:10]
	assert.False(t, n.VerifySignature("server-key"))
}

func TestChargeAmount_RoundsUp(t *testing.T) {
	assert.EqualValues(t, 150000, ChargeAmount(decimal.RequireFromString("150000.00")))
	assert.EqualValues(t, 1001, ChargeAmount(decimal.RequireFromString("1000.01")))
}

func TestNotification_AmountMatches(t *testing.T) {
	p := model.PaymentModel{PaymentAmount: decimal.RequireFromString("1000.01")}

	assert.True(t, Notification{GrossAmount: "1001.00"}.AmountMatches(p))
	assert.True(t, Notification{GrossAmount: "1001"}.AmountMatches(p))
	assert.False(t, Notification{GrossAmount: "1.00"}.AmountMatches(p))
	assert.False(t, Notification{GrossAmount: "abc"}.AmountMatches(p))
	assert.False(t, Notification{}.AmountMatches(p))
}

func TestPaymentStatusFor(t *testing.T) {
	cases := []struct {
		status, fraud string
		want          string
		final         bool
	}{
		{"settlement", "", model.PaymentCompleted, true},
		{"capture", "accept", model.PaymentCompleted, true},
		{"capture", "challenge", "", false},
		{"pending", "", "", false},
		{"deny", "", model.PaymentFailed, true},
		{"expire", "", model.PaymentFailed, true},
		{"cancel", "", model.PaymentFailed, true},
		{"refund", "", model.PaymentRefunded, true},
	}
	for _, tc := range cases {
		got, final := PaymentStatusFor(Notification{TransactionStatus: tc.status, FraudStatus: tc.fraud})
		assert.Equal(t, tc.final, final, tc.status)
		assert.Equal(t, tc.want, got, tc.status)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
}

package service

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schooloffice_backend/internals/configs"
	"schooloffice_backend/internals/features/finance/dto"
	"schooloffice_backend/internals/features/finance/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
)

/* =========================================================
   Gateway
========================================================= */

type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Gateway opens a hosted checkout for an order and returns its token and URL.
type Gateway interface {
	Checkout(orderID string, amount int64, itemName string, cust Customer) (token, redirectURL string, err error)
}

type MidtransGateway struct {
	client snap.Client
}

func NewMidtransGateway(cfg configs.MidtransConfig) *MidtransGateway {
	env := midtrans.Sandbox
	if cfg.UseProduction {
		env = midtrans.Production
	}
	g := &MidtransGateway{}
	g.client.New(cfg.ServerKey, env)
	return g
}

func (g *MidtransGateway) Checkout(orderID string, amount int64, itemName string, cust Customer) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{OrderID: orderID, GrossAmt: amount},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.FirstName,
			LName: cust.LastName,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:       orderID,
			Price:    amount,
			Qty:      1,
			Name:     truncate(itemName, 50),
			Category: "SCHOOL_FEE",
		}},
		CreditCard: &snap.CreditCardDetails{Secure: true},
	}
	resp, err := g.client.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

/* =========================================================
   Pay online
========================================================= */

// ChargeAmount is what the gateway is asked to collect: the balance rounded
// up to a whole currency unit.
func ChargeAmount(amount decimal.Decimal) int64 {
	return amount.Ceil().IntPart()
}

// StartOnlinePayment creates a PENDING ONLINE payment for the invoice's
// outstanding balance and opens a checkout for it. The receipt number is the
// gateway order id.
func StartOnlinePayment(ctx context.Context, db *gorm.DB, gw Gateway, invoiceID uuid.UUID, actor uuid.UUID) (*dto.OnlinePaymentResponse, error) {
	var (
		p    model.PaymentModel
		cust Customer
		inv  *model.FeeInvoiceModel
	)
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if inv, err = lockInvoice(tx, invoiceID); err != nil {
			return err
		}
		if inv.FeeInvoiceStatus == model.InvoiceCancelled {
			return apperr.Conflict("a cancelled invoice cannot be paid")
		}
		balance := inv.Balance()
		if !balance.IsPositive() {
			return apperr.Conflict("invoice has no outstanding balance")
		}
		if err := tx.Table("students s").
			Select("u.user_first_name AS first_name, u.user_last_name AS last_name, COALESCE(u.user_email, '') AS email, COALESCE(u.user_phone, '') AS phone").
			Joins("JOIN users u ON u.user_id = s.student_user_id").
			Where("s.student_id = ?", inv.FeeInvoiceStudentID).
			Scan(&cust).Error; err != nil {
			return err
		}
		p = model.PaymentModel{
			PaymentReceiptNumber: helper.DocumentNumber("RCPT", time.Now()),
			PaymentInvoiceID:     inv.FeeInvoiceID,
			PaymentDate:          datatypes.Date(dbtime.Today()),
			PaymentAmount:        balance,
			PaymentMethod:        model.MethodOnline,
			PaymentStatus:        model.PaymentPending,
		}
		if actor != uuid.Nil {
			p.PaymentReceivedBy = &actor
		}
		return tx.Create(&p).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "start online payment")
	}

	token, url, err := gw.Checkout(p.PaymentReceiptNumber, ChargeAmount(p.PaymentAmount), "Invoice "+inv.FeeInvoiceNumber, cust)
	if err != nil {
		if _, uerr := UpdatePaymentStatus(ctx, db, p.PaymentID, model.PaymentFailed); uerr != nil {
			log.Printf("[WARN] mark payment %s failed: %v", p.PaymentID, uerr)
		}
		return nil, apperr.Internal("payment gateway unavailable", err)
	}
	return &dto.OnlinePaymentResponse{Payment: p, SnapToken: token, RedirectURL: url}, nil
}

/* =========================================================
   Notification webhook
========================================================= */

type Notification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

// VerifySignature checks sha512(order_id + status_code + gross_amount + server_key).
func (n Notification) VerifySignature(serverKey string) bool {
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + serverKey))
	want := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(want), []byte(n.SignatureKey)) == 1
}

// AmountMatches reports whether the notified gross amount is the one charged
// for p.
func (n Notification) AmountMatches(p model.PaymentModel) bool {
	gross, err := decimal.NewFromString(n.GrossAmount)
	if err != nil {
		return false
	}
	return gross.Equal(decimal.NewFromInt(ChargeAmount(p.PaymentAmount)))
}

// PaymentStatusFor maps a gateway transaction status; ok=false means the
// notification carries no final outcome.
func PaymentStatusFor(n Notification) (string, bool) {
	switch n.TransactionStatus {
	case "capture":
		if n.FraudStatus == "challenge" {
			return "", false
		}
		return model.PaymentCompleted, true
	case "settlement":
		return model.PaymentCompleted, true
	case "deny", "cancel", "expire", "failure":
		return model.PaymentFailed, true
	case "refund", "partial_refund":
		return model.PaymentRefunded, true
	default:
		return "", false
	}
}

// HandleNotification logs the callback and settles the matching payment.
func HandleNotification(ctx context.Context, db *gorm.DB, serverKey string, raw []byte) error {
	var n Notification
	if err := json.Unmarshal(raw, &n); err != nil || n.OrderID == "" {
		return apperr.Validation("order_id", "invalid notification payload")
	}
	if !n.VerifySignature(serverKey) {
		return apperr.Forbidden("invalid notification signature")
	}

	ev := model.PaymentGatewayEventModel{
		GatewayEventProvider: "midtrans",
		GatewayEventOrderID:  n.OrderID,
		GatewayEventType:     n.TransactionStatus,
		GatewayEventPayload:  datatypes.JSON(raw),
		GatewayEventStatus:   model.GatewayEventReceived,
	}
	if n.TransactionID != "" {
		ev.GatewayEventTransactionID = &n.TransactionID
	}
	if err := db.WithContext(ctx).Create(&ev).Error; err != nil {
		return errors.Wrap(err, "log gateway event")
	}

	procErr := processNotification(ctx, db, n, &ev)
	now := time.Now()
	ev.GatewayEventProcessedAt = &now
	if procErr != nil {
		msg := procErr.Error()
		ev.GatewayEventStatus, ev.GatewayEventError = model.GatewayEventFailed, &msg
	}
	if err := db.WithContext(ctx).Model(&ev).Select(
		"gateway_event_payment_id", "gateway_event_status", "gateway_event_error", "gateway_event_processed_at",
	).Updates(&ev).Error; err != nil {
		log.Printf("[WARN] update gateway event %s: %v", ev.GatewayEventID, err)
	}
	return procErr
}

func processNotification(ctx context.Context, db *gorm.DB, n Notification, ev *model.PaymentGatewayEventModel) error {
	var p model.PaymentModel
	if err := db.WithContext(ctx).Where("payment_receipt_number = ?", n.OrderID).Take(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("payment")
		}
		return err
	}
	ev.GatewayEventPaymentID = &p.PaymentID

	status, final := PaymentStatusFor(n)
	if !final || status == p.PaymentStatus {
		ev.GatewayEventStatus = model.GatewayEventIgnored
		return nil
	}
	if !n.AmountMatches(p) {
		return apperr.Validation("gross_amount", "gross amount does not match the payment")
	}
	if n.TransactionID != "" {
		if err := db.WithContext(ctx).Model(&p).Update("payment_transaction_id", n.TransactionID).Error; err != nil {
			return err
		}
	}
	if _, err := UpdatePaymentStatus(ctx, db, p.PaymentID, status); err != nil {
		return fmt.Errorf("settle %s: %w", n.OrderID, err)
	}
	ev.GatewayEventStatus = model.GatewayEventProcessed
	return nil
}

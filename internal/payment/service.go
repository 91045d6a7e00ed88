package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/iic-bit/IIC-Backend/config"
	"github.com/iic-bit/IIC-Backend/internal/auditlog"
	"github.com/iic-bit/IIC-Backend/internal/event"
)

var (
	ErrNoFee            = errors.New("event has no registration fee")
	ErrInvalidSignature = errors.New("payment signature verification failed")
)

type Service struct {
	repo     *Repository
	events   *event.Service
	client   *razorpay.Client
	cfg      *config.Config
	auditSvc auditlog.Service
}

func NewService(repo *Repository, events *event.Service, cfg *config.Config, auditSvc auditlog.Service) *Service {
	client := razorpay.NewClient(cfg.RazorpayKey, cfg.RazorpaySecret)
	return &Service{
		repo:     repo,
		events:   events,
		client:   client,
		cfg:      cfg,
		auditSvc: auditSvc,
	}
}

// CreateOrder raises a Razorpay order for one registration batch of the
// event. Amount is fee times group size.
func (s *Service) CreateOrder(eventID uint, req CreateOrderRequest, ip string) (*CreateOrderResponse, error) {
	ctx := context.Background()

	ev, err := s.events.GetEventByID(eventID)
	if err != nil {
		return nil, err
	}
	if ev.Fee == nil || *ev.Fee <= 0 {
		return nil, ErrNoFee
	}

	amount := *ev.Fee * float64(ev.GroupSize)
	amountInPaise := int(amount * 100)

	data := map[string]interface{}{
		"amount":          amountInPaise,
		"currency":        "INR",
		"payment_capture": 1,
		"notes": map[string]interface{}{
			"event_id": eventID,
			"email":    req.Email,
		},
	}

	order, err := s.client.Order.Create(data, nil)
	if err != nil {
		s.auditSvc.LogAction(ctx, nil, &eventID, "PAYMENT_INITIATED", map[string]interface{}{
			"amount": amount,
			"error":  err.Error(),
		}, ip, "failure")
		return nil, fmt.Errorf("razorpay order creation failed: %w", err)
	}

	orderID, ok := order["id"].(string)
	if !ok {
		return nil, errors.New("unable to extract order_id from Razorpay response")
	}

	p := &Payment{
		EventID: eventID,
		OrderID: orderID,
		Amount:  amount,
		Email:   req.Email,
		Status:  StatusPending,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, fmt.Errorf("failed to create payment record: %w", err)
	}

	s.auditSvc.LogAction(ctx, nil, &eventID, "PAYMENT_INITIATED", map[string]interface{}{
		"order_id": orderID,
		"amount":   amount,
	}, ip, "success")

	return &CreateOrderResponse{
		OrderID:     orderID,
		Amount:      amount,
		Currency:    "INR",
		RazorpayKey: s.cfg.RazorpayKey,
	}, nil
}

// VerifyPayment checks the Razorpay HMAC signature and marks the payment
// captured. The payment id can then be attached to a registration batch as
// transaction_id.
func (s *Service) VerifyPayment(req VerifyPaymentRequest, ip string) error {
	ctx := context.Background()

	p, err := s.repo.FindByOrderID(req.OrderID)
	if err != nil {
		return errors.New("payment order not found")
	}

	mac := hmac.New(sha256.New, []byte(s.cfg.RazorpaySecret))
	mac.Write([]byte(req.OrderID + "|" + req.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(req.RazorpaySig)) {
		p.Status = StatusFailed
		_ = s.repo.Update(p)

		s.auditSvc.LogAction(ctx, nil, &p.EventID, "PAYMENT_VERIFIED", map[string]interface{}{
			"order_id": req.OrderID,
			"error":    "signature mismatch",
		}, ip, "failure")
		return ErrInvalidSignature
	}

	p.PaymentID = req.PaymentID
	p.Status = StatusSuccess
	if err := s.repo.Update(p); err != nil {
		return err
	}

	s.auditSvc.LogAction(ctx, nil, &p.EventID, "PAYMENT_VERIFIED", map[string]interface{}{
		"order_id":   req.OrderID,
		"payment_id": req.PaymentID,
		"amount":     p.Amount,
	}, ip, "success")

	return nil
}

func (s *Service) ListByEvent(eventID uint) ([]Payment, error) {
	return s.repo.ListByEvent(eventID)
}

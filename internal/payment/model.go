package payment

import (
	"time"
)

// Payment statuses
const (
	StatusPending = "PENDING"
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Payment tracks a Razorpay order raised for an event's registration fee.
// The resulting payment id is what registrants submit as transaction_id.
type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"not null;index" json:"event_id"`
	OrderID   string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"order_id"`
	PaymentID string    `gorm:"type:varchar(100)" json:"payment_id,omitempty"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Email     string    `gorm:"type:varchar(255)" json:"email"`
	Status    string    `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type CreateOrderRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type CreateOrderResponse struct {
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	RazorpayKey string  `json:"razorpay_key"`
}

type VerifyPaymentRequest struct {
	OrderID     string `json:"razorpayOrderId" binding:"required"`
	PaymentID   string `json:"razorpayPaymentId" binding:"required"`
	RazorpaySig string `json:"razorpaySig" binding:"required"`
}

package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Provider is the constant identifier of the simulated payment provider.
const Provider = "MockProvider"

func init() {
	// Amounts travel as JSON numbers, never strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Status string

const (
	Status_Pending   Status = "Pending"
	Status_Succeeded Status = "Succeeded"
	Status_Failed    Status = "Failed"
)

// IsTerminal reports whether no further status transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Status_Succeeded || s == Status_Failed
}

type Payment struct {
	PaymentID     uuid.UUID       `db:"payment_id" json:"paymentId"`
	OrderID       uuid.UUID       `db:"order_id" json:"orderId"`
	UserID        uuid.UUID       `db:"user_id" json:"userId"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	Currency      string          `db:"currency" json:"currency"`
	Status        Status          `db:"status" json:"status"`
	Provider      string          `db:"provider" json:"provider"`
	FailureReason *string         `db:"failure_reason" json:"failureReason,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`
}

func NewPayment(orderID, userID uuid.UUID, amount decimal.Decimal, currency string) *Payment {
	return &Payment{
		PaymentID: uuid.New(),
		OrderID:   orderID,
		UserID:    userID,
		Amount:    amount,
		Currency:  currency,
		Status:    Status_Pending,
		Provider:  Provider,
		CreatedAt: time.Now().UTC(),
	}
}

// MarkSucceeded transitions a pending payment to Succeeded.
func (p *Payment) MarkSucceeded() {
	p.Status = Status_Succeeded
	p.FailureReason = nil
}

// MarkFailed transitions a pending payment to Failed with the given reason.
func (p *Payment) MarkFailed(reason string) {
	p.Status = Status_Failed
	p.FailureReason = &reason
}

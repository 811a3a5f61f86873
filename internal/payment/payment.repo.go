package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/k-code-yt/payment-service/pkg/db/postgres"
	pkgerrors "github.com/k-code-yt/payment-service/pkg/errors"
)

// Repository is the durable mapping orderID -> Payment. The unique index on
// order_id is the idempotency guarantee under redelivery; handlers must not
// rely on FindByOrder alone.
type Repository interface {
	FindByOrder(ctx context.Context, orderID uuid.UUID) (*Payment, error)
	Insert(ctx context.Context, p *Payment) error
	UpdateStatus(ctx context.Context, p *Payment) error
}

type PaymentRepo struct {
	db        *sqlx.DB
	tableName string
}

func NewPaymentRepo(db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{
		db:        db,
		tableName: "payments",
	}
}

func (r *PaymentRepo) FindByOrder(ctx context.Context, orderID uuid.UUID) (*Payment, error) {
	p := &Payment{}
	query := fmt.Sprintf("SELECT payment_id, order_id, user_id, amount, currency, status, provider, failure_reason, created_at FROM %s WHERE order_id = $1", r.tableName)
	err := r.db.GetContext(ctx, p, query, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, pkgerrors.NewStoreUnavailableError(err)
	}
	return p, nil
}

func (r *PaymentRepo) Insert(ctx context.Context, p *Payment) error {
	query := fmt.Sprintf("INSERT INTO %s (payment_id, order_id, user_id, amount, currency, status, provider, failure_reason, created_at) VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)", r.tableName)
	_, err := r.db.ExecContext(ctx, query,
		p.PaymentID, p.OrderID, p.UserID, p.Amount, p.Currency, p.Status, p.Provider, p.FailureReason, p.CreatedAt)
	if err != nil {
		if postgres.IsDuplicateKeyErr(err) {
			return pkgerrors.NewDuplicateOrderError(err)
		}
		return pkgerrors.NewStoreUnavailableError(err)
	}
	return nil
}

// UpdateStatus persists the Pending -> terminal transition. The status guard
// in the WHERE clause rejects transitions out of a terminal state.
func (r *PaymentRepo) UpdateStatus(ctx context.Context, p *Payment) error {
	query := fmt.Sprintf("UPDATE %s SET status = $1, failure_reason = $2 WHERE payment_id = $3 AND status = $4", r.tableName)
	res, err := r.db.ExecContext(ctx, query, p.Status, p.FailureReason, p.PaymentID, Status_Pending)
	if err != nil {
		return pkgerrors.NewStoreUnavailableError(err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return pkgerrors.NewStoreUnavailableError(err)
	}
	if rows == 0 {
		return pkgerrors.NewTerminalStateError(fmt.Errorf("payment %s is not pending", p.PaymentID))
	}
	return nil
}

package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/k-code-yt/payment-service/internal/payment"
)

type PaymentHandler struct {
	repo payment.Repository
}

func NewPaymentHandler(repo payment.Repository) *PaymentHandler {
	return &PaymentHandler{repo: repo}
}

func (h *PaymentHandler) GetByOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(r.PathValue("orderId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid orderId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	p, err := h.repo.FindByOrder(ctx, orderID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load payment")
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "payment not found")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

package payment

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	apperrors "fetan/pkg/errors"
)

// Methods accepted at checkout.
var Methods = []string{"telebirr", "chapa", "cbe"}

func IsMethod(m string) bool {
	for _, method := range Methods {
		if method == m {
			return true
		}
	}
	return false
}

type Result struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	Message       string `json:"message,omitempty"`
}

// Gateway simulates a payment provider. Checkout always succeeds after a
// fixed delay; no real settlement happens. A production integration would
// exchange this for a Chapa checkout URL or a Telebirr deep link.
type Gateway struct {
	delay time.Duration
}

func NewGateway(delay time.Duration) *Gateway {
	return &Gateway{delay: delay}
}

func (g *Gateway) Checkout(ctx context.Context, amount float64, method string) (*Result, error) {
	if amount <= 0 {
		return nil, apperrors.Validation("Amount must be positive", nil)
	}
	if !IsMethod(method) {
		return nil, apperrors.Validation("Unsupported payment method", nil)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(g.delay):
	}

	return &Result{
		Success:       true,
		TransactionID: fmt.Sprintf("TXN-%06d", rand.Intn(1000000)),
		Message:       "Payment processed successfully",
	}, nil
}

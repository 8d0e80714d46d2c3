package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/refund"

	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

// StripeProvider issues refunds for returned tickets through Stripe.
type StripeProvider struct {
	secretKey string
}

func NewStripeProvider(secretKey string) ports.RefundProvider {
	stripe.Key = secretKey
	return &StripeProvider{secretKey: secretKey}
}

// Refund reverses the charge behind paymentID. A non-positive amount refunds
// the full charge; Stripe expects amounts in the currency's minor unit.
func (p *StripeProvider) Refund(ctx context.Context, paymentID string, amount float64) (string, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentID),
	}
	params.Context = ctx

	if amount > 0 {
		params.Amount = stripe.Int64(int64(amount * 100))
	}

	r, err := refund.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe refund error: %w", err)
	}

	return r.ID, nil
}

package payment

import (
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// IntentService creates charge intents with the payment provider.
type IntentService interface {
	// CreateIntent forwards a price in major currency units and returns the
	// provider's client secret.
	CreateIntent(price float64) (string, error)
}

// StripeIntentService is the production implementation backed by Stripe.
// The package-level stripe.Key is set once at startup.
type StripeIntentService struct {
	Currency string
}

// NewStripeIntentService creates an IntentService charging in the given currency.
func NewStripeIntentService(currency string) *StripeIntentService {
	if currency == "" {
		currency = "usd"
	}
	return &StripeIntentService{Currency: currency}
}

// CreateIntent creates a PaymentIntent for the given price.
func (s *StripeIntentService) CreateIntent(price float64) (string, error) {
	if price <= 0 {
		return "", errors.New("invalid payment amount")
	}

	// Stripe amounts are in the smallest currency unit.
	amount := int64(math.Round(price * 100))

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(s.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}

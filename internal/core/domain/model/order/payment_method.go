package order

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPaymentMethodIsInvalid is returned when a payment method string is not
// one of the accepted values after normalization.
var ErrPaymentMethodIsInvalid = errors.New("payment method is invalid")

// PaymentMethod is the closed set of payment options an order accepts.
type PaymentMethod int

const (
	// UnknownPaymentMethod represents an invalid or undefined payment method.
	UnknownPaymentMethod PaymentMethod = iota

	// PaymentCash is payment in cash on delivery.
	PaymentCash

	// PaymentPix is an instant bank transfer.
	PaymentPix

	// PaymentCard is payment by debit or credit card.
	PaymentCard
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentCash: "cash",
		PaymentPix:  "pix",
		PaymentCard: "card",
	}
}

// PaymentMethodFromString parses a payment method from free text.
// The input is trimmed and lowercased before matching, so " PIX " parses to
// PaymentPix. Returns ErrPaymentMethodIsInvalid for anything outside the
// accepted set.
func PaymentMethodFromString(raw string) (PaymentMethod, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	for method, str := range getPaymentMethodStrings() {
		if str == normalized {
			return method, nil
		}
	}

	return UnknownPaymentMethod, fmt.Errorf("%w: %q", ErrPaymentMethodIsInvalid, raw)
}

// Validate checks if the PaymentMethod is one of the accepted values.
func (p PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[p]; !ok {
		return fmt.Errorf("%w: %d", ErrPaymentMethodIsInvalid, p)
	}
	return nil
}

// String returns the normalized lowercase form of the payment method.
// Implements fmt.Stringer; invalid values return "unknown".
func (p PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[p]; ok {
		return str
	}
	return "unknown"
}

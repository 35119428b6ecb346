package errs

import "errors"

// Domain-specific sentinel errors surfaced by the store. All three are
// caller-correctable; none are fatal to the store itself.
var (
	// ErrInvalidInput marks a non-positive price or quantity that slipped
	// past boundary validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyCart marks a checkout against an absent or empty cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidDiscountCode covers both an unknown code and an already
	// used one; the two cases are deliberately not distinguished so the
	// response never leaks whether a code exists.
	ErrInvalidDiscountCode = errors.New("invalid or already used discount code")
)

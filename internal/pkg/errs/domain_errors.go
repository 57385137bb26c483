package errs

import "errors"

// Sentinel errors shared across the gateway layers
var (
	// Pricing errors
	ErrUnknownModel = errors.New("unknown model")

	// Gate errors
	ErrPaymentProcessing = errors.New("payment processing failed")

	// Provider errors
	ErrProviderNotConfigured = errors.New("provider not configured")
	ErrUnsupportedModel      = errors.New("unsupported model")
	ErrProviderFailure       = errors.New("provider request failed")
)

package services

import "errors"

var (
	// ErrInvalidInput marks input rejected before any external call.
	ErrInvalidInput = errors.New("invalid input")

	ErrMissingSignature = errors.New("missing signature")
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrMalformedPayload marks a webhook body that passed signature checks but could not be decoded.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrInvalidData marks a sheet value that cannot be parsed.
	ErrInvalidData = errors.New("invalid sheet data")
)

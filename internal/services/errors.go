package services

import "errors"

// Error kinds the HTTP layer maps to status codes. Wrapped with %w so
// callers can errors.Is them.
var (
	// ErrGenerationFailed covers every model-backend failure: network,
	// auth/quota, content filter, empty response.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrMalformedResponse means the backend answered but the text could not
	// be parsed into the declared schema.
	ErrMalformedResponse = errors.New("AI response was not valid structured content")

	// ErrPersistence means the generated record could not be saved. Distinct
	// from generation errors so a client can tell "generated but not saved"
	// from "generation itself failed".
	ErrPersistence = errors.New("failed to save application")
)

package tutor

import "errors"

// Common errors returned by the tutor package
var (
	// ErrGenerationFailed is returned when a request to the language model
	// fails for any general reason (network, auth, quota).
	ErrGenerationFailed = errors.New("failed to generate content")

	// ErrInvalidResponse is returned when the model response cannot be
	// parsed or does not match the expected schema.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model blocks the content due to
	// safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrNoImageData is returned when an image operation succeeds but the
	// response carries no inline image data.
	ErrNoImageData = errors.New("no image data in response")

	// ErrInvalidConfig is returned when the service configuration is invalid.
	ErrInvalidConfig = errors.New("invalid tutor service configuration")
)

// Package auth provides authentication for the tutoring API: a bcrypt
// verifier for the configured access key, and an HMAC-signed JWT service for
// the session tokens the key is exchanged for.
package auth

import "errors"

// Common errors returned by the auth package
var (
	// ErrInvalidToken is returned when a token is malformed or its signature
	// does not verify.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry has passed.
	ErrExpiredToken = errors.New("token expired")

	// ErrTokenNotYetValid is returned when a token's not-before is in the future.
	ErrTokenNotYetValid = errors.New("token not yet valid")

	// ErrWrongTokenType is returned when a token of the wrong type is presented.
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrInvalidAccessKey is returned when the presented access key does not
	// match the configured hash.
	ErrInvalidAccessKey = errors.New("invalid access key")
)

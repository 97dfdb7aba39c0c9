// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the internal tutoring service, translating HTTP concerns to business
// operations.
//
// This layer is also the non-throwing boundary the tutoring clients expect:
// when the tutor service fails, handlers log the real (redacted) error and
// respond with the operation's fixed fallback body instead of an error
// status. See errors.go for the mapping.
package api

// Package devmode provides shared configuration for development mode across client and server.
package devmode

// APIKey is the shared development mode API key used by both client and server.
// This key is intentionally obvious and should never be used in production.
const APIKey = "LOCAL_DEV_MODE_NOT_FOR_PRODUCTION"

// UserID is the user every dev-key request resolves to.
const UserID = "innsight-dev"

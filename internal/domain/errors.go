package domain

import "errors"

// ErrMalformedRecord is returned by the store when a raw activity record is
// missing a required field or carries a value that violates the data
// contract (unparseable timestamp, negative distance, elapsed < moving).
// A malformed record is fatal for the whole load; a partially valid record
// has no defined meaning downstream.
// Handlers should map this to HTTP 422.
var ErrMalformedRecord = errors.New("malformed activity record")

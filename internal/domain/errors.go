package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// record does not exist. Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. negative expense, unknown weather label).
// Handlers map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrFetchFailed wraps record-store read failures. The original store
// error stays in the chain; callers never retry automatically.
var ErrFetchFailed = errors.New("fetch failed")

// ErrNoData is returned when an export is requested over zero eligible
// records. It is a user-visible condition, not a system fault; handlers
// map it to HTTP 404 with a descriptive body.
var ErrNoData = errors.New("no data to export")

// ErrWriteFailed is returned when an export artifact cannot be persisted
// to temporary storage.
var ErrWriteFailed = errors.New("write failed")

// ErrInvalidData is reserved for malformed record content detected during
// export. Upstream validation should make this unreachable, but exporters
// return it rather than panic when it is not.
var ErrInvalidData = errors.New("invalid data")

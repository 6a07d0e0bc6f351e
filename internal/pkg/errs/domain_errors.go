package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Credit ledger errors
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrInvalidCreditAmount = errors.New("invalid credit amount")

	// Booking errors
	ErrBookingNotFound         = errors.New("booking not found")
	ErrCapacityExceeded        = errors.New("slot capacity exceeded")
	ErrBookingAlreadyCancelled = errors.New("booking already cancelled")
	ErrBookingInPast           = errors.New("booking date has passed")
	ErrBookingForbidden        = errors.New("booking belongs to another user")
	ErrPayAtVenueForbidden     = errors.New("pay at venue requires admin")
	ErrCreditsNotAllowed       = errors.New("credits cannot pay for this station")

	// Membership errors
	ErrTierNotFound = errors.New("membership tier not found")

	// Payment processor errors
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrUpstreamFailure  = errors.New("upstream failure")

	// Idempotency errors
	ErrIdempotencyKeyReused   = errors.New("idempotency key reused with different request")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

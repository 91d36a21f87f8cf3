package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Profile errors
	ErrProfileNotFound      = errors.New("health profile not found")
	ErrProfileAlreadyExists = errors.New("health profile already exists")

	// Persona errors
	ErrPersonaStyleUnknown = errors.New("unknown persona style")

	// Push errors
	ErrPushRecordNotFound = errors.New("push record not found")
	ErrUnknownPushType    = errors.New("unknown push type")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

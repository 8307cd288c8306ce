package errs

import "errors"

// Domain-specific sentinel errors for the quote usecase layers
var (
	ErrAirportNotFound         = errors.New("airport not found")
	ErrQuoteNotFound           = errors.New("quote not found")
	ErrNoSuitableAircraft      = errors.New("no suitable aircraft found for this journey")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

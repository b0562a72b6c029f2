package validator

import "errors"

// ValidationError is the outcome of a failed Validate call: every failing
// rule's message for that call, joined by ", ", in rule insertion order.
// There is deliberately no per-field structure; the joined string is the
// whole contract.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is (or wraps) a ValidationError,
// distinguishing data-validation failures from other error classes.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// AsValidationError extracts a ValidationError from err, if one is present
// in its chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

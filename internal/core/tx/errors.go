package tx

// ValidationError reports caller-correctable input: malformed amounts,
// contradictory bounded sides, conflicting shaping sources and the like.
// The reason always names the offending field or rule.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a ValidationError with the given reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// FatalPreparationError indicates a required derivable value (fee,
// sequence or ledger validity window) was missing after reconciliation.
// It signals an upstream contract violation rather than bad user input
// and must not be swallowed.
type FatalPreparationError struct {
	Reason string
}

func (e *FatalPreparationError) Error() string {
	return e.Reason
}

// NewFatalPreparationError creates a FatalPreparationError with the given reason.
func NewFatalPreparationError(reason string) *FatalPreparationError {
	return &FatalPreparationError{Reason: reason}
}

package cancellation

import "errors"

// ErrContractNotFound is returned when the workflow targets a missing contract
var ErrContractNotFound = errors.New("contract not found")

// ErrReturnNotFound is returned when an approval decision targets a missing record
var ErrReturnNotFound = errors.New("return record not found")

// ValidationError signals user input that fails a precondition. The
// operation is blocked before any persistence call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StateError signals an operation invoked while the derived stage does
// not permit it. The workflow state is left unchanged.
type StateError struct {
	Message string
}

func (e *StateError) Error() string {
	return e.Message
}

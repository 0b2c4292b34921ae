package model

import "fmt"

// LoadError reports a file that could not be opened as a supported image.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ValidationError reports a request that cannot be carried out as given:
// an unsupported save extension, a crop without a selection, an impossible
// mode conversion.
type ValidationError struct {
	Op     string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IOError reports a failed filesystem write, delete or move.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ConfirmationRequired is returned when an operation needs an explicit
// yes from the user. Re-invoke the operation with confirmation to proceed.
type ConfirmationRequired struct {
	Op     string
	Prompt string
}

func (e *ConfirmationRequired) Error() string {
	return fmt.Sprintf("%s: confirmation required: %s", e.Op, e.Prompt)
}

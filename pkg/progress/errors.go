package progress

import "fmt"

// InvalidArgumentError reports a malformed construction argument, option
// value or Advance argument. It is the only error kind this package
// produces itself; write failures from the output stream are passed through
// unchanged.
type InvalidArgumentError struct {
	// Option names the offending argument, e.g. "barLength" or "total".
	Option string

	// Reason describes the violated constraint.
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Option, e.Reason)
}

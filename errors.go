package metriki

import "fmt"

// KindMismatchError is the panic payload raised when a get-or-create accessor
// is called for a name already bound to a different instrument kind. It is a
// programming error, not a recoverable condition: the accessor can neither
// return the existing instrument (wrong type) nor shadow it with a new one.
type KindMismatchError struct {
	Name       string
	Registered MetricKind
	Requested  MetricKind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("metriki: metric %q already registered as %s, requested as %s",
		e.Name, e.Registered, e.Requested)
}

package hook

import (
	"fmt"
	"strings"
)

// PhaseMismatchError reports a hook mounted on the wrong lifecycle phase.
type PhaseMismatchError struct {
	Label    string
	Expected Phase
	Actual   Phase
}

func (e *PhaseMismatchError) Error() string {
	return fmt.Sprintf("the '%s' hook can only be used as a '%s' hook (got '%s')",
		e.Label, e.Expected, e.Actual)
}

// OperationMismatchError reports a hook attached to a service method
// outside its allowed set.
type OperationMismatchError struct {
	Label   string
	Allowed []Operation
	Actual  Operation
}

func (e *OperationMismatchError) Error() string {
	names := make([]string, len(e.Allowed))
	for i, op := range e.Allowed {
		names[i] = op.String()
	}
	return fmt.Sprintf("the '%s' hook can only be used on the [%s] service method(s) (got '%s')",
		e.Label, strings.Join(names, ", "), e.Actual)
}

// CheckContext validates that hc matches the phase and operations a hook
// supports, identifying the hook by label in any failure. An empty phase
// skips the phase check. An empty ops list means the hook runs on any
// operation; it does not forbid all of them. CheckContext never mutates
// hc and returns nil on success.
func CheckContext(hc *Context, label string, phase Phase, ops ...Operation) error {
	if phase != "" && hc.Phase != phase {
		return &PhaseMismatchError{Label: label, Expected: phase, Actual: hc.Phase}
	}
	if len(ops) == 0 {
		return nil
	}
	for _, op := range ops {
		if hc.Operation == op {
			return nil
		}
	}
	return &OperationMismatchError{Label: label, Allowed: ops, Actual: hc.Operation}
}

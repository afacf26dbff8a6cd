// Package hook models one call into a service lifecycle hook and the
// accessors hooks use to validate and reshape its payload.
package hook

// -----------------------------------------------------------------------------
// Phase
// -----------------------------------------------------------------------------

// Phase identifies when a hook runs relative to the service operation.
type Phase string

const (
	PhaseBefore Phase = "before"
	PhaseAfter  Phase = "after"
)

func (p Phase) String() string {
	return string(p)
}

// -----------------------------------------------------------------------------
// Operation
// -----------------------------------------------------------------------------

// Operation is the service method a hook invocation wraps.
type Operation string

const (
	OpFind   Operation = "find"
	OpGet    Operation = "get"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpPatch  Operation = "patch"
	OpRemove Operation = "remove"
)

func (o Operation) String() string {
	return string(o)
}

// -----------------------------------------------------------------------------
// Context
// -----------------------------------------------------------------------------

// Context carries one hook invocation. The hosting framework constructs
// it per call and owns its lifetime; this package reads and mutates its
// fields in place and never retains a reference.
//
// Data holds the inbound payload of before hooks. Result holds the
// operation outcome of after hooks; for find it may be a paginated
// envelope (*Page, or a raw map exposing "items"/"total") or a bare
// collection. Params is an opaque bag for caller metadata such as the
// query that produced the invocation.
type Context struct {
	Service   string
	Phase     Phase
	Operation Operation
	Data      any
	Result    any
	Params    map[string]any
}

// NewBefore builds an invocation for the before phase.
func NewBefore(service string, op Operation, data any) *Context {
	return &Context{Service: service, Phase: PhaseBefore, Operation: op, Data: data}
}

// NewAfter builds an invocation for the after phase.
func NewAfter(service string, op Operation, result any) *Context {
	return &Context{Service: service, Phase: PhaseAfter, Operation: op, Result: result}
}

// Page is the paginated envelope produced by find operations.
type Page struct {
	Items []any `json:"items"`
	Total int   `json:"total"`
	Limit int   `json:"limit,omitempty"`
	Skip  int   `json:"skip,omitempty"`
}

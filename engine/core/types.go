package core

// -----------------------------------------------------------------------------
// Payloads
// -----------------------------------------------------------------------------

// Input is the dynamic payload a service operation receives. Hooks read
// and mutate it in place; there is no fixed schema.
type Input map[string]any

// Output is the dynamic result a service operation produces.
type Output map[string]any

// AsMap exposes the underlying map without copying.
func (i Input) AsMap() map[string]any {
	return map[string]any(i)
}

// AsMap exposes the underlying map without copying.
func (o Output) AsMap() map[string]any {
	return map[string]any(o)
}

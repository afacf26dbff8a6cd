// Package dotpath reads and writes nested map values addressed by
// dot-separated paths such as "user.address.city".
//
// Paths carry no escaping and no array-index segments; every segment is a
// literal map key. Empty segments are legal and address the literal ""
// key, so callers wanting stricter parsing must validate paths themselves.
package dotpath

import "strings"

// Get walks path through root and reports whether every segment resolved.
// A missing key or a non-map intermediate yields (nil, false); reads never
// mutate root. A present key holding nil yields (nil, true), which is how
// callers tell "set to nil" apart from "not there".
func Get(root map[string]any, path string) (any, bool) {
	var current any = root
	for _, seg := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = m[seg]; !ok {
			return nil, false
		}
	}
	return current, true
}

// Value is the permissive form of Get: it returns nil both for a missing
// path and for a present key holding nil.
func Value(root map[string]any, path string) any {
	v, _ := Get(root, path)
	return v
}

// Set assigns value at path, creating intermediate maps as needed.
// An intermediate segment holding a non-map value is overwritten with a
// fresh map. When value is nil and deleteNil is true the final key is
// removed instead of being assigned; intermediate maps created on the way
// down are left in place, so deleting "a.b.c" on an empty root still
// produces {"a": {"b": {}}}. Set mutates root and returns the same map.
func Set(root map[string]any, path string, value any, deleteNil bool) map[string]any {
	segments := strings.Split(path, ".")
	last := len(segments) - 1
	current := root
	for _, seg := range segments[:last] {
		next, ok := current[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[seg] = next
		}
		current = next
	}
	if value == nil && deleteNil {
		delete(current, segments[last])
		return root
	}
	current[segments[last]] = value
	return root
}

// Delete removes the value at path and reports whether it was present.
// Unlike Set it never creates intermediate maps.
func Delete(root map[string]any, path string) bool {
	segments := strings.Split(path, ".")
	last := len(segments) - 1
	current := root
	for _, seg := range segments[:last] {
		next, ok := current[seg].(map[string]any)
		if !ok {
			return false
		}
		current = next
	}
	if _, ok := current[segments[last]]; !ok {
		return false
	}
	delete(current, segments[last])
	return true
}

package core

import (
	"fmt"

	"github.com/mohae/deepcopy"
)

// deepCopyMap returns a deep copy of the provided map[string]any.
func deepCopyMap(m map[string]any) (map[string]any, error) {
	copied, ok := deepcopy.Copy(m).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("failed to copy map")
	}
	return copied, nil
}

// DeepCopy returns a deep copy of v. Input and Output values (and their
// pointer forms) are copied through their underlying maps so the copy
// keeps the concrete type instead of devolving into a plain map. A nil
// payload copies to the zero value with no error.
func DeepCopy[T any](v T) (T, error) {
	var zero T
	switch src := any(v).(type) {
	case Input:
		return castCopy[T](src == nil, map[string]any(src), func(m map[string]any) any { return Input(m) })
	case Output:
		return castCopy[T](src == nil, map[string]any(src), func(m map[string]any) any { return Output(m) })
	case *Input:
		if src == nil || *src == nil {
			return zero, nil
		}
		return castCopy[T](false, map[string]any(*src), func(m map[string]any) any {
			out := Input(m)
			return &out
		})
	case *Output:
		if src == nil || *src == nil {
			return zero, nil
		}
		return castCopy[T](false, map[string]any(*src), func(m map[string]any) any {
			out := Output(m)
			return &out
		})
	default:
		if any(v) == nil {
			return zero, nil
		}
		copied, ok := deepcopy.Copy(v).(T)
		if !ok {
			return zero, fmt.Errorf("failed to cast copied value to type %T", zero)
		}
		return copied, nil
	}
}

// castCopy copies a map-backed payload and rebuilds it as type T via wrap.
func castCopy[T any](isNil bool, m map[string]any, wrap func(map[string]any) any) (T, error) {
	var zero T
	if isNil {
		return zero, nil
	}
	copied, err := deepCopyMap(m)
	if err != nil {
		return zero, err
	}
	result, ok := wrap(copied).(T)
	if !ok {
		return zero, fmt.Errorf("failed to cast copied value to type %T", zero)
	}
	return result, nil
}

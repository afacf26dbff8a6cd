// Package common provides reusable lifecycle hooks built on the context
// accessors: field shaping, defaults, stamps, validation and conditional
// composition.
package common

import (
	"context"

	"github.com/compozy/hookkit/engine/core"
	"github.com/compozy/hookkit/engine/hook"
)

// Hook is one lifecycle step running against a single invocation.
type Hook func(ctx context.Context, hc *hook.Context) error

// Combine runs hooks in order against the same invocation, stopping at
// the first error.
func Combine(hooks ...Hook) Hook {
	return func(ctx context.Context, hc *hook.Context) error {
		for _, h := range hooks {
			if err := h(ctx, hc); err != nil {
				return err
			}
		}
		return nil
	}
}

// eachItem applies fn to every map item the invocation carries. A single
// map payload is a one-item collection; slice payloads are visited
// element-wise. Non-map elements pass through untouched so hooks stay
// permissive about payload shape.
func eachItem(hc *hook.Context, fn func(item map[string]any) error) error {
	switch items := hook.GetItems(hc).(type) {
	case map[string]any:
		return fn(items)
	case core.Input:
		return fn(items)
	case core.Output:
		return fn(items)
	case []any:
		for _, it := range items {
			if m, ok := it.(map[string]any); ok {
				if err := fn(m); err != nil {
					return err
				}
			}
		}
		return nil
	case []map[string]any:
		for _, m := range items {
			if err := fn(m); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

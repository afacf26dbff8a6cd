package common

import (
	"context"
	"fmt"

	"dario.cat/mergo"

	"github.com/compozy/hookkit/engine/hook"
)

// Defaults merges values into each map item. Keys already holding a
// non-empty value win; nested maps are merged recursively. Zero values
// count as empty under mergo's rules, so a deliberate false or "" on an
// item can still be defaulted over.
func Defaults(values map[string]any) Hook {
	return func(_ context.Context, hc *hook.Context) error {
		return eachItem(hc, func(item map[string]any) error {
			if err := mergo.Merge(&item, values); err != nil {
				return fmt.Errorf("failed to merge defaults: %w", err)
			}
			return nil
		})
	}
}

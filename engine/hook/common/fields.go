package common

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"github.com/compozy/hookkit/engine/hook"
	"github.com/compozy/hookkit/pkg/dotpath"
)

// Discard removes the listed dot paths from every item. Mount it before
// create/update/patch to strip client-supplied fields, or after any
// operation to hide server-side fields from responses.
func Discard(paths ...string) Hook {
	return func(_ context.Context, hc *hook.Context) error {
		return eachItem(hc, func(item map[string]any) error {
			for _, p := range paths {
				dotpath.Delete(item, p)
			}
			return nil
		})
	}
}

// Keep rebuilds each item in place retaining only the listed dot paths.
// Absent paths are skipped rather than created.
func Keep(paths ...string) Hook {
	return func(_ context.Context, hc *hook.Context) error {
		return eachItem(hc, func(item map[string]any) error {
			kept := map[string]any{}
			for _, p := range paths {
				if v, ok := dotpath.Get(item, p); ok {
					dotpath.Set(kept, p, v, false)
				}
			}
			clear(item)
			maps.Copy(item, kept)
			return nil
		})
	}
}

// LowerCase folds the listed string fields to lower case. Absent or nil
// fields are skipped; a present non-string value is an error.
func LowerCase(paths ...string) Hook {
	return func(_ context.Context, hc *hook.Context) error {
		return eachItem(hc, func(item map[string]any) error {
			for _, p := range paths {
				v, ok := dotpath.Get(item, p)
				if !ok || v == nil {
					continue
				}
				s, ok := v.(string)
				if !ok {
					return fmt.Errorf("expected string data for field '%s', got %T", p, v)
				}
				dotpath.Set(item, p, strings.ToLower(s), false)
			}
			return nil
		})
	}
}

// Required fails the invocation when any listed path is absent or nil on
// an item. Only meaningful for payload-carrying before hooks, so it is
// guarded to create/update/patch.
func Required(paths ...string) Hook {
	return func(_ context.Context, hc *hook.Context) error {
		if err := hook.CheckContext(hc, "required", hook.PhaseBefore, hook.OpCreate, hook.OpUpdate, hook.OpPatch); err != nil {
			return err
		}
		return eachItem(hc, func(item map[string]any) error {
			for _, p := range paths {
				if v, ok := dotpath.Get(item, p); !ok || v == nil {
					return fmt.Errorf("field '%s' does not exist", p)
				}
			}
			return nil
		})
	}
}

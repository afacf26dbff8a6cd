package common

import (
	"context"
	"fmt"
	"time"

	"github.com/compozy/hookkit/engine/core"
	"github.com/compozy/hookkit/engine/hook"
	"github.com/compozy/hookkit/pkg/dotpath"
)

// SetNow stamps the current UTC time at every listed path on each item.
// All items of one invocation receive the same timestamp.
func SetNow(paths ...string) Hook {
	return func(_ context.Context, hc *hook.Context) error {
		if len(paths) == 0 {
			return fmt.Errorf("set_now requires at least one field name")
		}
		now := time.Now().UTC()
		return eachItem(hc, func(item map[string]any) error {
			for _, p := range paths {
				dotpath.Set(item, p, now, false)
			}
			return nil
		})
	}
}

// StampID assigns a fresh ID at path when the field is absent, nil or
// empty. Guarded to before create, the only point where a record does
// not yet own an identity.
func StampID(path string) Hook {
	return func(_ context.Context, hc *hook.Context) error {
		if err := hook.CheckContext(hc, "stamp_id", hook.PhaseBefore, hook.OpCreate); err != nil {
			return err
		}
		return eachItem(hc, func(item map[string]any) error {
			if v, ok := dotpath.Get(item, path); ok && v != nil && v != "" {
				return nil
			}
			dotpath.Set(item, path, core.MustNewID().String(), false)
			return nil
		})
	}
}

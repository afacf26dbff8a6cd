package common

import (
	"context"

	"github.com/compozy/hookkit/engine/hook"
	"github.com/compozy/hookkit/pkg/logger"
)

// Debug logs the invocation at debug level, labeled so multiple mounts
// on the same service can be told apart. It never fails.
func Debug(label string) Hook {
	return func(ctx context.Context, hc *hook.Context) error {
		log := logger.FromContext(ctx)
		log.Debug("hook invocation",
			"label", label,
			"service", hc.Service,
			"phase", hc.Phase,
			"operation", hc.Operation,
			"items", hook.GetItems(hc),
		)
		return nil
	}
}

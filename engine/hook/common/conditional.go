package common

import (
	"context"

	"github.com/compozy/hookkit/engine/hook"
)

// Predicate decides whether a conditional chain runs for an invocation.
type Predicate func(ctx context.Context, hc *hook.Context) (bool, error)

// IffHook is a two-branch conditional; build it with Iff and optionally
// attach the false branch with Else. Its Run method is a Hook.
type IffHook struct {
	pred Predicate
	then []Hook
	els  []Hook
}

// Iff runs hooks when pred is true.
func Iff(pred Predicate, hooks ...Hook) *IffHook {
	return &IffHook{pred: pred, then: hooks}
}

// Else sets the hooks for the false branch and returns the conditional.
func (h *IffHook) Else(hooks ...Hook) *IffHook {
	h.els = hooks
	return h
}

// Run evaluates the predicate and executes the matching branch.
func (h *IffHook) Run(ctx context.Context, hc *hook.Context) error {
	ok, err := h.pred(ctx, hc)
	if err != nil {
		return err
	}
	branch := h.then
	if !ok {
		branch = h.els
	}
	return Combine(branch...)(ctx, hc)
}

// Unless runs hooks only when pred is false.
func Unless(pred Predicate, hooks ...Hook) Hook {
	return Iff(Not(pred), hooks...).Run
}

// Not inverts a predicate.
func Not(pred Predicate) Predicate {
	return func(ctx context.Context, hc *hook.Context) (bool, error) {
		ok, err := pred(ctx, hc)
		return !ok, err
	}
}

// Every is true when all predicates are true; evaluation stops at the
// first false or error.
func Every(preds ...Predicate) Predicate {
	return func(ctx context.Context, hc *hook.Context) (bool, error) {
		for _, pred := range preds {
			ok, err := pred(ctx, hc)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}

// Some is true when at least one predicate is true; evaluation stops at
// the first true or error.
func Some(preds ...Predicate) Predicate {
	return func(ctx context.Context, hc *hook.Context) (bool, error) {
		for _, pred := range preds {
			ok, err := pred(ctx, hc)
			if err != nil || ok {
				return ok, err
			}
		}
		return false, nil
	}
}

package common

import (
	"context"
	"fmt"
	"sync"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/google/cel-go/cel"

	"github.com/compozy/hookkit/engine/hook"
)

// Evaluator compiles and runs CEL predicates over hook invocations.
// Compiled programs are cached by expression so a predicate mounted on a
// hot service path compiles once.
type Evaluator struct {
	env          *cel.Env
	programCache *ristretto.Cache[string, cel.Program]
}

// NewEvaluator builds an evaluator whose expressions see the invocation
// as service, phase, operation, params and items.
func NewEvaluator() (*Evaluator, error) {
	env, err := cel.NewEnv(
		cel.Variable("service", cel.StringType),
		cel.Variable("phase", cel.StringType),
		cel.Variable("operation", cel.StringType),
		cel.Variable("params", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("items", cel.DynType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, cel.Program]{
		NumCounters: 1000,
		MaxCost:     100,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program cache: %w", err)
	}
	return &Evaluator{env: env, programCache: cache}, nil
}

func (e *Evaluator) program(expr string) (cel.Program, error) {
	if prg, ok := e.programCache.Get(expr); ok {
		return prg, nil
	}
	ast, iss := e.env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("CEL compilation failed: %w", iss.Err())
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("CEL program construction failed: %w", err)
	}
	e.programCache.Set(expr, prg, 1)
	return prg, nil
}

// Eval evaluates expr against the invocation and demands a boolean
// result.
func (e *Evaluator) Eval(ctx context.Context, expr string, hc *hook.Context) (bool, error) {
	prg, err := e.program(expr)
	if err != nil {
		return false, err
	}
	params := hc.Params
	if params == nil {
		params = map[string]any{}
	}
	out, _, err := prg.ContextEval(ctx, map[string]any{
		"service":   hc.Service,
		"phase":     hc.Phase.String(),
		"operation": hc.Operation.String(),
		"params":    params,
		"items":     hook.GetItems(hc),
	})
	if err != nil {
		return false, fmt.Errorf("CEL evaluation failed: %w", err)
	}
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("CEL expression must evaluate to a boolean, got %T", out.Value())
	}
	return result, nil
}

var defaultEvaluator = sync.OnceValues(NewEvaluator)

// When builds a predicate from a CEL expression evaluated against the
// invocation, e.g. When(`operation == 'create' && phase == 'before'`).
// All When predicates share one process-wide evaluator and its program
// cache.
func When(expr string) Predicate {
	return func(ctx context.Context, hc *hook.Context) (bool, error) {
		eval, err := defaultEvaluator()
		if err != nil {
			return false, err
		}
		return eval.Eval(ctx, expr, hc)
	}
}

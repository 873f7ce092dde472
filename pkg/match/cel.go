package match

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/Astrea-Labs/orbitreg/pkg/catalog"
	"github.com/Astrea-Labs/orbitreg/pkg/profile"
)

// Evaluator compiles and caches CEL applicability expressions. Expressions
// come from trusted catalog data; the cost limit is a backstop, not a
// sandboxing boundary.
type Evaluator struct {
	env      *cel.Env
	mu       sync.RWMutex
	prgCache map[string]cel.Program
}

// NewEvaluator creates an evaluator binding the "profile" variable.
func NewEvaluator() (*Evaluator, error) {
	env, err := cel.NewEnv(
		cel.Variable("profile", cel.DynType),
	)
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}
	return &Evaluator{
		env:      env,
		prgCache: make(map[string]cel.Program),
	}, nil
}

// Evaluate runs one expression against a profile and returns the boolean
// result. Programs are compiled once per distinct expression.
func (e *Evaluator) Evaluate(expr string, p *profile.OperatorProfile) (bool, error) {
	prg, err := e.program(expr)
	if err != nil {
		return false, err
	}

	out, _, err := prg.Eval(map[string]any{"profile": p.CELInput()})
	if err != nil {
		return false, fmt.Errorf("eval: %w", err)
	}
	val, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression %q did not produce a bool", expr)
	}
	return val, nil
}

// LintExpressions compiles every applicability expression in the catalog
// and reports the ones that fail. Meant for catalog CI, not runtime.
func (e *Evaluator) LintExpressions(c *catalog.Catalog) []catalog.Warning {
	var warnings []catalog.Warning
	for _, r := range c.Requirements {
		if r.Applicability.Expression == "" {
			continue
		}
		if _, err := e.program(r.Applicability.Expression); err != nil {
			warnings = append(warnings, catalog.Warning{
				Code:          "bad_expression",
				RequirementID: r.ID,
				Detail:        err.Error(),
			})
		}
	}
	return warnings
}

func (e *Evaluator) program(expr string) (cel.Program, error) {
	e.mu.RLock()
	prg, hit := e.prgCache[expr]
	e.mu.RUnlock()
	if hit {
		return prg, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	// Double check: another goroutine may have compiled while we waited.
	if prg, hit = e.prgCache[expr]; hit {
		return prg, nil
	}

	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile: %w", issues.Err())
	}
	prg, err := e.env.Program(ast,
		cel.InterruptCheckFrequency(100),
		cel.CostLimit(10000),
	)
	if err != nil {
		return nil, fmt.Errorf("program: %w", err)
	}
	e.prgCache[expr] = prg
	return prg, nil
}

package fdict

import (
	"fmt"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
)

// ExprTransformOption configures an expr-backed transform.
type ExprTransformOption func(*exprTransform)

// ExprWithProgramCache wires a ProgramCache into the transform constructor.
func ExprWithProgramCache(cache ProgramCache) ExprTransformOption {
	return func(t *exprTransform) {
		t.cache = cache
	}
}

type exprTransform struct {
	cache ProgramCache
}

// ExprTransform builds a Transform from an expr-lang program. The program
// sees two string variables: value, the resolved value being transformed, and
// arg, the modifier suffix. It must evaluate to a string.
func ExprTransform(program string, opts ...ExprTransformOption) (Transform, error) {
	if program == "" {
		return nil, fmt.Errorf("fdict: expr program must not be empty")
	}
	t := &exprTransform{}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	compiled, err := t.loadOrCompile(program)
	if err != nil {
		return nil, err
	}
	return func(value, arg string) (string, error) {
		out, err := exprlang.Run(compiled, map[string]any{
			"value": value,
			"arg":   arg,
		})
		if err != nil {
			return "", err
		}
		result, ok := out.(string)
		if !ok {
			return "", fmt.Errorf("expr program returned %T, want string", out)
		}
		return result, nil
	}, nil
}

func (t *exprTransform) loadOrCompile(program string) (*exprvm.Program, error) {
	if t.cache != nil {
		if cached, ok := t.cache.Get(program); ok {
			if compiled, ok := cached.(*exprvm.Program); ok {
				return compiled, nil
			}
		}
	}
	compiled, err := exprlang.Compile(program, exprlang.Env(map[string]any{
		"value": "",
		"arg":   "",
	}))
	if err != nil {
		return nil, fmt.Errorf("fdict: expr compile: %w", err)
	}
	if t.cache != nil {
		t.cache.Set(program, compiled)
	}
	return compiled, nil
}

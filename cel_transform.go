package fdict

import (
	"fmt"

	celgo "github.com/google/cel-go/cel"
)

// CELTransformOption configures a CEL-backed transform.
type CELTransformOption func(*celTransform)

// CELWithProgramCache wires a ProgramCache into the transform constructor.
func CELWithProgramCache(cache ProgramCache) CELTransformOption {
	return func(t *celTransform) {
		t.cache = cache
	}
}

type celTransform struct {
	cache ProgramCache
}

// CELTransform builds a Transform from a CEL program. The program sees the
// string variables value and arg and must evaluate to a string.
func CELTransform(program string, opts ...CELTransformOption) (Transform, error) {
	if program == "" {
		return nil, fmt.Errorf("fdict: cel program must not be empty")
	}
	t := &celTransform{}
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
		out, _, err := compiled.Eval(map[string]any{
			"value": value,
			"arg":   arg,
		})
		if err != nil {
			return "", err
		}
		result, ok := out.Value().(string)
		if !ok {
			return "", fmt.Errorf("cel program returned %T, want string", out.Value())
		}
		return result, nil
	}, nil
}

func (t *celTransform) loadOrCompile(program string) (celgo.Program, error) {
	if t.cache != nil {
		if cached, ok := t.cache.Get(program); ok {
			if compiled, ok := cached.(celgo.Program); ok {
				return compiled, nil
			}
		}
	}

	env, err := celgo.NewEnv(
		celgo.Variable("value", celgo.StringType),
		celgo.Variable("arg", celgo.StringType),
	)
	if err != nil {
		return nil, fmt.Errorf("fdict: cel env: %w", err)
	}
	ast, issues := env.Parse(program)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("fdict: cel parse: %w", issues.Err())
	}
	checked, issues := env.Check(ast)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("fdict: cel check: %w", issues.Err())
	}
	compiled, err := env.Program(checked)
	if err != nil {
		return nil, fmt.Errorf("fdict: cel program: %w", err)
	}

	if t.cache != nil {
		t.cache.Set(program, compiled)
	}
	return compiled, nil
}

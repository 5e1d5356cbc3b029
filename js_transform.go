//go:build js_eval

package fdict

import (
	"fmt"

	"github.com/dop251/goja"
)

// JSTransform builds a Transform from a JavaScript expression run under goja.
// The expression sees the string bindings value and arg and must produce a
// string. Each invocation runs in a fresh runtime.
func JSTransform(program string, opts ...JSTransformOption) (Transform, error) {
	if program == "" {
		return nil, fmt.Errorf("fdict: js program must not be empty")
	}
	cfg := applyJSTransformOptions(opts)
	compiled, err := loadOrCompileJS(cfg.cache, program)
	if err != nil {
		return nil, err
	}
	return func(value, arg string) (string, error) {
		vm := goja.New()
		vm.Set("value", value)
		vm.Set("arg", arg)
		out, err := vm.RunProgram(compiled)
		if err != nil {
			return "", err
		}
		result, ok := out.Export().(string)
		if !ok {
			return "", fmt.Errorf("js program returned %T, want string", out.Export())
		}
		return result, nil
	}, nil
}

func jsTransformAvailable() bool {
	return true
}

func loadOrCompileJS(cache ProgramCache, program string) (*goja.Program, error) {
	if cache != nil {
		if cached, ok := cache.Get(program); ok {
			if compiled, ok := cached.(*goja.Program); ok {
				return compiled, nil
			}
		}
	}
	compiled, err := goja.Compile("", wrapJSExpression(program), false)
	if err != nil {
		return nil, fmt.Errorf("fdict: js compile: %w", err)
	}
	if cache != nil {
		cache.Set(program, compiled)
	}
	return compiled, nil
}

func wrapJSExpression(program string) string {
	return fmt.Sprintf("(function(){ return (%s); })()", program)
}

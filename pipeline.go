package fdict

import "errors"

// applyTransforms runs the parsed chain left to right. An empty chain is the
// identity. Failures from transform functions are wrapped as TransformError
// unless they already are one.
func applyTransforms(value string, specs []TransformSpec, registry *Registry) (string, error) {
	for _, spec := range specs {
		fn, ok := registry.Lookup(spec.Name)
		if !ok {
			return "", &UnknownTransformError{Name: spec.Name}
		}
		out, err := fn(value, spec.Suffix)
		if err != nil {
			var terr *TransformError
			if errors.As(err, &terr) {
				return "", err
			}
			return "", &TransformError{Name: spec.Name, Err: err}
		}
		value = out
	}
	return value, nil
}

package fdict

import (
	"strings"

	"github.com/asaskevich/govalidator"
)

// RegisterExtras adds govalidator-backed transforms on top of the builtin
// set:
//
//	camel  - underscore_name to CamelCase
//	snake  - CamelCase to underscore_name
//	trim   - strip leading/trailing characters; the modifier suffix is the
//	         cutset, an empty suffix trims whitespace
func RegisterExtras(r *Registry) error {
	extras := map[string]Transform{
		"camel": camelTransform,
		"snake": snakeTransform,
		"trim":  trimTransform,
	}
	for name, fn := range extras {
		if err := r.Register(name, fn); err != nil {
			return err
		}
	}
	return nil
}

func camelTransform(value, arg string) (string, error) {
	if err := rejectModifier("camel", arg); err != nil {
		return "", err
	}
	return govalidator.UnderscoreToCamelCase(value), nil
}

func snakeTransform(value, arg string) (string, error) {
	if err := rejectModifier("snake", arg); err != nil {
		return "", err
	}
	return govalidator.CamelCaseToUnderscore(value), nil
}

func trimTransform(value, arg string) (string, error) {
	if arg == "" {
		return strings.TrimSpace(value), nil
	}
	return govalidator.Trim(value, arg), nil
}

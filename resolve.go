package fdict

import "github.com/goliatone/go-formatdict/pkg/store"

// resolveAlternatives walks alternatives in written order. A literal wins the
// moment it is reached; a reference wins when the store holds it. An empty
// stored value is a valid result, not a miss.
func resolveAlternatives(parsed ParsedKey, reader store.Reader) (string, error) {
	for _, alt := range parsed.Alternatives {
		switch alt.Kind {
		case AlternativeLiteral:
			return alt.Text, nil
		case AlternativeReference:
			if value, ok := reader.Get(alt.Text); ok {
				return value, nil
			}
		}
	}
	if parsed.TrailingEmpty {
		return "", nil
	}
	return "", &MissingKeyError{Key: parsed.missingName()}
}

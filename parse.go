package fdict

import "strings"

const (
	altSeparator       = "|"
	transformSeparator = ":"
)

// Parse turns a raw extended key into its structured form. The registry is
// consulted to split each transform token into a registered name and a
// modifier suffix; see Registry.Match.
func Parse(raw string, registry *Registry) (ParsedKey, error) {
	keyPart, transformPart, _ := strings.Cut(raw, transformSeparator)

	parsed := ParsedKey{Raw: raw}

	tokens := strings.Split(keyPart, altSeparator)
	if strings.HasSuffix(keyPart, altSeparator) {
		parsed.TrailingEmpty = true
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) == 0 {
		return ParsedKey{}, &MalformedKeyError{Raw: raw}
	}
	parsed.Alternatives = make([]Alternative, 0, len(tokens))
	for _, token := range tokens {
		if token == "" {
			return ParsedKey{}, &MalformedKeyError{Raw: raw}
		}
		parsed.Alternatives = append(parsed.Alternatives, classifyAlternative(token))
	}

	if transformPart != "" {
		specs := strings.Split(transformPart, transformSeparator)
		parsed.Transforms = make([]TransformSpec, 0, len(specs))
		for _, token := range specs {
			name, suffix, ok := registry.Match(token)
			if !ok {
				return ParsedKey{}, &UnknownTransformError{Name: token}
			}
			parsed.Transforms = append(parsed.Transforms, TransformSpec{Name: name, Suffix: suffix})
		}
	}

	return parsed, nil
}

// classifyAlternative treats a token whose first and last characters are the
// same quote as a literal default; everything else is a store reference.
func classifyAlternative(token string) Alternative {
	if len(token) >= 2 {
		first, last := token[0], token[len(token)-1]
		if first == last && (first == '\'' || first == '"') {
			return Alternative{Kind: AlternativeLiteral, Text: token[1 : len(token)-1]}
		}
	}
	return Alternative{Kind: AlternativeReference, Text: token}
}

package fdict

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// registerBuiltins seeds the transform set every registry starts with. The
// short names lc/uc are aliases kept for callers used to the historical
// FormattingDict vocabulary; each alias is bound separately so modifier
// errors echo the name the caller actually wrote.
func registerBuiltins(r *Registry) {
	simple := map[string]func(string) string{
		"lower":      strings.ToLower,
		"lc":         strings.ToLower,
		"upper":      strings.ToUpper,
		"uc":         strings.ToUpper,
		"capitalize": capitalize,
		"xmlquote":   xmlReplacer.Replace,
		"htmlquote":  xmlReplacer.Replace,
		"unspace":    unspace,
	}
	for name, fn := range simple {
		_ = r.Register(name, simpleTransform(name, fn))
	}
	_ = r.Register("urlquote", urlquoteTransform)
}

// simpleTransform adapts a plain string function into a Transform that
// rejects any modifier suffix, reporting it under the registered name.
func simpleTransform(name string, fn func(string) string) Transform {
	return func(value, arg string) (string, error) {
		if err := rejectModifier(name, arg); err != nil {
			return "", err
		}
		return fn(value), nil
	}
}

func rejectModifier(name, arg string) error {
	if arg == "" {
		return nil
	}
	return fmt.Errorf("%s does not accept modifier %q", name, arg)
}

func capitalize(value string) string {
	if value == "" {
		return ""
	}
	runes := []rune(strings.ToLower(value))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// urlquoteTransform percent-encodes value. An empty modifier encodes spaces
// as %20; the "+" modifier encodes them as plus signs.
func urlquoteTransform(value, arg string) (string, error) {
	switch arg {
	case "":
		return strings.ReplaceAll(url.QueryEscape(value), "+", "%20"), nil
	case "+":
		return url.QueryEscape(value), nil
	default:
		return "", fmt.Errorf("urlquote does not accept modifier %q", arg)
	}
}

var xmlReplacer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func unspace(value string) string {
	return strings.ReplaceAll(value, " ", "")
}

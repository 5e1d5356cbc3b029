package fdict

import "github.com/goliatone/go-formatdict/pkg/store"

// AlternativeKind identifies how one alternative resolves.
type AlternativeKind string

const (
	// AlternativeReference names a backing-store key to try.
	AlternativeReference AlternativeKind = "reference"
	// AlternativeLiteral is a quoted default that always resolves.
	AlternativeLiteral AlternativeKind = "literal"
)

// Alternative is one candidate in the ordered list tried during resolution.
// Text holds the store key for references and the unquoted text for literals.
type Alternative struct {
	Kind AlternativeKind
	Text string
}

// TransformSpec is one step of a parsed transform chain.
type TransformSpec struct {
	Name   string
	Suffix string
}

// ParsedKey is the structured form of an extended key. It is created per
// lookup, used once and discarded.
type ParsedKey struct {
	Raw           string
	Alternatives  []Alternative
	TrailingEmpty bool
	Transforms    []TransformSpec
}

// missingName picks the identifier reported by a MissingKeyError: the first
// reference alternative, falling back to the raw key.
func (p ParsedKey) missingName() string {
	for _, alt := range p.Alternatives {
		if alt.Kind == AlternativeReference {
			return alt.Text
		}
	}
	return p.Raw
}

type dictConfig struct {
	registry *Registry
	store    store.Store
	logger   Logger
	hooks    Hooks
}

// Option configures a Dict.
type Option func(*dictConfig)

func applyOptions(opts []Option) dictConfig {
	cfg := dictConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithRegistry configures a dict to resolve transforms against a clone of
// registry, isolating it from later registrations on the original.
func WithRegistry(registry *Registry) Option {
	return func(cfg *dictConfig) {
		if registry == nil {
			return
		}
		cfg.registry = registry.Clone()
	}
}

// WithStore supplies the backing store instead of the default in-memory one.
func WithStore(s store.Store) Option {
	return func(cfg *dictConfig) {
		cfg.store = s
	}
}

// WithLogger attaches a lookup logger to the dict.
func WithLogger(logger Logger) Option {
	return func(cfg *dictConfig) {
		if logger == nil {
			cfg.logger = noopLogger{}
			return
		}
		cfg.logger = logger
	}
}

// WithHooks appends lookup hooks notified after every Get.
func WithHooks(hooks ...Hook) Option {
	return func(cfg *dictConfig) {
		for _, hook := range hooks {
			if hook != nil {
				cfg.hooks = append(cfg.hooks, hook)
			}
		}
	}
}

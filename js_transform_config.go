package fdict

type jsTransformConfig struct {
	cache ProgramCache
}

// JSTransformOption configures a goja-backed transform.
type JSTransformOption func(*jsTransformConfig)

// JSWithProgramCache wires a ProgramCache into the transform constructor.
func JSWithProgramCache(cache ProgramCache) JSTransformOption {
	return func(cfg *jsTransformConfig) {
		cfg.cache = cache
	}
}

func applyJSTransformOptions(opts []JSTransformOption) jsTransformConfig {
	cfg := jsTransformConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

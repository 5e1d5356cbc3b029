package store

import "os"

// Env is a read-only Reader over process environment variables, optionally
// namespaced by a prefix prepended to every lookup.
type Env struct {
	prefix string
}

// NewEnv constructs an environment reader. prefix may be empty.
func NewEnv(prefix string) *Env {
	return &Env{prefix: prefix}
}

func (e *Env) Get(name string) (string, bool) {
	return os.LookupEnv(e.prefix + name)
}

package store

// Reader is a presence-checked read over string-keyed values. It is the only
// store capability extended-key resolution needs.
type Reader interface {
	Get(name string) (string, bool)
}

// Store is a mutable string-keyed mapping. Implementations carry no
// extended-key semantics; those apply only on the read path of the dict that
// wraps them.
type Store interface {
	Reader
	Set(name, value string)
	Delete(name string)
	Len() int
	Keys() []string
}

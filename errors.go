package fdict

import "fmt"

// MalformedKeyError reports an extended key whose key part yields no
// alternatives, such as an empty key or a bare separator.
type MalformedKeyError struct {
	Raw string
}

func (e *MalformedKeyError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("fdict: malformed key %q", e.Raw)
}

// MissingKeyError reports that no alternative resolved and the key carried no
// trailing-empty sentinel. Key holds the first reference alternative when one
// exists, otherwise the raw key part.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("fdict: key %q not found", e.Key)
}

// UnknownTransformError reports a transform token that matches no registered
// transform name, not even by prefix.
type UnknownTransformError struct {
	Name string
}

func (e *UnknownTransformError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("fdict: unknown transform %q", e.Name)
}

// TransformError wraps a failure raised by a transform function itself, for
// example an unsupported modifier suffix.
type TransformError struct {
	Name string
	Err  error
}

func (e *TransformError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("fdict: transform %q: %v", e.Name, e.Err)
}

func (e *TransformError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

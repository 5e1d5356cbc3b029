//go:build !js_eval

package fdict

import "fmt"

// JSTransform is unavailable without the js_eval build tag.
func JSTransform(program string, opts ...JSTransformOption) (Transform, error) {
	_ = applyJSTransformOptions(opts)
	return nil, fmt.Errorf("fdict: js transforms require the js_eval build tag")
}

func jsTransformAvailable() bool {
	return false
}

// Package fdict resolves extended keys against a string-keyed store.
//
// An extended key combines alternative lookup keys, quoted literal defaults
// and a chain of named text transforms:
//
//	nickname|name|"Anonymous":upper:urlquote
//
// Everything before the first colon is an ordered list of alternatives
// separated by pipes; everything after is a colon-separated transform chain
// applied to the resolved value. A trailing pipe turns an unresolved lookup
// into an empty string instead of an error.
//
// The package is designed to sit behind template or format substitution
// engines that call a single lookup function with a string key. See the
// examples directory for the os.Expand integration.
package fdict

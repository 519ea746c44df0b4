// Package modelpath provides the path arithmetic used by the validation
// engine. Storage keys are slash-separated regardless of platform, so this
// package works on the path form, never the OS filepath form.
package modelpath

import (
	"path"
	"strings"
)

// Relative returns p relative to prefix. The second return value is false
// when p does not lie under prefix; callers discard those entries, since
// they belong to a sibling subtree, not the one being matched.
//
// A path that resolves to the prefix itself yields ".".
func Relative(p, prefix string) (string, bool) {
	cp := path.Clean("/" + p)
	cpre := path.Clean("/" + prefix)

	if cpre == "/" {
		if cp == "/" {
			return ".", true
		}
		return strings.TrimPrefix(cp, "/"), true
	}
	if cp == cpre {
		return ".", true
	}
	if strings.HasPrefix(cp, cpre+"/") {
		return cp[len(cpre)+1:], true
	}
	return "", false
}

// Leftmost returns the first component of a relative path, stable under
// repeated and trailing separators. The prefix itself ("." or empty)
// yields ".".
func Leftmost(rel string) string {
	for _, part := range strings.Split(rel, "/") {
		if part == "" || part == "." {
			continue
		}
		return part
	}
	return "."
}

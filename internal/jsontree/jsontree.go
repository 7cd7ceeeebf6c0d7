// Package jsontree walks decoded JSON values (maps, slices, scalars) looking
// for data buried at unknown depths. Storefront state blobs nest product data
// arbitrarily, so lookups are best-effort: absence is a normal result, never
// an error.
package jsontree

import (
	"sort"
	"strconv"
)

// MaxDepth bounds the recursive walk. Decoded JSON cannot cycle, but a
// pathological blob should not blow the stack either.
const MaxDepth = 32

// Find collects every value stored under a key accepted by pred, walking
// maps and slices up to MaxDepth levels deep. Map levels are visited in
// sorted key order so results are stable across runs.
func Find(v any, pred func(key string) bool) []any {
	var out []any
	walk(v, pred, 0, &out)
	return out
}

func walk(v any, pred func(string) bool, depth int, out *[]any) {
	if depth > MaxDepth {
		return
	}
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := t[k]
			if pred(k) {
				*out = append(*out, child)
			}
			walk(child, pred, depth+1, out)
		}
	case []any:
		for _, child := range t {
			walk(child, pred, depth+1, out)
		}
	}
}

// FirstString returns the first non-empty string-convertible value found for
// the given key aliases, trying each alias in order over the whole tree.
func FirstString(v any, keys ...string) string {
	for _, key := range keys {
		for _, got := range Find(v, func(k string) bool { return k == key }) {
			if s := Stringify(got); s != "" {
				return s
			}
		}
	}
	return ""
}

// Strings collects all string-convertible values stored under any of the
// given keys, preserving walk order per alias.
func Strings(v any, keys ...string) []string {
	var out []string
	for _, key := range keys {
		for _, got := range Find(v, func(k string) bool { return k == key }) {
			if s := Stringify(got); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// Stringify converts a JSON scalar to its string form. Objects, arrays and
// nulls yield "".
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

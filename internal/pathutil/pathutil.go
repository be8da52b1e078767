// Package pathutil provides small helpers for normalizing user submitted paths.
package pathutil

import "strings"

// Separator is the separator appended by AddTrailingSlash.
const Separator = "/"

// AddTrailingSlash returns p with exactly one trailing separator appended if it is missing.
// A path that already ends with a separator is returned unchanged, so the function is idempotent.
// An empty path stays empty.
func AddTrailingSlash(p string) string {
	if p == "" || strings.HasSuffix(p, Separator) {
		return p
	}

	return p + Separator
}

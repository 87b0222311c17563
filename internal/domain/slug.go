package domain

import "strings"

// SlugFromPath returns the third "/"-separated segment of a log path, which is
// where article views carry the article slug ("/article/<slug>" yields
// "<slug>"). It follows Postgres split_part(path, '/', 3): a path with fewer
// than three segments, or an empty third segment, yields ok == false.
func SlugFromPath(path string) (slug string, ok bool) {
	parts := strings.SplitN(path, "/", 4)
	if len(parts) < 3 || parts[2] == "" {
		return "", false
	}
	return parts[2], true
}

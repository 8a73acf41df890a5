package router

import "strings"

// lookup walks the route table in declaration order and returns the
// first entry whose pattern matches the path segments. Matching is a
// pure read of the table and is safe for concurrent use.
func (m *mux[C]) lookup(segments []string) (*routeEntry[C], Match, bool) {
	for i := range m.table {
		e := &m.table[i]
		if match, ok := e.match(segments); ok {
			return e, match, true
		}
	}
	return nil, Match{}, false
}

// match attempts a single entry against the path segments.
//
// Top-level entries require the first two segments to equal the entry's
// version and name. Nested entries require four: version, parent name,
// an unconstrained identifier segment, and the entry's own name. In both
// cases the trailing remainder is passed through unexamined.
func (e *routeEntry[C]) match(segments []string) (Match, bool) {
	if e.parent == "" {
		if len(segments) >= 2 && segments[0] == e.version && segments[1] == e.name {
			return Match{
				Version:  e.version,
				Resource: e.name,
				Rest:     segments[2:],
			}, true
		}
		return Match{}, false
	}

	if len(segments) >= 4 && segments[0] == e.version && segments[1] == e.parent && segments[3] == e.name {
		return Match{
			Version:  e.version,
			Resource: e.name,
			Parent:   e.parent,
			ParentID: segments[2],
			Rest:     segments[4:],
		}, true
	}
	return Match{}, false
}

// parseSegments splits a URL path into its non-empty segments.
// "/v1/posts/5" becomes ["v1", "posts", "5"]; "/" and "" become nil.
func parseSegments(path string) []string {
	if path == "" || path == "/" {
		return nil
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	if len(segments) == 0 {
		return nil
	}
	return segments
}

// joinSegments rebuilds a rooted URL path from segments.
func joinSegments(segments []string) string {
	if len(segments) == 0 {
		return "/"
	}
	return "/" + strings.Join(segments, "/")
}

package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/dmitrymomot/resmux/core/handler"
)

// Param keys under which the router exposes nested match metadata to
// request contexts. Custom context implementations receive them in the
// params map passed to the context factory.
const (
	ParamParent   = "parent"
	ParamParentID = "parent_id"
)

// routeEntry is one compiled (pattern, target) pair in the route table.
type routeEntry[C handler.Context] struct {
	version string
	parent  string // empty for top-level entries
	name    string
	handler handler.HandlerFunc[C]
}

// mux is the private implementation of Router interface.
type mux[C handler.Context] struct {
	table        []routeEntry[C]
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	fallback     handler.HandlerFunc[C]
	newContext   func(http.ResponseWriter, *http.Request, map[string]string) C
	logger       *slog.Logger
}

// newMux creates a new router instance.
func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		errorHandler: defaultErrorHandler[C],
		fallback:     defaultFallback[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}

	for _, opt := range opts {
		opt(m)
	}

	// If no context factory provided, require it for non-default contexts
	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(newContext(w, r, params)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return m
}

// Version registers resource declarations under a version label.
// Declarations are compiled into the route table in the order they are
// written; the table must be complete before the router serves traffic.
func (m *mux[C]) Version(version string, resources ...ResourceDef[C]) {
	if version == "" {
		panic(ErrEmptyVersion)
	}
	for _, res := range resources {
		m.compile(version, "", res)
	}
}

// compile appends the entries for one resource declaration. The version
// and nesting parent are threaded explicitly so that sibling declarations
// cannot leak compilation state into each other.
//
// Child entries are emitted ahead of their parent: the parent's pattern
// is a two-segment prefix that would otherwise shadow every nested
// pattern under first-match-wins.
func (m *mux[C]) compile(version, parent string, res ResourceDef[C]) {
	if res.name == "" {
		panic(fmt.Errorf("%w: version %q", ErrEmptyResource, version))
	}
	if res.handler == nil {
		panic(fmt.Errorf("%w: %s", ErrNilHandler, patternFor(version, parent, res.name)))
	}
	if parent != "" && len(res.children) > 0 {
		panic(fmt.Errorf("%w: %s", ErrNestingTooDeep, patternFor(version, parent, res.name)))
	}

	for _, child := range res.children {
		m.compile(version, res.name, child)
	}

	if m.declared(version, parent, res.name) {
		m.logger.Warn("route shadowed by earlier declaration",
			"pattern", patternFor(version, parent, res.name),
		)
	}

	m.table = append(m.table, routeEntry[C]{
		version: version,
		parent:  parent,
		name:    res.name,
		handler: res.handler,
	})
}

// declared reports whether an identical pattern is already in the table.
func (m *mux[C]) declared(version, parent, name string) bool {
	for i := range m.table {
		e := &m.table[i]
		if e.version == version && e.parent == parent && e.name == name {
			return true
		}
	}
	return false
}

// Use appends middleware applied to every matched handler.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	m.middlewares = append(m.middlewares, middlewares...)
}

// ServeHTTP implements http.Handler interface.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := &recordingWriter{ResponseWriter: w}

	entry, match, ok := m.lookup(parseSegments(r.URL.Path))

	var (
		fn     handler.HandlerFunc[C]
		params map[string]string
		req    = r
	)
	if ok {
		// The handler sees only the unmatched remainder of the path.
		req = r.Clone(r.Context())
		req.URL.Path = joinSegments(match.Rest)
		req.URL.RawPath = ""

		if match.Parent != "" {
			params = map[string]string{
				ParamParent:   match.Parent,
				ParamParentID: match.ParentID,
			}
		}

		fn = entry.handler
		if len(m.middlewares) > 0 {
			fn = chain(m.middlewares, fn)
		}
	} else {
		fn = m.fallback
	}

	ctx := m.newContext(ww, req, params)

	// Recover from panics to prevent server crashes
	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{
				value: p,
				stack: debug.Stack(),
			}

			if ww.Written() {
				// Can't send an error response anymore, just log the panic
				m.logger.Error("panic after response written",
					"value", panicErr.value,
					"stack", string(panicErr.stack),
					"path", r.URL.Path,
					"method", r.Method,
					"status", ww.Status(),
				)
			} else {
				m.errorHandler(ctx, panicErr)
			}
		}
	}()

	response := fn(ctx)
	if response == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := response(ww, req); err != nil {
		m.errorHandler(ctx, err)
	}
}

// Match runs the matching algorithm without invoking any handler.
func (m *mux[C]) Match(segments []string) (Match, bool) {
	_, match, ok := m.lookup(segments)
	return match, ok
}

// Routes returns all compiled route table entries in table order.
func (m *mux[C]) Routes() []Route {
	routes := make([]Route, len(m.table))
	for i := range m.table {
		e := &m.table[i]
		routes[i] = Route{
			Version: e.version,
			Parent:  e.parent,
			Name:    e.name,
			Pattern: patternFor(e.version, e.parent, e.name),
		}
	}
	return routes
}

// patternFor renders the documentation form of an entry's pattern.
func patternFor(version, parent, name string) string {
	if parent == "" {
		return "/" + version + "/" + name
	}
	return "/" + version + "/" + parent + "/{id}/" + name
}

package router

import (
	"net/http"

	"github.com/dmitrymomot/resmux/core/handler"
)

// Router is the main routing interface. Routes are declared through
// Version during startup; the router then serves as an http.Handler.
type Router[C handler.Context] interface {
	http.Handler
	Routes

	// Version registers an ordered list of resource declarations under
	// the given version label. It panics on structurally invalid
	// declarations (empty names, nil handlers, nesting deeper than one
	// level) so that a malformed route table is caught at startup.
	Version(version string, resources ...ResourceDef[C])

	// Use appends middleware applied to every matched handler.
	Use(middlewares ...handler.Middleware[C])

	// Match runs the matching algorithm against a path split into
	// segments and reports the result without invoking any handler.
	Match(segments []string) (Match, bool)
}

// Routes provides route introspection capabilities.
type Routes interface {
	Routes() []Route
}

// Route describes a single compiled route table entry.
type Route struct {
	Version string
	Parent  string // empty for top-level resources
	Name    string
	Pattern string
}

// ResourceDef is a single resource declaration produced by Resource.
type ResourceDef[C handler.Context] struct {
	name     string
	handler  handler.HandlerFunc[C]
	children []ResourceDef[C]
}

// Resource declares a resource with the given path segment name and
// handler. Child declarations nest one level under the resource; their
// match pattern additionally captures the parent identifier segment.
func Resource[C handler.Context](name string, h handler.HandlerFunc[C], children ...ResourceDef[C]) ResourceDef[C] {
	return ResourceDef[C]{name: name, handler: h, children: children}
}

// Match is the result of running the matching algorithm against a path.
type Match struct {
	Version  string
	Resource string
	Parent   string // parent resource name, empty for top-level matches
	ParentID string // captured parent identifier, empty for top-level matches
	Rest     []string
}

// New creates a new router with the given options.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}

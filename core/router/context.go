package router

import (
	"net/http"
	"time"
)

// Context is the default request context implementation. It wraps the
// response writer and the request with its path already rewritten to the
// unmatched remainder, and exposes nested match metadata.
//
// A fresh Context is created for every request and never reused, so
// metadata from one request cannot leak into the next.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	params map[string]string
	values map[any]any
}

// newContext creates a new Context instance.
func newContext(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
	return &Context{
		w:      w,
		r:      r,
		params: params,
	}
}

// Deadline delegates to the request's context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to the request's context.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to the request's context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns values stored with SetValue, falling back to the
// request's context.
func (c *Context) Value(key any) any {
	if v, ok := c.values[key]; ok {
		return v
	}
	return c.r.Context().Value(key)
}

// Request returns the *http.Request associated with the context.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the http.ResponseWriter associated with the context.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns a value captured during route matching.
func (c *Context) Param(key string) string {
	if c.params == nil {
		return ""
	}
	return c.params[key]
}

// SetValue stores a request-scoped value retrievable through Value.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

// ParentResource returns the parent resource name for nested matches,
// or the empty string for top-level matches.
func (c *Context) ParentResource() string {
	return c.Param(ParamParent)
}

// ParentID returns the parent identifier captured from the path for
// nested matches, or the empty string for top-level matches.
func (c *Context) ParentID() string {
	return c.Param(ParamParentID)
}

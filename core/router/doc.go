// Package router implements a version-scoped resource router. Routes are
// declared as versioned resources, optionally nested one level deep, and
// compiled into a flat ordered route table that is matched first-to-last
// at request time.
//
// A resource owns everything beneath its path segment: the router matches
// the literal version and resource segments, strips the matched prefix,
// and forwards the request to the resource handler with the remainder of
// the path. The handler is free to run its own internal dispatch on what
// is left.
//
// # Declaring routes
//
//	r := router.New[*router.Context]()
//	r.Version("v1",
//		router.Resource("posts", postsHandler,
//			router.Resource("comments", commentsHandler),
//		),
//		router.Resource("authors", authorsHandler),
//	)
//
// This produces the following URL shapes:
//
//	/v1/posts/...                  postsHandler, remainder forwarded
//	/v1/posts/{postID}/comments/...  commentsHandler, remainder forwarded
//	/v1/authors/...                authorsHandler, remainder forwarded
//
// For nested resources the parent identifier is captured from the path
// and exposed to the handler through the request context:
//
//	func listComments(ctx *router.Context) handler.Response {
//		postID := ctx.ParentID() // "123" for /v1/posts/123/comments
//		...
//	}
//
// # Matching semantics
//
// The route table preserves declaration order and the first matching
// entry wins. Resource name segments are matched literally; only the
// captured parent identifier and the trailing remainder are
// unconstrained. Nesting is limited to one parent/child level and deeper
// declarations are rejected when routes are registered, before any
// request is served.
//
// When no entry matches, the router invokes its fallback handler, which
// defaults to a 404 JSON response marked as a routing-level miss.
//
// The route table is immutable once traffic starts: declare all routes
// during startup, then serve. Matching is a pure read and needs no
// locking across concurrent requests.
package router

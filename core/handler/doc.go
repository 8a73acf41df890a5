// Package handler defines the contracts shared by the router, middleware,
// and response packages: a type-safe handler function, a renderable
// response, and the request context interface they operate on.
//
// Handlers return a Response instead of writing to the ResponseWriter
// directly, which keeps response rendering separate from request
// processing and lets the router handle rendering errors in one place:
//
//	func showPost(ctx *router.Context) handler.Response {
//		return response.JSON(map[string]string{"id": ctx.Param("id")})
//	}
//
// Middleware composes by wrapping HandlerFunc values:
//
//	func noop[C handler.Context]() handler.Middleware[C] {
//		return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//			return func(ctx C) handler.Response {
//				return next(ctx)
//			}
//		}
//	}
package handler

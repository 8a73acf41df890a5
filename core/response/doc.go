// Package response provides handler.Response constructors for the common
// response shapes: plain text, JSON, bare status codes, and error
// passthrough.
//
//	func getPost(ctx *router.Context) handler.Response {
//		post, err := store.Find(ctx, ctx.Param("id"))
//		if err != nil {
//			return response.Error(err)
//		}
//		return response.JSON(post)
//	}
package response

package response

import (
	"net/http"

	"github.com/dmitrymomot/resmux/core/handler"
)

// Error returns a handler response that propagates the given error.
// The error is not rendered by the handler itself; it is passed through
// to the router's error handler.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}

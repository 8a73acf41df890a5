package response

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/resmux/core/handler"
)

// JSON creates an application/json response with 200 OK status.
// JSON encoding is performed directly to the response writer for optimal memory usage.
func JSON(v any) handler.Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json response with custom status code.
func JSONWithStatus(v any, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		if status == 0 {
			if v == nil {
				status = http.StatusNoContent
			} else {
				status = http.StatusOK
			}
		}
		w.WriteHeader(status)

		if v == nil || status == http.StatusNoContent {
			return nil
		}
		return json.NewEncoder(w).Encode(v)
	}
}

package router_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/resmux/core/handler"
	"github.com/dmitrymomot/resmux/core/router"
)

func TestResponseWriterStatusTracking(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Version("v1",
		router.Resource("posts", func(ctx *router.Context) handler.Response {
			return func(w http.ResponseWriter, r *http.Request) error {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte("created"))
				return nil
			}
		}),
	)

	w := serve(t, r, "/v1/posts")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "created", w.Body.String())
}

func TestResponseWriterDefaultStatus(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Version("v1",
		router.Resource("posts", func(ctx *router.Context) handler.Response {
			return func(w http.ResponseWriter, r *http.Request) error {
				// Write without explicitly setting status - should default to 200
				w.Write([]byte("default status"))
				return nil
			}
		}),
	)

	w := serve(t, r, "/v1/posts")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "default status", w.Body.String())
}

func TestResponseWriterMultipleWriteHeaders(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Version("v1",
		router.Resource("posts", func(ctx *router.Context) handler.Response {
			return func(w http.ResponseWriter, r *http.Request) error {
				w.WriteHeader(http.StatusCreated)

				// Second WriteHeader should be ignored
				w.WriteHeader(http.StatusBadRequest)

				w.Write([]byte("first status wins"))
				return nil
			}
		}),
	)

	w := serve(t, r, "/v1/posts")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "first status wins", w.Body.String())
}

func TestResponseWriterExposesResponseState(t *testing.T) {
	t.Parallel()

	var (
		status, bytesOut int
		written, exposed bool
	)
	r := router.New[*router.Context]()
	r.Version("v1",
		router.Resource("posts", func(ctx *router.Context) handler.Response {
			return func(w http.ResponseWriter, r *http.Request) error {
				w.WriteHeader(http.StatusAccepted)
				w.Write([]byte("hello"))

				if state, ok := w.(router.ResponseState); ok {
					exposed = true
					status = state.Status()
					bytesOut = state.BytesWritten()
					written = state.Written()
				}
				return nil
			}
		}),
	)

	serve(t, r, "/v1/posts")

	assert.True(t, exposed, "the writer handed to responses should implement ResponseState")
	assert.True(t, written)
	assert.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, len("hello"), bytesOut)
}

func TestResponseWriterNoDoubleErrorResponse(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Version("v1",
		router.Resource("posts", func(ctx *router.Context) handler.Response {
			return func(w http.ResponseWriter, r *http.Request) error {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("partial"))
				return assert.AnError
			}
		}),
	)

	w := serve(t, r, "/v1/posts")

	// The error handler must not overwrite an already-written response.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}

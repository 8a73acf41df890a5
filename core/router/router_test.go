package router_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resmux/core/handler"
	"github.com/dmitrymomot/resmux/core/router"
)

func okHandler(ctx *router.Context) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusOK)
		return nil
	}
}

func TestVersionCompilesTable(t *testing.T) {
	t.Parallel()

	t.Run("preserves declaration order", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Version("v1",
			router.Resource("posts", okHandler),
			router.Resource("authors", okHandler),
			router.Resource("tags", okHandler),
		)

		routes := r.Routes()
		require.Len(t, routes, 3)
		assert.Equal(t, "/v1/posts", routes[0].Pattern)
		assert.Equal(t, "/v1/authors", routes[1].Pattern)
		assert.Equal(t, "/v1/tags", routes[2].Pattern)
	})

	t.Run("nested entries precede their parent", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Version("v1",
			router.Resource("posts", okHandler,
				router.Resource("comments", okHandler),
				router.Resource("likes", okHandler),
			),
			router.Resource("authors", okHandler),
		)

		routes := r.Routes()
		require.Len(t, routes, 4)
		assert.Equal(t, router.Route{Version: "v1", Parent: "posts", Name: "comments", Pattern: "/v1/posts/{id}/comments"}, routes[0])
		assert.Equal(t, router.Route{Version: "v1", Parent: "posts", Name: "likes", Pattern: "/v1/posts/{id}/likes"}, routes[1])
		assert.Equal(t, router.Route{Version: "v1", Name: "posts", Pattern: "/v1/posts"}, routes[2])
		assert.Equal(t, router.Route{Version: "v1", Name: "authors", Pattern: "/v1/authors"}, routes[3])
	})

	t.Run("multiple version blocks compile independently", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Version("v1", router.Resource("posts", okHandler))
		r.Version("v2", router.Resource("posts", okHandler))

		routes := r.Routes()
		require.Len(t, routes, 2)
		assert.Equal(t, "v1", routes[0].Version)
		assert.Equal(t, "v2", routes[1].Version)
	})

	t.Run("deterministic across builds", func(t *testing.T) {
		t.Parallel()

		build := func() []router.Route {
			r := router.New[*router.Context]()
			r.Version("v1",
				router.Resource("posts", okHandler,
					router.Resource("comments", okHandler),
				),
				router.Resource("authors", okHandler),
			)
			return r.Routes()
		}

		assert.Equal(t, build(), build())
	})
}

func TestVersionRejectsInvalidDeclarations(t *testing.T) {
	t.Parallel()

	t.Run("panics on empty version", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		assert.PanicsWithError(t, router.ErrEmptyVersion.Error(), func() {
			r.Version("", router.Resource("posts", okHandler))
		})
	})

	t.Run("panics on empty resource name", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		assert.Panics(t, func() {
			r.Version("v1", router.Resource("", okHandler))
		})
	})

	t.Run("panics on nil handler", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		assert.Panics(t, func() {
			r.Version("v1", router.Resource[*router.Context]("posts", nil))
		})
	})

	t.Run("panics on nesting deeper than one level", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		assert.Panics(t, func() {
			r.Version("v1",
				router.Resource("posts", okHandler,
					router.Resource("comments", okHandler,
						router.Resource("replies", okHandler),
					),
				),
			)
		})
	})

	t.Run("table untouched before the invalid declaration compiles", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Version("v1", router.Resource("posts", okHandler))

		assert.Panics(t, func() {
			r.Version("v1", router.Resource[*router.Context]("authors", nil))
		})
		assert.Len(t, r.Routes(), 1)
	})
}

func TestDuplicateDeclarationWarning(t *testing.T) {
	t.Parallel()

	t.Run("logs warning and keeps first entry live", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		r := router.New(router.WithLogger[*router.Context](logger))
		r.Version("v1",
			router.Resource("posts", okHandler),
			router.Resource("posts", okHandler),
		)

		assert.Contains(t, buf.String(), "route shadowed by earlier declaration")
		assert.Contains(t, buf.String(), "/v1/posts")
		assert.Len(t, r.Routes(), 2)
	})

	t.Run("same name under different versions is not a duplicate", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		r := router.New(router.WithLogger[*router.Context](logger))
		r.Version("v1", router.Resource("posts", okHandler))
		r.Version("v2", router.Resource("posts", okHandler))

		assert.Empty(t, buf.String())
	})

	t.Run("nested and top-level share a name without conflict", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		r := router.New(router.WithLogger[*router.Context](logger))
		r.Version("v1",
			router.Resource("comments", okHandler),
			router.Resource("posts", okHandler,
				router.Resource("comments", okHandler),
			),
		)

		assert.Empty(t, buf.String())
	})
}

package handler

import (
	"context"
	"net/http"
)

// Context is the contract for request contexts in the framework.
// The router package provides the default implementation; applications
// with richer per-request state implement this interface and supply a
// context factory to the router.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}

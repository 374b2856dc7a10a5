package middleware

import (
	"github.com/gin-gonic/gin"
)

// ContextTraceKey is the key used to store the middleware trace in Gin context.
// The trace is request-scoped; it never leaks across requests.
const ContextTraceKey = "middleware_trace"

// FirstTrace seeds the request-scoped trace. Control passes onward only through
// the explicit ctx.Next call.
func FirstTrace() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(ContextTraceKey, "First middleware function run!")
		ctx.Next()
	}
}

// SecondTrace appends to whatever trace the first middleware left behind,
// demonstrating registration-order execution.
func SecondTrace() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		trace := ctx.GetString(ContextTraceKey)
		ctx.Set(ContextTraceKey, trace+" Second middleware function run!")
		ctx.Next()
	}
}

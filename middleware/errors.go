package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the generic error pathway. Handlers that delegate failure
// handling attach errors with ctx.Error; after the chain finishes, the last
// attached error is rendered as a JSON 500 unless a body was already written.
func ErrorHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if len(ctx.Errors) == 0 || ctx.Writer.Written() {
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": ctx.Errors.Last().Error(),
		})
	}
}

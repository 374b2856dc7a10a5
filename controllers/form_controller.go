package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FormController demonstrates decoding a form-urlencoded POST body.
type FormController struct{}

func NewFormController() *FormController { return &FormController{} }

// PostExample echoes the submitted form fields back verbatim as strings.
// No validation or sanitization happens here; the echo contract is exact.
func (f *FormController) PostExample(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "amazing success!",
		"message": "congratulations on sending us this data!",
		"your_data": gin.H{
			"name":  ctx.PostForm("your_name"),
			"email": ctx.PostForm("your_email"),
			"agree": ctx.PostForm("agree"),
		},
	})
}

package controllers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/webbasics/gin-examples/config"
	"github.com/webbasics/gin-examples/middleware"
)

// PageController serves the fixed demonstration pages.
type PageController struct {
	cfg config.AppConfig
}

func NewPageController(cfg config.AppConfig) *PageController {
	return &PageController{cfg: cfg}
}

// Root answers the bare-minimum plain text route.
func (p *PageController) Root(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Goodbye world!")
}

// HTMLExample serves a static HTML file from the public asset directory.
func (p *PageController) HTMLExample(ctx *gin.Context) {
	ctx.File(filepath.Join(p.cfg.StaticDir, "html-example.html"))
}

// JSONExample returns a fixed JSON object referencing a static image.
func (p *PageController) JSONExample(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"title":     "Hello!",
		"heading":   "Hello!",
		"message":   "Welcome to this JSON document, served up by Gin",
		"imagePath": "/static/images/donkey.jpg",
	})
}

// MiddlewareExample reads the trace the chained middleware left in the request
// context. The fallback fires only if the route was wired without its chain.
func (p *PageController) MiddlewareExample(ctx *gin.Context) {
	trace := ctx.GetString(middleware.ContextTraceKey)
	if trace == "" {
		trace = "no middleware ran before this handler"
	}
	ctx.String(http.StatusOK, trace)
}

// Health is a liveness probe.
func (p *PageController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

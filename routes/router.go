package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"

	"github.com/webbasics/gin-examples/config"
	"github.com/webbasics/gin-examples/controllers"
	"github.com/webbasics/gin-examples/middleware"
	"github.com/webbasics/gin-examples/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(cfg config.AppConfig) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with the structured zap logger
	r.Use(utils.Ginzap(utils.Logger))
	r.Use(utils.RecoveryWithZap(utils.Logger))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	r.Static("/static", cfg.StaticDir)

	pageController := controllers.NewPageController(cfg)
	formController := controllers.NewFormController()
	uploadController := controllers.NewUploadController(cfg)
	animalController := controllers.NewAnimalController(cfg)

	r.GET("/", pageController.Root)
	r.GET("/html-example", pageController.HTMLExample)
	r.GET("/json-example", pageController.JSONExample)
	r.GET("/health", pageController.Health)

	// Middleware chain scoped to a path prefix: both steps run in registration
	// order before the handler reads the trace they assembled.
	chained := r.Group("/middleware-example")
	chained.Use(middleware.FirstTrace(), middleware.SecondTrace())
	chained.GET("", pageController.MiddlewareExample)

	posts := r.Group("")
	posts.Use(middleware.RateLimit(cfg.RateLimitPerMinute))
	posts.POST("/post-example", formController.PostExample)
	posts.POST("/upload-example", uploadController.UploadExample)

	r.GET("/proxy-example", animalController.ProxyExample)
	r.GET("/dotenv-example", animalController.DotenvExample)
	r.GET("/parameter-example/:animalId", animalController.ParameterExample)

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return r
}

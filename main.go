package main

import (
	"github.com/webbasics/gin-examples/config"
	"github.com/webbasics/gin-examples/routes"
	"github.com/webbasics/gin-examples/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	r := routes.SetupRouter(cfg)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}

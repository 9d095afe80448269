package main

import (
	"MiniLearn/internal/app"
	"MiniLearn/internal/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.MustLoad()
	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	app.Run(cfg)
}

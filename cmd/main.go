package main

import (
	"github.com/elaibiton11/colman-web-development-assignments/internal/app"
	"github.com/elaibiton11/colman-web-development-assignments/internal/config"
	"github.com/gin-gonic/gin"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	cfg := config.MustLoad()
	app.Run(cfg)
}

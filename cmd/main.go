package main

import (
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/app"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/config"
	"github.com/gin-gonic/gin"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	cfg := config.MustLoad()
	app.Run(cfg)
}

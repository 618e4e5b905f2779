package main

import (
	"fmt"

	"github.com/ark-dvd/realtor-os-sub000/api"
	"github.com/ark-dvd/realtor-os-sub000/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("error loading configuration: %v", err))
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	r := gin.Default()
	api.InitRoutes(r, cfg, logger)

	logger.Info("server starting", zap.String("addr", cfg.Addr()), zap.Bool("cms_enabled", cfg.CMS.Enabled()))
	if err := r.Run(cfg.Addr()); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}

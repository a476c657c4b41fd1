package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"refresh-tracker/internal/config"
	"refresh-tracker/internal/database"
	"refresh-tracker/internal/handlers"
	"refresh-tracker/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config error")
	}
	log := cfg.NewLogger()
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Init(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("database init failed")
	}

	h := handlers.New(server.NewServices(cfg, db, log), log)
	r := server.NewRouter(cfg, db, h, log)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	if err := server.Run(ctx, addr, r, cfg.ShutdownTimeout, log); err != nil {
		log.WithError(err).Fatal("server error")
	}
}

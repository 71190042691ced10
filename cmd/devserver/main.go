package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"fittrack/internal/config"
	"fittrack/internal/devserver"
	"fittrack/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("could not load config: %v", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.FormatJSON)

	srv := devserver.New(cfg.DevServer.JWTSecret, cfg.DevServer.JWTExpiration)

	server := &http.Server{
		Addr:         cfg.DevServer.Address,
		Handler:      srv.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logrus.Infof("dev backend listening on %s", cfg.DevServer.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down dev backend...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logrus.Fatalf("forced shutdown: %v", err)
	}
	logrus.Info("dev backend stopped")
}

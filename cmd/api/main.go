package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"stocksummary-service/internal/application"
	"stocksummary-service/internal/bootstrap"
	"stocksummary-service/internal/config"
	infraconfig "stocksummary-service/internal/infrastructure/config"
	httpserver "stocksummary-service/internal/infrastructure/http"
	"stocksummary-service/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	ctx := context.Background()
	logger := logx.L()
	cfg := config.Load()
	addr := ":" + cfg.Port

	repos, cleanup, err := bootstrap.BuildRepos(ctx, cfg)
	if err != nil {
		logger.Fatal("bootstrap repos", zap.Error(err))
	}
	defer cleanup()

	svc := application.NewSummaryService(repos.Summaries)
	srv := httpserver.NewServer(svc)
	srv.SetReadyCheck(repos.Ping)
	mux := httpserver.NewRouter(srv)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		logger.Info("server started", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, shCancel := context.WithTimeout(context.Background(), infraconfig.DefaultShutdownTimeout)
	defer shCancel()
	_ = server.Shutdown(shutdownCtx)
	logger.Info("server stopped")
}

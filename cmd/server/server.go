package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/sheet-api/internal/clients/chain"
	"github.com/KirkDiggler/sheet-api/internal/config"
	v1alpha1 "github.com/KirkDiggler/sheet-api/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/sheet-api/internal/notifications"
	diceorch "github.com/KirkDiggler/sheet-api/internal/orchestrators/dice"
	"github.com/KirkDiggler/sheet-api/internal/orchestrators/sheet"
	"github.com/KirkDiggler/sheet-api/internal/pkg/clock"
	"github.com/KirkDiggler/sheet-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/sheet-api/internal/redis"
	"github.com/KirkDiggler/sheet-api/internal/repositories/session"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the sheet API HTTP server with all configured services.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	clk := clock.New()

	var sessionRepo session.Repository
	if cfg.RedisAddr != "" {
		client, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return fmt.Errorf("failed to create redis client: %w", err)
		}
		sessionRepo, err = session.NewRedisRepository(&session.RedisConfig{
			Client: client,
			Clock:  clk,
		})
		if err != nil {
			return fmt.Errorf("failed to create session repository: %w", err)
		}
		slog.Info("Using Redis session store", "addr", cfg.RedisAddr)
	} else {
		sessionRepo = session.NewInMemory(clk)
		slog.Warn("No Redis configured, sessions will not survive restarts")
	}

	chainClient, err := chain.NewSimulated(&chain.SimulatedConfig{
		IDGenerator: idgen.NewPrefixed("tx"),
		Clock:       clk,
		RollDelay:   cfg.ChainRollDelay,
	})
	if err != nil {
		return fmt.Errorf("failed to create chain client: %w", err)
	}

	notifier := notifications.NewSlogNotifier()

	sheetService, err := sheet.NewOrchestrator(&sheet.Config{
		SessionRepo: sessionRepo,
		ChainClient: chainClient,
		Notifier:    notifier,
	})
	if err != nil {
		return fmt.Errorf("failed to create sheet service: %w", err)
	}

	diceService, err := diceorch.NewOrchestrator(&diceorch.Config{
		SessionRepo:    sessionRepo,
		ChainClient:    chainClient,
		Notifier:       notifier,
		IDGenerator:    idgen.NewPrefixed("roll"),
		Clock:          clk,
		LocalRollDelay: cfg.LocalRollDelay,
		ConfirmTimeout: cfg.ConfirmTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create dice service: %w", err)
	}

	// The event pump resolves remote rolls for the lifetime of the server
	if err := diceService.Start(ctx); err != nil {
		return fmt.Errorf("failed to start roll event pump: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.Config{
		SheetService: sheetService,
		DiceService:  diceService,
	})
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down HTTP server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed, forcing close", "error", err)
			return srv.Close()
		}

		slog.Info("Server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

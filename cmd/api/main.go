package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chachabrian/bustraveller-backend/internal/config"
	"github.com/chachabrian/bustraveller-backend/internal/database"
	"github.com/chachabrian/bustraveller-backend/internal/router"
	"github.com/chachabrian/bustraveller-backend/internal/services"
	"github.com/chachabrian/bustraveller-backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := database.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database connected")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	hub := services.NewHub()
	go hub.Run(ctx)

	rdb, err := services.InitRedis(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
		go services.RunBookingRelay(ctx, rdb, hub)
		log.Println("Redis booking feed enabled")
	}

	if cfg.EmailUser == "" || cfg.EmailPass == "" {
		log.Println("EMAIL_USER/EMAIL_PASS not set, confirmation emails will fail")
	}
	mailer := utils.NewSMTPMailer(cfg.EmailUser, cfg.EmailPass, cfg.SMTPHost, cfg.SMTPPort)
	notifier := services.NewBookingNotifier(mailer)

	r := router.New(router.Deps{
		Store:          services.NewBookingStore(db),
		Notifier:       notifier,
		Feed:           services.NewBookingFeed(hub, rdb),
		Hub:            hub,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	stop()

	notifier.Close()
	log.Println("Server stopped")
}

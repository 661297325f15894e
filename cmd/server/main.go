package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"book-commerce-platform/internal/config"
	"book-commerce-platform/internal/database"
	"book-commerce-platform/internal/handlers"
	"book-commerce-platform/internal/repositories"
	"book-commerce-platform/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database connection
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := database.NewConnection(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close(context.Background())
	log.Println("Database connection established successfully")

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db.DB)
	bookRepo := repositories.NewBookRepository(db.DB)
	orderRepo := repositories.NewOrderRepository(db.DB)
	subscriberRepo := repositories.NewSubscriberRepository(db.DB)

	// The unique username index closes the register race at the store level.
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	// Initialize services
	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry)
	authService := services.NewAuthService(userRepo, tokenService)
	catalogService := services.NewCatalogService(bookRepo)
	checkoutService := services.NewCheckoutService(orderRepo)
	subscriptionService := services.NewSubscriptionService(subscriberRepo)

	router := handlers.NewRouter(authService, catalogService, checkoutService, subscriptionService)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on http://%s%s", cfg.Server.Host, addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed:", err)
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}

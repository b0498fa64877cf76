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

	"lobby-signup/internal/client"
	"lobby-signup/internal/config"
	"lobby-signup/internal/handler"
	"lobby-signup/internal/server"
	"lobby-signup/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	stripeClient := client.NewStripeClient(&cfg.Stripe)
	airtableClient := client.NewAirtableClient(&cfg.Airtable)

	checkoutService := service.NewCheckoutService(stripeClient, cfg.Prices)
	recordService := service.NewRecordService(airtableClient, cfg.Airtable)

	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	recordHandler := handler.NewRecordHandler(recordService)
	pageHandler := handler.NewPageHandler(checkoutService, recordService, cfg.Stripe.PublishableKey)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(checkoutHandler, recordHandler, pageHandler)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}

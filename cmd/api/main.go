package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"shopify-nft-minter/internal/client"
	"shopify-nft-minter/internal/config"
	"shopify-nft-minter/internal/metrics"
	"shopify-nft-minter/internal/repository"
	"shopify-nft-minter/internal/server"
	"shopify-nft-minter/internal/service"
	"syscall"
	"time"

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

	metrics.Register()

	db := client.InitSqliteClient(cfg.DatabaseURL)
	shopifyClient := client.NewShopifyClient(&cfg.Shopify)

	mintClient, err := client.NewMintClient(context.Background(), &cfg.Chain)
	if err != nil {
		fmt.Printf("Failed to init mint client: %v\n", err)
		os.Exit(1)
	}

	webhookEventRepo := repository.NewWebhookEventRepository(db)
	mintReceiptRepo := repository.NewMintReceiptRepository(db)

	mintService := service.NewOrderMintService(
		shopifyClient,
		mintClient,
		webhookEventRepo,
		mintReceiptRepo,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(mintService, cfg.Shopify.SecretKey)

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

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}

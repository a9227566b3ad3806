package service

import (
	"context"
	"fmt"
	"log"
	"shopify-nft-minter/internal/client"
	"shopify-nft-minter/internal/metrics"
	"shopify-nft-minter/internal/model"
	"shopify-nft-minter/internal/repository"
	"time"
)

const (
	walletAddressProperty = "Wallet Address"
	orderCreatedTopic     = "orders/create"
)

var ErrMissingWalletAddress = fmt.Errorf("line item has no %q property", walletAddressProperty)

type OrderMintService interface {
	HandleOrderCreated(ctx context.Context, orderID string) error
}

type orderMintServiceImpl struct {
	shopifyClient    client.ShopifyClient
	mintClient       client.MintClient
	webhookEventRepo repository.WebhookEventRepository
	mintReceiptRepo  repository.MintReceiptRepository
}

func NewOrderMintService(
	shopifyClient client.ShopifyClient,
	mintClient client.MintClient,
	webhookEventRepo repository.WebhookEventRepository,
	mintReceiptRepo repository.MintReceiptRepository,
) OrderMintService {
	return &orderMintServiceImpl{
		shopifyClient:    shopifyClient,
		mintClient:       mintClient,
		webhookEventRepo: webhookEventRepo,
		mintReceiptRepo:  mintReceiptRepo,
	}
}

// HandleOrderCreated processes one verified orders/create delivery: fetch the
// order, then for each line item fetch its product, extract the buyer's wallet
// address and mint the product as an NFT to that wallet. Items are processed
// strictly in the order Shopify returns them; a failure on item k stops the
// loop with items before k already minted. Their receipts let a redelivery of
// the same order resume past them.
func (s *orderMintServiceImpl) HandleOrderCreated(ctx context.Context, orderID string) error {
	processed, err := s.webhookEventRepo.IsProcessed(ctx, orderID)
	if err != nil {
		return fmt.Errorf("check webhook ledger: %w", err)
	}
	if processed {
		log.Printf("order %s already processed, skipping", orderID)
		metrics.WebhooksDedupedTotal.Inc()
		return nil
	}

	if err := s.webhookEventRepo.Record(ctx, orderID, orderCreatedTopic); err != nil {
		return fmt.Errorf("record webhook event: %w", err)
	}

	if err := s.mintOrderItems(ctx, orderID); err != nil {
		if markErr := s.webhookEventRepo.MarkFailed(ctx, orderID); markErr != nil {
			log.Printf("mark webhook event failed for order %s: %v", orderID, markErr)
		}
		return err
	}

	if err := s.webhookEventRepo.MarkProcessed(ctx, orderID); err != nil {
		return fmt.Errorf("mark webhook event processed: %w", err)
	}

	return nil
}

func (s *orderMintServiceImpl) mintOrderItems(ctx context.Context, orderID string) error {
	order, err := s.shopifyClient.GetOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("fetch order: %w", err)
	}

	for _, item := range order.LineItems {
		minted, err := s.mintReceiptRepo.Exists(ctx, orderID, item.ID)
		if err != nil {
			return fmt.Errorf("check mint receipts: %w", err)
		}
		if minted {
			log.Printf("line item %d of order %s already minted, skipping", item.ID, orderID)
			continue
		}

		if err := s.mintLineItem(ctx, orderID, &item); err != nil {
			return fmt.Errorf("mint line item %d: %w", item.ID, err)
		}
	}

	return nil
}

func (s *orderMintServiceImpl) mintLineItem(ctx context.Context, orderID string, item *model.LineItem) error {
	product, err := s.shopifyClient.GetProduct(ctx, item.ProductID)
	if err != nil {
		return fmt.Errorf("fetch product: %w", err)
	}

	walletAddress, ok := findProperty(item.Properties, walletAddressProperty)
	if !ok {
		return ErrMissingWalletAddress
	}

	metadata := &model.NFTMetadata{
		Name:        product.Title,
		Description: product.BodyHTML,
		Image:       product.Image.Src,
	}

	start := time.Now()
	result, err := s.mintClient.MintTo(ctx, walletAddress, metadata)
	metrics.MintDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MintsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("mint to %s: %w", walletAddress, err)
	}
	metrics.MintsTotal.WithLabelValues("success").Inc()

	if err := s.mintReceiptRepo.Create(ctx, &model.MintReceipt{
		OrderID:       orderID,
		LineItemID:    item.ID,
		ProductID:     item.ProductID,
		WalletAddress: walletAddress,
		TxHash:        result.TxHash,
		TokenName:     product.Title,
	}); err != nil {
		return fmt.Errorf("store mint receipt: %w", err)
	}

	log.Printf("minted %q to %s (tx %s)", product.Title, walletAddress, result.TxHash)
	return nil
}

func findProperty(properties []model.ItemProperty, name string) (string, bool) {
	for _, p := range properties {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

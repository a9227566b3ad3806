package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"shopify-nft-minter/internal/config"
	"shopify-nft-minter/internal/model"
	"time"
)

type ShopifyClient interface {
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	GetProduct(ctx context.Context, productID int64) (*model.Product, error)
}

type shopifyClientImpl struct {
	httpClient  *http.Client
	siteURL     string
	accessToken string
	apiVersion  string
}

func NewShopifyClient(shopifyCfg *config.Shopify) ShopifyClient {
	return &shopifyClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		siteURL:     shopifyCfg.SiteURL,
		accessToken: shopifyCfg.AccessToken,
		apiVersion:  shopifyCfg.APIVersion,
	}
}

func (c *shopifyClientImpl) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	url := fmt.Sprintf("%s/admin/api/%s/orders/%s.json", c.siteURL, c.apiVersion, orderID)

	var envelope model.OrderEnvelope
	if err := c.getJSON(ctx, url, &envelope); err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}

	return &envelope.Order, nil
}

func (c *shopifyClientImpl) GetProduct(ctx context.Context, productID int64) (*model.Product, error) {
	url := fmt.Sprintf("%s/admin/api/%s/products/%d.json", c.siteURL, c.apiVersion, productID)

	var envelope model.ProductEnvelope
	if err := c.getJSON(ctx, url, &envelope); err != nil {
		return nil, fmt.Errorf("get product %d: %w", productID, err)
	}

	return &envelope.Product, nil
}

func (c *shopifyClientImpl) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}

	req.Header.Set("X-Shopify-Access-Token", c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("shopify error %d: %s", resp.StatusCode, string(b))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode shopify response: %w", err)
	}

	return nil
}

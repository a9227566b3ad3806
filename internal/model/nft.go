package model

// NFTMetadata is the token metadata minted for one purchased item, projected
// straight from the Shopify product.
type NFTMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

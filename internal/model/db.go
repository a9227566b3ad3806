package model

import "time"

const (
	WebhookStatusReceived  = "RECEIVED"
	WebhookStatusProcessed = "PROCESSED"
	WebhookStatusFailed    = "FAILED"
)

// WebhookEvent is the delivery ledger. Shopify retries webhooks it considers
// undelivered, so each order id is recorded exactly once and re-deliveries of
// a processed order are acknowledged without re-minting.
type WebhookEvent struct {
	ID        uint   `gorm:"primaryKey"`
	OrderID   string `gorm:"uniqueIndex;size:64;not null"`
	Topic     string `gorm:"size:64;not null"`
	Status    string `gorm:"size:16;index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MintReceipt records one confirmed mint. A redelivered order skips line items
// that already have a receipt.
type MintReceipt struct {
	ID            uint   `gorm:"primaryKey"`
	OrderID       string `gorm:"index;size:64;not null"`
	LineItemID    int64  `gorm:"not null"`
	ProductID     int64  `gorm:"not null"`
	WalletAddress string `gorm:"size:64;not null"`
	TxHash        string `gorm:"size:80;not null"`
	TokenName     string
	CreatedAt     time.Time
}

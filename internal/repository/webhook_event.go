package repository

import (
	"context"
	"shopify-nft-minter/internal/model"
	"time"

	"gorm.io/gorm"
)

type WebhookEventRepository interface {
	IsProcessed(ctx context.Context, orderID string) (bool, error)
	Record(ctx context.Context, orderID, topic string) error
	MarkProcessed(ctx context.Context, orderID string) error
	MarkFailed(ctx context.Context, orderID string) error
}

type webhookEventRepositoryImpl struct {
	db *gorm.DB
}

func NewWebhookEventRepository(db *gorm.DB) WebhookEventRepository {
	return &webhookEventRepositoryImpl{db: db}
}

func (r *webhookEventRepositoryImpl) IsProcessed(ctx context.Context, orderID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.WebhookEvent{}).
		Where("order_id = ?", orderID).
		Where("status = ?", model.WebhookStatusProcessed).
		Count(&count).Error

	return count > 0, err
}

func (r *webhookEventRepositoryImpl) Record(ctx context.Context, orderID, topic string) error {
	return r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		FirstOrCreate(&model.WebhookEvent{
			OrderID: orderID,
			Topic:   topic,
			Status:  model.WebhookStatusReceived,
		}).Error
}

func (r *webhookEventRepositoryImpl) MarkProcessed(ctx context.Context, orderID string) error {
	return r.setStatus(ctx, orderID, model.WebhookStatusProcessed)
}

func (r *webhookEventRepositoryImpl) MarkFailed(ctx context.Context, orderID string) error {
	return r.setStatus(ctx, orderID, model.WebhookStatusFailed)
}

func (r *webhookEventRepositoryImpl) setStatus(ctx context.Context, orderID, status string) error {
	return r.db.WithContext(ctx).Model(&model.WebhookEvent{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

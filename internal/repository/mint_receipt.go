package repository

import (
	"context"
	"shopify-nft-minter/internal/model"

	"gorm.io/gorm"
)

type MintReceiptRepository interface {
	Create(ctx context.Context, receipt *model.MintReceipt) error
	Exists(ctx context.Context, orderID string, lineItemID int64) (bool, error)
	FindByOrderID(ctx context.Context, orderID string) ([]*model.MintReceipt, error)
}

type mintReceiptRepositoryImpl struct {
	db *gorm.DB
}

func NewMintReceiptRepository(db *gorm.DB) MintReceiptRepository {
	return &mintReceiptRepositoryImpl{db: db}
}

func (r *mintReceiptRepositoryImpl) Create(ctx context.Context, receipt *model.MintReceipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *mintReceiptRepositoryImpl) Exists(ctx context.Context, orderID string, lineItemID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MintReceipt{}).
		Where("order_id = ?", orderID).
		Where("line_item_id = ?", lineItemID).
		Count(&count).Error

	return count > 0, err
}

func (r *mintReceiptRepositoryImpl) FindByOrderID(ctx context.Context, orderID string) ([]*model.MintReceipt, error) {
	var receipts []*model.MintReceipt
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&receipts).Error

	if err != nil {
		return nil, err
	}

	return receipts, nil
}

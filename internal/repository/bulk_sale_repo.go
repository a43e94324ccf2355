package repository

import (
	"context"
	"time"

	"github.com/newstarted0004/surti-khaman/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BulkSaleRepository interface {
	Create(ctx context.Context, b *model.BulkSale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.BulkSale, error)
	List(ctx context.Context) ([]model.BulkSale, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]model.BulkSale, error)
	Update(ctx context.Context, b *model.BulkSale) error
}

type bulkSaleRepo struct{ db *gorm.DB }

func NewBulkSaleRepository(db *gorm.DB) BulkSaleRepository { return &bulkSaleRepo{db: db} }

func (r *bulkSaleRepo) Create(ctx context.Context, b *model.BulkSale) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bulkSaleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.BulkSale, error) {
	var b model.BulkSale
	err := r.db.WithContext(ctx).Preload("Customer").Preload("Product").First(&b, "id = ?", id).Error
	return &b, err
}

func (r *bulkSaleRepo) List(ctx context.Context) ([]model.BulkSale, error) {
	var sales []model.BulkSale
	err := r.db.WithContext(ctx).Preload("Customer").Preload("Product").
		Order("date DESC, created_at DESC").Find(&sales).Error
	return sales, err
}

func (r *bulkSaleRepo) ListBetween(ctx context.Context, start, end time.Time) ([]model.BulkSale, error) {
	var sales []model.BulkSale
	err := r.db.WithContext(ctx).Where("date BETWEEN ? AND ?", start, end).Find(&sales).Error
	return sales, err
}

func (r *bulkSaleRepo) Update(ctx context.Context, b *model.BulkSale) error {
	return r.db.WithContext(ctx).Save(b).Error
}

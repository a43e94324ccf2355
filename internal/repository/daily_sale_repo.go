package repository

import (
	"context"
	"time"

	"github.com/newstarted0004/surti-khaman/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DailySaleRepository interface {
	Create(ctx context.Context, s *model.DailySale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DailySale, error)
	List(ctx context.Context, limit int) ([]model.DailySale, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]model.DailySale, error)
	Update(ctx context.Context, s *model.DailySale) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type dailySaleRepo struct{ db *gorm.DB }

func NewDailySaleRepository(db *gorm.DB) DailySaleRepository { return &dailySaleRepo{db: db} }

func (r *dailySaleRepo) Create(ctx context.Context, s *model.DailySale) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *dailySaleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.DailySale, error) {
	var s model.DailySale
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *dailySaleRepo) List(ctx context.Context, limit int) ([]model.DailySale, error) {
	var sales []model.DailySale
	err := r.db.WithContext(ctx).Order("date DESC").Limit(limit).Find(&sales).Error
	return sales, err
}

func (r *dailySaleRepo) ListBetween(ctx context.Context, start, end time.Time) ([]model.DailySale, error) {
	var sales []model.DailySale
	err := r.db.WithContext(ctx).Where("date BETWEEN ? AND ?", start, end).Find(&sales).Error
	return sales, err
}

func (r *dailySaleRepo) Update(ctx context.Context, s *model.DailySale) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *dailySaleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.DailySale{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

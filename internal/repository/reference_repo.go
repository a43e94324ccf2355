package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrIncompleteReorder is returned when a reorder request does not list
// every row in the collection.
var ErrIncompleteReorder = errors.New("reorder id list does not cover the collection")

// Orderable is implemented by every reference entity that carries a
// 1-based display_order.
type Orderable interface {
	Position() int
	SetPosition(int)
}

// ReferenceRepository is the shared storage contract for the five manually
// ordered reference collections (customers, products, shops, items, workers).
// The CRUD surface is identical across them, so one generic implementation
// serves all five.
type ReferenceRepository[T any, PT interface {
	*T
	Orderable
}] interface {
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uuid.UUID) (PT, error)
	Create(ctx context.Context, e PT) error
	Update(ctx context.Context, e PT) error
	// Reorder rewrites display_order to the 1-based index of every id in ids,
	// in one transaction — the ordering is committed whole or not at all.
	Reorder(ctx context.Context, ids []uuid.UUID) error
}

type referenceRepo[T any, PT interface {
	*T
	Orderable
}] struct {
	db *gorm.DB
}

func NewReferenceRepository[T any, PT interface {
	*T
	Orderable
}](db *gorm.DB) ReferenceRepository[T, PT] {
	return &referenceRepo[T, PT]{db: db}
}

func (r *referenceRepo[T, PT]) List(ctx context.Context) ([]T, error) {
	var list []T
	err := r.db.WithContext(ctx).Order("display_order ASC").Find(&list).Error
	return list, err
}

func (r *referenceRepo[T, PT]) FindByID(ctx context.Context, id uuid.UUID) (PT, error) {
	e := PT(new(T))
	err := r.db.WithContext(ctx).First(e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *referenceRepo[T, PT]) Create(ctx context.Context, e PT) error {
	// New entries append at the end of the list.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var max int
		if err := tx.Model(new(T)).Select("COALESCE(MAX(display_order), 0)").Scan(&max).Error; err != nil {
			return err
		}
		e.SetPosition(max + 1)
		return tx.Create(e).Error
	})
}

func (r *referenceRepo[T, PT]) Update(ctx context.Context, e PT) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *referenceRepo[T, PT]) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The id list must cover the whole collection, or rows outside it
		// would keep stale positions and break the contiguous 1..N order.
		var total int64
		if err := tx.Model(new(T)).Count(&total).Error; err != nil {
			return err
		}
		if int64(len(ids)) != total {
			return fmt.Errorf("%w: got %d ids, collection has %d rows", ErrIncompleteReorder, len(ids), total)
		}
		for i, id := range ids {
			res := tx.Model(new(T)).Where("id = ?", id).Update("display_order", i+1)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("reorder: %w (id %s)", gorm.ErrRecordNotFound, id)
			}
		}
		return nil
	})
}

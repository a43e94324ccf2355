package repository

import (
	"context"
	"time"

	"github.com/newstarted0004/surti-khaman/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkerLedgerRepository stores the three event streams behind payroll:
// attendance marks, advances and salary payments. The worker entity itself
// lives in the generic reference repository.
type WorkerLedgerRepository interface {
	FindAttendance(ctx context.Context, workerID uuid.UUID, date time.Time) (*model.WorkerAttendance, error)
	CreateAttendance(ctx context.Context, a *model.WorkerAttendance) error
	UpdateAttendance(ctx context.Context, a *model.WorkerAttendance) error
	ListAttendance(ctx context.Context, workerID uuid.UUID, start, end time.Time) ([]model.WorkerAttendance, error)

	CreateAdvance(ctx context.Context, a *model.WorkerAdvance) error
	ListAdvances(ctx context.Context, workerID uuid.UUID, start, end time.Time) ([]model.WorkerAdvance, error)

	CreatePayment(ctx context.Context, p *model.WorkerSalaryPayment) error
	ListPayments(ctx context.Context, workerID uuid.UUID, start, end time.Time) ([]model.WorkerSalaryPayment, error)
	// ListPaymentsBetween spans all workers — feeds the dashboard's
	// worker-cost stream.
	ListPaymentsBetween(ctx context.Context, start, end time.Time) ([]model.WorkerSalaryPayment, error)
}

type workerLedgerRepo struct{ db *gorm.DB }

func NewWorkerLedgerRepository(db *gorm.DB) WorkerLedgerRepository {
	return &workerLedgerRepo{db: db}
}

func (r *workerLedgerRepo) FindAttendance(ctx context.Context, workerID uuid.UUID, date time.Time) (*model.WorkerAttendance, error) {
	var a model.WorkerAttendance
	err := r.db.WithContext(ctx).
		Where("worker_id = ? AND date = ?", workerID, date).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *workerLedgerRepo) CreateAttendance(ctx context.Context, a *model.WorkerAttendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *workerLedgerRepo) UpdateAttendance(ctx context.Context, a *model.WorkerAttendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *workerLedgerRepo) ListAttendance(ctx context.Context, workerID uuid.UUID, start, end time.Time) ([]model.WorkerAttendance, error) {
	var list []model.WorkerAttendance
	err := r.db.WithContext(ctx).
		Where("worker_id = ? AND date BETWEEN ? AND ?", workerID, start, end).
		Order("date DESC").Find(&list).Error
	return list, err
}

func (r *workerLedgerRepo) CreateAdvance(ctx context.Context, a *model.WorkerAdvance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *workerLedgerRepo) ListAdvances(ctx context.Context, workerID uuid.UUID, start, end time.Time) ([]model.WorkerAdvance, error) {
	var list []model.WorkerAdvance
	err := r.db.WithContext(ctx).
		Where("worker_id = ? AND date BETWEEN ? AND ?", workerID, start, end).
		Order("date DESC").Find(&list).Error
	return list, err
}

func (r *workerLedgerRepo) CreatePayment(ctx context.Context, p *model.WorkerSalaryPayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *workerLedgerRepo) ListPayments(ctx context.Context, workerID uuid.UUID, start, end time.Time) ([]model.WorkerSalaryPayment, error) {
	var list []model.WorkerSalaryPayment
	err := r.db.WithContext(ctx).
		Where("worker_id = ? AND date BETWEEN ? AND ?", workerID, start, end).
		Order("date DESC").Find(&list).Error
	return list, err
}

func (r *workerLedgerRepo) ListPaymentsBetween(ctx context.Context, start, end time.Time) ([]model.WorkerSalaryPayment, error) {
	var list []model.WorkerSalaryPayment
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", start, end).Find(&list).Error
	return list, err
}

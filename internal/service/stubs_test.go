package service

// In-memory repository stubs shared by the service tests.

import (
	"context"
	"sort"
	"time"

	"github.com/newstarted0004/surti-khaman/internal/model"
	"github.com/newstarted0004/surti-khaman/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func inRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

// ── Daily sales ──────────────────────────────────────────────────────────────

type stubDailySaleRepo struct {
	sales map[uuid.UUID]*model.DailySale
}

func newStubDailySaleRepo() *stubDailySaleRepo {
	return &stubDailySaleRepo{sales: make(map[uuid.UUID]*model.DailySale)}
}

func (r *stubDailySaleRepo) Create(_ context.Context, s *model.DailySale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sales[s.ID] = s
	return nil
}

func (r *stubDailySaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.DailySale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubDailySaleRepo) List(_ context.Context, limit int) ([]model.DailySale, error) {
	out := make([]model.DailySale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, *s)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubDailySaleRepo) ListBetween(_ context.Context, start, end time.Time) ([]model.DailySale, error) {
	var out []model.DailySale
	for _, s := range r.sales {
		if inRange(s.Date, start, end) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubDailySaleRepo) Update(_ context.Context, s *model.DailySale) error {
	r.sales[s.ID] = s
	return nil
}

func (r *stubDailySaleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.sales[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.sales, id)
	return nil
}

var _ repository.DailySaleRepository = (*stubDailySaleRepo)(nil)

// ── Bulk sales ───────────────────────────────────────────────────────────────

type stubBulkSaleRepo struct {
	sales map[uuid.UUID]*model.BulkSale
}

func newStubBulkSaleRepo() *stubBulkSaleRepo {
	return &stubBulkSaleRepo{sales: make(map[uuid.UUID]*model.BulkSale)}
}

func (r *stubBulkSaleRepo) Create(_ context.Context, b *model.BulkSale) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.sales[b.ID] = b
	return nil
}

func (r *stubBulkSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.BulkSale, error) {
	b, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *stubBulkSaleRepo) List(_ context.Context) ([]model.BulkSale, error) {
	out := make([]model.BulkSale, 0, len(r.sales))
	for _, b := range r.sales {
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBulkSaleRepo) ListBetween(_ context.Context, start, end time.Time) ([]model.BulkSale, error) {
	var out []model.BulkSale
	for _, b := range r.sales {
		if inRange(b.Date, start, end) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBulkSaleRepo) Update(_ context.Context, b *model.BulkSale) error {
	r.sales[b.ID] = b
	return nil
}

var _ repository.BulkSaleRepository = (*stubBulkSaleRepo)(nil)

// ── Purchases ────────────────────────────────────────────────────────────────

type stubPurchaseRepo struct {
	purchases map[uuid.UUID]*model.Purchase
}

func newStubPurchaseRepo() *stubPurchaseRepo {
	return &stubPurchaseRepo{purchases: make(map[uuid.UUID]*model.Purchase)}
}

func (r *stubPurchaseRepo) Create(_ context.Context, p *model.Purchase) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.purchases[p.ID] = p
	return nil
}

func (r *stubPurchaseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPurchaseRepo) List(_ context.Context) ([]model.Purchase, error) {
	out := make([]model.Purchase, 0, len(r.purchases))
	for _, p := range r.purchases {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPurchaseRepo) ListBetween(_ context.Context, start, end time.Time) ([]model.Purchase, error) {
	var out []model.Purchase
	for _, p := range r.purchases {
		if inRange(p.Date, start, end) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPurchaseRepo) Update(_ context.Context, p *model.Purchase) error {
	r.purchases[p.ID] = p
	return nil
}

var _ repository.PurchaseRepository = (*stubPurchaseRepo)(nil)

// ── Workers (reference) ──────────────────────────────────────────────────────

type stubWorkerRepo struct {
	workers map[uuid.UUID]*model.Worker
}

func newStubWorkerRepo() *stubWorkerRepo {
	return &stubWorkerRepo{workers: make(map[uuid.UUID]*model.Worker)}
}

func (r *stubWorkerRepo) List(_ context.Context) ([]model.Worker, error) {
	out := make([]model.Worker, 0, len(r.workers))
	for _, w := range r.workers {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position() < out[j].Position() })
	return out, nil
}

func (r *stubWorkerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Worker, error) {
	w, ok := r.workers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return w, nil
}

func (r *stubWorkerRepo) Create(_ context.Context, w *model.Worker) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	w.SetPosition(len(r.workers) + 1)
	r.workers[w.ID] = w
	return nil
}

func (r *stubWorkerRepo) Update(_ context.Context, w *model.Worker) error {
	r.workers[w.ID] = w
	return nil
}

func (r *stubWorkerRepo) Reorder(_ context.Context, ids []uuid.UUID) error {
	if len(ids) != len(r.workers) {
		return repository.ErrIncompleteReorder
	}
	for i, id := range ids {
		w, ok := r.workers[id]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		w.SetPosition(i + 1)
	}
	return nil
}

var _ repository.ReferenceRepository[model.Worker, *model.Worker] = (*stubWorkerRepo)(nil)

// ── Worker ledger ────────────────────────────────────────────────────────────

type stubWorkerLedgerRepo struct {
	attendance map[uuid.UUID]*model.WorkerAttendance
	advances   []*model.WorkerAdvance
	payments   []*model.WorkerSalaryPayment
}

func newStubWorkerLedgerRepo() *stubWorkerLedgerRepo {
	return &stubWorkerLedgerRepo{attendance: make(map[uuid.UUID]*model.WorkerAttendance)}
}

func (r *stubWorkerLedgerRepo) FindAttendance(_ context.Context, workerID uuid.UUID, date time.Time) (*model.WorkerAttendance, error) {
	for _, a := range r.attendance {
		if a.WorkerID == workerID && a.Date.Equal(date) {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubWorkerLedgerRepo) CreateAttendance(_ context.Context, a *model.WorkerAttendance) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.attendance[a.ID] = a
	return nil
}

func (r *stubWorkerLedgerRepo) UpdateAttendance(_ context.Context, a *model.WorkerAttendance) error {
	r.attendance[a.ID] = a
	return nil
}

func (r *stubWorkerLedgerRepo) ListAttendance(_ context.Context, workerID uuid.UUID, start, end time.Time) ([]model.WorkerAttendance, error) {
	var out []model.WorkerAttendance
	for _, a := range r.attendance {
		if a.WorkerID == workerID && inRange(a.Date, start, end) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubWorkerLedgerRepo) CreateAdvance(_ context.Context, a *model.WorkerAdvance) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.advances = append(r.advances, a)
	return nil
}

func (r *stubWorkerLedgerRepo) ListAdvances(_ context.Context, workerID uuid.UUID, start, end time.Time) ([]model.WorkerAdvance, error) {
	var out []model.WorkerAdvance
	for _, a := range r.advances {
		if a.WorkerID == workerID && inRange(a.Date, start, end) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubWorkerLedgerRepo) CreatePayment(_ context.Context, p *model.WorkerSalaryPayment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.payments = append(r.payments, p)
	return nil
}

func (r *stubWorkerLedgerRepo) ListPayments(_ context.Context, workerID uuid.UUID, start, end time.Time) ([]model.WorkerSalaryPayment, error) {
	var out []model.WorkerSalaryPayment
	for _, p := range r.payments {
		if p.WorkerID == workerID && inRange(p.Date, start, end) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubWorkerLedgerRepo) ListPaymentsBetween(_ context.Context, start, end time.Time) ([]model.WorkerSalaryPayment, error) {
	var out []model.WorkerSalaryPayment
	for _, p := range r.payments {
		if inRange(p.Date, start, end) {
			out = append(out, *p)
		}
	}
	return out, nil
}

var _ repository.WorkerLedgerRepository = (*stubWorkerLedgerRepo)(nil)

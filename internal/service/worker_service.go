package service

import (
	"context"
	"errors"
	"time"

	"github.com/newstarted0004/surti-khaman/internal/dto"
	"github.com/newstarted0004/surti-khaman/internal/ledger"
	"github.com/newstarted0004/surti-khaman/internal/model"
	"github.com/newstarted0004/surti-khaman/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkerLedgerService runs the payroll side of a worker: attendance marks,
// advances, salary payments and the reconciled summary.
type WorkerLedgerService interface {
	ToggleAttendance(ctx context.Context, workerID uuid.UUID, req dto.ToggleAttendanceRequest) (*dto.AttendanceResponse, error)
	ListAttendance(ctx context.Context, workerID uuid.UUID, filter dto.WorkerRangeFilter) ([]dto.AttendanceResponse, error)
	CreateAdvance(ctx context.Context, workerID uuid.UUID, req dto.SaveWorkerEntryRequest) (*dto.WorkerEntryResponse, error)
	ListAdvances(ctx context.Context, workerID uuid.UUID, filter dto.WorkerRangeFilter) ([]dto.WorkerEntryResponse, error)
	CreatePayment(ctx context.Context, workerID uuid.UUID, req dto.SaveWorkerEntryRequest) (*dto.WorkerEntryResponse, error)
	ListPayments(ctx context.Context, workerID uuid.UUID, filter dto.WorkerRangeFilter) ([]dto.WorkerEntryResponse, error)
	Summary(ctx context.Context, workerID uuid.UUID, filter dto.WorkerRangeFilter) (*dto.WorkerSummaryResponse, error)
}

type workerLedgerService struct {
	workers repository.ReferenceRepository[model.Worker, *model.Worker]
	entries repository.WorkerLedgerRepository
	now     func() time.Time
}

func NewWorkerLedgerService(
	workers repository.ReferenceRepository[model.Worker, *model.Worker],
	entries repository.WorkerLedgerRepository,
) WorkerLedgerService {
	return &workerLedgerService{workers: workers, entries: entries, now: time.Now}
}

// resolveRange turns an optional from/to filter into an inclusive range,
// defaulting to the current calendar month.
func (s *workerLedgerService) resolveRange(filter dto.WorkerRangeFilter) (ledger.DateRange, error) {
	if filter.From == "" && filter.To == "" {
		return ledger.MonthRange(s.now()), nil
	}
	r := ledger.MonthRange(s.now())
	if filter.From != "" {
		from, err := parseDate(filter.From)
		if err != nil {
			return ledger.DateRange{}, err
		}
		r.Start = from
	}
	if filter.To != "" {
		to, err := parseDate(filter.To)
		if err != nil {
			return ledger.DateRange{}, err
		}
		r.End = to
	}
	return r, nil
}

func (s *workerLedgerService) ToggleAttendance(ctx context.Context, workerID uuid.UUID, req dto.ToggleAttendanceRequest) (*dto.AttendanceResponse, error) {
	if _, err := s.workers.FindByID(ctx, workerID); err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	existing, err := s.entries.FindAttendance(ctx, workerID, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var day *ledger.AttendanceDay
	if existing != nil {
		day = &ledger.AttendanceDay{Date: existing.Date, Present: existing.IsPresent}
	}
	present, found := ledger.ToggleAttendance(day)

	if found {
		existing.IsPresent = present
		if err := s.entries.UpdateAttendance(ctx, existing); err != nil {
			return nil, err
		}
		return attendanceToResponse(existing), nil
	}

	a := &model.WorkerAttendance{WorkerID: workerID, Date: date, IsPresent: present}
	if err := s.entries.CreateAttendance(ctx, a); err != nil {
		return nil, err
	}
	return attendanceToResponse(a), nil
}

func (s *workerLedgerService) ListAttendance(ctx context.Context, workerID uuid.UUID, filter dto.WorkerRangeFilter) ([]dto.AttendanceResponse, error) {
	r, err := s.resolveRange(filter)
	if err != nil {
		return nil, err
	}
	list, err := s.entries.ListAttendance(ctx, workerID, r.Start, r.End)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttendanceResponse, 0, len(list))
	for i := range list {
		out = append(out, *attendanceToResponse(&list[i]))
	}
	return out, nil
}

func (s *workerLedgerService) CreateAdvance(ctx context.Context, workerID uuid.UUID, req dto.SaveWorkerEntryRequest) (*dto.WorkerEntryResponse, error) {
	if _, err := s.workers.FindByID(ctx, workerID); err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	a := &model.WorkerAdvance{
		WorkerID:    workerID,
		Amount:      ledger.ParseAmount(req.Amount),
		Date:        date,
		Description: req.Description,
	}
	if err := s.entries.CreateAdvance(ctx, a); err != nil {
		return nil, err
	}
	return &dto.WorkerEntryResponse{
		ID:          a.ID.String(),
		WorkerID:    a.WorkerID.String(),
		Amount:      fmtMoney(a.Amount),
		Date:        fmtDate(a.Date),
		Description: a.Description,
	}, nil
}

func (s *workerLedgerService) ListAdvances(ctx context.Context, workerID uuid.UUID, filter dto.WorkerRangeFilter) ([]dto.WorkerEntryResponse, error) {
	r, err := s.resolveRange(filter)
	if err != nil {
		return nil, err
	}
	list, err := s.entries.ListAdvances(ctx, workerID, r.Start, r.End)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkerEntryResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.WorkerEntryResponse{
			ID:          a.ID.String(),
			WorkerID:    a.WorkerID.String(),
			Amount:      fmtMoney(a.Amount),
			Date:        fmtDate(a.Date),
			Description: a.Description,
		})
	}
	return out, nil
}

func (s *workerLedgerService) CreatePayment(ctx context.Context, workerID uuid.UUID, req dto.SaveWorkerEntryRequest) (*dto.WorkerEntryResponse, error) {
	if _, err := s.workers.FindByID(ctx, workerID); err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	p := &model.WorkerSalaryPayment{
		WorkerID:    workerID,
		Amount:      ledger.ParseAmount(req.Amount),
		Date:        date,
		Description: req.Description,
	}
	if err := s.entries.CreatePayment(ctx, p); err != nil {
		return nil, err
	}
	return &dto.WorkerEntryResponse{
		ID:          p.ID.String(),
		WorkerID:    p.WorkerID.String(),
		Amount:      fmtMoney(p.Amount),
		Date:        fmtDate(p.Date),
		Description: p.Description,
	}, nil
}

func (s *workerLedgerService) ListPayments(ctx context.Context, workerID uuid.UUID, filter dto.WorkerRangeFilter) ([]dto.WorkerEntryResponse, error) {
	r, err := s.resolveRange(filter)
	if err != nil {
		return nil, err
	}
	list, err := s.entries.ListPayments(ctx, workerID, r.Start, r.End)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkerEntryResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.WorkerEntryResponse{
			ID:          p.ID.String(),
			WorkerID:    p.WorkerID.String(),
			Amount:      fmtMoney(p.Amount),
			Date:        fmtDate(p.Date),
			Description: p.Description,
		})
	}
	return out, nil
}

func (s *workerLedgerService) Summary(ctx context.Context, workerID uuid.UUID, filter dto.WorkerRangeFilter) (*dto.WorkerSummaryResponse, error) {
	w, err := s.workers.FindByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	r, err := s.resolveRange(filter)
	if err != nil {
		return nil, err
	}

	attendance, err := s.entries.ListAttendance(ctx, workerID, r.Start, r.End)
	if err != nil {
		return nil, err
	}
	advances, err := s.entries.ListAdvances(ctx, workerID, r.Start, r.End)
	if err != nil {
		return nil, err
	}
	payments, err := s.entries.ListPayments(ctx, workerID, r.Start, r.End)
	if err != nil {
		return nil, err
	}

	days := make([]ledger.AttendanceDay, 0, len(attendance))
	for _, a := range attendance {
		days = append(days, ledger.AttendanceDay{Date: a.Date, Present: a.IsPresent})
	}
	advEntries := make([]ledger.Entry, 0, len(advances))
	for _, a := range advances {
		advEntries = append(advEntries, ledger.Entry{Date: a.Date, Amount: a.Amount})
	}
	payEntries := make([]ledger.Entry, 0, len(payments))
	for _, p := range payments {
		payEntries = append(payEntries, ledger.Entry{Date: p.Date, Amount: p.Amount})
	}

	sum := ledger.SummarizeWorker(w.PerDaySalary, days, advEntries, payEntries, r)

	return &dto.WorkerSummaryResponse{
		WorkerID:      w.ID.String(),
		WorkerName:    w.Name,
		From:          fmtDate(r.Start),
		To:            fmtDate(r.End),
		PresentDays:   sum.PresentDays,
		PerDaySalary:  fmtMoney(w.PerDaySalary),
		TotalSalary:   fmtMoney(sum.TotalSalary),
		TotalAdvances: fmtMoney(sum.TotalAdvances),
		TotalPayments: fmtMoney(sum.TotalPayments),
		Remaining:     fmtMoney(sum.Remaining),
	}, nil
}

func attendanceToResponse(a *model.WorkerAttendance) *dto.AttendanceResponse {
	return &dto.AttendanceResponse{
		ID:        a.ID.String(),
		WorkerID:  a.WorkerID.String(),
		Date:      fmtDate(a.Date),
		IsPresent: a.IsPresent,
	}
}

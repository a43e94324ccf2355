package service

import (
	"context"
	"fmt"

	"github.com/newstarted0004/surti-khaman/internal/dto"
	"github.com/newstarted0004/surti-khaman/internal/ledger"
	"github.com/newstarted0004/surti-khaman/internal/model"
	"github.com/newstarted0004/surti-khaman/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reference services are thin: each maps its DTO onto the entity and
// delegates storage to the shared generic repository. Reordering parses the
// id list and hands it to the repository's transactional rewrite; moving a
// single record runs the list through ledger.Move and persists the result
// the same way.

func parseIDs(ids []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(ids))
	for _, s := range ids {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// moveByID re-inserts the record with the given id at the 1-based position
// to and returns the collection's full id list in its new order.
func moveByID[T any](list []T, idOf func(*T) uuid.UUID, id uuid.UUID, to int) ([]uuid.UUID, error) {
	from := -1
	for i := range list {
		if idOf(&list[i]) == id {
			from = i
			break
		}
	}
	if from == -1 {
		return nil, gorm.ErrRecordNotFound
	}
	if to < 1 || to > len(list) {
		return nil, fmt.Errorf("move: position %d out of range 1..%d", to, len(list))
	}

	reordered := ledger.Move(list, from, to-1)
	ids := make([]uuid.UUID, len(reordered))
	for i := range reordered {
		ids[i] = idOf(&reordered[i])
	}
	return ids, nil
}

// ── Customers ────────────────────────────────────────────────────────────────

type CustomerService interface {
	Create(ctx context.Context, req dto.SaveCustomerRequest) (*dto.CustomerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SaveCustomerRequest) (*dto.CustomerResponse, error)
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	Reorder(ctx context.Context, req dto.ReorderRequest) error
	Move(ctx context.Context, id uuid.UUID, to int) error
}

type customerService struct {
	repo repository.ReferenceRepository[model.Customer, *model.Customer]
}

func NewCustomerService(repo repository.ReferenceRepository[model.Customer, *model.Customer]) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, req dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	c := &model.Customer{ShopName: req.ShopName, OwnerName: req.OwnerName, ContactNumber: req.ContactNumber}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return customerToResponse(c), nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.ShopName = req.ShopName
	c.OwnerName = req.OwnerName
	c.ContactNumber = req.ContactNumber
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return customerToResponse(c), nil
}

func (s *customerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for i := range list {
		out = append(out, *customerToResponse(&list[i]))
	}
	return out, nil
}

func (s *customerService) Reorder(ctx context.Context, req dto.ReorderRequest) error {
	ids, err := parseIDs(req.IDs)
	if err != nil {
		return err
	}
	return s.repo.Reorder(ctx, ids)
}

func (s *customerService) Move(ctx context.Context, id uuid.UUID, to int) error {
	list, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	ids, err := moveByID(list, func(c *model.Customer) uuid.UUID { return c.ID }, id, to)
	if err != nil {
		return err
	}
	return s.repo.Reorder(ctx, ids)
}

// ── Products ─────────────────────────────────────────────────────────────────

type ProductService interface {
	Create(ctx context.Context, req dto.SaveProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SaveProductRequest) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Reorder(ctx context.Context, req dto.ReorderRequest) error
	Move(ctx context.Context, id uuid.UUID, to int) error
}

type productService struct {
	repo repository.ReferenceRepository[model.Product, *model.Product]
}

func NewProductService(repo repository.ReferenceRepository[model.Product, *model.Product]) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, req dto.SaveProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{Name: req.Name}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.SaveProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = req.Name
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for i := range list {
		out = append(out, *productToResponse(&list[i]))
	}
	return out, nil
}

func (s *productService) Reorder(ctx context.Context, req dto.ReorderRequest) error {
	ids, err := parseIDs(req.IDs)
	if err != nil {
		return err
	}
	return s.repo.Reorder(ctx, ids)
}

func (s *productService) Move(ctx context.Context, id uuid.UUID, to int) error {
	list, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	ids, err := moveByID(list, func(p *model.Product) uuid.UUID { return p.ID }, id, to)
	if err != nil {
		return err
	}
	return s.repo.Reorder(ctx, ids)
}

// ── Shops ────────────────────────────────────────────────────────────────────

type ShopService interface {
	Create(ctx context.Context, req dto.SaveShopRequest) (*dto.ShopResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SaveShopRequest) (*dto.ShopResponse, error)
	List(ctx context.Context) ([]dto.ShopResponse, error)
	Reorder(ctx context.Context, req dto.ReorderRequest) error
	Move(ctx context.Context, id uuid.UUID, to int) error
}

type shopService struct {
	repo repository.ReferenceRepository[model.Shop, *model.Shop]
}

func NewShopService(repo repository.ReferenceRepository[model.Shop, *model.Shop]) ShopService {
	return &shopService{repo: repo}
}

func (s *shopService) Create(ctx context.Context, req dto.SaveShopRequest) (*dto.ShopResponse, error) {
	sh := &model.Shop{Name: req.Name, ContactNumber: req.ContactNumber}
	if err := s.repo.Create(ctx, sh); err != nil {
		return nil, err
	}
	return shopToResponse(sh), nil
}

func (s *shopService) Update(ctx context.Context, id uuid.UUID, req dto.SaveShopRequest) (*dto.ShopResponse, error) {
	sh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sh.Name = req.Name
	sh.ContactNumber = req.ContactNumber
	if err := s.repo.Update(ctx, sh); err != nil {
		return nil, err
	}
	return shopToResponse(sh), nil
}

func (s *shopService) List(ctx context.Context) ([]dto.ShopResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShopResponse, 0, len(list))
	for i := range list {
		out = append(out, *shopToResponse(&list[i]))
	}
	return out, nil
}

func (s *shopService) Reorder(ctx context.Context, req dto.ReorderRequest) error {
	ids, err := parseIDs(req.IDs)
	if err != nil {
		return err
	}
	return s.repo.Reorder(ctx, ids)
}

func (s *shopService) Move(ctx context.Context, id uuid.UUID, to int) error {
	list, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	ids, err := moveByID(list, func(sh *model.Shop) uuid.UUID { return sh.ID }, id, to)
	if err != nil {
		return err
	}
	return s.repo.Reorder(ctx, ids)
}

// ── Items ────────────────────────────────────────────────────────────────────

type ItemService interface {
	Create(ctx context.Context, req dto.SaveItemRequest) (*dto.ItemResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SaveItemRequest) (*dto.ItemResponse, error)
	List(ctx context.Context) ([]dto.ItemResponse, error)
	Reorder(ctx context.Context, req dto.ReorderRequest) error
	Move(ctx context.Context, id uuid.UUID, to int) error
}

type itemService struct {
	repo repository.ReferenceRepository[model.Item, *model.Item]
}

func NewItemService(repo repository.ReferenceRepository[model.Item, *model.Item]) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) Create(ctx context.Context, req dto.SaveItemRequest) (*dto.ItemResponse, error) {
	it := &model.Item{Name: req.Name, Unit: req.Unit}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return itemToResponse(it), nil
}

func (s *itemService) Update(ctx context.Context, id uuid.UUID, req dto.SaveItemRequest) (*dto.ItemResponse, error) {
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	it.Name = req.Name
	it.Unit = req.Unit
	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return itemToResponse(it), nil
}

func (s *itemService) List(ctx context.Context) ([]dto.ItemResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(list))
	for i := range list {
		out = append(out, *itemToResponse(&list[i]))
	}
	return out, nil
}

func (s *itemService) Reorder(ctx context.Context, req dto.ReorderRequest) error {
	ids, err := parseIDs(req.IDs)
	if err != nil {
		return err
	}
	return s.repo.Reorder(ctx, ids)
}

func (s *itemService) Move(ctx context.Context, id uuid.UUID, to int) error {
	list, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	ids, err := moveByID(list, func(it *model.Item) uuid.UUID { return it.ID }, id, to)
	if err != nil {
		return err
	}
	return s.repo.Reorder(ctx, ids)
}

// ── Workers ──────────────────────────────────────────────────────────────────

// WorkerService covers the worker roster itself. Attendance, advances and
// salary payments live in WorkerLedgerService.
type WorkerService interface {
	Create(ctx context.Context, req dto.SaveWorkerRequest) (*dto.WorkerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SaveWorkerRequest) (*dto.WorkerResponse, error)
	List(ctx context.Context) ([]dto.WorkerResponse, error)
	Reorder(ctx context.Context, req dto.ReorderRequest) error
	Move(ctx context.Context, id uuid.UUID, to int) error
}

type workerService struct {
	repo repository.ReferenceRepository[model.Worker, *model.Worker]
}

func NewWorkerService(repo repository.ReferenceRepository[model.Worker, *model.Worker]) WorkerService {
	return &workerService{repo: repo}
}

func (s *workerService) Create(ctx context.Context, req dto.SaveWorkerRequest) (*dto.WorkerResponse, error) {
	w := &model.Worker{
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		PerDaySalary:  ledger.ParseAmount(req.PerDaySalary),
	}
	if err := s.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return workerToResponse(w), nil
}

func (s *workerService) Update(ctx context.Context, id uuid.UUID, req dto.SaveWorkerRequest) (*dto.WorkerResponse, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	w.Name = req.Name
	w.ContactNumber = req.ContactNumber
	w.PerDaySalary = ledger.ParseAmount(req.PerDaySalary)
	if err := s.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	return workerToResponse(w), nil
}

func (s *workerService) List(ctx context.Context) ([]dto.WorkerResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkerResponse, 0, len(list))
	for i := range list {
		out = append(out, *workerToResponse(&list[i]))
	}
	return out, nil
}

func (s *workerService) Reorder(ctx context.Context, req dto.ReorderRequest) error {
	ids, err := parseIDs(req.IDs)
	if err != nil {
		return err
	}
	return s.repo.Reorder(ctx, ids)
}

func (s *workerService) Move(ctx context.Context, id uuid.UUID, to int) error {
	list, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	ids, err := moveByID(list, func(w *model.Worker) uuid.UUID { return w.ID }, id, to)
	if err != nil {
		return err
	}
	return s.repo.Reorder(ctx, ids)
}

// ── Mapping helpers ──────────────────────────────────────────────────────────

func customerToResponse(c *model.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:            c.ID.String(),
		ShopName:      c.ShopName,
		OwnerName:     c.OwnerName,
		ContactNumber: c.ContactNumber,
		DisplayOrder:  c.DisplayOrder,
	}
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{ID: p.ID.String(), Name: p.Name, DisplayOrder: p.DisplayOrder}
}

func shopToResponse(s *model.Shop) *dto.ShopResponse {
	return &dto.ShopResponse{
		ID:            s.ID.String(),
		Name:          s.Name,
		ContactNumber: s.ContactNumber,
		DisplayOrder:  s.DisplayOrder,
	}
}

func itemToResponse(i *model.Item) *dto.ItemResponse {
	return &dto.ItemResponse{ID: i.ID.String(), Name: i.Name, Unit: i.Unit, DisplayOrder: i.DisplayOrder}
}

func workerToResponse(w *model.Worker) *dto.WorkerResponse {
	return &dto.WorkerResponse{
		ID:            w.ID.String(),
		Name:          w.Name,
		ContactNumber: w.ContactNumber,
		PerDaySalary:  fmtMoney(w.PerDaySalary),
		DisplayOrder:  w.DisplayOrder,
	}
}

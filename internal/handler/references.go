package handler

// references.go — the five manually-orderable reference collections:
// customers, products, shops, items, workers. Each gets list / create /
// update / reorder / move.

import (
	"errors"
	"net/http"

	"github.com/newstarted0004/surti-khaman/internal/apierror"
	"github.com/newstarted0004/surti-khaman/internal/dto"
	"github.com/newstarted0004/surti-khaman/internal/repository"
	"github.com/newstarted0004/surti-khaman/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// reorderStatus maps a reorder failure to the right status: an id that is
// not part of the collection, or a list that does not cover the whole
// collection, rolls the batch back with a 400.
func reorderStatus(err error) int {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, repository.ErrIncompleteReorder) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ── Customers ────────────────────────────────────────────────────────────────

type CustomersHandler struct{ svc service.CustomerService }

func NewCustomersHandler(svc service.CustomerService) *CustomersHandler {
	return &CustomersHandler{svc: svc}
}

// List GET /v1/customers
func (h *CustomersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list customers"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /v1/customers
func (h *CustomersHandler) Create(c *gin.Context) {
	var req dto.SaveCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update PUT /v1/customers/:id
func (h *CustomersHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SaveCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeSaveError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reorder PUT /v1/customers/reorder
func (h *CustomersHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Reorder(c.Request.Context(), req); err != nil {
		c.JSON(reorderStatus(err), apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Move PATCH /v1/customers/:id/position
func (h *CustomersHandler) Move(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.MoveRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Move(c.Request.Context(), id, req.To); err != nil {
		writeSaveError(c, err, "Customer not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Products ─────────────────────────────────────────────────────────────────

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

func (h *ProductsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list products"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.SaveProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SaveProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeSaveError(c, err, "Product not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Reorder(c.Request.Context(), req); err != nil {
		c.JSON(reorderStatus(err), apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductsHandler) Move(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.MoveRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Move(c.Request.Context(), id, req.To); err != nil {
		writeSaveError(c, err, "Product not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Shops ────────────────────────────────────────────────────────────────────

type ShopsHandler struct{ svc service.ShopService }

func NewShopsHandler(svc service.ShopService) *ShopsHandler {
	return &ShopsHandler{svc: svc}
}

func (h *ShopsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list shops"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ShopsHandler) Create(c *gin.Context) {
	var req dto.SaveShopRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ShopsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SaveShopRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeSaveError(c, err, "Shop not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ShopsHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Reorder(c.Request.Context(), req); err != nil {
		c.JSON(reorderStatus(err), apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ShopsHandler) Move(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.MoveRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Move(c.Request.Context(), id, req.To); err != nil {
		writeSaveError(c, err, "Shop not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Items ────────────────────────────────────────────────────────────────────

type ItemsHandler struct{ svc service.ItemService }

func NewItemsHandler(svc service.ItemService) *ItemsHandler {
	return &ItemsHandler{svc: svc}
}

func (h *ItemsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list items"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ItemsHandler) Create(c *gin.Context) {
	var req dto.SaveItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ItemsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SaveItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeSaveError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ItemsHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Reorder(c.Request.Context(), req); err != nil {
		c.JSON(reorderStatus(err), apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ItemsHandler) Move(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.MoveRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Move(c.Request.Context(), id, req.To); err != nil {
		writeSaveError(c, err, "Item not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Workers (roster) ─────────────────────────────────────────────────────────

type WorkersHandler struct{ svc service.WorkerService }

func NewWorkersHandler(svc service.WorkerService) *WorkersHandler {
	return &WorkersHandler{svc: svc}
}

func (h *WorkersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list workers"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkersHandler) Create(c *gin.Context) {
	var req dto.SaveWorkerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *WorkersHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SaveWorkerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeSaveError(c, err, "Worker not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkersHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Reorder(c.Request.Context(), req); err != nil {
		c.JSON(reorderStatus(err), apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkersHandler) Move(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.MoveRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Move(c.Request.Context(), id, req.To); err != nil {
		writeSaveError(c, err, "Worker not found")
		return
	}
	c.Status(http.StatusNoContent)
}

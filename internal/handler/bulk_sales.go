package handler

import (
	"net/http"

	"github.com/newstarted0004/surti-khaman/internal/apierror"
	"github.com/newstarted0004/surti-khaman/internal/dto"
	"github.com/newstarted0004/surti-khaman/internal/service"

	"github.com/gin-gonic/gin"
)

type BulkSalesHandler struct{ svc service.BulkSaleService }

func NewBulkSalesHandler(svc service.BulkSaleService) *BulkSalesHandler {
	return &BulkSalesHandler{svc: svc}
}

// Create godoc
// @Summary Record a bulk sale
// @Tags bulk-sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.SaveBulkSaleRequest true "Bulk sale"
// @Success 201 {object} dto.BulkSaleResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/bulk-sales [post]
func (h *BulkSalesHandler) Create(c *gin.Context) {
	var req dto.SaveBulkSaleRequest
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

// Update godoc
// @Summary Update a bulk sale
// @Tags bulk-sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bulk sale UUID"
// @Param body body dto.SaveBulkSaleRequest true "Bulk sale"
// @Success 200 {object} dto.BulkSaleResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/bulk-sales/{id} [put]
func (h *BulkSalesHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SaveBulkSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeSaveError(c, err, "Bulk sale not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordPayment godoc
// @Summary Record a payment against a bulk sale
// @Description Updates the paid amount; the remaining balance is re-derived from the stored total.
// @Tags bulk-sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bulk sale UUID"
// @Param body body dto.RecordPaymentRequest true "Payment"
// @Success 200 {object} dto.BulkSaleResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/bulk-sales/{id}/payment [patch]
func (h *BulkSalesHandler) RecordPayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.RecordPaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RecordPayment(c.Request.Context(), id, req)
	if err != nil {
		writeSaveError(c, err, "Bulk sale not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List bulk sales, newest first
// @Tags bulk-sales
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.BulkSaleResponse
// @Failure 500 {object} apierror.APIError
// @Router /v1/bulk-sales [get]
func (h *BulkSalesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list bulk sales"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

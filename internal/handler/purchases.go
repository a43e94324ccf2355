package handler

import (
	"net/http"

	"github.com/newstarted0004/surti-khaman/internal/apierror"
	"github.com/newstarted0004/surti-khaman/internal/dto"
	"github.com/newstarted0004/surti-khaman/internal/service"

	"github.com/gin-gonic/gin"
)

type PurchasesHandler struct{ svc service.PurchaseService }

func NewPurchasesHandler(svc service.PurchaseService) *PurchasesHandler {
	return &PurchasesHandler{svc: svc}
}

// Create godoc
// @Summary Record a purchase
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.SavePurchaseRequest true "Purchase"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/purchases [post]
func (h *PurchasesHandler) Create(c *gin.Context) {
	var req dto.SavePurchaseRequest
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
// @Summary Update a purchase
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Purchase UUID"
// @Param body body dto.SavePurchaseRequest true "Purchase"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/purchases/{id} [put]
func (h *PurchasesHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SavePurchaseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeSaveError(c, err, "Purchase not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordPayment godoc
// @Summary Record a payment against a purchase
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Purchase UUID"
// @Param body body dto.RecordPaymentRequest true "Payment"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/purchases/{id}/payment [patch]
func (h *PurchasesHandler) RecordPayment(c *gin.Context) {
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
		writeSaveError(c, err, "Purchase not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List purchases, newest first
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.PurchaseResponse
// @Failure 500 {object} apierror.APIError
// @Router /v1/purchases [get]
func (h *PurchasesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list purchases"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

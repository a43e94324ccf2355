package handler

import (
	"net/http"

	"github.com/newstarted0004/surti-khaman/internal/apierror"
	"github.com/newstarted0004/surti-khaman/internal/dto"
	"github.com/newstarted0004/surti-khaman/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkerLedgerHandler exposes the payroll side of a worker: attendance,
// advances, salary payments and the reconciled summary. All routes hang off
// /v1/workers/:id/.
type WorkerLedgerHandler struct{ svc service.WorkerLedgerService }

func NewWorkerLedgerHandler(svc service.WorkerLedgerService) *WorkerLedgerHandler {
	return &WorkerLedgerHandler{svc: svc}
}

// ToggleAttendance godoc
// @Summary Toggle a worker's attendance for one day
// @Description No record for the day becomes present; an existing record flips.
// @Tags workers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worker UUID"
// @Param body body dto.ToggleAttendanceRequest true "Day"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/workers/{id}/attendance/toggle [post]
func (h *WorkerLedgerHandler) ToggleAttendance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ToggleAttendanceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ToggleAttendance(c.Request.Context(), id, req)
	if err != nil {
		writeSaveError(c, err, "Worker not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListAttendance godoc
// @Summary List a worker's attendance over a range
// @Tags workers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worker UUID"
// @Param from query string false "Start date YYYY-MM-DD (default: current month)"
// @Param to query string false "End date YYYY-MM-DD"
// @Success 200 {array} dto.AttendanceResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/workers/{id}/attendance [get]
func (h *WorkerLedgerHandler) ListAttendance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var filter dto.WorkerRangeFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.ListAttendance(c.Request.Context(), id, filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateAdvance godoc
// @Summary Record a salary advance
// @Tags workers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worker UUID"
// @Param body body dto.SaveWorkerEntryRequest true "Advance"
// @Success 201 {object} dto.WorkerEntryResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/workers/{id}/advances [post]
func (h *WorkerLedgerHandler) CreateAdvance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SaveWorkerEntryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateAdvance(c.Request.Context(), id, req)
	if err != nil {
		writeSaveError(c, err, "Worker not found")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListAdvances GET /v1/workers/:id/advances
func (h *WorkerLedgerHandler) ListAdvances(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var filter dto.WorkerRangeFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.ListAdvances(c.Request.Context(), id, filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreatePayment godoc
// @Summary Record a salary payment
// @Tags workers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worker UUID"
// @Param body body dto.SaveWorkerEntryRequest true "Payment"
// @Success 201 {object} dto.WorkerEntryResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/workers/{id}/payments [post]
func (h *WorkerLedgerHandler) CreatePayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SaveWorkerEntryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreatePayment(c.Request.Context(), id, req)
	if err != nil {
		writeSaveError(c, err, "Worker not found")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListPayments GET /v1/workers/:id/payments
func (h *WorkerLedgerHandler) ListPayments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var filter dto.WorkerRangeFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.ListPayments(c.Request.Context(), id, filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Summary godoc
// @Summary Payroll reconciliation for a worker over a range
// @Description remaining = presentDays × perDaySalary − advances − payments. Defaults to the current month.
// @Tags workers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worker UUID"
// @Param from query string false "Start date YYYY-MM-DD"
// @Param to query string false "End date YYYY-MM-DD"
// @Success 200 {object} dto.WorkerSummaryResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/workers/{id}/summary [get]
func (h *WorkerLedgerHandler) Summary(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var filter dto.WorkerRangeFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Summary(c.Request.Context(), id, filter)
	if err != nil {
		writeSaveError(c, err, "Worker not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}

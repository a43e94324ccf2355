package handler

import (
	"errors"
	"net/http"

	"github.com/newstarted0004/surti-khaman/internal/apierror"
	"github.com/newstarted0004/surti-khaman/internal/dto"
	"github.com/newstarted0004/surti-khaman/internal/service"

	"github.com/gin-gonic/gin"
)

type ReceiptsHandler struct{ svc service.ReceiptService }

func NewReceiptsHandler(svc service.ReceiptService) *ReceiptsHandler {
	return &ReceiptsHandler{svc: svc}
}

// Create godoc
// @Summary Request an async PDF render
// @Description Returns 202 with the pending receipt; poll GET /v1/receipts/{id} until status is generated.
// @Tags receipts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateReceiptRequest true "Receipt request"
// @Success 202 {object} dto.ReceiptResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/receipts [post]
func (h *ReceiptsHandler) Create(c *gin.Context) {
	var req dto.CreateReceiptRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusAccepted, resp)
}

// Get godoc
// @Summary Receipt render status
// @Tags receipts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Receipt UUID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/receipts/{id} [get]
func (h *ReceiptsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Receipt not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Download godoc
// @Summary Download the rendered PDF
// @Tags receipts
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Receipt UUID"
// @Success 200 {file} file
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/receipts/{id}/download [get]
func (h *ReceiptsHandler) Download(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	path, err := h.svc.Download(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrReceiptNotReady) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusNotFound, apierror.New("Receipt not found"))
		return
	}
	c.FileAttachment(path, "receipt.pdf")
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/newstarted0004/surti-khaman/internal/dto"
	"github.com/newstarted0004/surti-khaman/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubSalesService answers every call for a single known sale id and returns
// gorm.ErrRecordNotFound for anything else.
type stubSalesService struct {
	known uuid.UUID
}

func (s *stubSalesService) Create(_ context.Context, _ dto.SaveDailySaleRequest) (*dto.DailySaleResponse, error) {
	return &dto.DailySaleResponse{ID: s.known.String()}, nil
}

func (s *stubSalesService) Update(_ context.Context, id uuid.UUID, _ dto.SaveDailySaleRequest) (*dto.DailySaleResponse, error) {
	if id != s.known {
		return nil, gorm.ErrRecordNotFound
	}
	return &dto.DailySaleResponse{ID: id.String()}, nil
}

func (s *stubSalesService) Delete(_ context.Context, id uuid.UUID) error {
	if id != s.known {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *stubSalesService) List(_ context.Context, _ int) ([]dto.DailySaleResponse, error) {
	return nil, nil
}

var _ service.SalesService = (*stubSalesService)(nil)

func newSalesRouter(svc service.SalesService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSalesHandler(svc)
	r.PUT("/v1/sales/:id", h.Update)
	r.DELETE("/v1/sales/:id", h.Delete)
	return r
}

func TestDeleteMissingSaleReturns404(t *testing.T) {
	r := newSalesRouter(&stubSalesService{known: uuid.New()})

	req := httptest.NewRequest(http.MethodDelete, "/v1/sales/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Sale not found")
}

func TestUpdateMissingSaleReturns404(t *testing.T) {
	r := newSalesRouter(&stubSalesService{known: uuid.New()})

	body := strings.NewReader(`{"date":"2026-01-15","total_amount":"2450"}`)
	req := httptest.NewRequest(http.MethodPut, "/v1/sales/"+uuid.NewString(), body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteKnownSaleSucceeds(t *testing.T) {
	id := uuid.New()
	r := newSalesRouter(&stubSalesService{known: id})

	req := httptest.NewRequest(http.MethodDelete, "/v1/sales/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
}

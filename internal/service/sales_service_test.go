package service

import (
	"context"
	"testing"

	"github.com/newstarted0004/surti-khaman/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySaleCreate(t *testing.T) {
	repo := newStubDailySaleRepo()
	svc := NewSalesService(repo)

	resp, err := svc.Create(context.Background(), dto.SaveDailySaleRequest{
		Date:        "2026-08-18",
		TotalAmount: "2450",
	})
	require.NoError(t, err)

	assert.Equal(t, "2450.00", resp.TotalAmount)
	assert.Equal(t, "2026-08-18", resp.Date)
}

func TestDailySaleUpdate(t *testing.T) {
	repo := newStubDailySaleRepo()
	svc := NewSalesService(repo)

	created, err := svc.Create(context.Background(), dto.SaveDailySaleRequest{
		Date:        "2026-08-18",
		TotalAmount: "1000",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), uuid.MustParse(created.ID), dto.SaveDailySaleRequest{
		Date:        "2026-08-19",
		TotalAmount: "1500",
	})
	require.NoError(t, err)
	assert.Equal(t, "1500.00", updated.TotalAmount)
	assert.Equal(t, "2026-08-19", updated.Date)
}

func TestDailySaleDelete(t *testing.T) {
	repo := newStubDailySaleRepo()
	svc := NewSalesService(repo)

	created, err := svc.Create(context.Background(), dto.SaveDailySaleRequest{
		Date:        "2026-08-18",
		TotalAmount: "100",
	})
	require.NoError(t, err)

	id := uuid.MustParse(created.ID)
	require.NoError(t, svc.Delete(context.Background(), id))
	require.Error(t, svc.Delete(context.Background(), id))

	list, err := svc.List(context.Background(), 30)
	require.NoError(t, err)
	assert.Empty(t, list)
}

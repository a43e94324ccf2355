package service

import (
	"context"
	"testing"

	"github.com/newstarted0004/surti-khaman/internal/dto"
	"github.com/newstarted0004/surti-khaman/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkSaleCreateDerivesTotals(t *testing.T) {
	repo := newStubBulkSaleRepo()
	svc := NewBulkSaleService(repo)

	resp, err := svc.Create(context.Background(), dto.SaveBulkSaleRequest{
		CustomerID: uuid.NewString(),
		ProductID:  uuid.NewString(),
		Quantity:   "2.5",
		PricePerKg: "180",
		Date:       "2026-08-15",
		PaidAmount: "200",
	})
	require.NoError(t, err)

	assert.Equal(t, "450.00", resp.TotalAmount)
	assert.Equal(t, "200.00", resp.PaidAmount)
	assert.Equal(t, "250.00", resp.RemainingAmount)
	assert.Equal(t, "2.500", resp.Quantity)

	stored, err := repo.FindByID(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, "450", stored.TotalAmount.String())
	assert.Equal(t, "250", stored.RemainingAmount.String())
}

func TestBulkSaleCreateTreatsBlankAmountsAsZero(t *testing.T) {
	svc := NewBulkSaleService(newStubBulkSaleRepo())

	resp, err := svc.Create(context.Background(), dto.SaveBulkSaleRequest{
		CustomerID: uuid.NewString(),
		ProductID:  uuid.NewString(),
		Quantity:   "3",
		PricePerKg: "not-a-number",
		Date:       "2026-08-15",
		PaidAmount: "",
	})
	require.NoError(t, err)

	assert.Equal(t, "0.00", resp.TotalAmount)
	assert.Equal(t, "0.00", resp.PaidAmount)
	assert.Equal(t, "0.00", resp.RemainingAmount)
}

func TestBulkSaleUpdateRederivesFigures(t *testing.T) {
	repo := newStubBulkSaleRepo()
	svc := NewBulkSaleService(repo)

	created, err := svc.Create(context.Background(), dto.SaveBulkSaleRequest{
		CustomerID: uuid.NewString(),
		ProductID:  uuid.NewString(),
		Quantity:   "1",
		PricePerKg: "100",
		Date:       "2026-08-01",
		PaidAmount: "0",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), uuid.MustParse(created.ID), dto.SaveBulkSaleRequest{
		CustomerID: uuid.NewString(),
		ProductID:  uuid.NewString(),
		Quantity:   "4",
		PricePerKg: "150",
		Date:       "2026-08-02",
		PaidAmount: "300",
	})
	require.NoError(t, err)

	assert.Equal(t, "600.00", updated.TotalAmount)
	assert.Equal(t, "300.00", updated.RemainingAmount)
	assert.Equal(t, "2026-08-02", updated.Date)
}

func TestBulkSaleRecordPaymentKeepsStoredTotal(t *testing.T) {
	repo := newStubBulkSaleRepo()
	svc := NewBulkSaleService(repo)

	created, err := svc.Create(context.Background(), dto.SaveBulkSaleRequest{
		CustomerID: uuid.NewString(),
		ProductID:  uuid.NewString(),
		Quantity:   "10",
		PricePerKg: "50",
		Date:       "2026-08-10",
		PaidAmount: "100",
	})
	require.NoError(t, err)

	resp, err := svc.RecordPayment(context.Background(), uuid.MustParse(created.ID), dto.RecordPaymentRequest{
		PaidAmount: "350",
	})
	require.NoError(t, err)

	assert.Equal(t, "500.00", resp.TotalAmount)
	assert.Equal(t, "350.00", resp.PaidAmount)
	assert.Equal(t, "150.00", resp.RemainingAmount)
}

// An overpayment is stored as-is; remaining goes negative so the screen can
// show the credit the customer holds.
func TestBulkSaleRecordPaymentOverpayment(t *testing.T) {
	repo := newStubBulkSaleRepo()
	svc := NewBulkSaleService(repo)

	created, err := svc.Create(context.Background(), dto.SaveBulkSaleRequest{
		CustomerID: uuid.NewString(),
		ProductID:  uuid.NewString(),
		Quantity:   "2",
		PricePerKg: "100",
		Date:       "2026-08-10",
		PaidAmount: "0",
	})
	require.NoError(t, err)

	resp, err := svc.RecordPayment(context.Background(), uuid.MustParse(created.ID), dto.RecordPaymentRequest{
		PaidAmount: "250",
	})
	require.NoError(t, err)

	assert.Equal(t, "-50.00", resp.RemainingAmount)
}

func TestBulkSaleResponseIncludesJoinedNames(t *testing.T) {
	repo := newStubBulkSaleRepo()
	svc := NewBulkSaleService(repo)

	created, err := svc.Create(context.Background(), dto.SaveBulkSaleRequest{
		CustomerID: uuid.NewString(),
		ProductID:  uuid.NewString(),
		Quantity:   "1",
		PricePerKg: "60",
		Date:       "2026-08-20",
		PaidAmount: "60",
	})
	require.NoError(t, err)

	// Attach the joined rows the way the real repository's Preload would.
	stored := repo.sales[uuid.MustParse(created.ID)]
	stored.Customer = &model.Customer{ShopName: "Jalaram Farsan"}
	stored.Product = &model.Product{Name: "Khaman"}

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Customer)
	require.NotNil(t, list[0].Product)
	assert.Equal(t, "Jalaram Farsan", list[0].Customer.ShopName)
	assert.Equal(t, "Khaman", list[0].Product.Name)
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ecaldeira/pdv-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cashSaleRequest() model.SaleCreateRequest {
	return model.SaleCreateRequest{
		GrossTotal: 100.00,
		TotalPaid:  100.00,
		Change:     0.00,
		Status:     model.StatusFinalizada,
		Items: []model.SaleItem{
			{Category: "Beverage", Description: "Soda", UnitPrice: 5.00, Quantity: 2, Subtotal: 10.00},
		},
		Payments: []model.SalePayment{
			{Method: "cash", AmountPaid: 100.00},
		},
	}
}

func TestSaleRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSaleRepository(db.DB)
	ctx := context.Background()

	t.Run("create sale with items and payments", func(t *testing.T) {
		id, err := repo.Create(ctx, cashSaleRequest())
		require.NoError(t, err)
		assert.NotZero(t, id)

		detail, err := repo.GetDetail(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 100.00, detail.GrossTotal)
		assert.Equal(t, model.StatusFinalizada, detail.Status)
		assert.NotZero(t, detail.CreatedAt)

		require.Len(t, detail.Items, 1)
		assert.Equal(t, "Beverage", detail.Items[0].Category)
		assert.Equal(t, "Soda", detail.Items[0].Description)
		assert.Equal(t, 5.00, detail.Items[0].UnitPrice)
		assert.Equal(t, 2, detail.Items[0].Quantity)
		assert.Equal(t, 10.00, detail.Items[0].Subtotal)
		assert.Equal(t, id, detail.Items[0].SaleID)

		require.Len(t, detail.Payments, 1)
		assert.Equal(t, "cash", detail.Payments[0].Method)
		assert.Equal(t, 100.00, detail.Payments[0].AmountPaid)
		assert.Equal(t, id, detail.Payments[0].SaleID)
	})

	t.Run("persisted child counts match request counts", func(t *testing.T) {
		req := model.SaleCreateRequest{
			GrossTotal: 55.50,
			TotalPaid:  60.00,
			Change:     4.50,
			Status:     model.StatusFinalizada,
			Items: []model.SaleItem{
				{Category: "Food", Description: "Sandwich", UnitPrice: 20.00, Quantity: 2, Subtotal: 40.00},
				{Category: "Beverage", Description: "Juice", UnitPrice: 7.75, Quantity: 2, Subtotal: 15.50},
			},
			Payments: []model.SalePayment{
				{Method: "cash", AmountPaid: 30.00},
				{Method: "card", AmountPaid: 30.00, MethodReference: "AUTH-42"},
			},
		}

		id, err := repo.Create(ctx, req)
		require.NoError(t, err)

		detail, err := repo.GetDetail(ctx, id)
		require.NoError(t, err)
		assert.Len(t, detail.Items, len(req.Items))
		assert.Len(t, detail.Payments, len(req.Payments))
		assert.Equal(t, "AUTH-42", detail.Payments[1].MethodReference)
	})

	t.Run("empty items and payments are accepted", func(t *testing.T) {
		id, err := repo.Create(ctx, model.SaleCreateRequest{
			GrossTotal: 0,
			TotalPaid:  0,
			Change:     0,
			Status:     model.StatusFinalizada,
		})
		require.NoError(t, err)

		detail, err := repo.GetDetail(ctx, id)
		require.NoError(t, err)
		assert.Len(t, detail.Items, 0)
		assert.Len(t, detail.Payments, 0)
	})
}

func TestSaleRepository_Create_RollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSaleRepository(db.DB)
	ctx := context.Background()

	// Two items carrying the same explicit primary key make the second
	// insert fail, after the sale row and the payment already went in.
	req := model.SaleCreateRequest{
		GrossTotal: 10.00,
		TotalPaid:  10.00,
		Status:     model.StatusFinalizada,
		Payments: []model.SalePayment{
			{Method: "cash", AmountPaid: 10.00},
		},
		Items: []model.SaleItem{
			{ID: 7, Category: "A", Description: "first", UnitPrice: 5.00, Quantity: 1, Subtotal: 5.00},
			{ID: 7, Category: "B", Description: "second", UnitPrice: 5.00, Quantity: 1, Subtotal: 5.00},
		},
	}

	_, err := repo.Create(ctx, req)
	require.Error(t, err)

	var sales, items, payments int64
	require.NoError(t, db.rawDB.Model(&SaleEntity{}).Count(&sales).Error)
	require.NoError(t, db.rawDB.Model(&SaleItemEntity{}).Count(&items).Error)
	require.NoError(t, db.rawDB.Model(&SalePaymentEntity{}).Count(&payments).Error)

	assert.Zero(t, sales)
	assert.Zero(t, items)
	assert.Zero(t, payments)
}

func TestSaleRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSaleRepository(db.DB)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, model.SaleCreateRequest{
			GrossTotal: float64(10 * (i + 1)),
			Status:     model.StatusFinalizada,
		})
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}

	sales, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 3)
	for i := 0; i < len(sales)-1; i++ {
		assert.True(t, sales[i].CreatedAt.After(sales[i+1].CreatedAt) || sales[i].CreatedAt.Equal(sales[i+1].CreatedAt))
	}
}

func TestSaleRepository_GetDetail_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSaleRepository(db.DB)

	_, err := repo.GetDetail(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrSaleNotFound)
}

func TestSaleRepository_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSaleRepository(db.DB)
	ctx := context.Background()

	t.Run("update existing sale", func(t *testing.T) {
		id, err := repo.Create(ctx, cashSaleRequest())
		require.NoError(t, err)

		sale, err := repo.UpdateStatus(ctx, id, "Cancelada")
		require.NoError(t, err)
		assert.Equal(t, "Cancelada", sale.Status)
		assert.Equal(t, id, sale.ID)
	})

	t.Run("nonexistent sale mutates nothing", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, 999999, "Cancelada")
		assert.ErrorIs(t, err, ErrSaleNotFound)

		var count int64
		require.NoError(t, db.rawDB.Model(&SaleEntity{}).Where("status_venda = ?", "Cancelada").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestSaleRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSaleRepository(db.DB)
	ctx := context.Background()

	t.Run("delete removes sale and children", func(t *testing.T) {
		id, err := repo.Create(ctx, cashSaleRequest())
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, id))

		_, err = repo.GetDetail(ctx, id)
		assert.ErrorIs(t, err, ErrSaleNotFound)

		var items, payments int64
		require.NoError(t, db.rawDB.Model(&SaleItemEntity{}).Where("venda_id = ?", id).Count(&items).Error)
		require.NoError(t, db.rawDB.Model(&SalePaymentEntity{}).Where("venda_id = ?", id).Count(&payments).Error)
		assert.Zero(t, items)
		assert.Zero(t, payments)
	})

	t.Run("other sales stay untouched", func(t *testing.T) {
		keep, err := repo.Create(ctx, cashSaleRequest())
		require.NoError(t, err)
		gone, err := repo.Create(ctx, cashSaleRequest())
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, gone))

		detail, err := repo.GetDetail(ctx, keep)
		require.NoError(t, err)
		assert.Len(t, detail.Items, 1)
		assert.Len(t, detail.Payments, 1)
	})

	t.Run("nonexistent sale", func(t *testing.T) {
		err := repo.Delete(ctx, 999999)
		assert.ErrorIs(t, err, ErrSaleNotFound)
	})
}

func TestSaleRepository_DeleteBatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSaleRepository(db.DB)
	ctx := context.Background()

	t.Run("empty id list is rejected before touching the database", func(t *testing.T) {
		id, err := repo.Create(ctx, cashSaleRequest())
		require.NoError(t, err)

		_, err = repo.DeleteBatch(ctx, nil)
		assert.ErrorIs(t, err, ErrNoSaleIDs)
		_, err = repo.DeleteBatch(ctx, []int64{})
		assert.ErrorIs(t, err, ErrNoSaleIDs)

		detail, err := repo.GetDetail(ctx, id)
		require.NoError(t, err)
		assert.Len(t, detail.Items, 1)
		assert.Len(t, detail.Payments, 1)
	})

	t.Run("counts only sales that existed", func(t *testing.T) {
		first, err := repo.Create(ctx, cashSaleRequest())
		require.NoError(t, err)
		second, err := repo.Create(ctx, cashSaleRequest())
		require.NoError(t, err)

		deleted, err := repo.DeleteBatch(ctx, []int64{first, second, 999999})
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		_, err = repo.GetDetail(ctx, first)
		assert.ErrorIs(t, err, ErrSaleNotFound)
		_, err = repo.GetDetail(ctx, second)
		assert.ErrorIs(t, err, ErrSaleNotFound)

		var items, payments int64
		require.NoError(t, db.rawDB.Model(&SaleItemEntity{}).Where("venda_id IN ?", []int64{first, second}).Count(&items).Error)
		require.NoError(t, db.rawDB.Model(&SalePaymentEntity{}).Where("venda_id IN ?", []int64{first, second}).Count(&payments).Error)
		assert.Zero(t, items)
		assert.Zero(t, payments)
	})
}

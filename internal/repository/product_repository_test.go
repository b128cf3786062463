package repository

import (
	"context"
	"testing"

	"github.com/ecaldeira/pdv-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(f float64) *float64 { return &f }
func stringPtr(s string) *string    { return &s }
func intPtr(i int) *int             { return &i }

func sodaProduct() model.ProductCreateRequest {
	return model.ProductCreateRequest{
		Category:     "Beverage",
		Description:  "Soda",
		Price:        5.00,
		ItemType:     "Produto",
		UnitCost:     2.00,
		CurrentStock: 10,
		Barcode:      "7891000100103",
	}
}

func TestProductRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db.DB)
	ctx := context.Background()

	created, err := repo.Create(ctx, sodaProduct())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Soda", created.Description)
	assert.True(t, created.Active)
}

func TestProductRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db.DB)
	ctx := context.Background()

	first, err := repo.Create(ctx, sodaProduct())
	require.NoError(t, err)
	second, err := repo.Create(ctx, model.ProductCreateRequest{
		Category:    "Service",
		Description: "Delivery",
		Price:       12.00,
		ItemType:    model.DefaultItemType,
		Barcode:     "0000000000000",
	})
	require.NoError(t, err)

	t.Run("lists active products ordered by id", func(t *testing.T) {
		products, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, first.ID, products[0].ID)
		assert.Equal(t, second.ID, products[1].ID)
	})

	t.Run("deactivated product is hidden from the list", func(t *testing.T) {
		_, err := repo.Deactivate(ctx, first.ID)
		require.NoError(t, err)

		products, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, second.ID, products[0].ID)
	})

	t.Run("deactivated product still resolves by id", func(t *testing.T) {
		product, err := repo.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.False(t, product.Active)
	})
}

func TestProductRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db.DB)

	_, err := repo.GetByID(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db.DB)
	ctx := context.Background()

	t.Run("updating only the price preserves other fields", func(t *testing.T) {
		created, err := repo.Create(ctx, sodaProduct())
		require.NoError(t, err)

		updated, err := repo.Update(ctx, created.ID, model.ProductUpdate{
			Price: float64Ptr(6.50),
		})
		require.NoError(t, err)
		assert.Equal(t, 6.50, updated.Price)
		assert.Equal(t, created.Category, updated.Category)
		assert.Equal(t, created.Description, updated.Description)
		assert.Equal(t, created.ItemType, updated.ItemType)
		assert.Equal(t, created.UnitCost, updated.UnitCost)
		assert.Equal(t, created.CurrentStock, updated.CurrentStock)
		assert.Equal(t, created.Barcode, updated.Barcode)
	})

	t.Run("multiple fields update together", func(t *testing.T) {
		created, err := repo.Create(ctx, sodaProduct())
		require.NoError(t, err)

		updated, err := repo.Update(ctx, created.ID, model.ProductUpdate{
			Description:  stringPtr("Diet Soda"),
			CurrentStock: intPtr(25),
		})
		require.NoError(t, err)
		assert.Equal(t, "Diet Soda", updated.Description)
		assert.Equal(t, 25, updated.CurrentStock)
		assert.Equal(t, created.Price, updated.Price)
	})

	t.Run("no fields set returns the stored row unchanged", func(t *testing.T) {
		created, err := repo.Create(ctx, sodaProduct())
		require.NoError(t, err)

		updated, err := repo.Update(ctx, created.ID, model.ProductUpdate{})
		require.NoError(t, err)
		assert.Equal(t, created, updated)
	})

	t.Run("nonexistent product", func(t *testing.T) {
		_, err := repo.Update(ctx, 999999, model.ProductUpdate{Price: float64Ptr(1.00)})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestProductRepository_Deactivate_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db.DB)

	_, err := repo.Deactivate(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

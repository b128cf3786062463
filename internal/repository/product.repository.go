package repository

import (
	"context"
	"errors"

	"github.com/ecaldeira/pdv-api/internal/model"
	"github.com/ecaldeira/pdv-api/pkg/pg"
	"gorm.io/gorm"
)

var (
	// ErrProductNotFound is returned when a product does not exist.
	ErrProductNotFound = errors.New("product not found")
)

type ProductRepository struct {
	*pg.DB
}

func NewProductRepository(db *pg.DB) *ProductRepository {
	return &ProductRepository{
		db,
	}
}

// List returns active products only, ordered by id.
func (r *ProductRepository) List(ctx context.Context) ([]*model.Product, error) {
	var entities []*ProductEntity
	err := r.Read(ctx).WithContext(ctx).
		Where("ativo = ?", true).
		Order("id_produto ASC").
		Find(&entities).
		Error
	if err != nil {
		return nil, err
	}
	return toProductModels(entities), nil
}

// GetByID returns the product whether it is active or not.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var entity ProductEntity
	err := r.Read(ctx).WithContext(ctx).
		Where("id_produto = ?", id).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return toProductModel(&entity), nil
}

func (r *ProductRepository) Create(ctx context.Context, req model.ProductCreateRequest) (*model.Product, error) {
	entity := &ProductEntity{
		Category:     req.Category,
		Description:  req.Description,
		Price:        req.Price,
		ItemType:     req.ItemType,
		UnitCost:     req.UnitCost,
		CurrentStock: req.CurrentStock,
		Barcode:      req.Barcode,
		Active:       true,
	}
	if err := r.Write(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}
	return toProductModel(entity), nil
}

// Update replaces each field only when the caller supplied a value for it;
// nil fields keep the stored value.
func (r *ProductRepository) Update(ctx context.Context, id int64, upd model.ProductUpdate) (*model.Product, error) {
	values := map[string]interface{}{}
	if upd.Category != nil {
		values["categoria"] = *upd.Category
	}
	if upd.Description != nil {
		values["descricao"] = *upd.Description
	}
	if upd.Price != nil {
		values["preco"] = *upd.Price
	}
	if upd.ItemType != nil {
		values["tipo_item"] = *upd.ItemType
	}
	if upd.UnitCost != nil {
		values["custo_unitario"] = *upd.UnitCost
	}
	if upd.CurrentStock != nil {
		values["estoque_atual"] = *upd.CurrentStock
	}
	if upd.Barcode != nil {
		values["codigo_barra"] = *upd.Barcode
	}

	// Nothing to change still answers with the current row, matching the
	// all-fields-absent partial update.
	if len(values) > 0 {
		result := r.Write(ctx).WithContext(ctx).
			Model(&ProductEntity{}).
			Where("id_produto = ?", id).
			Updates(values)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrProductNotFound
		}
	}

	return r.GetByID(ctx, id)
}

// Deactivate is the product delete: the row stays, the active flag drops.
func (r *ProductRepository) Deactivate(ctx context.Context, id int64) (*model.Product, error) {
	result := r.Write(ctx).WithContext(ctx).
		Model(&ProductEntity{}).
		Where("id_produto = ?", id).
		Update("ativo", false)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProductNotFound
	}
	return r.GetByID(ctx, id)
}

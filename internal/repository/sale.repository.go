package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecaldeira/pdv-api/internal/model"
	"github.com/ecaldeira/pdv-api/pkg/pg"
	"gorm.io/gorm"
)

var (
	// ErrSaleNotFound is returned when a sale does not exist.
	ErrSaleNotFound = errors.New("sale not found")
	// ErrNoSaleIDs is returned by DeleteBatch before any transaction is
	// opened when the id list is empty.
	ErrNoSaleIDs = errors.New("no sale ids provided")
)

type SaleRepository struct {
	*pg.DB
}

func NewSaleRepository(db *pg.DB) *SaleRepository {
	return &SaleRepository{
		db,
	}
}

// List returns every sale, most recent first. There is no pagination; the
// result set grows with the table.
func (r *SaleRepository) List(ctx context.Context) ([]*model.Sale, error) {
	var entities []*SaleEntity
	if err := r.Read(ctx).WithContext(ctx).Order("data_hora DESC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toSaleModels(entities), nil
}

// GetDetail returns the sale row plus its full item and payment lists,
// combined from three separate reads.
func (r *SaleRepository) GetDetail(ctx context.Context, id int64) (*model.SaleDetail, error) {
	var sale SaleEntity
	err := r.Read(ctx).WithContext(ctx).
		Where("id_venda = ?", id).
		First(&sale).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}

	var items []*SaleItemEntity
	if err := r.Read(ctx).WithContext(ctx).Where("venda_id = ?", id).Find(&items).Error; err != nil {
		return nil, err
	}

	var payments []*SalePaymentEntity
	if err := r.Read(ctx).WithContext(ctx).Where("venda_id = ?", id).Find(&payments).Error; err != nil {
		return nil, err
	}

	return &model.SaleDetail{
		Sale:     *toSaleModel(&sale),
		Items:    toSaleItemModels(items),
		Payments: toSalePaymentModels(payments),
	}, nil
}

// Create persists the sale row, then every payment and every item in
// caller-supplied order, all inside one transaction on one exclusive
// connection. Any failed insert rolls the whole sale back. Returns the
// generated sale id.
func (r *SaleRepository) Create(ctx context.Context, req model.SaleCreateRequest) (int64, error) {
	entity := &SaleEntity{
		GrossTotal: req.GrossTotal,
		TotalPaid:  req.TotalPaid,
		Change:     req.Change,
		Status:     req.Status,
	}

	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := r.Write(ctx).Create(entity).Error; err != nil {
			return fmt.Errorf("insert sale: %w", err)
		}

		for i := range req.Payments {
			payment := toSalePaymentEntity(&req.Payments[i])
			payment.SaleID = entity.ID
			if err := r.Write(ctx).Create(payment).Error; err != nil {
				return fmt.Errorf("insert payment: %w", err)
			}
		}

		for i := range req.Items {
			item := toSaleItemEntity(&req.Items[i])
			item.SaleID = entity.ID
			if err := r.Write(ctx).Create(item).Error; err != nil {
				return fmt.Errorf("insert item: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return entity.ID, nil
}

// UpdateStatus is a single-statement conditional update; no transaction is
// needed. Returns the updated sale or ErrSaleNotFound when no row matched.
func (r *SaleRepository) UpdateStatus(ctx context.Context, id int64, status string) (*model.Sale, error) {
	result := r.Write(ctx).WithContext(ctx).
		Model(&SaleEntity{}).
		Where("id_venda = ?", id).
		Update("status_venda", status)

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrSaleNotFound
	}

	var entity SaleEntity
	if err := r.Read(ctx).WithContext(ctx).Where("id_venda = ?", id).First(&entity).Error; err != nil {
		return nil, err
	}
	return toSaleModel(&entity), nil
}

// Delete removes a sale together with its payments and items in one
// transaction. ErrSaleNotFound rolls back the (empty) child deletes.
func (r *SaleRepository) Delete(ctx context.Context, id int64) error {
	return r.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := r.Write(ctx).Where("venda_id = ?", id).Delete(&SalePaymentEntity{}).Error; err != nil {
			return fmt.Errorf("delete payments: %w", err)
		}
		if err := r.Write(ctx).Where("venda_id = ?", id).Delete(&SaleItemEntity{}).Error; err != nil {
			return fmt.Errorf("delete items: %w", err)
		}

		result := r.Write(ctx).Where("id_venda = ?", id).Delete(&SaleEntity{})
		if result.Error != nil {
			return fmt.Errorf("delete sale: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrSaleNotFound
		}
		return nil
	})
}

// DeleteBatch removes every sale in ids together with their payments and
// items in one transaction and reports how many sales were removed. Ids that
// do not exist are skipped silently; the id list is bound as parameters, one
// placeholder per id.
func (r *SaleRepository) DeleteBatch(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrNoSaleIDs
	}

	var deleted int64
	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := r.Write(ctx).Where("venda_id IN ?", ids).Delete(&SalePaymentEntity{}).Error; err != nil {
			return fmt.Errorf("delete payments: %w", err)
		}
		if err := r.Write(ctx).Where("venda_id IN ?", ids).Delete(&SaleItemEntity{}).Error; err != nil {
			return fmt.Errorf("delete items: %w", err)
		}

		result := r.Write(ctx).Where("id_venda IN ?", ids).Delete(&SaleEntity{})
		if result.Error != nil {
			return fmt.Errorf("delete sales: %w", result.Error)
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

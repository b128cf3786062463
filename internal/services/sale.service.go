package services

import (
	"context"
	"errors"
	"time"

	"github.com/ecaldeira/pdv-api/internal/model"
	"github.com/ecaldeira/pdv-api/internal/repository"
	"github.com/ecaldeira/pdv-api/pkg/prom"
)

var (
	ErrSaleNotFound = errors.New("sale not found")
	ErrNoSaleIDs    = errors.New("no sale ids provided")
)

type SaleRepository interface {
	List(ctx context.Context) ([]*model.Sale, error)
	GetDetail(ctx context.Context, id int64) (*model.SaleDetail, error)
	Create(ctx context.Context, req model.SaleCreateRequest) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Sale, error)
	Delete(ctx context.Context, id int64) error
	DeleteBatch(ctx context.Context, ids []int64) (int64, error)
}

type SaleService struct {
	saleRepo SaleRepository
}

func NewSaleService(saleRepo SaleRepository) *SaleService {
	return &SaleService{
		saleRepo: saleRepo,
	}
}

func (s *SaleService) List(ctx context.Context) ([]*model.Sale, error) {
	return s.saleRepo.List(ctx)
}

func (s *SaleService) GetDetail(ctx context.Context, id int64) (*model.SaleDetail, error) {
	detail, err := s.saleRepo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	return detail, nil
}

// Create fills in the default status and runs the transactional insert. A
// failed transaction comes back as a plain error for the handler to report;
// the repository has already rolled everything back.
func (s *SaleService) Create(ctx context.Context, req model.SaleCreateRequest) (int64, error) {
	if req.Status == "" {
		req.Status = model.StatusFinalizada
	}

	start := time.Now()
	id, err := s.saleRepo.Create(ctx, req)
	prom.AddSaleTransactionDuration(time.Since(start).Seconds(), "create")
	if err != nil {
		return 0, err
	}

	prom.IncSalesCreated()
	return id, nil
}

func (s *SaleService) UpdateStatus(ctx context.Context, id int64, status string) (*model.Sale, error) {
	sale, err := s.saleRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	return sale, nil
}

func (s *SaleService) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := s.saleRepo.Delete(ctx, id)
	prom.AddSaleTransactionDuration(time.Since(start).Seconds(), "delete")
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return ErrSaleNotFound
		}
		return err
	}

	prom.AddSalesDeleted(1)
	return nil
}

// DeleteBatch rejects an empty id list before any database work happens.
func (s *SaleService) DeleteBatch(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrNoSaleIDs
	}

	start := time.Now()
	deleted, err := s.saleRepo.DeleteBatch(ctx, ids)
	prom.AddSaleTransactionDuration(time.Since(start).Seconds(), "delete_batch")
	if err != nil {
		if errors.Is(err, repository.ErrNoSaleIDs) {
			return 0, ErrNoSaleIDs
		}
		return 0, err
	}

	prom.AddSalesDeleted(float64(deleted))
	return deleted, nil
}

package services

import (
	"context"
	"errors"

	"github.com/ecaldeira/pdv-api/internal/model"
	"github.com/ecaldeira/pdv-api/internal/repository"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

type ProductRepository interface {
	List(ctx context.Context) ([]*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, req model.ProductCreateRequest) (*model.Product, error)
	Update(ctx context.Context, id int64, upd model.ProductUpdate) (*model.Product, error)
	Deactivate(ctx context.Context, id int64) (*model.Product, error)
}

type ProductService struct {
	productRepo ProductRepository
}

func NewProductService(productRepo ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

func (s *ProductService) List(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, req model.ProductCreateRequest) (*model.Product, error) {
	if req.ItemType == "" {
		req.ItemType = model.DefaultItemType
	}
	return s.productRepo.Create(ctx, req)
}

func (s *ProductService) Update(ctx context.Context, id int64, upd model.ProductUpdate) (*model.Product, error) {
	product, err := s.productRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Deactivate(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.Deactivate(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

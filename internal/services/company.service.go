package services

import (
	"context"
	"errors"

	"github.com/ecaldeira/pdv-api/internal/model"
	"github.com/ecaldeira/pdv-api/internal/repository"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
)

type CompanyRepository interface {
	List(ctx context.Context) ([]*model.Company, error)
	GetByID(ctx context.Context, id int64) (*model.Company, error)
	Create(ctx context.Context, req model.CompanyCreateRequest) (*model.Company, error)
	Update(ctx context.Context, id int64, upd model.CompanyUpdate) (*model.Company, error)
	Delete(ctx context.Context, id int64) error
}

type CompanyService struct {
	companyRepo CompanyRepository
}

func NewCompanyService(companyRepo CompanyRepository) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
	}
}

func (s *CompanyService) List(ctx context.Context) ([]*model.Company, error) {
	return s.companyRepo.List(ctx)
}

func (s *CompanyService) GetByID(ctx context.Context, id int64) (*model.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) Create(ctx context.Context, req model.CompanyCreateRequest) (*model.Company, error) {
	return s.companyRepo.Create(ctx, req)
}

func (s *CompanyService) Update(ctx context.Context, id int64, upd model.CompanyUpdate) (*model.Company, error) {
	company, err := s.companyRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) Delete(ctx context.Context, id int64) error {
	err := s.companyRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return ErrCompanyNotFound
		}
		return err
	}
	return nil
}

package repository

import (
	"context"
	"errors"

	"github.com/ecaldeira/pdv-api/internal/model"
	"github.com/ecaldeira/pdv-api/pkg/pg"
	"gorm.io/gorm"
)

var (
	// ErrCompanyNotFound is returned when a company does not exist.
	ErrCompanyNotFound = errors.New("company not found")
)

type CompanyRepository struct {
	*pg.DB
}

func NewCompanyRepository(db *pg.DB) *CompanyRepository {
	return &CompanyRepository{
		db,
	}
}

func (r *CompanyRepository) List(ctx context.Context) ([]*model.Company, error) {
	var entities []*CompanyEntity
	err := r.Read(ctx).WithContext(ctx).
		Order("id_empresa ASC").
		Find(&entities).
		Error
	if err != nil {
		return nil, err
	}
	return toCompanyModels(entities), nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*model.Company, error) {
	var entity CompanyEntity
	err := r.Read(ctx).WithContext(ctx).
		Where("id_empresa = ?", id).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return toCompanyModel(&entity), nil
}

func (r *CompanyRepository) Create(ctx context.Context, req model.CompanyCreateRequest) (*model.Company, error) {
	entity := &CompanyEntity{
		LegalName:         req.LegalName,
		TradeName:         req.TradeName,
		TaxID:             req.TaxID,
		StateRegistration: req.StateRegistration,
		Address:           req.Address,
		City:              req.City,
		State:             req.State,
		PostalCode:        req.PostalCode,
		Phone:             req.Phone,
		Email:             req.Email,
	}
	if err := r.Write(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}
	return toCompanyModel(entity), nil
}

// Update replaces each field only when the caller supplied a value for it;
// nil fields keep the stored value.
func (r *CompanyRepository) Update(ctx context.Context, id int64, upd model.CompanyUpdate) (*model.Company, error) {
	values := map[string]interface{}{}
	if upd.LegalName != nil {
		values["razao_social"] = *upd.LegalName
	}
	if upd.TradeName != nil {
		values["nome_fantasia"] = *upd.TradeName
	}
	if upd.TaxID != nil {
		values["cnpj"] = *upd.TaxID
	}
	if upd.StateRegistration != nil {
		values["inscricao_estadual"] = *upd.StateRegistration
	}
	if upd.Address != nil {
		values["endereco"] = *upd.Address
	}
	if upd.City != nil {
		values["cidade"] = *upd.City
	}
	if upd.State != nil {
		values["estado"] = *upd.State
	}
	if upd.PostalCode != nil {
		values["cep"] = *upd.PostalCode
	}
	if upd.Phone != nil {
		values["telefone"] = *upd.Phone
	}
	if upd.Email != nil {
		values["email"] = *upd.Email
	}

	if len(values) > 0 {
		result := r.Write(ctx).WithContext(ctx).
			Model(&CompanyEntity{}).
			Where("id_empresa = ?", id).
			Updates(values)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrCompanyNotFound
		}
	}

	return r.GetByID(ctx, id)
}

// Delete removes the row for good; companies are not soft-deleted.
func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).WithContext(ctx).
		Where("id_empresa = ?", id).
		Delete(&CompanyEntity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

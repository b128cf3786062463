package repository

import (
	"github.com/ecaldeira/pdv-api/internal/model"
)

type CompanyEntity struct {
	ID                int64  `db:"id_empresa"         gorm:"primaryKey;autoIncrement;column:id_empresa"`
	LegalName         string `db:"razao_social"       gorm:"column:razao_social;not null"`
	TradeName         string `db:"nome_fantasia"      gorm:"column:nome_fantasia;not null"`
	TaxID             string `db:"cnpj"               gorm:"column:cnpj;not null"`
	StateRegistration string `db:"inscricao_estadual" gorm:"column:inscricao_estadual"`
	Address           string `db:"endereco"           gorm:"column:endereco"`
	City              string `db:"cidade"             gorm:"column:cidade"`
	State             string `db:"estado"             gorm:"column:estado"`
	PostalCode        string `db:"cep"                gorm:"column:cep"`
	Phone             string `db:"telefone"           gorm:"column:telefone"`
	Email             string `db:"email"              gorm:"column:email"`
}

func (CompanyEntity) TableName() string {
	return "empresas"
}

func toCompanyEntity(m *model.Company) *CompanyEntity {
	if m == nil {
		return nil
	}
	return &CompanyEntity{
		ID:                m.ID,
		LegalName:         m.LegalName,
		TradeName:         m.TradeName,
		TaxID:             m.TaxID,
		StateRegistration: m.StateRegistration,
		Address:           m.Address,
		City:              m.City,
		State:             m.State,
		PostalCode:        m.PostalCode,
		Phone:             m.Phone,
		Email:             m.Email,
	}
}

func toCompanyModel(e *CompanyEntity) *model.Company {
	if e == nil {
		return nil
	}
	return &model.Company{
		ID:                e.ID,
		LegalName:         e.LegalName,
		TradeName:         e.TradeName,
		TaxID:             e.TaxID,
		StateRegistration: e.StateRegistration,
		Address:           e.Address,
		City:              e.City,
		State:             e.State,
		PostalCode:        e.PostalCode,
		Phone:             e.Phone,
		Email:             e.Email,
	}
}

func toCompanyModels(entities []*CompanyEntity) []*model.Company {
	models := make([]*model.Company, len(entities))
	for i, e := range entities {
		models[i] = toCompanyModel(e)
	}
	return models
}

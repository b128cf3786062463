package repository

import (
	"github.com/ecaldeira/pdv-api/internal/model"
)

type ProductEntity struct {
	ID           int64   `db:"id_produto"     gorm:"primaryKey;autoIncrement;column:id_produto"`
	Category     string  `db:"categoria"      gorm:"column:categoria;not null"`
	Description  string  `db:"descricao"      gorm:"column:descricao;not null"`
	Price        float64 `db:"preco"          gorm:"column:preco;not null"`
	ItemType     string  `db:"tipo_item"      gorm:"column:tipo_item;not null"`
	UnitCost     float64 `db:"custo_unitario" gorm:"column:custo_unitario;not null"`
	CurrentStock int     `db:"estoque_atual"  gorm:"column:estoque_atual;not null"`
	Barcode      string  `db:"codigo_barra"   gorm:"column:codigo_barra;not null"`
	Active       bool    `db:"ativo"          gorm:"column:ativo;not null"`
}

func (ProductEntity) TableName() string {
	return "produtos"
}

func toProductEntity(m *model.Product) *ProductEntity {
	if m == nil {
		return nil
	}
	return &ProductEntity{
		ID:           m.ID,
		Category:     m.Category,
		Description:  m.Description,
		Price:        m.Price,
		ItemType:     m.ItemType,
		UnitCost:     m.UnitCost,
		CurrentStock: m.CurrentStock,
		Barcode:      m.Barcode,
		Active:       m.Active,
	}
}

func toProductModel(e *ProductEntity) *model.Product {
	if e == nil {
		return nil
	}
	return &model.Product{
		ID:           e.ID,
		Category:     e.Category,
		Description:  e.Description,
		Price:        e.Price,
		ItemType:     e.ItemType,
		UnitCost:     e.UnitCost,
		CurrentStock: e.CurrentStock,
		Barcode:      e.Barcode,
		Active:       e.Active,
	}
}

func toProductModels(entities []*ProductEntity) []*model.Product {
	models := make([]*model.Product, len(entities))
	for i, e := range entities {
		models[i] = toProductModel(e)
	}
	return models
}

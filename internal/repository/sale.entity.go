package repository

import (
	"time"

	"github.com/ecaldeira/pdv-api/internal/model"
)

type SaleEntity struct {
	ID         int64     `db:"id_venda"          gorm:"primaryKey;autoIncrement;column:id_venda"`
	GrossTotal float64   `db:"valor_total_bruto" gorm:"column:valor_total_bruto;not null"`
	TotalPaid  float64   `db:"valor_pago_total"  gorm:"column:valor_pago_total;not null"`
	Change     float64   `db:"valor_troco"       gorm:"column:valor_troco;not null"`
	Status     string    `db:"status_venda"      gorm:"column:status_venda;not null"`
	CreatedAt  time.Time `db:"data_hora"         gorm:"column:data_hora;autoCreateTime"`
}

func (SaleEntity) TableName() string {
	return "vendas"
}

type SaleItemEntity struct {
	ID          int64   `db:"id_item"        gorm:"primaryKey;autoIncrement;column:id_item"`
	SaleID      int64   `db:"venda_id"       gorm:"column:venda_id;not null;index"`
	Category    string  `db:"categoria"      gorm:"column:categoria;not null"`
	Description string  `db:"descricao_item" gorm:"column:descricao_item;not null"`
	UnitPrice   float64 `db:"preco_unitario" gorm:"column:preco_unitario;not null"`
	Quantity    int     `db:"quantidade"     gorm:"column:quantidade;not null"`
	Subtotal    float64 `db:"subtotal"       gorm:"column:subtotal;not null"`
}

func (SaleItemEntity) TableName() string {
	return "itens_vendidos"
}

type SalePaymentEntity struct {
	ID              int64   `db:"id_pagamento"      gorm:"primaryKey;autoIncrement;column:id_pagamento"`
	SaleID          int64   `db:"venda_id"          gorm:"column:venda_id;not null;index"`
	Method          string  `db:"metodo"            gorm:"column:metodo;not null"`
	AmountPaid      float64 `db:"valor_pago"        gorm:"column:valor_pago;not null"`
	MethodReference string  `db:"referencia_metodo" gorm:"column:referencia_metodo"`
}

func (SalePaymentEntity) TableName() string {
	return "pagamentos"
}

func toSaleEntity(m *model.Sale) *SaleEntity {
	if m == nil {
		return nil
	}
	return &SaleEntity{
		ID:         m.ID,
		GrossTotal: m.GrossTotal,
		TotalPaid:  m.TotalPaid,
		Change:     m.Change,
		Status:     m.Status,
		CreatedAt:  m.CreatedAt,
	}
}

func toSaleModel(e *SaleEntity) *model.Sale {
	if e == nil {
		return nil
	}
	return &model.Sale{
		ID:         e.ID,
		GrossTotal: e.GrossTotal,
		TotalPaid:  e.TotalPaid,
		Change:     e.Change,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt,
	}
}

func toSaleModels(entities []*SaleEntity) []*model.Sale {
	models := make([]*model.Sale, len(entities))
	for i, e := range entities {
		models[i] = toSaleModel(e)
	}
	return models
}

func toSaleItemEntity(m *model.SaleItem) *SaleItemEntity {
	if m == nil {
		return nil
	}
	return &SaleItemEntity{
		ID:          m.ID,
		SaleID:      m.SaleID,
		Category:    m.Category,
		Description: m.Description,
		UnitPrice:   m.UnitPrice,
		Quantity:    m.Quantity,
		Subtotal:    m.Subtotal,
	}
}

func toSaleItemModel(e *SaleItemEntity) *model.SaleItem {
	if e == nil {
		return nil
	}
	return &model.SaleItem{
		ID:          e.ID,
		SaleID:      e.SaleID,
		Category:    e.Category,
		Description: e.Description,
		UnitPrice:   e.UnitPrice,
		Quantity:    e.Quantity,
		Subtotal:    e.Subtotal,
	}
}

func toSaleItemModels(entities []*SaleItemEntity) []*model.SaleItem {
	models := make([]*model.SaleItem, len(entities))
	for i, e := range entities {
		models[i] = toSaleItemModel(e)
	}
	return models
}

func toSalePaymentEntity(m *model.SalePayment) *SalePaymentEntity {
	if m == nil {
		return nil
	}
	return &SalePaymentEntity{
		ID:              m.ID,
		SaleID:          m.SaleID,
		Method:          m.Method,
		AmountPaid:      m.AmountPaid,
		MethodReference: m.MethodReference,
	}
}

func toSalePaymentModel(e *SalePaymentEntity) *model.SalePayment {
	if e == nil {
		return nil
	}
	return &model.SalePayment{
		ID:              e.ID,
		SaleID:          e.SaleID,
		Method:          e.Method,
		AmountPaid:      e.AmountPaid,
		MethodReference: e.MethodReference,
	}
}

func toSalePaymentModels(entities []*SalePaymentEntity) []*model.SalePayment {
	models := make([]*model.SalePayment, len(entities))
	for i, e := range entities {
		models[i] = toSalePaymentModel(e)
	}
	return models
}

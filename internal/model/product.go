package model

// DefaultItemType is applied when a product is created without one.
const DefaultItemType = "Serviço"

// Product is a catalog entry. Products are soft-deleted: Active flips to
// false and the product disappears from listings but stays addressable by id.
type Product struct {
	ID           int64   `json:"idProduto"`
	Category     string  `json:"categoria"`
	Description  string  `json:"descricao"`
	Price        float64 `json:"preco"`
	ItemType     string  `json:"tipoItem"`
	UnitCost     float64 `json:"custoUnitario"`
	CurrentStock int     `json:"estoqueAtual"`
	Barcode      string  `json:"codigoBarra"`
	Active       bool    `json:"ativo"`
}

type ProductCreateRequest struct {
	Category     string
	Description  string
	Price        float64
	ItemType     string
	UnitCost     float64
	CurrentStock int
	Barcode      string
}

// ProductUpdate carries the partial-update fields. A nil field keeps the
// stored value; only non-nil fields are written.
type ProductUpdate struct {
	Category     *string
	Description  *string
	Price        *float64
	ItemType     *string
	UnitCost     *float64
	CurrentStock *int
	Barcode      *string
}

package model

import "time"

// StatusFinalizada is the status a sale is persisted with when the caller
// does not supply one.
const StatusFinalizada = "Finalizada"

type Sale struct {
	ID         int64     `json:"idVenda"`
	GrossTotal float64   `json:"valorTotalBruto"`
	TotalPaid  float64   `json:"valorPagoTotal"`
	Change     float64   `json:"valorTroco"`
	Status     string    `json:"statusVenda"`
	CreatedAt  time.Time `json:"dataHora"`
}

// SaleItem is one line of merchandise or service sold within a sale. The
// subtotal is taken from the caller as-is and never recomputed from
// price and quantity.
type SaleItem struct {
	ID          int64   `json:"idItem"`
	SaleID      int64   `json:"vendaId"`
	Category    string  `json:"categoria"`
	Description string  `json:"descricaoItem"`
	UnitPrice   float64 `json:"precoUnitario"`
	Quantity    int     `json:"quantidade"`
	Subtotal    float64 `json:"subtotal"`
}

// SalePayment is one tender applied toward a sale's total. MethodReference
// carries the authorizer reference for card payments and stays empty for cash.
type SalePayment struct {
	ID              int64   `json:"idPagamento"`
	SaleID          int64   `json:"vendaId"`
	Method          string  `json:"metodo"`
	AmountPaid      float64 `json:"valorPago"`
	MethodReference string  `json:"referenciaMetodo"`
}

// SaleDetail is the composite returned by the detail endpoint: the sale row
// plus its full item and payment lists.
type SaleDetail struct {
	Sale
	Items    []*SaleItem    `json:"itens"`
	Payments []*SalePayment `json:"pagamentos"`
}

// SaleCreateRequest is the input for creating a sale together with its items
// and payments in one transaction. Empty item and payment lists are accepted;
// the data layer enforces no minimum count.
type SaleCreateRequest struct {
	GrossTotal float64
	TotalPaid  float64
	Change     float64
	Status     string
	Items      []SaleItem
	Payments   []SalePayment
}

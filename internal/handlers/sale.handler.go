package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/ecaldeira/pdv-api/internal/model"
	"github.com/ecaldeira/pdv-api/internal/services"
	xhttp "github.com/ecaldeira/pdv-api/pkg/http"
)

type SaleService interface {
	List(ctx context.Context) ([]*model.Sale, error)
	GetDetail(ctx context.Context, id int64) (*model.SaleDetail, error)
	Create(ctx context.Context, req model.SaleCreateRequest) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Sale, error)
	Delete(ctx context.Context, id int64) error
	DeleteBatch(ctx context.Context, ids []int64) (int64, error)
}

type SaleHandler struct {
	svc SaleService
}

func RegisterSaleRoutes(r *xhttp.Router, h *SaleHandler) {
	r.GET("/vendas", h.ListSales)
	r.GET("/vendas/{id}", h.GetSaleDetail)
	r.POST("/vendas", h.CreateSale)
	r.PATCH("/vendas/{id}/status", h.UpdateSaleStatus)
	r.DELETE("/vendas/{id}", h.DeleteSale)
	r.POST("/vendas/deletar-periodo", h.DeleteSalesBatch)
}

func NewSaleHandler(saleService SaleService) *SaleHandler {
	return &SaleHandler{
		svc: saleService,
	}
}

type saleItemRequest struct {
	Category    string  `json:"categoria"`
	Description string  `json:"descricaoItem"`
	UnitPrice   float64 `json:"precoUnitario"`
	Quantity    int     `json:"quantidade"`
	Subtotal    float64 `json:"subtotal"`
}

type salePaymentRequest struct {
	Method          string  `json:"metodo"`
	AmountPaid      float64 `json:"valorPago"`
	MethodReference string  `json:"referenciaMetodo"`
}

type createSaleRequest struct {
	GrossTotal float64              `json:"valorTotalBruto"`
	TotalPaid  float64              `json:"valorPagoTotal"`
	Change     float64              `json:"valorTroco"`
	Status     string               `json:"statusVenda"`
	Items      []saleItemRequest    `json:"itens"`
	Payments   []salePaymentRequest `json:"pagamentos"`
}

type updateSaleStatusRequest struct {
	Status string `json:"status"`
}

type deleteSalesBatchRequest struct {
	SaleIDs []int64 `json:"idsVendas"`
}

/* --------------------------------- Routes ----------------------------------- */

func (h *SaleHandler) ListSales(ctx *xhttp.RequestCtx) {
	sales, err := h.svc.List(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusInternalServerError, "Erro ao obter vendas")
		return
	}
	writeJSON(ctx, xhttp.StatusOK, sales)
}

func (h *SaleHandler) GetSaleDetail(ctx *xhttp.RequestCtx) {
	id, err := pathInt64(ctx, "id")
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "id inválido")
		return
	}

	detail, err := h.svc.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrSaleNotFound) {
			writeError(ctx, xhttp.StatusNotFound, "Venda não encontrada")
			return
		}
		writeError(ctx, xhttp.StatusInternalServerError, "Erro ao obter detalhes da venda")
		return
	}
	writeJSON(ctx, xhttp.StatusOK, detail)
}

func (h *SaleHandler) CreateSale(ctx *xhttp.RequestCtx) {
	var req createSaleRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	p := model.SaleCreateRequest{
		GrossTotal: req.GrossTotal,
		TotalPaid:  req.TotalPaid,
		Change:     req.Change,
		Status:     req.Status,
	}
	for _, item := range req.Items {
		p.Items = append(p.Items, model.SaleItem{
			Category:    item.Category,
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}
	for _, payment := range req.Payments {
		p.Payments = append(p.Payments, model.SalePayment{
			Method:          payment.Method,
			AmountPaid:      payment.AmountPaid,
			MethodReference: payment.MethodReference,
		})
	}

	id, err := h.svc.Create(ctx, p)
	if err != nil {
		// the transaction is already rolled back; report, don't re-raise
		writeJSON(ctx, xhttp.StatusBadRequest, map[string]string{
			"mensagem": "Falha ao criar venda",
			"erro":     err.Error(),
		})
		return
	}

	writeJSON(ctx, xhttp.StatusCreated, map[string]interface{}{
		"mensagem": "Venda criada com sucesso",
		"idVenda":  id,
	})
}

func (h *SaleHandler) UpdateSaleStatus(ctx *xhttp.RequestCtx) {
	id, err := pathInt64(ctx, "id")
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "id inválido")
		return
	}

	var req updateSaleStatusRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	_, err = h.svc.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrSaleNotFound) {
			writeError(ctx, xhttp.StatusNotFound, "Venda não encontrada")
			return
		}
		writeError(ctx, xhttp.StatusInternalServerError, "Erro ao atualizar o status da venda")
		return
	}

	writeJSON(ctx, xhttp.StatusOK, map[string]string{
		"mensagem": fmt.Sprintf("Status da venda %d atualizado para %s", id, req.Status),
	})
}

func (h *SaleHandler) DeleteSale(ctx *xhttp.RequestCtx) {
	id, err := pathInt64(ctx, "id")
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "id inválido")
		return
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		if errors.Is(err, services.ErrSaleNotFound) {
			writeError(ctx, xhttp.StatusNotFound, "Venda não encontrada")
			return
		}
		writeError(ctx, xhttp.StatusInternalServerError, "Erro ao apagar a venda")
		return
	}

	writeJSON(ctx, xhttp.StatusOK, map[string]string{
		"mensagem": fmt.Sprintf("Venda %d e seus detalhes apagados com sucesso.", id),
	})
}

func (h *SaleHandler) DeleteSalesBatch(ctx *xhttp.RequestCtx) {
	var req deleteSalesBatchRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	deleted, err := h.svc.DeleteBatch(ctx, req.SaleIDs)
	if err != nil {
		writeJSON(ctx, xhttp.StatusBadRequest, map[string]string{
			"mensagem": "Falha na exclusão em massa.",
			"erro":     err.Error(),
		})
		return
	}

	writeJSON(ctx, xhttp.StatusOK, map[string]interface{}{
		"mensagem":  fmt.Sprintf("%d vendas apagadas.", deleted),
		"deletadas": deleted,
	})
}

/* --------------------------------- Helpers ----------------------------------- */

func readJSON(ctx *xhttp.RequestCtx, dst any) error {
	body := ctx.PostBody()
	return json.Unmarshal(body, dst)
}

func writeJSON(ctx *xhttp.RequestCtx, status int, v any) {
	b, _ := json.Marshal(v)
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}

func writeError(ctx *xhttp.RequestCtx, status int, msg string) {
	writeJSON(ctx, status, map[string]string{"error": msg})
}

func pathInt64(ctx *xhttp.RequestCtx, name string) (int64, error) {
	v, ok := ctx.UserValue(name).(string)
	if !ok {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(v, 10, 64)
}

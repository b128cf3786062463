package handlers

import (
	"context"
	"errors"

	"github.com/ecaldeira/pdv-api/internal/model"
	"github.com/ecaldeira/pdv-api/internal/services"
	xhttp "github.com/ecaldeira/pdv-api/pkg/http"
)

type ProductService interface {
	List(ctx context.Context) ([]*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, req model.ProductCreateRequest) (*model.Product, error)
	Update(ctx context.Context, id int64, upd model.ProductUpdate) (*model.Product, error)
	Deactivate(ctx context.Context, id int64) (*model.Product, error)
}

type ProductHandler struct {
	svc ProductService
}

func RegisterProductRoutes(r *xhttp.Router, h *ProductHandler) {
	r.GET("/produtos", h.ListProducts)
	r.GET("/produtos/{id}", h.GetProduct)
	r.POST("/produtos", h.CreateProduct)
	r.PATCH("/produtos/{id}", h.UpdateProduct)
	r.DELETE("/produtos/{id}", h.DeactivateProduct)
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		svc: productService,
	}
}

type createProductRequest struct {
	Category     string  `json:"categoria"`
	Description  string  `json:"descricao"`
	Price        float64 `json:"preco"`
	ItemType     string  `json:"tipoItem"`
	UnitCost     float64 `json:"custoUnitario"`
	CurrentStock int     `json:"estoqueAtual"`
	Barcode      string  `json:"codigoBarra"`
}

// updateProductRequest distinguishes "absent" from "zero": nil pointers keep
// the stored value.
type updateProductRequest struct {
	Category     *string  `json:"categoria"`
	Description  *string  `json:"descricao"`
	Price        *float64 `json:"preco"`
	ItemType     *string  `json:"tipoItem"`
	UnitCost     *float64 `json:"custoUnitario"`
	CurrentStock *int     `json:"estoqueAtual"`
	Barcode      *string  `json:"codigoBarra"`
}

func (h *ProductHandler) ListProducts(ctx *xhttp.RequestCtx) {
	products, err := h.svc.List(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusInternalServerError, "Erro ao obter produtos")
		return
	}
	writeJSON(ctx, xhttp.StatusOK, products)
}

func (h *ProductHandler) GetProduct(ctx *xhttp.RequestCtx) {
	id, err := pathInt64(ctx, "id")
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "id inválido")
		return
	}

	product, err := h.svc.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			writeError(ctx, xhttp.StatusNotFound, "Produto não encontrado")
			return
		}
		writeError(ctx, xhttp.StatusInternalServerError, "Erro ao obter produto")
		return
	}
	writeJSON(ctx, xhttp.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(ctx *xhttp.RequestCtx) {
	var req createProductRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	product, err := h.svc.Create(ctx, model.ProductCreateRequest{
		Category:     req.Category,
		Description:  req.Description,
		Price:        req.Price,
		ItemType:     req.ItemType,
		UnitCost:     req.UnitCost,
		CurrentStock: req.CurrentStock,
		Barcode:      req.Barcode,
	})
	if err != nil {
		writeError(ctx, xhttp.StatusInternalServerError, "Erro ao criar produto")
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(ctx *xhttp.RequestCtx) {
	id, err := pathInt64(ctx, "id")
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "id inválido")
		return
	}

	var req updateProductRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	product, err := h.svc.Update(ctx, id, model.ProductUpdate{
		Category:     req.Category,
		Description:  req.Description,
		Price:        req.Price,
		ItemType:     req.ItemType,
		UnitCost:     req.UnitCost,
		CurrentStock: req.CurrentStock,
		Barcode:      req.Barcode,
	})
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			writeError(ctx, xhttp.StatusNotFound, "Produto não encontrado para atualização")
			return
		}
		writeError(ctx, xhttp.StatusInternalServerError, "Erro ao atualizar produto")
		return
	}
	writeJSON(ctx, xhttp.StatusOK, product)
}

func (h *ProductHandler) DeactivateProduct(ctx *xhttp.RequestCtx) {
	id, err := pathInt64(ctx, "id")
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "id inválido")
		return
	}

	_, err = h.svc.Deactivate(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			writeError(ctx, xhttp.StatusNotFound, "Produto não encontrado para desativação")
			return
		}
		writeError(ctx, xhttp.StatusInternalServerError, "Erro ao desativar produto")
		return
	}

	writeJSON(ctx, xhttp.StatusOK, map[string]interface{}{
		"mensagem":  "Produto desativado com sucesso",
		"idProduto": id,
	})
}

package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecaldeira/pdv-api/internal/model"
	"github.com/ecaldeira/pdv-api/internal/services"
	xhttp "github.com/ecaldeira/pdv-api/pkg/http"
)

type CompanyService interface {
	List(ctx context.Context) ([]*model.Company, error)
	GetByID(ctx context.Context, id int64) (*model.Company, error)
	Create(ctx context.Context, req model.CompanyCreateRequest) (*model.Company, error)
	Update(ctx context.Context, id int64, upd model.CompanyUpdate) (*model.Company, error)
	Delete(ctx context.Context, id int64) error
}

type CompanyHandler struct {
	svc CompanyService
}

func RegisterCompanyRoutes(r *xhttp.Router, h *CompanyHandler) {
	r.GET("/empresas", h.ListCompanies)
	r.GET("/empresas/{id}", h.GetCompany)
	r.POST("/empresas", h.CreateCompany)
	r.PATCH("/empresas/{id}", h.UpdateCompany)
	r.DELETE("/empresas/{id}", h.DeleteCompany)
}

func NewCompanyHandler(companyService CompanyService) *CompanyHandler {
	return &CompanyHandler{
		svc: companyService,
	}
}

type createCompanyRequest struct {
	LegalName         string `json:"razaoSocial"`
	TradeName         string `json:"nomeFantasia"`
	TaxID             string `json:"cnpj"`
	StateRegistration string `json:"inscricaoEstadual"`
	Address           string `json:"endereco"`
	City              string `json:"cidade"`
	State             string `json:"estado"`
	PostalCode        string `json:"cep"`
	Phone             string `json:"telefone"`
	Email             string `json:"email"`
}

type updateCompanyRequest struct {
	LegalName         *string `json:"razaoSocial"`
	TradeName         *string `json:"nomeFantasia"`
	TaxID             *string `json:"cnpj"`
	StateRegistration *string `json:"inscricaoEstadual"`
	Address           *string `json:"endereco"`
	City              *string `json:"cidade"`
	State             *string `json:"estado"`
	PostalCode        *string `json:"cep"`
	Phone             *string `json:"telefone"`
	Email             *string `json:"email"`
}

func (h *CompanyHandler) ListCompanies(ctx *xhttp.RequestCtx) {
	companies, err := h.svc.List(ctx)
	if err != nil {
		writeError(ctx, xhttp.StatusInternalServerError, "Erro ao obter dados da empresa")
		return
	}
	writeJSON(ctx, xhttp.StatusOK, companies)
}

func (h *CompanyHandler) GetCompany(ctx *xhttp.RequestCtx) {
	id, err := pathInt64(ctx, "id")
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "id inválido")
		return
	}

	company, err := h.svc.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			writeError(ctx, xhttp.StatusNotFound, "Empresa não encontrada")
			return
		}
		writeError(ctx, xhttp.StatusInternalServerError, "Erro ao obter detalhes da empresa")
		return
	}
	writeJSON(ctx, xhttp.StatusOK, company)
}

func (h *CompanyHandler) CreateCompany(ctx *xhttp.RequestCtx) {
	var req createCompanyRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	company, err := h.svc.Create(ctx, model.CompanyCreateRequest{
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
	})
	if err != nil {
		writeError(ctx, xhttp.StatusInternalServerError, "Erro ao cadastrar empresa")
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, company)
}

func (h *CompanyHandler) UpdateCompany(ctx *xhttp.RequestCtx) {
	id, err := pathInt64(ctx, "id")
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "id inválido")
		return
	}

	var req updateCompanyRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	company, err := h.svc.Update(ctx, id, model.CompanyUpdate{
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
	})
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			writeError(ctx, xhttp.StatusNotFound, "Empresa não encontrada para atualização")
			return
		}
		writeError(ctx, xhttp.StatusInternalServerError, "Erro ao atualizar dados da empresa")
		return
	}
	writeJSON(ctx, xhttp.StatusOK, company)
}

func (h *CompanyHandler) DeleteCompany(ctx *xhttp.RequestCtx) {
	id, err := pathInt64(ctx, "id")
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "id inválido")
		return
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			writeError(ctx, xhttp.StatusNotFound, "Empresa não encontrada ou erro ao apagar")
			return
		}
		writeError(ctx, xhttp.StatusInternalServerError, "Erro ao apagar empresa")
		return
	}

	writeJSON(ctx, xhttp.StatusOK, map[string]string{
		"mensagem": fmt.Sprintf("Empresa %d apagada com sucesso.", id),
	})
}

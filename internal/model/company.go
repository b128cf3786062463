package model

// Company holds the registration data of the store operator. Unlike products,
// companies are hard-deleted.
type Company struct {
	ID                int64  `json:"idEmpresa"`
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

type CompanyCreateRequest struct {
	LegalName         string
	TradeName         string
	TaxID             string
	StateRegistration string
	Address           string
	City              string
	State             string
	PostalCode        string
	Phone             string
	Email             string
}

// CompanyUpdate carries the partial-update fields, nil meaning "keep stored
// value".
type CompanyUpdate struct {
	LegalName         *string
	TradeName         *string
	TaxID             *string
	StateRegistration *string
	Address           *string
	City              *string
	State             *string
	PostalCode        *string
	Phone             *string
	Email             *string
}

package e2e

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/ecaldeira/pdv-api/internal/handlers"
	"github.com/ecaldeira/pdv-api/internal/model"
	"github.com/ecaldeira/pdv-api/internal/repository"
	"github.com/ecaldeira/pdv-api/internal/services"
	"github.com/ecaldeira/pdv-api/pkg/pg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testDB = pg.DB

type TestEnvironment struct {
	DB             *pg.DB
	SaleRepo       *repository.SaleRepository
	ProductRepo    *repository.ProductRepository
	CompanyRepo    *repository.CompanyRepository
	SaleService    *services.SaleService
	ProductService *services.ProductService
	CompanyService *services.CompanyService
	SaleHandler    *handlers.SaleHandler
	ProductHandler *handlers.ProductHandler
	CompanyHandler *handlers.CompanyHandler
}

func setupE2EEnvironment(t *testing.T) *TestEnvironment {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&repository.SaleEntity{},
		&repository.SaleItemEntity{},
		&repository.SalePaymentEntity{},
		&repository.ProductEntity{},
		&repository.CompanyEntity{},
	)
	require.NoError(t, err)

	pgDB := &testDB{}
	pgDBValue := reflect.ValueOf(pgDB).Elem()

	readField := pgDBValue.FieldByName("read")
	writeField := pgDBValue.FieldByName("write")

	readField = reflect.NewAt(readField.Type(), readField.Addr().UnsafePointer()).Elem()
	writeField = reflect.NewAt(writeField.Type(), writeField.Addr().UnsafePointer()).Elem()

	readField.Set(reflect.ValueOf(db))
	writeField.Set(reflect.ValueOf(db))

	saleRepo := repository.NewSaleRepository(pgDB)
	productRepo := repository.NewProductRepository(pgDB)
	companyRepo := repository.NewCompanyRepository(pgDB)

	saleService := services.NewSaleService(saleRepo)
	productService := services.NewProductService(productRepo)
	companyService := services.NewCompanyService(companyRepo)

	return &TestEnvironment{
		DB:             pgDB,
		SaleRepo:       saleRepo,
		ProductRepo:    productRepo,
		CompanyRepo:    companyRepo,
		SaleService:    saleService,
		ProductService: productService,
		CompanyService: companyService,
		SaleHandler:    handlers.NewSaleHandler(saleService),
		ProductHandler: handlers.NewProductHandler(productService),
		CompanyHandler: handlers.NewCompanyHandler(companyService),
	}
}

func newRequestCtx(method, path string, body []byte) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != nil {
		ctx.Request.SetBody(body)
	}
	return ctx
}

func TestE2E_SaleLifecycle(t *testing.T) {
	env := setupE2EEnvironment(t)
	ctx := context.Background()

	saleID, err := env.SaleService.Create(ctx, model.SaleCreateRequest{
		GrossTotal: 100.00,
		TotalPaid:  100.00,
		Change:     0.00,
		Items: []model.SaleItem{
			{Category: "Bebidas", Description: "Refrigerante", UnitPrice: 5.00, Quantity: 2, Subtotal: 10.00},
			{Category: "Lanches", Description: "Sanduíche", UnitPrice: 45.00, Quantity: 2, Subtotal: 90.00},
		},
		Payments: []model.SalePayment{
			{Method: "dinheiro", AmountPaid: 100.00},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, saleID)

	detail, err := env.SaleService.GetDetail(ctx, saleID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusFinalizada, detail.Status)
	assert.Equal(t, 100.00, detail.GrossTotal)
	assert.Len(t, detail.Items, 2)
	assert.Len(t, detail.Payments, 1)

	updated, err := env.SaleService.UpdateStatus(ctx, saleID, "Cancelada")
	require.NoError(t, err)
	assert.Equal(t, "Cancelada", updated.Status)

	err = env.SaleService.Delete(ctx, saleID)
	require.NoError(t, err)

	_, err = env.SaleService.GetDetail(ctx, saleID)
	assert.ErrorIs(t, err, services.ErrSaleNotFound)

	var itemCount, paymentCount int64
	env.DB.Read(ctx).Model(&repository.SaleItemEntity{}).Count(&itemCount)
	env.DB.Read(ctx).Model(&repository.SalePaymentEntity{}).Count(&paymentCount)
	assert.Equal(t, int64(0), itemCount)
	assert.Equal(t, int64(0), paymentCount)
}

func TestE2E_SaleCreationOverHTTP(t *testing.T) {
	env := setupE2EEnvironment(t)

	body := []byte(`{
		"valorTotalBruto": 57.50,
		"valorPagoTotal": 60.00,
		"valorTroco": 2.50,
		"itens": [
			{"categoria": "Bebidas", "descricaoItem": "Suco", "precoUnitario": 7.50, "quantidade": 1, "subtotal": 7.50},
			{"categoria": "Pratos", "descricaoItem": "Prato do dia", "precoUnitario": 25.00, "quantidade": 2, "subtotal": 50.00}
		],
		"pagamentos": [
			{"metodo": "dinheiro", "valorPago": 60.00}
		]
	}`)

	ctx := newRequestCtx("POST", "/vendas", body)
	env.SaleHandler.CreateSale(ctx)

	require.Equal(t, 201, ctx.Response.StatusCode())

	var created map[string]interface{}
	err := json.Unmarshal(ctx.Response.Body(), &created)
	require.NoError(t, err)
	assert.Equal(t, "Venda criada com sucesso", created["mensagem"])

	saleID := int64(created["idVenda"].(float64))
	require.NotZero(t, saleID)

	detail, err := env.SaleService.GetDetail(context.Background(), saleID)
	require.NoError(t, err)
	assert.Equal(t, 57.50, detail.GrossTotal)
	assert.Equal(t, 2.50, detail.Change)
	assert.Len(t, detail.Items, 2)
	assert.Equal(t, "Suco", detail.Items[0].Description)
	assert.Len(t, detail.Payments, 1)
	assert.Equal(t, "dinheiro", detail.Payments[0].Method)
}

func TestE2E_BatchDeleteSales(t *testing.T) {
	env := setupE2EEnvironment(t)
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 3; i++ {
		id, err := env.SaleService.Create(ctx, model.SaleCreateRequest{
			GrossTotal: 10.00,
			TotalPaid:  10.00,
			Payments:   []model.SalePayment{{Method: "dinheiro", AmountPaid: 10.00}},
		})
		require.NoError(t, err)
		ids = append(ids, id)
		time.Sleep(10 * time.Millisecond)
	}

	deleted, err := env.SaleService.DeleteBatch(ctx, []int64{ids[0], ids[1], 999999})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	sales, err := env.SaleService.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, ids[2], sales[0].ID)

	_, err = env.SaleService.DeleteBatch(ctx, nil)
	assert.ErrorIs(t, err, services.ErrNoSaleIDs)
}

func TestE2E_ProductLifecycle(t *testing.T) {
	env := setupE2EEnvironment(t)
	ctx := context.Background()

	product, err := env.ProductService.Create(ctx, model.ProductCreateRequest{
		Category:    "Bebidas",
		Description: "Refrigerante lata",
		Price:       5.00,
	})
	require.NoError(t, err)
	assert.True(t, product.Active)
	assert.Equal(t, model.DefaultItemType, product.ItemType)

	newPrice := 6.50
	updated, err := env.ProductService.Update(ctx, product.ID, model.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 6.50, updated.Price)
	assert.Equal(t, "Refrigerante lata", updated.Description)

	deactivated, err := env.ProductService.Deactivate(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.Active)

	products, err := env.ProductService.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestE2E_CompanyLifecycle(t *testing.T) {
	env := setupE2EEnvironment(t)
	ctx := context.Background()

	company, err := env.CompanyService.Create(ctx, model.CompanyCreateRequest{
		LegalName: "Padaria Central LTDA",
		TradeName: "Padaria Central",
		TaxID:     "12.345.678/0001-90",
		City:      "São Paulo",
		State:     "SP",
	})
	require.NoError(t, err)
	require.NotZero(t, company.ID)

	phone := "(11) 99999-0000"
	updated, err := env.CompanyService.Update(ctx, company.ID, model.CompanyUpdate{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "Padaria Central LTDA", updated.LegalName)

	err = env.CompanyService.Delete(ctx, company.ID)
	require.NoError(t, err)

	_, err = env.CompanyService.GetByID(ctx, company.ID)
	assert.ErrorIs(t, err, services.ErrCompanyNotFound)
}

package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ecaldeira/pdv-api/internal/config"
	"github.com/ecaldeira/pdv-api/internal/handlers"
	"github.com/ecaldeira/pdv-api/internal/repository"
	"github.com/ecaldeira/pdv-api/internal/services"
	xhttp "github.com/ecaldeira/pdv-api/pkg/http"
	"github.com/ecaldeira/pdv-api/pkg/logger"
	"github.com/ecaldeira/pdv-api/pkg/pg"
	"github.com/ecaldeira/pdv-api/pkg/prom"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {

	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	// transport (tcp for now)
	s := xhttp.NewServer(xhttp.DefaultServerOption)
	s.Server.ReadBufferSize = 1024 * 16
	s.Server.WriteBufferSize = 1024 * 16
	s.Use(xhttp.CompressMiddleware(6))
	s.Use(xhttp.TimeoutMiddleware(time.Second * 5))
	s.Use(xhttp.CORSMiddleware(config.Get().HttpCORSAllowOrigin))
	s.Use(xhttp.RequestIDMiddleware)
	s.Use(xhttp.RequestLoggerMiddleware)
	s.Use(xhttp.RecoverMiddleware)
	s.Router = xhttp.CreateDefaultRouter()

	readConf := pg.Config{
		User:     config.Get().PostgresReadUser,
		Host:     config.Get().PostgresReadHost,
		Port:     config.Get().PostgresReadPort,
		Password: config.Get().PostgresReadPassword,
		Database: config.Get().PostgresReadDatabase,
	}
	writeConf := pg.Config{
		User:     config.Get().PostgresWriteUser,
		Host:     config.Get().PostgresWriteHost,
		Port:     config.Get().PostgresWritePort,
		Password: config.Get().PostgresWritePassword,
		Database: config.Get().PostgresWriteDatabase,
	}

	pgDebug := false
	if config.Get().AppEnv == "dev" {
		pgDebug = true
	}
	db, err := pg.CreateReadWrite(readConf, writeConf, pgDebug)
	if err != nil {
		logger.Error("failed connecting to pg", "error", err)
		return
	}

	host, _ := os.Hostname()
	err = prom.Create(host, config.Get().AppEnv, config.Get().PromNamespace)
	if err != nil {
		logger.Error("failed creating metrics", "error", err)
	}
	if config.Get().AppDebugMetricsAddr != "" {
		go prom.ListenAndServer(config.Get().AppDebugMetricsAddr, config.Get().AppDebugMetricsURI)
	}

	saleRepo := repository.NewSaleRepository(db)
	productRepo := repository.NewProductRepository(db)
	companyRepo := repository.NewCompanyRepository(db)

	// services
	saleService := services.NewSaleService(saleRepo)
	productService := services.NewProductService(productRepo)
	companyService := services.NewCompanyService(companyRepo)
	healthService := services.NewHealthService()

	// handlers
	saleHandler := handlers.NewSaleHandler(saleService)
	productHandler := handlers.NewProductHandler(productService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	healthHandler := handlers.NewHealthHandler(healthService)

	handlers.RegisterSaleRoutes(s.Router, saleHandler)
	handlers.RegisterProductRoutes(s.Router, productHandler)
	handlers.RegisterCompanyRoutes(s.Router, companyHandler)
	handlers.RegisterHealthRoutes(s.Router, healthHandler)

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		var err = s.ListenAndServe(config.Get().HttpListenAddr)
		if err != nil {
			logger.Error("error in running http-server", "error", err)
		}
	}()

	<-c
	s.Shutdown()
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--env=") {
			s := strings.Split(v, "=")
			if _, err := os.Open(s[1]); err != nil {
				logger.Error("failed to open the passed env file, got error" + err.Error())
				return ""
			}
			return s[1]
		}
	}
	return ""
}

package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AuthorizationStatus represents the outcome of a card authorization
type AuthorizationStatus string

const (
	StatusApproved AuthorizationStatus = "APPROVED"
	StatusDeclined AuthorizationStatus = "DECLINED"
)

// AuthorizeRequest represents a card payment authorization request
type AuthorizeRequest struct {
	Amount     float64 `json:"valor" binding:"required"`
	Method     string  `json:"metodo" binding:"required"` // "credito" or "debito"
	CardNumber string  `json:"numeroCartao"`
	Holder     string  `json:"portador"`
}

// AuthorizeResponse represents the authorizer's answer
type AuthorizeResponse struct {
	Reference    string              `json:"referenciaMetodo"`
	Status       AuthorizationStatus `json:"status"`
	Amount       float64             `json:"valor"`
	AuthorizedAt *time.Time          `json:"autorizadoEm,omitempty"`
	ErrorCode    string              `json:"codigoErro,omitempty"`
	ErrorMsg     string              `json:"mensagemErro,omitempty"`
	AcquirerID   string              `json:"idAdquirente"`
	ProcessedAt  time.Time           `json:"processadoEm"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status       string    `json:"status"`
	AcquirerID   string    `json:"idAdquirente"`
	Timestamp    time.Time `json:"timestamp"`
	ApprovalRate float64   `json:"taxaAprovacao"`
}

// MockAcquirer simulates a card acquirer authorization service
type MockAcquirer struct {
	approvalRate float64
	minDelay     time.Duration
	maxDelay     time.Duration
	acquirerID   string
	rng          *rand.Rand
}

// NewMockAcquirer creates a new mock acquirer instance
func NewMockAcquirer(approvalRate float64, minDelay, maxDelay time.Duration) *MockAcquirer {
	return &MockAcquirer{
		approvalRate: approvalRate,
		minDelay:     minDelay,
		maxDelay:     maxDelay,
		acquirerID:   "MOCK_ACQUIRER_" + uuid.New().String()[:8],
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// authorize simulates the card authorization round trip
func (m *MockAcquirer) authorize(req *AuthorizeRequest) *AuthorizeResponse {
	delay := m.randomDelay()

	// debit authorizations clear faster than credit
	if req.Method == "debito" {
		delay = delay / 2
	}

	time.Sleep(delay)

	response := &AuthorizeResponse{
		Reference:   uuid.New().String(),
		Amount:      req.Amount,
		AcquirerID:  m.acquirerID,
		ProcessedAt: time.Now(),
	}

	if m.shouldApprove() {
		now := time.Now()
		response.Status = StatusApproved
		response.AuthorizedAt = &now

		log.Info().
			Str("reference", response.Reference).
			Float64("amount", req.Amount).
			Dur("delay", delay).
			Msg("payment authorized")
	} else {
		response.Status = StatusDeclined
		response.ErrorCode = m.randomErrorCode()
		response.ErrorMsg = m.errorMessage(response.ErrorCode)

		log.Warn().
			Str("reference", response.Reference).
			Float64("amount", req.Amount).
			Str("error_code", response.ErrorCode).
			Msg("payment declined")
	}

	return response
}

func (m *MockAcquirer) randomDelay() time.Duration {
	delta := m.maxDelay - m.minDelay
	randomDelta := time.Duration(m.rng.Int63n(int64(delta)))
	return m.minDelay + randomDelta
}

func (m *MockAcquirer) shouldApprove() bool {
	return m.rng.Float64() < m.approvalRate
}

func (m *MockAcquirer) randomErrorCode() string {
	errorCodes := []string{
		"INSUFFICIENT_FUNDS",
		"CARD_EXPIRED",
		"NETWORK_ERROR",
		"TIMEOUT",
		"CARD_BLOCKED",
		"ISSUER_REJECTED",
	}
	return errorCodes[m.rng.Intn(len(errorCodes))]
}

func (m *MockAcquirer) errorMessage(code string) string {
	messages := map[string]string{
		"INSUFFICIENT_FUNDS": "The card has no available balance",
		"CARD_EXPIRED":       "The card expiration date has passed",
		"NETWORK_ERROR":      "Network connectivity issue with the issuer",
		"TIMEOUT":            "Authorization timed out",
		"CARD_BLOCKED":       "The card is blocked by the issuer",
		"ISSUER_REJECTED":    "Issuer rejected the transaction",
	}

	if msg, ok := messages[code]; ok {
		return msg
	}
	return "Unknown error occurred"
}

// Handler struct holds the mock acquirer and routes
type Handler struct {
	acquirer *MockAcquirer
}

func NewHandler(acquirer *MockAcquirer) *Handler {
	return &Handler{acquirer: acquirer}
}

// Authorize handles card authorization requests
func (h *Handler) Authorize(c *gin.Context) {
	var req AuthorizeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	log.Info().
		Float64("amount", req.Amount).
		Str("method", req.Method).
		Msg("Received authorization request")

	response := h.acquirer.authorize(&req)

	statusCode := http.StatusOK
	if response.Status == StatusDeclined {
		statusCode = http.StatusUnprocessableEntity
	}

	c.JSON(statusCode, response)
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:       "healthy",
		AcquirerID:   h.acquirer.acquirerID,
		Timestamp:    time.Now(),
		ApprovalRate: h.acquirer.approvalRate,
	})
}

// UpdateConfig allows changing the approval rate at runtime
func (h *Handler) UpdateConfig(c *gin.Context) {
	var config struct {
		ApprovalRate *float64 `json:"taxaAprovacao"`
	}

	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	if config.ApprovalRate != nil {
		if *config.ApprovalRate >= 0 && *config.ApprovalRate <= 1.0 {
			h.acquirer.approvalRate = *config.ApprovalRate
			log.Info().Float64("rate", *config.ApprovalRate).Msg("Updated approval rate")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Configuration updated",
		"approval_rate": h.acquirer.approvalRate,
	})
}

// SetupRouter configures all routes
func SetupRouter(handler *Handler) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", duration).
			Msg("Request processed")
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/autorizar", handler.Authorize)
		v1.GET("/health", handler.HealthCheck)
		v1.PUT("/config", handler.UpdateConfig)
	}

	router.GET("/health", handler.HealthCheck)

	return router
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	port := getEnv("PORT", "8082")
	approvalRate := getEnvFloat("APPROVAL_RATE", 1)
	minDelay := getEnvDuration("MIN_DELAY", 100*time.Millisecond)
	maxDelay := getEnvDuration("MAX_DELAY", 1*time.Second)

	log.Info().
		Str("port", port).
		Float64("approval_rate", approvalRate).
		Dur("min_delay", minDelay).
		Dur("max_delay", maxDelay).
		Msg("Starting Mock Card Authorizer")

	acquirer := NewMockAcquirer(approvalRate, minDelay, maxDelay)
	handler := NewHandler(acquirer)
	router := SetupRouter(handler)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		var f float64
		if _, err := fmt.Sscanf(value, "%f", &f); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

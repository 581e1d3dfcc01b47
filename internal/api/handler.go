// Package api exposes the generation pipeline over HTTP.
package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iPascal619/python-project-generator/internal/config"
	"github.com/iPascal619/python-project-generator/internal/errs"
	"github.com/iPascal619/python-project-generator/internal/generator"
)

// Handler serves the HTTP surface around the pipeline. Requests run
// synchronously: the response carries the terminal run record.
type Handler struct {
	generator *generator.Generator
	cfg       *config.Config
	logger    *slog.Logger
}

// NewHandler creates a handler around a wired generator.
func NewHandler(gen *generator.Generator, cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		generator: gen,
		cfg:       cfg,
		logger:    logger,
	}
}

// GenerateRequest is the POST /api/v1/generate body. Every field is
// optional; unset fields fall back to the configured defaults. The
// temperature is a pointer because zero is a valid sampling value.
type GenerateRequest struct {
	ProjectType string   `json:"project_type"`
	Difficulty  string   `json:"difficulty"`
	ProjectName string   `json:"project_name"`
	MaxTokens   int      `json:"max_tokens"`
	Temperature *float32 `json:"temperature"`
	GitInit     bool     `json:"git_init"`
}

// HandleGenerate runs one generation and answers with the run record. An
// empty body is treated as a request for all defaults.
func (h *Handler) HandleGenerate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := generator.Params{
		ProjectType: req.ProjectType,
		Difficulty:  req.Difficulty,
		Name:        req.ProjectName,
		MaxTokens:   h.cfg.MaxTokens,
		Temperature: float32(h.cfg.Temperature),
		GitInit:     req.GitInit,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = req.MaxTokens
	}
	if req.Temperature != nil {
		params.Temperature = *req.Temperature
	}

	logger := h.logger.With("request_id", c.GetString(requestIDKey))
	r, err := h.generator.Run(c.Request.Context(), params)
	if err != nil {
		logger.Error("generation failed",
			"run_id", r.ID, "kind", errs.KindOf(err).String(), "error", err)
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "run": r})
		return
	}

	logger.Info("generation completed", "run_id", r.ID, "dir", r.ProjectDir)
	c.JSON(http.StatusOK, r)
}

// HandleHealth answers liveness probes.
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "projgen",
	})
}

// statusFor maps pipeline error kinds onto HTTP statuses. Upstream
// trouble, transport or protocol, is the gateway's fault as far as the
// caller is concerned.
func statusFor(err error) int {
	switch errs.KindOf(err) {
	case errs.KindTransport, errs.KindProtocol:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// SetupRouter builds the gin engine with all routes registered.
func SetupRouter(handler *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())

	api := r.Group("/api/v1")
	{
		api.POST("/generate", handler.HandleGenerate)
	}

	r.GET("/health", handler.HandleHealth)

	return r
}

package handler

import (
	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/service"
	"quiz-forge/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ContentHandler handles content generation HTTP requests
type ContentHandler struct {
	service   service.ContentService
	validator *validation.Validator
	cache     domain.Cache // nil when running without Redis
}

// NewContentHandler creates a new ContentHandler instance
func NewContentHandler(service service.ContentService, cache domain.Cache) *ContentHandler {
	return &ContentHandler{
		service:   service,
		validator: validation.NewValidator(),
		cache:     cache,
	}
}

// Generate godoc
// @Summary Generate assignments and quiz questions
// @Description Turns free-form text into essay prompts and multiple-choice questions
// @Tags content
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Generation Request"
// @Success 200 {object} dto.GenerateResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate [post]
func (h *ContentHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be valid JSON")
	}

	if errs := h.validator.ValidateGenerateRequest(req.Text); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.Generate(c.Context(), &req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetSampleText godoc
// @Summary Get the built-in sample text
// @Description Returns a fixed paragraph users can generate from without supplying a document
// @Tags content
// @Produce json
// @Success 200 {object} dto.SampleResponse
// @Router /sample [get]
func (h *ContentHandler) GetSampleText(c *fiber.Ctx) error {
	return c.JSON(dto.SampleResponse{Text: domain.SampleText})
}

// Health godoc
// @Summary Health check
// @Description Reports service health and, when configured, cache reachability
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *ContentHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok"}
	if h.cache != nil {
		if err := h.cache.Ping(c.Context()); err != nil {
			resp.Cache = "unreachable"
		} else {
			resp.Cache = "ok"
		}
	}
	return c.JSON(resp)
}

package suggest

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/creatorstack/titlegen/internal/errors"
	"github.com/creatorstack/titlegen/internal/gemini"
	"github.com/creatorstack/titlegen/internal/logger"
	"github.com/creatorstack/titlegen/internal/metrics"
)

const (
	endpointInternal = "internal"
	endpointPublic   = "public"
)

// Handler handles HTTP requests for title suggestions.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new suggestion handler.
func NewHandler(service *Service, logger *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// bindRequest parses and validates the request body. A missing description
// cannot produce a meaningful prompt, so it is rejected up front.
func (h *Handler) bindRequest(c *gin.Context, endpoint string) (SuggestionRequest, bool) {
	var req SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.CountRequest(endpoint, http.StatusBadRequest)
		errors.BadRequest(c, "Invalid request body: "+err.Error())
		return req, false
	}

	if strings.TrimSpace(req.Description) == "" {
		metrics.CountRequest(endpoint, http.StatusBadRequest)
		errors.BadRequest(c, "Missing required field 'description'")
		return req, false
	}

	return req, true
}

// SuggestInternal handles POST /api/suggest.
//
// The internal endpoint is lenient: the raw parsed model JSON passes through
// as-is, and non-JSON output degrades to a plain-text 200 so the bundled UI
// can inspect what the model actually said.
func (h *Handler) SuggestInternal(c *gin.Context) {
	log := h.logger.WithContext(c.Request.Context()).WithComponent("suggest_handler")

	req, ok := h.bindRequest(c, endpointInternal)
	if !ok {
		return
	}

	outcome, err := h.service.Suggest(c.Request.Context(), req)
	if err != nil {
		log.LogError(c.Request.Context(), err, "suggestion pipeline failed")
		metrics.CountRequest(endpointInternal, http.StatusInternalServerError)
		errors.Internal(c, err.Error())
		return
	}

	if !outcome.Parsed {
		metrics.CountRequest(endpointInternal, http.StatusOK)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(outcome.RawText))
		return
	}

	metrics.CountRequest(endpointInternal, http.StatusOK)
	c.JSON(http.StatusOK, outcome.Payload)
}

// SuggestPublic handles POST /api/public/titles.
//
// The public endpoint is strict: callers get either a normalized title list
// with metadata, or a typed error with the offending payload attached.
func (h *Handler) SuggestPublic(c *gin.Context) {
	log := h.logger.WithContext(c.Request.Context()).WithComponent("suggest_handler")

	req, ok := h.bindRequest(c, endpointPublic)
	if !ok {
		return
	}

	outcome, err := h.service.Suggest(c.Request.Context(), req)
	if err != nil {
		log.LogError(c.Request.Context(), err, "suggestion pipeline failed")
		metrics.CountRequest(endpointPublic, http.StatusInternalServerError)
		if stderrors.Is(err, gemini.ErrMissingAPIKey) {
			errors.Internal(c, gemini.ErrMissingAPIKey.Error())
			return
		}
		errors.Internal(c, err.Error())
		return
	}

	if !outcome.Parsed {
		metrics.CountRequest(endpointPublic, http.StatusBadGateway)
		errors.BadGateway(c, "Model returned non-JSON output", outcome.RawText)
		return
	}

	if len(outcome.Titles) == 0 {
		metrics.CountRequest(endpointPublic, http.StatusBadGateway)
		errors.BadGateway(c, "No titles produced", outcome.Payload)
		return
	}

	metrics.CountRequest(endpointPublic, http.StatusOK)
	metrics.TitlesReturned.Observe(float64(len(outcome.Titles)))
	c.JSON(http.StatusOK, SuggestionResult{
		Titles: outcome.Titles,
		Meta: Meta{
			Count:     len(outcome.Titles),
			MaxLength: MaxTitleLength,
			Model:     h.service.Model(),
		},
	})
}

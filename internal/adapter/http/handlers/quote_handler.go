package handlers

import (
	"errors"
	"net/http"

	request "decormitra/internal/adapter/http/dto/request"
	response "decormitra/internal/adapter/http/dto/response"
	"decormitra/internal/domain/pricing"
	"decormitra/internal/usecase"
	"decormitra/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles price estimate requests.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote computes a price estimate from the questionnaire.
//
// An internal engine fault never surfaces as a 5xx: the visitor is shown the
// static fallback band instead, flagged so the frontend can soften the copy.
//
// @Summary      Compute a price estimate
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload  body      request.QuoteRequest  true  "Questionnaire"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     ApiKeyAuth
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.EstimateQuote(c.Request.Context(), payload.ToQuestionnaire(), payload.PersonaID)
	if err != nil {
		if errors.Is(err, usecase.ErrEstimateUnavailable) {
			c.JSON(http.StatusOK, response.FallbackQuote(pricing.FallbackPriceRange))
			return
		}
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ListPersonas returns the persona catalog.
//
// @Summary      List design personas
// @Tags         quotes
// @Produce      json
// @Success      200  {array}  response.PersonaResponse
// @Security     ApiKeyAuth
// @Router       /personas [get]
func (h *QuoteHandler) ListPersonas(c *gin.Context) {
	personas := h.usecase.ListPersonas(c.Request.Context())
	c.JSON(http.StatusOK, response.FromPersonas(personas))
}

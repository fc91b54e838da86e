package handlers

import (
	"errors"
	"net/http"

	request "decormitra/internal/adapter/http/dto/request"
	response "decormitra/internal/adapter/http/dto/response"
	"decormitra/internal/adapter/http/middleware"
	"decormitra/internal/usecase"
	"decormitra/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)
	errMissingClient      = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing client identity", http.StatusUnauthorized)
)

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// CreateLead captures a lead for the authenticated client.
//
// @Summary      Capture a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LeadRequest  true  "Lead"
// @Success      201      {object}  response.LeadResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     ApiKeyAuth
// @Router       /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	clientID, ok := middleware.ClientID(c)
	if !ok {
		c.JSON(errMissingClient.HTTPStatus, errMissingClient.ToHTTPError())
		return
	}

	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.CaptureLead(c.Request.Context(), clientID, payload.ToLead())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLead(lead))
}

// ListLeads returns the authenticated client's leads.
//
// @Summary      List captured leads
// @Tags         leads
// @Produce      json
// @Success      200  {array}  response.LeadResponse
// @Security     ApiKeyAuth
// @Router       /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	clientID, ok := middleware.ClientID(c)
	if !ok {
		c.JSON(errMissingClient.HTTPStatus, errMissingClient.ToHTTPError())
		return
	}

	leads, err := h.usecase.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLeads(leads))
}

// GetLead returns one lead by id, scoped to the authenticated client.
//
// @Summary      Get a lead by id
// @Tags         leads
// @Produce      json
// @Param        id   path      string  true  "Lead ID"
// @Success      200  {object}  response.LeadResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     ApiKeyAuth
// @Router       /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	clientID, ok := middleware.ClientID(c)
	if !ok {
		c.JSON(errMissingClient.HTTPStatus, errMissingClient.ToHTTPError())
		return
	}

	lead, err := h.usecase.GetByID(c.Request.Context(), clientID, c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadName):
		return pkg.NewDomainError("INVALID_LEAD_NAME", "Lead name is required", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLeadID):
		return pkg.NewDomainError("INVALID_LEAD_ID", "Lead id is required", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainError("UNAUTHORIZED", "Missing client identity", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainError("LEAD_NOT_FOUND", "Lead not found", err, http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"net/http"

	request "decormitra/internal/adapter/http/dto/request"
	response "decormitra/internal/adapter/http/dto/response"
	"decormitra/internal/usecase"
	"decormitra/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPincodeQuery = pkg.NewDomainErrorSimple("INVALID_PINCODE", "Pincode must be a 6-digit number", http.StatusBadRequest)

type ServiceabilityHandler struct {
	usecase usecase.IServiceabilityUseCase
}

func NewServiceabilityHandler(uc usecase.IServiceabilityUseCase) *ServiceabilityHandler {
	return &ServiceabilityHandler{usecase: uc}
}

// CheckServiceability reports coverage for a pincode and service category.
//
// @Summary      Check service coverage for a pincode
// @Tags         serviceability
// @Produce      json
// @Param        pincode   query     string  true   "6-digit pincode"
// @Param        category  query     string  false  "Service category"
// @Success      200       {object}  response.ServiceabilityResponse
// @Failure      400       {object}  pkg.HTTPError
// @Security     ApiKeyAuth
// @Router       /serviceability [get]
func (h *ServiceabilityHandler) CheckServiceability(c *gin.Context) {
	var query request.ServiceabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidPincodeQuery.HTTPStatus, errInvalidPincodeQuery.ToHTTPError())
		return
	}

	result, err := h.usecase.CheckServiceability(c.Request.Context(), query.Pincode, query.Category)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPincode) {
			c.JSON(errInvalidPincodeQuery.HTTPStatus, errInvalidPincodeQuery.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceArea(result))
}

package handler

import (
	"net/http"

	"github.com/giatrungnguyen-lgtm/dropship333/internal/apierror"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PriceLookupHandler serves the public price check endpoint.
// No authentication required, no side effects.
type PriceLookupHandler struct{ svc service.ProductService }

func NewPriceLookupHandler(svc service.ProductService) *PriceLookupHandler {
	return &PriceLookupHandler{svc: svc}
}

// Get godoc
// @Summary      Public retail price lookup
// @Tags         price
// @Produce      json
// @Param        product_id path string true "Product UUID"
// @Success      200 {object} dto.PriceCheckResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/price/{product_id} [get]
func (h *PriceLookupHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid product id"))
		return
	}
	resp, svcErr := h.svc.PriceCheck(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

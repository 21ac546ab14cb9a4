package handler

import (
	"net/http"

	"github.com/giatrungnguyen-lgtm/dropship333/internal/apierror"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct{ svc service.AnalyticsService }

func NewAnalyticsHandler(svc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Summary godoc
// @Summary      Order analytics
// @Description  Success and return rates, sold item total, top product leaderboard and status distribution. Recomputed from the order collection on every call.
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.AnalyticsResponse
// @Router       /v1/analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to compute analytics"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Finance godoc
// @Summary      Financial overview
// @Description  Wallet balance, total revenue, pending profit and the delivered-order daily series.
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.FinanceResponse
// @Router       /v1/analytics/finance [get]
func (h *AnalyticsHandler) Finance(c *gin.Context) {
	resp, err := h.svc.Finance(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to compute finance overview"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

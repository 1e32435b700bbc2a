package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sustainlite/sustainlite-api/internal/core/ports"
)

type InsightHandler struct {
	service ports.InsightService
}

func NewInsightHandler(service ports.InsightService) *InsightHandler {
	return &InsightHandler{service: service}
}

// Dashboard godoc
// @Summary      Dashboard summary of the caller's activities
// @Tags         insights
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/dashboard [get]
func (h *InsightHandler) Dashboard(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Dashboard(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDashboardResponse(stats))
}

// Recommendations godoc
// @Summary      Rule-based recommendations
// @Tags         insights
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  recommendationsResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/recommendations [get]
func (h *InsightHandler) Recommendations(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	recs, err := h.service.Recommendations(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRecommendationsResponse(recs))
}

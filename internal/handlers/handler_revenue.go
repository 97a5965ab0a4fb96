package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kasa-app/kasa_backend/internal/apperrors"
	portssvc "github.com/kasa-app/kasa_backend/internal/core/ports/services"
	"github.com/kasa-app/kasa_backend/internal/dto"
	"github.com/kasa-app/kasa_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// revenueHandler handles HTTP requests for takings entries.
type revenueHandler struct {
	revenueService portssvc.RevenueSvcFacade
}

func newRevenueHandler(rs portssvc.RevenueSvcFacade) *revenueHandler {
	return &revenueHandler{revenueService: rs}
}

// registerRevenueRoutes registers routes related to takings entries.
func registerRevenueRoutes(rg *gin.RouterGroup, revenueService portssvc.RevenueSvcFacade) {
	h := newRevenueHandler(revenueService)

	revenues := rg.Group("/revenues")
	{
		revenues.POST("", h.createRevenue)
		revenues.GET("", h.listRevenues)
		revenues.PUT("/:id", h.updateRevenue)
		revenues.DELETE("/:id", h.deleteRevenue)
	}
}

// createRevenue godoc
// @Summary Record takings
// @Description Records a day's takings for a channel. The delivery fee split is computed server-side.
// @Tags revenues
// @Accept json
// @Produce json
// @Param revenue body dto.CreateRevenueRequest true "Revenue details"
// @Success 201 {object} dto.RevenueResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /revenues [post]
func (h *revenueHandler) createRevenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateRevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	revenue, err := h.revenueService.CreateRevenue(c.Request.Context(), accountID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create revenue", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record revenue"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToRevenueResponse(revenue))
}

// listRevenues godoc
// @Summary List takings
// @Description Lists takings entries in a date range, defaulting to the last 30 days.
// @Tags revenues
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.RevenueResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /revenues [get]
func (h *revenueHandler) listRevenues(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	from, to, err := resolveDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	revenues, err := h.revenueService.ListRevenues(c.Request.Context(), accountID, from, to)
	if err != nil {
		logger.Error("Failed to list revenues", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list revenues"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRevenueListResponse(revenues))
}

// updateRevenue godoc
// @Summary Update a takings entry
// @Description Edits a takings entry. The fee split is recomputed from the new amount and channel.
// @Tags revenues
// @Accept json
// @Produce json
// @Param id path string true "Revenue ID"
// @Param revenue body dto.UpdateRevenueRequest true "Fields to update"
// @Success 200 {object} dto.RevenueResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /revenues/{id} [put]
func (h *revenueHandler) updateRevenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateRevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	revenue, err := h.revenueService.UpdateRevenue(c.Request.Context(), accountID, c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Revenue not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update revenue", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update revenue"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRevenueResponse(revenue))
}

// deleteRevenue godoc
// @Summary Delete a takings entry
// @Tags revenues
// @Produce json
// @Param id path string true "Revenue ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /revenues/{id} [delete]
func (h *revenueHandler) deleteRevenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.revenueService.DeleteRevenue(c.Request.Context(), accountID, c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Revenue not found"})
			return
		}
		logger.Error("Failed to delete revenue", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete revenue"})
		return
	}

	c.Status(http.StatusNoContent)
}

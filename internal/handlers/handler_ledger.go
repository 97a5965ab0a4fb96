package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/kasa-app/kasa_backend/internal/core/ports/services"
	"github.com/kasa-app/kasa_backend/internal/dto"
	"github.com/kasa-app/kasa_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// defaultLedgerRangeDays is the window shown when no range is requested.
const defaultLedgerRangeDays = 30

// ledgerHandler handles HTTP requests for the daily cash ledger.
type ledgerHandler struct {
	ledgerService   portssvc.LedgerSvcFacade
	settingsService portssvc.SettingsSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade, ss portssvc.SettingsSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls, settingsService: ss}
}

// registerLedgerRoutes registers the daily ledger route.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, settingsService portssvc.SettingsSvcFacade) {
	h := newLedgerHandler(ledgerService, settingsService)

	rg.GET("/ledger", h.getDailyLedger)
}

// getDailyLedger godoc
// @Summary Get the daily cash ledger
// @Description Returns one row per calendar day in the requested range, with income, cash expenses, VAT, and the running cash balance. Defaults to the last 30 days.
// @Tags ledger
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.DailyLedgerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger [get]
func (h *ledgerHandler) getDailyLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var query dto.DailyLedgerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	from, to, err := resolveDateRange(query.From, query.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	rows, err := h.ledgerService.GetDailyLedger(c.Request.Context(), accountID, from, to)
	if err != nil {
		logger.Error("Failed to build daily ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build ledger"})
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), accountID)
	if err != nil {
		logger.Error("Failed to get settings for ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build ledger"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyLedgerResponse(settings.Currency, rows))
}

// resolveDateRange parses the optional from/to query values. Missing
// bounds default to the last defaultLedgerRangeDays days ending today.
func resolveDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -defaultLedgerRangeDays+1)

	var err error
	if fromStr != "" {
		from, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, errInvalidDateRange
		}
	}
	if toStr != "" {
		to, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			return time.Time{}, time.Time{}, errInvalidDateRange
		}
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errInvalidDateRange
	}
	return from, to, nil
}

var errInvalidDateRange = errors.New("invalid date range: dates must be YYYY-MM-DD and from must not be after to")

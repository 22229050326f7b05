package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gestock/gestock-api/internal/application/alerts"
	"github.com/gestock/gestock-api/internal/application/analytics"
	"github.com/gestock/gestock-api/internal/application/dto"
)

// AnalyticsHandler maneja los resúmenes derivados y las alertas de stock.
type AnalyticsHandler struct {
	summaries *analytics.SummaryUseCase
	alerts    *alerts.UseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(summaries *analytics.SummaryUseCase, alertsUC *alerts.UseCase) *AnalyticsHandler {
	return &AnalyticsHandler{summaries: summaries, alerts: alertsUC}
}

// summaryDate lee el query param "date" (YYYY-MM-DD); ausente = hoy.
func summaryDate(c *fiber.Ctx) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Daily godoc
// @Summary      Resumen diario de movimientos
// @Tags         summaries
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Día (YYYY-MM-DD); por defecto hoy"
// @Success      200  {object}  dto.DailySummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/summaries/daily [get]
func (h *AnalyticsHandler) Daily(c *fiber.Ctx) error {
	date, ok := summaryDate(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "date inválida (YYYY-MM-DD)"})
	}
	s, err := h.summaries.Daily(c.Context(), date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromDailySummary(*s))
}

// Weekly godoc
// @Summary      Resumen semanal con desglose de 7 días
// @Tags         summaries
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Cualquier día de la semana (YYYY-MM-DD); por defecto hoy"
// @Success      200  {object}  dto.WeeklySummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/summaries/weekly [get]
func (h *AnalyticsHandler) Weekly(c *fiber.Ctx) error {
	date, ok := summaryDate(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "date inválida (YYYY-MM-DD)"})
	}
	s, err := h.summaries.Weekly(c.Context(), date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromWeeklySummary(*s))
}

// Alerts godoc
// @Summary      Alertas de stock bajo, ordenadas por urgencia
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StockAlertResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *AnalyticsHandler) Alerts(c *fiber.Ctx) error {
	list, err := h.alerts.ComputeAlerts(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromStockAlerts(list))
}

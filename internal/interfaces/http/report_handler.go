package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gestock/gestock-api/internal/application/alerts"
	"github.com/gestock/gestock-api/internal/application/analytics"
	"github.com/gestock/gestock-api/internal/application/dto"
	"github.com/gestock/gestock-api/internal/infrastructure/pdf"
)

// ReportHandler sirve los reportes PDF (diario, semanal, alertas).
type ReportHandler struct {
	summaries *analytics.SummaryUseCase
	alerts    *alerts.UseCase
	generator *pdf.MarotoReportGenerator
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(
	summaries *analytics.SummaryUseCase,
	alertsUC *alerts.UseCase,
	generator *pdf.MarotoReportGenerator,
) *ReportHandler {
	return &ReportHandler{summaries: summaries, alerts: alertsUC, generator: generator}
}

func servePDF(c *fiber.Ctx, filename string, doc []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(doc)
}

// Daily godoc
// @Summary      Reporte PDF del resumen diario
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        date  query  string  false  "Día (YYYY-MM-DD); por defecto hoy"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	date, ok := summaryDate(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "date inválida (YYYY-MM-DD)"})
	}
	s, err := h.summaries.Daily(c.Context(), date)
	if err != nil {
		return writeError(c, err)
	}
	doc, err := h.generator.DailyReport(s)
	if err != nil {
		return writeError(c, err)
	}
	return servePDF(c, "rapport-journalier-"+s.Date.Format("2006-01-02")+".pdf", doc)
}

// Weekly godoc
// @Summary      Reporte PDF del resumen semanal
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        date  query  string  false  "Cualquier día de la semana (YYYY-MM-DD); por defecto hoy"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/weekly [get]
func (h *ReportHandler) Weekly(c *fiber.Ctx) error {
	date, ok := summaryDate(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "date inválida (YYYY-MM-DD)"})
	}
	s, err := h.summaries.Weekly(c.Context(), date)
	if err != nil {
		return writeError(c, err)
	}
	doc, err := h.generator.WeeklyReport(s)
	if err != nil {
		return writeError(c, err)
	}
	return servePDF(c, "rapport-hebdomadaire-"+s.WeekStart.Format("2006-01-02")+".pdf", doc)
}

// Alerts godoc
// @Summary      Reporte PDF de alertas de stock bajo
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/alerts [get]
func (h *ReportHandler) Alerts(c *fiber.Ctx) error {
	list, err := h.alerts.ComputeAlerts(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	doc, err := h.generator.AlertReport(list)
	if err != nil {
		return writeError(c, err)
	}
	return servePDF(c, "alertes-stock.pdf", doc)
}

// Package pdf implementa la generación de los reportes PDF de la consola de
// inventario usando Maroto v2.
//
// Layout de la página A4 (reporte diario/semanal):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Ventana de fechas            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA ENTRADAS: Fecha | Producto | Cant | Fournisseur/Réf   │
//	│  TABLA SALIDAS:  Fecha | Producto | Cant | Destinataire      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: total entradas / total salidas / cambio neto       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gestock/gestock-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 85, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 170, Green: 30, Blue: 30}
)

const dateFormat = "02/01/2006"

// MarotoReportGenerator genera los reportes de la consola con Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

// DailyReport genera el PDF del resumen diario.
func (g *MarotoReportGenerator) DailyReport(summary *entity.DailySummary) ([]byte, error) {
	m := newDocument("Rapport journalier")

	m.AddRows(headerRow("RAPPORT JOURNALIER", summary.Date.Format(dateFormat)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	addMovementSection(m, "ENTRÉES", summary.Entries, true)
	addMovementSection(m, "SORTIES", summary.Exits, false)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(summary.TotalEntriesQuantity, summary.TotalExitsQuantity, summary.NetChange()))

	return generate(m)
}

// WeeklyReport genera el PDF del resumen semanal con el desglose de 7 días.
func (g *MarotoReportGenerator) WeeklyReport(summary *entity.WeeklySummary) ([]byte, error) {
	m := newDocument("Rapport hebdomadaire")

	window := summary.WeekStart.Format(dateFormat) + " – " + summary.WeekEnd.Format(dateFormat)
	m.AddRows(headerRow("RAPPORT HEBDOMADAIRE", window))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Desglose por día: siempre 7 filas, lunes a domingo.
	m.AddRows(sectionTitleRow("RÉPARTITION PAR JOUR"))
	m.AddRows(breakdownHeaderRow())
	for _, d := range summary.DailyBreakdown {
		m.AddRows(breakdownRow(d))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(summary.TotalEntriesQuantity, summary.TotalExitsQuantity, summary.NetChange()))

	return generate(m)
}

// AlertReport genera el PDF de alertas de stock bajo, ya ordenadas por
// urgencia por el caso de uso.
func (g *MarotoReportGenerator) AlertReport(alerts []entity.StockAlert) ([]byte, error) {
	m := newDocument("Alertes de stock")

	m.AddRows(headerRow("ALERTES DE STOCK", fmt.Sprintf("%d produit(s)", len(alerts))))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(alertHeaderRow())
	for _, a := range alerts {
		m.AddRows(alertRow(a))
	}
	if len(alerts) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Aucune alerte : tous les stocks sont au-dessus du seuil.",
				props.Text{Size: 9, Color: colorGray, Top: 2}),
		)))
	}

	return generate(m)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y ventana de fechas (der).
func headerRow(title, window string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("GeStock", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(title, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(window, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 5,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

// addMovementSection agrega el título, cabecera y filas de una partición
// (entradas o salidas) del resumen.
func addMovementSection(m core.Maroto, title string, movements []entity.Movement, isEntry bool) {
	m.AddRows(sectionTitleRow(title))
	m.AddRows(movementHeaderRow(isEntry))
	for _, mv := range movements {
		m.AddRows(movementRow(mv, isEntry))
	}
	if len(movements) == 0 {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New("Aucun mouvement", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
		)))
	}
}

func movementHeaderRow(isEntry bool) core.Row {
	third := "Fournisseur"
	if !isEntry {
		third = "Destinataire"
	}
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Heure", 2, align.Left),
		h("Produit", 4, align.Left),
		h("Qté", 1, align.Center),
		h(third, 3, align.Left),
		h("Référence", 2, align.Left),
	)
}

func movementRow(m entity.Movement, isEntry bool) core.Row {
	third := m.Supplier
	reference := m.Reference
	if !isEntry {
		third = m.Receiver
		reference = m.Purpose
	}
	c := func(v string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(v, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(5).Add(
		c(m.Date.Format("02/01 15:04"), 2, align.Left),
		c(m.ProductName, 4, align.Left),
		c(fmt.Sprintf("%d", m.Quantity), 1, align.Center),
		c(third, 3, align.Left),
		c(reference, 2, align.Left),
	)
}

func breakdownHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Jour", 4, align.Left),
		h("Entrées", 2, align.Center),
		h("Qté entrées", 2, align.Center),
		h("Sorties", 2, align.Center),
		h("Qté sorties", 2, align.Center),
	)
}

func breakdownRow(d entity.DayBreakdown) core.Row {
	c := func(v string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(v, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(5).Add(
		c(d.Date.Format("Monday 02/01"), 4, align.Left),
		c(fmt.Sprintf("%d", d.EntriesCount), 2, align.Center),
		c(fmt.Sprintf("%d", d.EntriesQuantity), 2, align.Center),
		c(fmt.Sprintf("%d", d.ExitsCount), 2, align.Center),
		c(fmt.Sprintf("%d", d.ExitsQuantity), 2, align.Center),
	)
}

func alertHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Sévérité", 3, align.Left),
		h("Produit", 5, align.Left),
		h("Stock", 2, align.Center),
		h("Seuil", 2, align.Center),
	)
}

func alertRow(a entity.StockAlert) core.Row {
	severityColor := colorGray
	if a.Severity == entity.SeverityOutOfStock || a.Severity == entity.SeverityCritical {
		severityColor = colorDanger
	}
	return row.New(5).Add(
		col.New(3).Add(text.New(a.Severity, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: severityColor, Top: 1,
		})),
		col.New(5).Add(text.New(a.Name, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", a.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", a.StockAlertThreshold), props.Text{Size: 8, Align: align.Center, Top: 1})),
	)
}

// totalsRow: totales de la ventana y cambio neto (puede ser negativo).
func totalsRow(totalEntries, totalExits, net int) core.Row {
	netColor := colorPrimary
	if net < 0 {
		netColor = colorDanger
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	return row.New(10).Add(
		col.New(4).Add(
			label(fmt.Sprintf("Total entrées : %d", totalEntries)),
		),
		col.New(4).Add(
			label(fmt.Sprintf("Total sorties : %d", totalExits)),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Variation nette : %+d", net), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: netColor, Right: 1,
			}),
		),
	)
}

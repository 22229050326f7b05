package dto

import (
	"time"

	"github.com/gestock/gestock-api/internal/domain/entity"
)

// DailySummaryResponse salida de GET /api/summaries/daily.
type DailySummaryResponse struct {
	Date                 time.Time          `json:"date"`
	Entries              []MovementResponse `json:"entries"`
	Exits                []MovementResponse `json:"exits"`
	TotalEntriesQuantity int                `json:"total_entries_quantity"`
	TotalExitsQuantity   int                `json:"total_exits_quantity"`
	NetChange            int                `json:"net_change"`
}

// FromDailySummary mapea el agregado al DTO de salida.
func FromDailySummary(s entity.DailySummary) DailySummaryResponse {
	return DailySummaryResponse{
		Date:                 s.Date,
		Entries:              FromMovements(s.Entries),
		Exits:                FromMovements(s.Exits),
		TotalEntriesQuantity: s.TotalEntriesQuantity,
		TotalExitsQuantity:   s.TotalExitsQuantity,
		NetChange:            s.NetChange(),
	}
}

// DayBreakdownResponse un día del desglose semanal.
type DayBreakdownResponse struct {
	Date            time.Time `json:"date"`
	EntriesCount    int       `json:"entries_count"`
	EntriesQuantity int       `json:"entries_quantity"`
	ExitsCount      int       `json:"exits_count"`
	ExitsQuantity   int       `json:"exits_quantity"`
}

// WeeklySummaryResponse salida de GET /api/summaries/weekly.
// DailyBreakdown trae siempre 7 elementos, lunes a domingo.
type WeeklySummaryResponse struct {
	WeekStart            time.Time              `json:"week_start"`
	WeekEnd              time.Time              `json:"week_end"`
	Entries              []MovementResponse     `json:"entries"`
	Exits                []MovementResponse     `json:"exits"`
	TotalEntriesQuantity int                    `json:"total_entries_quantity"`
	TotalExitsQuantity   int                    `json:"total_exits_quantity"`
	NetChange            int                    `json:"net_change"`
	DailyBreakdown       []DayBreakdownResponse `json:"daily_breakdown"`
}

// FromWeeklySummary mapea el agregado semanal al DTO de salida.
func FromWeeklySummary(s entity.WeeklySummary) WeeklySummaryResponse {
	breakdown := make([]DayBreakdownResponse, 0, len(s.DailyBreakdown))
	for _, d := range s.DailyBreakdown {
		breakdown = append(breakdown, DayBreakdownResponse{
			Date:            d.Date,
			EntriesCount:    d.EntriesCount,
			EntriesQuantity: d.EntriesQuantity,
			ExitsCount:      d.ExitsCount,
			ExitsQuantity:   d.ExitsQuantity,
		})
	}
	return WeeklySummaryResponse{
		WeekStart:            s.WeekStart,
		WeekEnd:              s.WeekEnd,
		Entries:              FromMovements(s.Entries),
		Exits:                FromMovements(s.Exits),
		TotalEntriesQuantity: s.TotalEntriesQuantity,
		TotalExitsQuantity:   s.TotalExitsQuantity,
		NetChange:            s.NetChange(),
		DailyBreakdown:       breakdown,
	}
}

package entity

import "time"

// DailySummary es el agregado derivado de un día calendario. Se recalcula
// bajo demanda desde el libro de movimientos; nunca se persiste.
type DailySummary struct {
	Date                 time.Time
	Entries              []Movement
	Exits                []Movement
	TotalEntriesQuantity int
	TotalExitsQuantity   int
}

// NetChange devuelve el cambio neto del día (entradas menos salidas).
// Puede ser negativo.
func (s DailySummary) NetChange() int {
	return s.TotalEntriesQuantity - s.TotalExitsQuantity
}

// DayBreakdown son los conteos y cantidades de un solo día dentro del
// desglose semanal.
type DayBreakdown struct {
	Date            time.Time
	EntriesCount    int
	EntriesQuantity int
	ExitsCount      int
	ExitsQuantity   int
}

// WeeklySummary es el agregado derivado de una semana ISO (lunes a domingo).
// DailyBreakdown tiene siempre exactamente 7 elementos en orden cronológico,
// rellenos con ceros para los días sin movimientos.
type WeeklySummary struct {
	WeekStart            time.Time // lunes 00:00:00
	WeekEnd              time.Time // domingo 23:59:59
	Entries              []Movement
	Exits                []Movement
	TotalEntriesQuantity int
	TotalExitsQuantity   int
	DailyBreakdown       []DayBreakdown
}

// NetChange devuelve el cambio neto de la semana.
func (s WeeklySummary) NetChange() int {
	return s.TotalEntriesQuantity - s.TotalExitsQuantity
}

// Package analytics contiene el agregador de consumos derivados del libro de
// movimientos: resúmenes diarios y semanales recalculados bajo demanda.
package analytics

import (
	"context"
	"time"

	"github.com/gestock/gestock-api/internal/domain/entity"
	"github.com/gestock/gestock-api/internal/domain/movement"
	"github.com/gestock/gestock-api/internal/domain/repository"
)

// SummaryUseCase calcula los resúmenes diario y semanal. Determinista e
// idempotente: con el mismo estado del store devuelve el mismo resultado,
// sin efectos secundarios.
type SummaryUseCase struct {
	store repository.MovementStore
}

// NewSummaryUseCase construye el agregador.
func NewSummaryUseCase(store repository.MovementStore) *SummaryUseCase {
	return &SummaryUseCase{store: store}
}

// startOfDay devuelve las 00:00:00.000 del día calendario local de t.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay devuelve el último instante del día: 00:00 + 24h − 1ns.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

// weekStart devuelve el lunes 00:00:00 de la semana ISO que contiene t
// (la semana empieza en lunes).
func weekStart(t time.Time) time.Time {
	d := startOfDay(t)
	offset := (int(d.Weekday()) + 6) % 7 // lunes=0 ... domingo=6
	return d.AddDate(0, 0, -offset)
}

// Daily calcula el resumen del día calendario local de date: ventana
// inclusiva [00:00, 23:59:59.999...], partición por tipo y sumas enteras.
func (uc *SummaryUseCase) Daily(ctx context.Context, date time.Time) (*entity.DailySummary, error) {
	all, err := uc.store.All(ctx)
	if err != nil {
		return nil, err
	}

	start, end := startOfDay(date), endOfDay(date)
	entries, exits := partition(windowed(all, start, end))

	return &entity.DailySummary{
		Date:                 start,
		Entries:              entries,
		Exits:                exits,
		TotalEntriesQuantity: sumQuantities(entries),
		TotalExitsQuantity:   sumQuantities(exits),
	}, nil
}

// Weekly calcula el resumen de la semana ISO (lunes a domingo) que contiene
// date, con el desglose por día: siempre exactamente 7 elementos en orden
// cronológico, rellenos con ceros para los días sin movimientos.
func (uc *SummaryUseCase) Weekly(ctx context.Context, date time.Time) (*entity.WeeklySummary, error) {
	all, err := uc.store.All(ctx)
	if err != nil {
		return nil, err
	}

	start := weekStart(date)
	end := endOfDay(start.AddDate(0, 0, 6))
	week := movement.InWindow(all, start, end)

	breakdown := make([]entity.DayBreakdown, 0, 7)
	for i := 0; i < 7; i++ {
		dayStart := start.AddDate(0, 0, i)
		dayEntries, dayExits := partition(movement.InWindow(week, dayStart, endOfDay(dayStart)))
		breakdown = append(breakdown, entity.DayBreakdown{
			Date:            dayStart,
			EntriesCount:    len(dayEntries),
			EntriesQuantity: sumQuantities(dayEntries),
			ExitsCount:      len(dayExits),
			ExitsQuantity:   sumQuantities(dayExits),
		})
	}

	entries, exits := partition(windowed(all, start, end))
	return &entity.WeeklySummary{
		WeekStart:            start,
		WeekEnd:              end,
		Entries:              entries,
		Exits:                exits,
		TotalEntriesQuantity: sumQuantities(entries),
		TotalExitsQuantity:   sumQuantities(exits),
		DailyBreakdown:       breakdown,
	}, nil
}

// windowed filtra a la ventana [start, end] ordenando en fecha descendente
// (es lo que consumen la UI y los reportes).
func windowed(all []entity.Movement, start, end time.Time) []entity.Movement {
	return movement.Filter(all, movement.FilterSpec{StartDate: &start, EndDate: &end})
}

// partition separa entradas y salidas conservando el orden recibido.
// Las dos particiones son disjuntas y cubren todos los movimientos dados.
func partition(ms []entity.Movement) (entries, exits []entity.Movement) {
	entries = make([]entity.Movement, 0, len(ms))
	exits = make([]entity.Movement, 0, len(ms))
	for _, m := range ms {
		if m.IsEntry() {
			entries = append(entries, m)
		} else {
			exits = append(exits, m)
		}
	}
	return entries, exits
}

func sumQuantities(ms []entity.Movement) int {
	total := 0
	for _, m := range ms {
		total += m.Quantity
	}
	return total
}

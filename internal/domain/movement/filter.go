// Package movement contiene la lógica pura de filtrado del libro de
// movimientos. Sin estado y sin efectos: misma entrada, misma salida.
package movement

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/gestock/gestock-api/internal/domain/entity"
)

// FilterSpec describe los criterios de filtrado. Los campos presentes se
// combinan con AND; los ausentes/vacíos se ignoran (nunca "no coincide nada").
type FilterSpec struct {
	// Rango de fechas inclusivo sobre Date. Solo aplica si ambos están presentes.
	StartDate *time.Time
	EndDate   *time.Time
	// Coincidencia exacta de producto (0 = sin filtro).
	ProductID int
	// Coincidencia exacta de tipo (ENTREE / SORTIE).
	Type string
	// Subcadena sobre User O Receiver, sin distinguir mayúsculas ni acentos.
	User string
	// Subcadena sobre ProductName, Reference, Supplier o Notes (OR entre campos).
	SearchTerm string
}

// foldTransformer descompone, elimina marcas diacríticas y recompone.
// Los nombres de producto vienen con acentos ("Écrou", "Vis à bois") y la
// búsqueda debe encontrarlos escribiendo sin acentos.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold normaliza para comparación: sin acentos y en minúsculas.
func fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// containsFold informa si needle es subcadena de haystack ignorando
// mayúsculas y diacríticos.
func containsFold(haystack, needle string) bool {
	return strings.Contains(fold(haystack), fold(needle))
}

// Filter devuelve los movimientos que satisfacen spec, siempre ordenados por
// fecha descendente (más reciente primero), se haya aplicado filtro o no.
// El slice de entrada no se modifica.
func Filter(movements []entity.Movement, spec FilterSpec) []entity.Movement {
	result := make([]entity.Movement, 0, len(movements))
	for _, m := range movements {
		if matches(m, spec) {
			result = append(result, m)
		}
	}
	// Estable: empates de fecha conservan el orden de inserción del log.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result
}

func matches(m entity.Movement, spec FilterSpec) bool {
	if spec.StartDate != nil && spec.EndDate != nil {
		if m.Date.Before(*spec.StartDate) || m.Date.After(*spec.EndDate) {
			return false
		}
	}
	if spec.ProductID != 0 && m.ProductID != spec.ProductID {
		return false
	}
	if spec.Type != "" && m.Type != spec.Type {
		return false
	}
	if spec.User != "" {
		if !containsFold(m.User, spec.User) && !containsFold(m.Receiver, spec.User) {
			return false
		}
	}
	if spec.SearchTerm != "" {
		if !containsFold(m.ProductName, spec.SearchTerm) &&
			!containsFold(m.Reference, spec.SearchTerm) &&
			!containsFold(m.Supplier, spec.SearchTerm) &&
			!containsFold(m.Notes, spec.SearchTerm) {
			return false
		}
	}
	return true
}

// InWindow devuelve los movimientos cuya fecha cae en [start, end] inclusive,
// conservando el orden de inserción (sin reordenar). Lo usa el agregador,
// que particiona por tipo después.
func InWindow(movements []entity.Movement, start, end time.Time) []entity.Movement {
	result := make([]entity.Movement, 0)
	for _, m := range movements {
		if !m.Date.Before(start) && !m.Date.After(end) {
			result = append(result, m)
		}
	}
	return result
}

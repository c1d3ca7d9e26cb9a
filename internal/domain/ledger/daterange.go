package ledger

import (
	"fmt"
	"time"

	"github.com/stockflow/stockflow-api/internal/domain"
)

// DateRange ventana de fechas inclusiva con granularidad de día:
// From se expande a las 00:00:00.000 y To a las 23:59:59.999 locales.
// El valor cero (sin From ni To) significa "todo el tiempo".
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ParseDateRange construye la ventana desde parámetros YYYY-MM-DD opcionales.
// Cadena vacía = sin límite en ese extremo.
func ParseDateRange(fromStr, toStr string) (DateRange, error) {
	var r DateRange
	if fromStr != "" {
		d, err := time.ParseInLocation("2006-01-02", fromStr, time.Local)
		if err != nil {
			return r, fmt.Errorf("start_date %q no es una fecha YYYY-MM-DD: %w", fromStr, domain.ErrInvalidInput)
		}
		from := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
		r.From = &from
	}
	if toStr != "" {
		d, err := time.ParseInLocation("2006-01-02", toStr, time.Local)
		if err != nil {
			return r, fmt.Errorf("end_date %q no es una fecha YYYY-MM-DD: %w", toStr, domain.ErrInvalidInput)
		}
		to := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(999*time.Millisecond), time.Local)
		r.To = &to
	}
	return r, nil
}

// Contains indica si el instante cae dentro de la ventana (inclusiva).
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// IsZero indica ausencia de ventana (todo el tiempo).
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

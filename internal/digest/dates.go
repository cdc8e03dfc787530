package digest

import (
	"fmt"
	"time"
)

// Spanish calendar names. The standard library has no locale data and the
// header date is always rendered in Spanish.
var (
	weekdaysES = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	monthsES   = [...]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	}
)

// LongDate formats t as a Spanish long-form date, e.g.
// "lunes, 31 de agosto de 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		weekdaysES[t.Weekday()], t.Day(), monthsES[t.Month()-1], t.Year())
}

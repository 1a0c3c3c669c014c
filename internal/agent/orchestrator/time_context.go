package orchestrator

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// Date format
const (
	DateFormatISO = "2006-01-02"
	TimeFormat    = "15:04"
)

var weekdaysES = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

// buildTimeContext creates a temporal context string for LLM
func buildTimeContext(timezone string, now time.Time) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
		timezone = "UTC"
	}

	now = now.In(loc)
	tomorrow := now.AddDate(0, 0, 1)

	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format(DateFormatISO),
		weekdaysES[now.Weekday()],
		now.Format(TimeFormat),
		tomorrow.Format(DateFormatISO),
		timezone,
	)
}

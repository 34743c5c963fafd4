package reporting

import (
	"time"
)

// ValidateDateRange rejeita intervalos que a API não consegue atender:
// fim antes do início, início além da janela histórica retida e fim dentro
// do atraso de consolidação dos dados.
func ValidateDateRange(startDate, endDate, now time.Time, maxHistoryMonths, freshnessLagDays int) error {
	if endDate.Before(startDate) {
		return &RangeError{Err: ErrEndBeforeStart, StartDate: startDate, EndDate: endDate}
	}

	// A janela histórica é contada a partir do primeiro dia do mês limite,
	// para que um mês parcialmente dentro da janela continue consultável.
	horizon := now.AddDate(0, -maxHistoryMonths, 0)
	oldestAllowed := time.Date(horizon.Year(), horizon.Month(), 1, 0, 0, 0, 0, time.UTC)
	if startDate.Before(oldestAllowed) {
		return &RangeError{Err: ErrBeyondHistoryWindow, StartDate: startDate, EndDate: endDate}
	}

	freshest := now.AddDate(0, 0, -freshnessLagDays)
	freshestDay := time.Date(freshest.Year(), freshest.Month(), freshest.Day(), 0, 0, 0, 0, time.UTC)
	if endDate.After(freshestDay) {
		return &RangeError{Err: ErrWithinFreshnessLag, StartDate: startDate, EndDate: endDate}
	}

	return nil
}

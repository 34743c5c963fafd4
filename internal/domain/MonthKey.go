package domain

import (
	"fmt"
	"time"
)

// PeriodFormat é o formato textual de um período mensal (mm-yyyy)
const PeriodFormat = "01-2006"

// MonthKey identifica um mês de calendário (ano + mês) usado como chave de
// agrupamento e de alinhamento entre períodos
type MonthKey struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// MonthKeyOf extrai a chave mensal de uma data
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// ParseMonthKey converte um período no formato mm-yyyy para MonthKey
func ParseMonthKey(period string) (MonthKey, error) {
	t, err := time.Parse(PeriodFormat, period)
	if err != nil {
		return MonthKey{}, fmt.Errorf("período inválido %q: %w", period, err)
	}
	return MonthKeyOf(t), nil
}

// Next retorna o mês seguinte
func (k MonthKey) Next() MonthKey {
	return k.AddMonths(1)
}

// Prev retorna o mês anterior
func (k MonthKey) Prev() MonthKey {
	return k.AddMonths(-1)
}

// AddMonths desloca a chave em n meses (n pode ser negativo)
func (k MonthKey) AddMonths(n int) MonthKey {
	t := time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return MonthKeyOf(t)
}

// Before define a ordenação total entre chaves mensais
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// StartDate retorna o primeiro dia do mês
func (k MonthKey) StartDate() time.Time {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC)
}

// EndDate retorna o último dia do mês
func (k MonthKey) EndDate() time.Time {
	return k.Next().StartDate().AddDate(0, 0, -1)
}

// IsZero indica se a chave não foi preenchida
func (k MonthKey) IsZero() bool {
	return k.Year == 0 && k.Month == 0
}

// String formata a chave no formato de período mm-yyyy
func (k MonthKey) String() string {
	return fmt.Sprintf("%02d-%04d", int(k.Month), k.Year)
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthKey_NextPrev(t *testing.T) {
	tests := []struct {
		name     string
		key      MonthKey
		expected MonthKey
		advance  func(MonthKey) MonthKey
	}{
		{
			name:     "Next dentro do mesmo ano",
			key:      MonthKey{Year: 2024, Month: time.March},
			expected: MonthKey{Year: 2024, Month: time.April},
			advance:  MonthKey.Next,
		},
		{
			name:     "Next atravessa a virada do ano",
			key:      MonthKey{Year: 2023, Month: time.December},
			expected: MonthKey{Year: 2024, Month: time.January},
			advance:  MonthKey.Next,
		},
		{
			name:     "Prev atravessa a virada do ano",
			key:      MonthKey{Year: 2024, Month: time.January},
			expected: MonthKey{Year: 2023, Month: time.December},
			advance:  MonthKey.Prev,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.advance(tt.key))
		})
	}
}

func TestMonthKey_AddMonths(t *testing.T) {
	key := MonthKey{Year: 2024, Month: time.March}

	assert.Equal(t, MonthKey{Year: 2024, Month: time.June}, key.AddMonths(3))
	assert.Equal(t, MonthKey{Year: 2023, Month: time.November}, key.AddMonths(-4))
	assert.Equal(t, key, key.AddMonths(0))
}

func TestMonthKey_Datas(t *testing.T) {
	// Fevereiro de ano bissexto
	key := MonthKey{Year: 2024, Month: time.February}

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), key.StartDate())
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), key.EndDate())

	// Dezembro termina no dia 31 mesmo com a virada do ano
	december := MonthKey{Year: 2023, Month: time.December}
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), december.EndDate())
}

func TestMonthKey_ParseEString(t *testing.T) {
	key, err := ParseMonthKey("02-2024")
	assert.NoError(t, err)
	assert.Equal(t, MonthKey{Year: 2024, Month: time.February}, key)
	assert.Equal(t, "02-2024", key.String())

	_, err = ParseMonthKey("13-2024")
	assert.Error(t, err)

	_, err = ParseMonthKey("2024-02")
	assert.Error(t, err)
}

func TestMonthKey_Before(t *testing.T) {
	older := MonthKey{Year: 2023, Month: time.December}
	newer := MonthKey{Year: 2024, Month: time.January}

	assert.True(t, older.Before(newer))
	assert.False(t, newer.Before(older))
	assert.False(t, newer.Before(newer))
}

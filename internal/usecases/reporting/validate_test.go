package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateDateRange(t *testing.T) {
	now := time.Date(2024, 4, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		startDate time.Time
		endDate   time.Time
		expected  error
	}{
		{
			name:      "Intervalo fechado e consolidado é aceito",
			startDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			endDate:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			expected:  nil,
		},
		{
			name:      "Fim anterior ao início é rejeitado",
			startDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			endDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			expected:  ErrEndBeforeStart,
		},
		{
			name:      "Início além da janela histórica é rejeitado",
			startDate: time.Date(2022, 11, 1, 0, 0, 0, 0, time.UTC),
			endDate:   time.Date(2022, 11, 30, 0, 0, 0, 0, time.UTC),
			expected:  ErrBeyondHistoryWindow,
		},
		{
			name:      "Primeiro dia do mês limite ainda está na janela",
			startDate: time.Date(2022, 12, 1, 0, 0, 0, 0, time.UTC),
			endDate:   time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC),
			expected:  nil,
		},
		{
			name:      "Fim dentro do atraso de consolidação é rejeitado",
			startDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			endDate:   time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC),
			expected:  ErrWithinFreshnessLag,
		},
		{
			name:      "Fim exatamente no último dia consolidado é aceito",
			startDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			endDate:   time.Date(2024, 4, 12, 0, 0, 0, 0, time.UTC),
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDateRange(tt.startDate, tt.endDate, now, 16, 3)

			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.expected)

			var rangeErr *RangeError
			assert.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, tt.startDate, rangeErr.StartDate)
		})
	}
}

package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/search-insights-api/internal/domain"
)

func record(date string, page string, clicks, impressions, ctr, position float64) *domain.SearchRecord {
	parsed, _ := time.Parse(time.DateOnly, date)
	return &domain.SearchRecord{
		Date:        parsed,
		Page:        page,
		Clicks:      clicks,
		Impressions: impressions,
		CTR:         ctr,
		Position:    position,
	}
}

func TestAggregateByMonth(t *testing.T) {
	t.Run("CTR mensal recalculado a partir das somas, não da média das linhas", func(t *testing.T) {
		// CTRs por linha de 10% e 2%: a média simples seria 6%, mas o
		// correto é 100 * (5+5) / (50+100) = 6.67%
		records := []*domain.SearchRecord{
			record("2024-03-01", "", 5, 50, 10.0, 4.0),
			record("2024-03-02", "", 5, 100, 2.0, 6.0),
		}

		aggregates := AggregateByMonth(records, false)

		assert.Len(t, aggregates, 1)
		assert.Equal(t, domain.MonthKey{Year: 2024, Month: time.March}, aggregates[0].Month)
		assert.Equal(t, 10.0, aggregates[0].Clicks)
		assert.Equal(t, 150.0, aggregates[0].Impressions)
		assert.InDelta(t, 6.67, aggregates[0].CTR, 0.001)

		// Posição é média aritmética simples das linhas do grupo
		assert.Equal(t, 5.0, aggregates[0].Position)
	})

	t.Run("Impressões zeradas resultam em CTR zero sem divisão por zero", func(t *testing.T) {
		records := []*domain.SearchRecord{
			record("2024-03-01", "", 0, 0, 0, 0),
		}

		aggregates := AggregateByMonth(records, false)

		assert.Len(t, aggregates, 1)
		assert.Equal(t, 0.0, aggregates[0].CTR)
	})

	t.Run("Agrupamento por página separa os agregados do mesmo mês", func(t *testing.T) {
		records := []*domain.SearchRecord{
			record("2024-03-01", "/b", 1, 10, 10.0, 2.0),
			record("2024-03-02", "/a", 2, 20, 10.0, 4.0),
			record("2024-03-10", "/b", 3, 30, 10.0, 6.0),
		}

		aggregates := AggregateByMonth(records, true)

		assert.Len(t, aggregates, 2)

		// Ordenação determinística: mês ascendente, página ascendente
		assert.Equal(t, "/a", aggregates[0].Page)
		assert.Equal(t, "/b", aggregates[1].Page)
		assert.Equal(t, 4.0, aggregates[1].Clicks)
		assert.Equal(t, 4.0, aggregates[1].Position)
	})

	t.Run("Meses distintos geram agregados distintos", func(t *testing.T) {
		records := []*domain.SearchRecord{
			record("2024-03-31", "", 1, 10, 10.0, 1.0),
			record("2024-04-01", "", 2, 20, 10.0, 2.0),
		}

		aggregates := AggregateByMonth(records, false)

		assert.Len(t, aggregates, 2)
		assert.Equal(t, domain.MonthKey{Year: 2024, Month: time.March}, aggregates[0].Month)
		assert.Equal(t, domain.MonthKey{Year: 2024, Month: time.April}, aggregates[1].Month)
	})

	t.Run("Entrada vazia produz saída vazia sem erro", func(t *testing.T) {
		assert.Empty(t, AggregateByMonth(nil, false))
	})
}

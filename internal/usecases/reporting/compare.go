package reporting

import (
	"math"

	"github.com/vfg2006/search-insights-api/internal/domain"
	"github.com/vfg2006/search-insights-api/pkg/utils"
)

// CompareMonths compara os agregados do mês corrente com os do mês anterior.
// O alinhamento é feito avançando o mês de cada agregado anterior em um mês e
// casando com a chave do corrente: um grupo presente apenas no mês anterior
// não gera linha de saída.
//
// As variações são percentuais. Para Position o sinal é invertido, já que
// posição menor é melhor: queda na posição média aparece como variação
// positiva. Quando a base anterior é zero ou ausente e o valor corrente é
// positivo, a variação é newBaselinePercent; quando ambos são zero, é 0.0.
func CompareMonths(current, previous []*domain.MonthlyAggregate, newBaselinePercent float64) []*domain.MomComparison {
	previousByKey := make(map[groupKey]*domain.MonthlyAggregate, len(previous))
	for _, aggregate := range previous {
		key := groupKey{month: aggregate.Month.Next(), page: aggregate.Page}
		previousByKey[key] = aggregate
	}

	comparisons := make([]*domain.MomComparison, 0, len(current))

	for _, aggregate := range current {
		comparison := &domain.MomComparison{
			Month:       aggregate.Month,
			Page:        aggregate.Page,
			Clicks:      aggregate.Clicks,
			Impressions: aggregate.Impressions,
			CTR:         aggregate.CTR,
			Position:    aggregate.Position,
		}

		key := groupKey{month: aggregate.Month, page: aggregate.Page}
		if prev, exists := previousByKey[key]; exists {
			comparison.HasPrevious = true
			comparison.PrevClicks = prev.Clicks
			comparison.PrevImpressions = prev.Impressions
			comparison.PrevCTR = prev.CTR
			comparison.PrevPosition = prev.Position
		}

		comparison.ClicksMoM = momChange(comparison.Clicks, comparison.PrevClicks, false, newBaselinePercent)
		comparison.ImpressionsMoM = momChange(comparison.Impressions, comparison.PrevImpressions, false, newBaselinePercent)
		comparison.CTRMoM = momChange(comparison.CTR, comparison.PrevCTR, false, newBaselinePercent)
		comparison.PositionMoM = momChange(comparison.Position, comparison.PrevPosition, true, newBaselinePercent)

		comparisons = append(comparisons, comparison)
	}

	return comparisons
}

// momChange calcula a variação percentual entre dois valores. Com inverted
// verdadeiro a variação é (anterior - corrente) / anterior, usada para
// métricas em que menor é melhor.
func momChange(current, previous float64, inverted bool, newBaselinePercent float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0.0
		}
		return newBaselinePercent
	}

	var change float64
	if inverted {
		change = ((previous - current) / previous) * 100
	} else {
		change = ((current - previous) / previous) * 100
	}

	if math.IsNaN(change) || math.IsInf(change, 0) {
		return 0.0
	}

	return utils.RoundWithTwoDecimalPlace(change)
}

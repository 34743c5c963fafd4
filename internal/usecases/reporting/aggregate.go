package reporting

import (
	"sort"

	"github.com/vfg2006/search-insights-api/internal/domain"
	"github.com/vfg2006/search-insights-api/pkg/utils"
)

// groupKey identifica um grupo de agregação: mês ou mês+página
type groupKey struct {
	month domain.MonthKey
	page  string
}

// AggregateByMonth agrupa os registros normalizados em agregados mensais.
// Com byPage verdadeiro a página entra na chave de agrupamento.
//
// Clicks e Impressions são somados; Position é a média aritmética simples
// das posições do grupo; o CTR do grupo é recalculado a partir das somas
// (100 * clicks / impressions), nunca a média dos CTRs por linha. Entrada
// vazia produz saída vazia, sem erro.
func AggregateByMonth(records []*domain.SearchRecord, byPage bool) []*domain.MonthlyAggregate {
	type accumulator struct {
		clicks      float64
		impressions float64
		positionSum float64
		count       int
	}

	groups := make(map[groupKey]*accumulator)

	for _, record := range records {
		key := groupKey{month: domain.MonthKeyOf(record.Date)}
		if byPage {
			key.page = record.Page
		}

		acc, exists := groups[key]
		if !exists {
			acc = &accumulator{}
			groups[key] = acc
		}

		acc.clicks += record.Clicks
		acc.impressions += record.Impressions
		acc.positionSum += record.Position
		acc.count++
	}

	aggregates := make([]*domain.MonthlyAggregate, 0, len(groups))
	for key, acc := range groups {
		ctr := 0.0
		if acc.impressions > 0 {
			ctr = 100 * acc.clicks / acc.impressions
		}

		position := 0.0
		if acc.count > 0 {
			position = acc.positionSum / float64(acc.count)
		}

		aggregates = append(aggregates, &domain.MonthlyAggregate{
			Month:       key.month,
			Page:        key.page,
			Clicks:      acc.clicks,
			Impressions: acc.impressions,
			CTR:         utils.RoundWithTwoDecimalPlace(ctr),
			Position:    utils.RoundWithTwoDecimalPlace(position),
		})
	}

	sort.Slice(aggregates, func(i, j int) bool {
		if aggregates[i].Month != aggregates[j].Month {
			return aggregates[i].Month.Before(aggregates[j].Month)
		}
		return aggregates[i].Page < aggregates[j].Page
	})

	return aggregates
}

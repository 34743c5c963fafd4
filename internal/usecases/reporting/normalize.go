package reporting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-insights-api/internal/domain"
)

// NormalizeRows converte as linhas brutas da API em registros com dimensões
// nomeadas. Os valores de Keys são mapeados posicionalmente sobre a lista de
// dimensões solicitada; uma linha com menos chaves que dimensões apenas deixa
// as dimensões finais vazias.
//
// A dimensão de data é obrigatória: linhas sem data válida são descartadas
// individualmente, sem invalidar o lote. O CTR é convertido de fração para
// percentual aqui, uma única vez.
func NormalizeRows(rows []domain.SearchRow, dimensions []string) []*domain.SearchRecord {
	dateIdx := -1
	pageIdx := -1
	for i, dimension := range dimensions {
		switch dimension {
		case domain.DimensionDate:
			dateIdx = i
		case domain.DimensionPage:
			pageIdx = i
		}
	}

	records := make([]*domain.SearchRecord, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		if dateIdx < 0 || dateIdx >= len(row.Keys) {
			dropped++
			continue
		}

		date, err := time.Parse(time.DateOnly, row.Keys[dateIdx])
		if err != nil {
			dropped++
			continue
		}

		record := &domain.SearchRecord{
			Date:        date,
			Clicks:      row.Clicks,
			Impressions: row.Impressions,
			CTR:         row.CTR * 100,
			Position:    row.Position,
		}

		if pageIdx >= 0 && pageIdx < len(row.Keys) {
			record.Page = row.Keys[pageIdx]
		}

		records = append(records, record)
	}

	if dropped > 0 {
		logrus.WithFields(logrus.Fields{
			"dropped_rows": dropped,
			"total_rows":   len(rows),
		}).Warn("normalize: linhas descartadas por data ausente ou inválida")
	}

	return records
}

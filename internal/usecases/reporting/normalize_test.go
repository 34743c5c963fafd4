package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/search-insights-api/internal/domain"
)

func TestNormalizeRows(t *testing.T) {
	dimensions := []string{domain.DimensionDate, domain.DimensionPage}

	tests := []struct {
		name     string
		rows     []domain.SearchRow
		dims     []string
		validate func(t *testing.T, records []*domain.SearchRecord)
	}{
		{
			name: "Mapeamento posicional de data e página",
			rows: []domain.SearchRow{
				{Keys: []string{"2024-03-05", "/produtos"}, Clicks: 10, Impressions: 200, CTR: 0.05, Position: 4.2},
			},
			dims: dimensions,
			validate: func(t *testing.T, records []*domain.SearchRecord) {
				assert.Len(t, records, 1)
				assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), records[0].Date)
				assert.Equal(t, "/produtos", records[0].Page)
				assert.Equal(t, 10.0, records[0].Clicks)
				assert.Equal(t, 200.0, records[0].Impressions)
				assert.Equal(t, 4.2, records[0].Position)
			},
		},
		{
			name: "CTR convertido de fração para percentual uma única vez",
			rows: []domain.SearchRow{
				{Keys: []string{"2024-03-05"}, CTR: 0.05},
			},
			dims: []string{domain.DimensionDate},
			validate: func(t *testing.T, records []*domain.SearchRecord) {
				assert.Len(t, records, 1)
				assert.InDelta(t, 5.0, records[0].CTR, 0.0001)
			},
		},
		{
			name: "Linha com menos chaves que dimensões deixa a página vazia",
			rows: []domain.SearchRow{
				{Keys: []string{"2024-03-05"}, Clicks: 3},
			},
			dims: dimensions,
			validate: func(t *testing.T, records []*domain.SearchRecord) {
				assert.Len(t, records, 1)
				assert.Empty(t, records[0].Page)
			},
		},
		{
			name: "Linha com data inválida é descartada sem invalidar o lote",
			rows: []domain.SearchRow{
				{Keys: []string{"2024-03-05", "/a"}, Clicks: 1},
				{Keys: []string{"não é data", "/b"}, Clicks: 2},
				{Keys: []string{"2024-03-06", "/c"}, Clicks: 3},
			},
			dims: dimensions,
			validate: func(t *testing.T, records []*domain.SearchRecord) {
				assert.Len(t, records, 2)
				assert.Equal(t, "/a", records[0].Page)
				assert.Equal(t, "/c", records[1].Page)
			},
		},
		{
			name: "Linha sem a chave da data é descartada",
			rows: []domain.SearchRow{
				{Keys: []string{}, Clicks: 1},
			},
			dims: dimensions,
			validate: func(t *testing.T, records []*domain.SearchRecord) {
				assert.Empty(t, records)
			},
		},
		{
			name: "Dimensões sem data descartam todas as linhas",
			rows: []domain.SearchRow{
				{Keys: []string{"/a"}, Clicks: 1},
			},
			dims: []string{domain.DimensionPage},
			validate: func(t *testing.T, records []*domain.SearchRecord) {
				assert.Empty(t, records)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, NormalizeRows(tt.rows, tt.dims))
		})
	}
}

package domain

import (
	"sort"
	"time"
)

// ReportLevel define o nível de agrupamento do relatório
type ReportLevel string

const (
	ReportLevelSite ReportLevel = "site"
	ReportLevelPage ReportLevel = "page"
)

// Valid indica se o nível de relatório é conhecido
func (l ReportLevel) Valid() bool {
	return l == ReportLevelSite || l == ReportLevelPage
}

// Dimensions retorna a lista ordenada de dimensões da consulta para o nível.
// A dimensão de data vem sempre primeiro porque a agregação mensal depende
// dela.
func (l ReportLevel) Dimensions() []string {
	if l == ReportLevelPage {
		return []string{DimensionDate, DimensionPage}
	}
	return []string{DimensionDate}
}

// MomReportStep é o resultado de uma etapa da tendência: um mês comparado
// com o mês imediatamente anterior
type MomReportStep struct {
	Month         MonthKey         `json:"month"`
	PreviousMonth MonthKey         `json:"previous_month"`
	Comparisons   []*MomComparison `json:"comparisons"`
	Complete      bool             `json:"complete"`
}

// MomReport é o artefato final: a concatenação das etapas de tendência para
// um site, com os avisos acumulados (meses pulados, drenagens parciais)
type MomReport struct {
	Site        string           `json:"site"`
	Level       ReportLevel      `json:"level"`
	GeneratedAt time.Time        `json:"generated_at"`
	Steps       []*MomReportStep `json:"steps"`
	Warnings    []string         `json:"warnings,omitempty"`
	Complete    bool             `json:"complete"`
}

// Rows concatena as comparações de todas as etapas ordenadas por mês
// decrescente e, dentro do mês, por página crescente
func (r *MomReport) Rows() []*MomComparison {
	rows := make([]*MomComparison, 0)
	for _, step := range r.Steps {
		rows = append(rows, step.Comparisons...)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Month != rows[j].Month {
			return rows[j].Month.Before(rows[i].Month)
		}
		return rows[i].Page < rows[j].Page
	})

	return rows
}

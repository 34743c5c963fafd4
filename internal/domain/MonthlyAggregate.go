package domain

// MonthlyAggregate é o resultado da agregação mensal de registros
// normalizados para um grupo (mês ou mês+página).
//
// CTR é sempre recalculado a partir de Clicks e Impressions somados, nunca a
// média dos CTRs diários, para evitar distorção quando os dias têm volumes
// muito diferentes. Position é a média aritmética simples das posições
// diárias do grupo.
type MonthlyAggregate struct {
	Month       MonthKey `json:"month"`
	Page        string   `json:"page,omitempty"`
	Clicks      float64  `json:"clicks"`
	Impressions float64  `json:"impressions"`
	CTR         float64  `json:"ctr"`
	Position    float64  `json:"position"`
}

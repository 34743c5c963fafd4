package domain

// MomComparison é uma linha do relatório mês contra mês: as métricas do mês
// corrente, as do mês anterior alinhado (Prev*) e a variação percentual de
// cada métrica (*MoM).
//
// Para Position a variação tem o sinal invertido (posição menor é melhor),
// de modo que MoM positivo sempre significa melhora, como nas demais
// métricas. HasPrevious distingue "não havia dados no mês anterior" de
// "mês anterior com valores zero".
type MomComparison struct {
	Month MonthKey `json:"month"`
	Page  string   `json:"page,omitempty"`

	Clicks      float64 `json:"clicks"`
	Impressions float64 `json:"impressions"`
	CTR         float64 `json:"ctr"`
	Position    float64 `json:"position"`

	PrevClicks      float64 `json:"prev_clicks"`
	PrevImpressions float64 `json:"prev_impressions"`
	PrevCTR         float64 `json:"prev_ctr"`
	PrevPosition    float64 `json:"prev_position"`

	ClicksMoM      float64 `json:"clicks_mom"`
	ImpressionsMoM float64 `json:"impressions_mom"`
	CTRMoM         float64 `json:"ctr_mom"`
	PositionMoM    float64 `json:"position_mom"`

	HasPrevious bool `json:"has_previous"`
}

package domain

import "time"

// Nomes de dimensões aceitos pela API de Search Analytics
const (
	DimensionDate    = "date"
	DimensionPage    = "page"
	DimensionDevice  = "device"
	DimensionCountry = "country"
)

// SearchRow representa uma linha bruta retornada pela API de Search Analytics.
// Keys carrega os valores das dimensões na mesma ordem da lista solicitada.
// Métricas ausentes na resposta (a API omite campos quando o valor é zero)
// ficam com o valor zero naturalmente.
type SearchRow struct {
	Keys        []string `json:"keys"`
	Clicks      float64  `json:"clicks"`
	Impressions float64  `json:"impressions"`
	CTR         float64  `json:"ctr"` // fração entre 0 e 1
	Position    float64  `json:"position"`
}

// SearchData agrupa o resultado de uma drenagem paginada completa.
// Complete indica se todas as páginas foram obtidas; um valor falso significa
// que a paginação foi abortada (rate limit esgotado ou falha de transporte) e
// que Rows pode estar incompleto.
type SearchData struct {
	Rows     []SearchRow `json:"rows"`
	Complete bool        `json:"complete"`
}

// ProgressFunc recebe notificações de progresso durante a drenagem paginada
// (total de linhas baixadas até o momento). Pode ser nil.
type ProgressFunc func(rowsDownloaded int)

// SearchRecord é uma linha normalizada com dimensões nomeadas e tipadas.
// Date é obrigatória; Page só é preenchida em relatórios por página.
// CTR aqui já está em percentual (0-100), convertido uma única vez na
// normalização.
type SearchRecord struct {
	Date        time.Time `json:"date"`
	Page        string    `json:"page,omitempty"`
	Clicks      float64   `json:"clicks"`
	Impressions float64   `json:"impressions"`
	CTR         float64   `json:"ctr"`
	Position    float64   `json:"position"`
}

// Site representa uma propriedade do Search Console acessível ao usuário
type Site struct {
	SiteURL         string `json:"site_url"`
	PermissionLevel string `json:"permission_level"`
}

package gscdomain

// SearchAnalyticsQuery é o corpo da consulta enviada ao endpoint
// searchAnalytics/query. StartRow e RowLimit controlam a paginação.
type SearchAnalyticsQuery struct {
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Dimensions []string `json:"dimensions"`
	SearchType string   `json:"type,omitempty"`
	RowLimit   int      `json:"rowLimit"`
	StartRow   int      `json:"startRow"`
	DataState  string   `json:"dataState,omitempty"`
}

// SearchAnalyticsRow é uma linha da resposta da API. Keys segue a ordem das
// dimensões solicitadas; métricas omitidas pela API ficam com valor zero.
type SearchAnalyticsRow struct {
	Keys        []string `json:"keys"`
	Clicks      float64  `json:"clicks"`
	Impressions float64  `json:"impressions"`
	CTR         float64  `json:"ctr"`
	Position    float64  `json:"position"`
}

// SearchAnalyticsResponse é o envelope da resposta do endpoint de consulta
type SearchAnalyticsResponse struct {
	Rows []SearchAnalyticsRow `json:"rows"`
}

// SiteEntry é uma propriedade listada pelo endpoint de sites
type SiteEntry struct {
	SiteURL         string `json:"siteUrl"`
	PermissionLevel string `json:"permissionLevel"`
}

// SitesResponse é o envelope da listagem de propriedades
type SitesResponse struct {
	SiteEntry []SiteEntry `json:"siteEntry"`
}

// PermissionUnverified marca propriedades que o usuário não verificou;
// elas não retornam dados de Search Analytics
const PermissionUnverified = "siteUnverifiedUser"

// TokenResponse é a resposta do endpoint OAuth de renovação de credencial
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
}

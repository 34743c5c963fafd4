package reporting

import (
	"time"

	"github.com/vfg2006/search-insights-api/internal/domain"
)

// SearchAnalyticsFetcher define a interface do integrador do Search Console
// consumida pelo relatório
type SearchAnalyticsFetcher interface {
	// FetchSearchAnalytics drena o intervalo informado em memória,
	// devolvendo também se a drenagem foi completa
	FetchSearchAnalytics(siteURL string, startDate, endDate time.Time, dimensions []string, progress domain.ProgressFunc) (*domain.SearchData, error)

	// ListVerifiedSites lista as propriedades verificadas da credencial
	ListVerifiedSites() ([]*domain.Site, error)
}

// Reporter é a interface do serviço de relatórios mês contra mês
type Reporter interface {
	// GetMonthlyComparisonReport monta a tendência de N meses terminando no
	// mês informado, cada mês comparado com o anterior
	GetMonthlyComparisonReport(siteURL string, reportMonth domain.MonthKey, trendMonths int, level domain.ReportLevel) (*domain.MomReport, error)

	// ListSites lista as propriedades disponíveis para relatório
	ListSites() ([]*domain.Site, error)
}

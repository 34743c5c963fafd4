package gsc

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	gscdomain "github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc/domain"
	"github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc/gscclient"
	"github.com/vfg2006/search-insights-api/internal/config"
	"github.com/vfg2006/search-insights-api/internal/domain"
)

// Tipo de pesquisa e estado de dados usados em todas as consultas.
// dataState "all" inclui dados frescos ainda sujeitos a revisão.
const (
	defaultSearchType = "web"
	defaultDataState  = "all"
)

type GSCIntegrator struct {
	cfg    *config.Config
	Client gscclient.Client
	sleep  func(time.Duration)
}

func New(cfg *config.Config, client gscclient.Client) *GSCIntegrator {
	return &GSCIntegrator{
		cfg:    cfg,
		Client: client,
		sleep:  time.Sleep,
	}
}

// FetchSearchAnalytics drena o endpoint paginado de Search Analytics para o
// intervalo e as dimensões informados, acumulando todas as páginas em ordem
// de chegada.
//
// A drenagem termina quando uma página retorna menos linhas que o tamanho de
// página (ou nenhuma). Rate limit é tratado como falha transitória: a mesma
// página é repetida com backoff linear até o limite de tentativas; esgotado
// o limite, ou diante de uma falha de transporte, o resultado parcial
// acumulado é devolvido com Complete=false em vez de erro. Apenas falhas de
// credencial sobem como erro.
//
// progress, quando informado, recebe o total de linhas baixadas após cada
// página; é apenas observabilidade e não altera o comportamento da drenagem.
func (s *GSCIntegrator) FetchSearchAnalytics(
	siteURL string,
	startDate, endDate time.Time,
	dimensions []string,
	progress domain.ProgressFunc,
) (*domain.SearchData, error) {
	pageSize := s.cfg.GSC.PageSize
	maxPages := s.cfg.GSC.MaxPages

	rows := make([]domain.SearchRow, 0)

	for page := 0; page < maxPages; page++ {
		query := &gscdomain.SearchAnalyticsQuery{
			StartDate:  startDate.Format(time.DateOnly),
			EndDate:    endDate.Format(time.DateOnly),
			Dimensions: dimensions,
			SearchType: defaultSearchType,
			RowLimit:   pageSize,
			StartRow:   len(rows),
			DataState:  defaultDataState,
		}

		apiRows, err := s.fetchPage(siteURL, query)
		if err != nil {
			var authErr *gscdomain.AuthError
			if errors.As(err, &authErr) {
				// Falha de credencial sobe para o chamador reautenticar
				return &domain.SearchData{Rows: rows, Complete: false}, err
			}

			logrus.WithError(err).WithFields(logrus.Fields{
				"site":       siteURL,
				"start_row":  query.StartRow,
				"rows_sofar": len(rows),
			}).Warn("search-analytics: drenagem abortada, devolvendo resultado parcial")

			return &domain.SearchData{Rows: rows, Complete: false}, nil
		}

		rows = append(rows, FactorySearchRows(apiRows)...)

		if progress != nil {
			progress(len(rows))
		}

		// Página aquém do limite (ou vazia) sinaliza o fim dos dados
		if len(apiRows) < pageSize {
			return &domain.SearchData{Rows: rows, Complete: true}, nil
		}
	}

	// Limite defensivo de iterações atingido: uma API que nunca devolve uma
	// página curta indica offset sem progresso, tratar como falha
	logrus.WithFields(logrus.Fields{
		"site":      siteURL,
		"max_pages": maxPages,
		"rows":      len(rows),
	}).Error("search-analytics: limite de páginas atingido sem sinal de término")

	return &domain.SearchData{Rows: rows, Complete: false}, nil
}

// fetchPage busca uma única página, repetindo a mesma consulta em caso de
// rate limit com atraso crescente (tentativa x delay base, respeitando o
// Retry-After quando informado). Falhas que não são de rate limit não são
// repetidas.
func (s *GSCIntegrator) fetchPage(siteURL string, query *gscdomain.SearchAnalyticsQuery) ([]gscdomain.SearchAnalyticsRow, error) {
	maxAttempts := s.cfg.GSC.MaxRetryAttempts
	baseDelay := s.cfg.GSC.RetryBaseDelay

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		apiRows, err := s.Client.QuerySearchAnalytics(siteURL, query)
		if err == nil {
			return apiRows, nil
		}

		var rateErr *gscdomain.RateLimitError
		if !errors.As(err, &rateErr) {
			return nil, err
		}

		lastErr = err

		if attempt == maxAttempts {
			break
		}

		delay := time.Duration(attempt) * baseDelay
		if rateErr.RetryAfter > delay {
			delay = rateErr.RetryAfter
		}

		logrus.WithFields(logrus.Fields{
			"site":      siteURL,
			"start_row": query.StartRow,
			"attempt":   attempt,
			"delay":     delay.String(),
		}).Info("search-analytics: rate limit, aguardando para repetir a página")

		s.sleep(delay)
	}

	return nil, lastErr
}

// ListVerifiedSites lista as propriedades verificadas do Search Console.
// Propriedades não verificadas não retornam dados e são filtradas.
func (s *GSCIntegrator) ListVerifiedSites() ([]*domain.Site, error) {
	entries, err := s.Client.ListSites()
	if err != nil {
		logrus.WithError(err).Error("sites: falha ao listar propriedades do Search Console")
		return nil, err
	}

	sites := make([]*domain.Site, 0, len(entries))
	for _, entry := range entries {
		if entry.PermissionLevel == gscdomain.PermissionUnverified {
			continue
		}
		sites = append(sites, &domain.Site{
			SiteURL:         entry.SiteURL,
			PermissionLevel: entry.PermissionLevel,
		})
	}

	return sites, nil
}

// FactorySearchRows converte linhas da API para o domínio interno
func FactorySearchRows(apiRows []gscdomain.SearchAnalyticsRow) []domain.SearchRow {
	rows := make([]domain.SearchRow, 0, len(apiRows))
	for _, apiRow := range apiRows {
		rows = append(rows, domain.SearchRow{
			Keys:        apiRow.Keys,
			Clicks:      apiRow.Clicks,
			Impressions: apiRow.Impressions,
			CTR:         apiRow.CTR,
			Position:    apiRow.Position,
		})
	}
	return rows
}

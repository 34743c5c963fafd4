package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/search-insights-api/infrastructure/export"
	gscdomain "github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc/domain"
	"github.com/vfg2006/search-insights-api/internal/domain"
	"github.com/vfg2006/search-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/search-insights-api/pkg/apiErrors"
	"github.com/vfg2006/search-insights-api/pkg/log"
)

// momReportParams reúne os parâmetros de consulta do relatório mês contra mês
type momReportParams struct {
	Site        string
	ReportMonth domain.MonthKey
	TrendMonths int
	Level       domain.ReportLevel
}

// parseMomReportParams valida os parâmetros de consulta comuns às rotas de
// relatório. Mês e ano são opcionais em conjunto: na ausência deles o serviço
// usa o último mês fechado.
func parseMomReportParams(r *http.Request) (*momReportParams, string) {
	site := r.URL.Query().Get("site")
	if site == "" {
		return nil, "É necessário informar o site nos parâmetros"
	}

	month := r.URL.Query().Get("month")
	year := r.URL.Query().Get("year")

	var reportMonth domain.MonthKey
	if month != "" || year != "" {
		if month == "" || year == "" {
			return nil, "Mês e ano devem ser informados juntos"
		}

		// Validar mês (entre 01 e 12)
		if len(month) != 2 || month < "01" || month > "12" {
			return nil, "Mês inválido. Use formato de dois dígitos (01-12)"
		}

		// Validar ano (4 dígitos)
		if len(year) != 4 {
			return nil, "Ano inválido. Use formato de quatro dígitos (ex: 2025)"
		}

		parsed, err := domain.ParseMonthKey(fmt.Sprintf("%s-%s", month, year))
		if err != nil {
			return nil, "Período inválido"
		}
		reportMonth = parsed
	}

	trendMonths := 0
	if monthsParam := r.URL.Query().Get("months"); monthsParam != "" {
		parsed, err := strconv.Atoi(monthsParam)
		if err != nil || parsed < 1 {
			return nil, "Quantidade de meses inválida"
		}
		trendMonths = parsed
	}

	level := domain.ReportLevelSite
	if levelParam := r.URL.Query().Get("level"); levelParam != "" {
		level = domain.ReportLevel(levelParam)
		if !level.Valid() {
			return nil, "Nível de relatório inválido. Valores aceitos: site, page"
		}
	}

	return &momReportParams{
		Site:        site,
		ReportMonth: reportMonth,
		TrendMonths: trendMonths,
		Level:       level,
	}, ""
}

// GetMomReport retorna o relatório mês contra mês de uma propriedade
func GetMomReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, problem := parseMomReportParams(r)
		if problem != "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, problem, nil)
			return
		}

		logger.WithFields(log.Fields{
			"site":   params.Site,
			"month":  params.ReportMonth.String(),
			"months": params.TrendMonths,
			"level":  string(params.Level),
		}).Info("mom-report: gerando relatório mês contra mês")

		report, err := service.GetMonthlyComparisonReport(params.Site, params.ReportMonth, params.TrendMonths, params.Level)
		if err != nil {
			handleMomReportError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"site":     params.Site,
			"steps":    len(report.Steps),
			"complete": report.Complete,
		}).Info("mom-report: relatório gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("mom-report: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetMomReportCSV retorna o mesmo relatório como download em CSV
func GetMomReportCSV(service reporting.Reporter, exporter *export.CSVExporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, problem := parseMomReportParams(r)
		if problem != "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, problem, nil)
			return
		}

		report, err := service.GetMonthlyComparisonReport(params.Site, params.ReportMonth, params.TrendMonths, params.Level)
		if err != nil {
			handleMomReportError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="mom-report.csv"`)

		if err := exporter.WriteTo(w, report); err != nil {
			logger.WithError(err).Error("mom-report: erro ao escrever o CSV na resposta")
		}
	})
}

// GetSites lista as propriedades verificadas disponíveis para relatório
func GetSites(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sites, err := service.ListSites()
		if err != nil {
			handleMomReportError(w, logger, err)
			return
		}

		logger.WithField("sites", len(sites)).Info("sites: propriedades verificadas listadas")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sites); err != nil {
			logger.WithError(err).Error("sites: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// handleMomReportError mapeia os erros do serviço de relatório para códigos
// de API
func handleMomReportError(w http.ResponseWriter, logger log.Logger, err error) {
	logger.WithError(err).Error("mom-report: erro ao gerar relatório")

	var rangeErr *reporting.RangeError
	var authErr *gscdomain.AuthError

	switch {
	case errors.As(err, &rangeErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, rangeErr.Error(), map[string]any{
			"start_date": rangeErr.StartDate.Format("2006-01-02"),
			"end_date":   rangeErr.EndDate.Format("2006-01-02"),
		})

	case errors.As(err, &authErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentialGSC, "Credencial recusada pela API do Search Console", nil)

	case errors.Is(err, reporting.ErrMissingSite):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, reporting.ErrInvalidReportLevel):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar a API do Search Console", nil)
	}
}

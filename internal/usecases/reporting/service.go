package reporting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-insights-api/internal/config"
	"github.com/vfg2006/search-insights-api/internal/domain"
)

type Service struct {
	cfg        *config.Config
	gscService SearchAnalyticsFetcher
	now        func() time.Time // injetável nos testes
}

func NewService(cfg *config.Config, gscService SearchAnalyticsFetcher) *Service {
	return &Service{
		cfg:        cfg,
		gscService: gscService,
		now:        time.Now,
	}
}

func (s *Service) ListSites() ([]*domain.Site, error) {
	return s.gscService.ListVerifiedSites()
}

// GetMonthlyComparisonReport monta a tendência de trendMonths meses terminando
// em reportMonth. Cada passo compara um mês com o imediatamente anterior;
// passos cujo intervalo a API não atende viram avisos no relatório em vez de
// abortar a tendência inteira. Falha de credencial invalida o relatório todo.
func (s *Service) GetMonthlyComparisonReport(
	siteURL string,
	reportMonth domain.MonthKey,
	trendMonths int,
	level domain.ReportLevel,
) (*domain.MomReport, error) {
	if siteURL == "" {
		return nil, ErrMissingSite
	}

	if !level.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidReportLevel, level)
	}

	if trendMonths <= 0 {
		trendMonths = s.cfg.Report.DefaultTrendMonths
	}
	if trendMonths > s.cfg.Report.MaxTrendMonths {
		trendMonths = s.cfg.Report.MaxTrendMonths
	}

	now := s.now()

	if reportMonth.IsZero() {
		// Último mês fechado: o corrente ainda está dentro do atraso de
		// consolidação
		reportMonth = domain.MonthKeyOf(now).Prev()
	}

	report := &domain.MomReport{
		Site:        siteURL,
		Level:       level,
		GeneratedAt: now,
		Complete:    true,
	}

	dimensions := level.Dimensions()
	byPage := level == domain.ReportLevelPage

	for i := 0; i < trendMonths; i++ {
		month := reportMonth.AddMonths(-i)
		previousMonth := month.Prev()

		if err := ValidateDateRange(
			previousMonth.StartDate(),
			month.EndDate(),
			now,
			s.cfg.Report.MaxHistoryMonths,
			s.cfg.Report.FreshnessLagDays,
		); err != nil {
			warning := fmt.Sprintf("mês %s ignorado: %v", month, err)
			report.Warnings = append(report.Warnings, warning)
			logrus.WithFields(logrus.Fields{
				"site":  siteURL,
				"month": month.String(),
			}).WithError(err).Warn("mom-report: passo da tendência ignorado")
			continue
		}

		step, err := s.buildStep(siteURL, month, previousMonth, dimensions, byPage)
		if err != nil {
			return nil, err
		}

		if !step.Complete {
			report.Complete = false
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("mês %s: dados possivelmente incompletos", month))
		}

		report.Steps = append(report.Steps, step)
	}

	return report, nil
}

// buildStep drena os dois meses do passo, agrega e compara. Erro aqui é
// sempre falha de credencial: drenagens parciais chegam como resultado com
// Complete falso, não como erro.
func (s *Service) buildStep(
	siteURL string,
	month, previousMonth domain.MonthKey,
	dimensions []string,
	byPage bool,
) (*domain.MomReportStep, error) {
	currentData, err := s.gscService.FetchSearchAnalytics(
		siteURL, month.StartDate(), month.EndDate(), dimensions, s.progressLogger(siteURL, month))
	if err != nil {
		return nil, err
	}

	previousData, err := s.gscService.FetchSearchAnalytics(
		siteURL, previousMonth.StartDate(), previousMonth.EndDate(), dimensions, s.progressLogger(siteURL, previousMonth))
	if err != nil {
		return nil, err
	}

	currentAggregates := AggregateByMonth(NormalizeRows(currentData.Rows, dimensions), byPage)
	previousAggregates := AggregateByMonth(NormalizeRows(previousData.Rows, dimensions), byPage)

	return &domain.MomReportStep{
		Month:         month,
		PreviousMonth: previousMonth,
		Comparisons:   CompareMonths(currentAggregates, previousAggregates, s.cfg.Report.NewBaselinePercent),
		Complete:      currentData.Complete && previousData.Complete,
	}, nil
}

func (s *Service) progressLogger(siteURL string, month domain.MonthKey) domain.ProgressFunc {
	return func(rowsDownloaded int) {
		logrus.WithFields(logrus.Fields{
			"site":  siteURL,
			"month": month.String(),
			"rows":  rowsDownloaded,
		}).Debug("mom-report: progresso da drenagem")
	}
}

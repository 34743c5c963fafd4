package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-insights-api/infrastructure/export"
	"github.com/vfg2006/search-insights-api/internal/config"
	"github.com/vfg2006/search-insights-api/internal/domain"
	"github.com/vfg2006/search-insights-api/internal/usecases/reporting"
)

// MonthlyReportSyncConfig representa a configuração do agendador de relatórios mensais
type MonthlyReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Sites        []string
	Level        string
	TrendMonths  int
}

// MonthlyReportSyncService gerencia o agendamento e a geração periódica dos
// relatórios mês contra mês, exportados em CSV para o diretório de saída
type MonthlyReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyReportSyncConfig
	appConfig           *config.Config
	reportService       reporting.Reporter
	exporter            *export.CSVExporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMonthlyReportSyncService cria uma nova instância do serviço de geração mensal de relatórios
func NewMonthlyReportSyncService(
	reportService reporting.Reporter,
	exporter *export.CSVExporter,
	appConfig *config.Config,
) *MonthlyReportSyncService {
	// Criar a configuração com base na config global
	syncConfig := MonthlyReportSyncConfig{
		CronSchedule: appConfig.MonthlyReportSync.CronSchedule,
		SyncEnabled:  appConfig.MonthlyReportSync.Enabled,
		Sites:        appConfig.MonthlyReportSync.Sites,
		Level:        appConfig.MonthlyReportSync.Level,
		TrendMonths:  appConfig.MonthlyReportSync.TrendMonths,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"sites":         len(syncConfig.Sites),
		"trend_months":  syncConfig.TrendMonths,
	}).Info("Configuração do agendador de relatórios mensais carregada")

	return &MonthlyReportSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		appConfig:     appConfig,
		reportService: reportService,
		exporter:      exporter,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *MonthlyReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Geração mensal de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de relatórios mensais")

	// Agendar a geração dos relatórios
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlyReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração mensal de relatórios: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatórios mensais")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlyReports gera e exporta o relatório do último mês fechado para
// todos os sites configurados
func (s *MonthlyReportSyncService) syncMonthlyReports() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração mensal de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando geração mensal de relatórios")

	sites, err := s.targetSites()
	if err != nil {
		logrus.WithError(err).Error("Erro ao resolver a lista de sites para os relatórios mensais")
		return
	}

	if len(sites) == 0 {
		logrus.Info("Nenhum site disponível para geração mensal de relatórios")
		return
	}

	level := domain.ReportLevel(s.config.Level)
	if !level.Valid() {
		level = domain.ReportLevelSite
	}

	generated := 0

	// Processamento sequencial: a API limita a taxa de requisições por
	// credencial, então paralelizar sites só adiantaria as rejeições
	for _, site := range sites {
		logrus.WithFields(logrus.Fields{
			"site":  site,
			"level": string(level),
		}).Info("Gerando relatório mensal para o site")

		report, err := s.reportService.GetMonthlyComparisonReport(site, domain.MonthKey{}, s.config.TrendMonths, level)
		if err != nil {
			logrus.WithError(err).WithField("site", site).Error("Erro ao gerar relatório mensal")
			continue
		}

		path, err := s.exporter.Write(report)
		if err != nil {
			logrus.WithError(err).WithField("site", site).Error("Erro ao exportar relatório mensal")
			continue
		}

		if !report.Complete {
			logrus.WithFields(logrus.Fields{
				"site":     site,
				"warnings": report.Warnings,
			}).Warn("Relatório mensal exportado com dados possivelmente incompletos")
		}

		logrus.WithFields(logrus.Fields{
			"site": site,
			"path": path,
		}).Info("Relatório mensal exportado com sucesso")
		generated++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"sites":     len(sites),
		"generated": generated,
	}).Info("Geração mensal de relatórios concluída")

	s.lastSyncCompletedAt = time.Now()
}

// targetSites resolve os sites alvo: os configurados explicitamente ou, na
// ausência deles, todas as propriedades verificadas da credencial
func (s *MonthlyReportSyncService) targetSites() ([]string, error) {
	if len(s.config.Sites) > 0 {
		return s.config.Sites, nil
	}

	verified, err := s.reportService.ListSites()
	if err != nil {
		return nil, err
	}

	sites := make([]string, 0, len(verified))
	for _, site := range verified {
		sites = append(sites, site.SiteURL)
	}

	return sites, nil
}

// TriggerManualSync inicia manualmente uma geração de relatórios mensais
func (s *MonthlyReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração mensal de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual de relatórios mensais")
	go s.syncMonthlyReports()
}

// GetStatus retorna o status atual da geração
func (s *MonthlyReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

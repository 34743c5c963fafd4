package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-insights-api/infrastructure/export"
	"github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc"
	"github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc/gscclient"
	"github.com/vfg2006/search-insights-api/internal/api"
	"github.com/vfg2006/search-insights-api/internal/config"
	"github.com/vfg2006/search-insights-api/internal/scheduler"
	"github.com/vfg2006/search-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/search-insights-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authenticator := authenticating.NewService(cfg)

	credentialManager := gscclient.NewCredentialManager(cfg)
	go credentialManager.StartAutoRefresh()
	defer credentialManager.StopAutoRefresh()

	gscClient := gscclient.NewClient(cfg, credentialManager)
	gscIntegrator := gsc.New(cfg, gscClient)

	reportService := reporting.NewService(cfg, gscIntegrator)

	exporter := export.NewCSVExporter(cfg.MonthlyReportSync.OutputDir)

	// Inicializa o agendador de geração mensal de relatórios
	monthlyReportSyncService := scheduler.NewMonthlyReportSyncService(
		reportService,
		exporter,
		cfg,
	)

	// Inicia o agendador em background
	if err := monthlyReportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de relatórios mensais")
	} else {
		logrus.Info("Agendador de relatórios mensais iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		exporter,
		authenticator,
		monthlyReportSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

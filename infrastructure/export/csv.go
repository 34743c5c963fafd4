package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-insights-api/internal/domain"
	"github.com/vfg2006/search-insights-api/pkg/utils"
)

// CSVExporter materializa relatórios mês contra mês em CSV, seja para
// download direto, seja para o diretório de saída do agendador.
type CSVExporter struct {
	outputDir string
}

func NewCSVExporter(outputDir string) *CSVExporter {
	return &CSVExporter{outputDir: outputDir}
}

// WriteTo escreve o relatório como CSV no writer informado. A ordem das
// colunas é estável: dimensões, métricas do mês, métricas do mês anterior e
// variações percentuais.
func (e *CSVExporter) WriteTo(w io.Writer, report *domain.MomReport) error {
	writer := csv.NewWriter(w)

	byPage := report.Level == domain.ReportLevelPage

	header := []string{"month"}
	if byPage {
		header = append(header, "page")
	}
	header = append(header,
		"clicks", "impressions", "ctr", "position",
		"prev_clicks", "prev_impressions", "prev_ctr", "prev_position",
		"clicks_mom", "impressions_mom", "ctr_mom", "position_mom",
	)

	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "erro ao escrever o cabeçalho do CSV")
	}

	for _, row := range report.Rows() {
		record := []string{row.Month.String()}
		if byPage {
			record = append(record, row.Page)
		}
		record = append(record,
			formatMetric(row.Clicks),
			formatMetric(row.Impressions),
			formatMetric(row.CTR),
			formatMetric(row.Position),
			formatMetric(row.PrevClicks),
			formatMetric(row.PrevImpressions),
			formatMetric(row.PrevCTR),
			formatMetric(row.PrevPosition),
			formatMetric(row.ClicksMoM),
			formatMetric(row.ImpressionsMoM),
			formatMetric(row.CTRMoM),
			formatMetric(row.PositionMoM),
		)

		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "erro ao escrever linha do CSV")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "erro ao finalizar o CSV")
}

// Write grava o relatório no diretório de saída e devolve o caminho do
// arquivo gerado
func (e *CSVExporter) Write(report *domain.MomReport) (string, error) {
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return "", errors.Wrap(err, "erro ao criar o diretório de exportação")
	}

	suffix, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar o sufixo do arquivo")
	}

	var newestMonth string
	if len(report.Steps) > 0 {
		newestMonth = report.Steps[0].Month.String()
	} else {
		newestMonth = report.GeneratedAt.Format("01-2006")
	}

	filename := fmt.Sprintf("mom-report_%s_%s_%s.csv", sanitizeSite(report.Site), newestMonth, suffix)
	path := filepath.Join(e.outputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "erro ao criar o arquivo de exportação")
	}
	defer file.Close()

	if err := e.WriteTo(file, report); err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"site": report.Site,
		"path": path,
		"rows": len(report.Rows()),
	}).Info("export: relatório CSV gravado")

	return path, nil
}

func formatMetric(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// sanitizeSite reduz a URL da propriedade a um trecho seguro para nome de
// arquivo
func sanitizeSite(site string) string {
	out := make([]rune, 0, len(site))
	for _, r := range site {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vfg2006/search-insights-api/internal/domain"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	GSC               GSC               `mapstructure:",squash"`
	Report            Report            `mapstructure:",squash"`
	MonthlyReportSync MonthlyReportSync `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	SecretKey         string            `mapstructure:"secret_key"`
	Users             []*domain.User    `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GSC agrupa as configurações de acesso à API do Google Search Console
type GSC struct {
	BaseURL        string    `mapstructure:"gsc_base_url"`
	Version        string    `mapstructure:"gsc_version"`
	URL            string    `mapstructure:"-"`
	TokenURL       string    `mapstructure:"gsc_token_url"`
	ClientID       string    `mapstructure:"gsc_client_id"`
	ClientSecret   string    `mapstructure:"gsc_client_secret"`
	RefreshToken   string    `mapstructure:"gsc_refresh_token"`
	AccessToken    string    `mapstructure:"gsc_access_token"`
	TokenExpiresAt time.Time `mapstructure:"-"`

	// Política de paginação e retry da drenagem do Search Analytics
	PageSize         int           `mapstructure:"gsc_page_size"`
	MaxRetryAttempts int           `mapstructure:"gsc_max_retry_attempts"`
	RetryBaseDelay   time.Duration `mapstructure:"gsc_retry_base_delay"`
	MaxPages         int           `mapstructure:"gsc_max_pages"`
}

// Report agrupa as políticas do relatório mês contra mês. Os valores
// espelham o comportamento observado da API (janela histórica de 16 meses,
// atraso de frescor de ~3 dias) e a convenção de baseline zero = 100%.
type Report struct {
	MaxHistoryMonths   int     `mapstructure:"report_max_history_months"`
	FreshnessLagDays   int     `mapstructure:"report_freshness_lag_days"`
	NewBaselinePercent float64 `mapstructure:"report_new_baseline_percent"`
	DefaultTrendMonths int     `mapstructure:"report_default_trend_months"`
	MaxTrendMonths     int     `mapstructure:"report_max_trend_months"`
}

// MonthlyReportSync configura o agendador que gera o relatório do mês
// fechado e o grava no diretório de exportação
type MonthlyReportSync struct {
	CronSchedule string   `mapstructure:"monthly_report_sync_cron"`
	Enabled      bool     `mapstructure:"monthly_report_sync_enabled"`
	Sites        []string `mapstructure:"monthly_report_sync_sites"`
	Level        string   `mapstructure:"monthly_report_sync_level"`
	TrendMonths  int      `mapstructure:"monthly_report_sync_trend_months"`
	OutputDir    string   `mapstructure:"monthly_report_sync_output_dir"`
}

type Auth struct {
	// Usuários no formato email:nome:hash_bcrypt:role_id separados por vírgula
	UsersSpec     string        `mapstructure:"auth_users"`
	TokenDuration time.Duration `mapstructure:"auth_token_duration"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("GSC_BASE_URL", "https://searchconsole.googleapis.com")
	viper.SetDefault("GSC_VERSION", "webmasters/v3")
	viper.SetDefault("GSC_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GSC_CLIENT_ID", "your_client_id")
	viper.SetDefault("GSC_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GSC_REFRESH_TOKEN", "")
	viper.SetDefault("GSC_ACCESS_TOKEN", "") // ONLY LOCAL

	viper.SetDefault("GSC_PAGE_SIZE", 25000)        // Máximo aceito pela API por requisição
	viper.SetDefault("GSC_MAX_RETRY_ATTEMPTS", 3)   // Tentativas por página em caso de rate limit
	viper.SetDefault("GSC_RETRY_BASE_DELAY", "2s")  // Backoff linear: tentativa x delay base
	viper.SetDefault("GSC_MAX_PAGES", 400)          // Limite defensivo de iterações da paginação

	viper.SetDefault("REPORT_MAX_HISTORY_MONTHS", 16)  // Janela histórica da API
	viper.SetDefault("REPORT_FRESHNESS_LAG_DAYS", 3)   // Dados recentes podem estar incompletos
	viper.SetDefault("REPORT_NEW_BASELINE_PERCENT", 100.0)
	viper.SetDefault("REPORT_DEFAULT_TREND_MONTHS", 3)
	viper.SetDefault("REPORT_MAX_TREND_MONTHS", 12)

	viper.SetDefault("MONTHLY_REPORT_SYNC_CRON", "0 5 4 * *") // Dia 4 de cada mês às 5h (após o atraso de frescor)
	viper.SetDefault("MONTHLY_REPORT_SYNC_ENABLED", false)
	viper.SetDefault("MONTHLY_REPORT_SYNC_SITES", "")
	viper.SetDefault("MONTHLY_REPORT_SYNC_LEVEL", "site")
	viper.SetDefault("MONTHLY_REPORT_SYNC_TREND_MONTHS", 1)
	viper.SetDefault("MONTHLY_REPORT_SYNC_OUTPUT_DIR", "./reports")

	viper.SetDefault("AUTH_USERS", "")
	viper.SetDefault("AUTH_TOKEN_DURATION", "24h")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.GSC.URL = fmt.Sprintf("%s/%s", config.GSC.BaseURL, config.GSC.Version)

	users, err := parseUsersSpec(config.Auth.UsersSpec)
	if err != nil {
		return nil, fmt.Errorf("erro ao interpretar AUTH_USERS: %w", err)
	}
	config.Users = users

	return config, nil
}

// parseUsersSpec interpreta a lista de usuários declarada no ambiente no
// formato email:nome:hash_bcrypt:role_id, separados por vírgula
func parseUsersSpec(spec string) ([]*domain.User, error) {
	users := make([]*domain.User, 0)

	spec = strings.TrimSpace(spec)
	if spec == "" {
		return users, nil
	}

	for _, entry := range strings.Split(spec, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 4 {
			return nil, fmt.Errorf("entrada de usuário inválida: %q", entry)
		}

		roleID, err := strconv.Atoi(parts[3])
		if err != nil {
			return nil, fmt.Errorf("role inválido em %q: %w", entry, err)
		}

		users = append(users, &domain.User{
			Email:        strings.ToLower(strings.TrimSpace(parts[0])),
			Name:         parts[1],
			PasswordHash: parts[2],
			RoleID:       roleID,
			Active:       true,
		})
	}

	return users, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

package gscclient

import (
	"io"
	"net/http"
	"strconv"
	"time"

	gscdomain "github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc/domain"
	"github.com/vfg2006/search-insights-api/internal/config"
)

type Client interface {
	QuerySearchAnalytics(siteURL string, query *gscdomain.SearchAnalyticsQuery) ([]gscdomain.SearchAnalyticsRow, error)
	ListSites() ([]gscdomain.SiteEntry, error)
	EnsureValidCredential() error
}

type GSCClient struct {
	Cfg               *config.Config
	CredentialManager *CredentialManager
	httpClient        *http.Client
}

func NewClient(cfg *config.Config, credentialManager *CredentialManager) Client {
	client := &GSCClient{
		Cfg:               cfg,
		CredentialManager: credentialManager,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	return client
}

// EnsureValidCredential verifica se a credencial atual é válida e tenta renová-la se necessário
func (c *GSCClient) EnsureValidCredential() error {
	return c.CredentialManager.EnsureValidCredential()
}

// handleResponse lê o corpo da resposta e converte falhas HTTP na taxonomia
// de erros do integrador (rate limit, autenticação, transporte)
func (c *GSCClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &gscdomain.TransportError{StatusCode: resp.StatusCode, Message: "erro ao ler resposta: " + err.Error()}
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	return nil, gscdomain.ClassifyResponse(resp.StatusCode, body, parseRetryAfter(resp))
}

// parseRetryAfter extrai o intervalo sugerido do cabeçalho Retry-After,
// quando a API o informa em segundos
func parseRetryAfter(resp *http.Response) time.Duration {
	value := resp.Header.Get("Retry-After")
	if value == "" {
		return 0
	}

	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0
	}

	return time.Duration(seconds) * time.Second
}

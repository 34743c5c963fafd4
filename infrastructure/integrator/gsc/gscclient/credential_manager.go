package gscclient

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	gscdomain "github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc/domain"
	"github.com/vfg2006/search-insights-api/internal/config"
)

// CredentialManager gerencia a credencial OAuth de acesso à API do Search
// Console. O fluxo interativo de consentimento fica fora do serviço: aqui
// consumimos um refresh token já emitido e renovamos o access token quando
// necessário.
type CredentialManager struct {
	cfg                    *config.Config
	CredentialRefreshMutex sync.Mutex
	stopRefresh            chan struct{}
	httpClient             *http.Client
}

// NewCredentialManager cria uma nova instância do gerenciador de credenciais
func NewCredentialManager(cfg *config.Config) *CredentialManager {
	return &CredentialManager{
		cfg:                    cfg,
		CredentialRefreshMutex: sync.Mutex{},
		stopRefresh:            make(chan struct{}),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// IsValid indica se existe um access token utilizável no momento
func (cm *CredentialManager) IsValid() bool {
	return cm.cfg.GSC.AccessToken != "" && !cm.IsExpired()
}

// IsExpired indica se o access token atual já passou da validade conhecida
func (cm *CredentialManager) IsExpired() bool {
	if cm.cfg.GSC.TokenExpiresAt.IsZero() {
		return false
	}
	return time.Now().After(cm.cfg.GSC.TokenExpiresAt)
}

// EnsureValidCredential verifica a credencial atual e renova proativamente
// quando está ausente ou perto de expirar
func (cm *CredentialManager) EnsureValidCredential() error {
	if cm.cfg.GSC.AccessToken == "" {
		logrus.Info("Access token não inicializado. Renovando...")
		return cm.Refresh()
	}

	// Renovar com folga para nunca usar um token no limite da validade
	if !cm.cfg.GSC.TokenExpiresAt.IsZero() && time.Until(cm.cfg.GSC.TokenExpiresAt) < 2*time.Minute {
		logrus.Info("Access token perto de expirar. Renovando proativamente...")
		return cm.Refresh()
	}

	return nil
}

// Refresh obtém um novo access token a partir do refresh token configurado
func (cm *CredentialManager) Refresh() error {
	cm.CredentialRefreshMutex.Lock()
	defer cm.CredentialRefreshMutex.Unlock()

	if cm.cfg.GSC.RefreshToken == "" {
		return &gscdomain.AuthError{Message: "refresh token não configurado; é necessário reautorizar o aplicativo"}
	}

	form := url.Values{}
	form.Set("client_id", cm.cfg.GSC.ClientID)
	form.Set("client_secret", cm.cfg.GSC.ClientSecret)
	form.Set("refresh_token", cm.cfg.GSC.RefreshToken)
	form.Set("grant_type", "refresh_token")

	resp, err := cm.httpClient.Post(
		cm.cfg.GSC.TokenURL,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return &gscdomain.TransportError{Message: "erro ao chamar o endpoint de token: " + err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &gscdomain.TransportError{StatusCode: resp.StatusCode, Message: "erro ao ler resposta do endpoint de token: " + err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		// invalid_grant indica refresh token revogado ou expirado: não há
		// renovação automática possível, o chamador precisa reautorizar
		if strings.Contains(string(body), "invalid_grant") {
			logrus.Error("O refresh token foi revogado ou expirou. É necessário reautorizar")
			return &gscdomain.AuthError{
				Reason:  "invalid_grant",
				Message: "refresh token revogado ou expirado; é necessário reautorizar o aplicativo",
			}
		}
		return gscdomain.ClassifyResponse(resp.StatusCode, body, 0)
	}

	var tokenResponse gscdomain.TokenResponse
	if err := json.Unmarshal(body, &tokenResponse); err != nil {
		return &gscdomain.TransportError{StatusCode: resp.StatusCode, Message: "resposta inválida do endpoint de token: " + err.Error()}
	}

	if tokenResponse.AccessToken == "" {
		return &gscdomain.AuthError{Message: "endpoint de token não retornou access token"}
	}

	cm.cfg.GSC.AccessToken = tokenResponse.AccessToken
	cm.cfg.GSC.TokenExpiresAt = CalculateCredentialExpiration(tokenResponse.ExpiresIn)

	logrus.Infof("Access token renovado com sucesso. Expira em: %s",
		cm.cfg.GSC.TokenExpiresAt.Format(time.RFC3339))

	return nil
}

// StartAutoRefresh inicia uma goroutine que renova o access token
// periodicamente, antes da expiração típica de uma hora
func (cm *CredentialManager) StartAutoRefresh() {
	if err := cm.Refresh(); err != nil {
		logrus.Errorf("Erro ao inicializar a credencial: %v", err)
	}

	refreshInterval := 45 * time.Minute
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica da credencial do Search Console")
			if err := cm.Refresh(); err != nil {
				logrus.Errorf("Erro na renovação periódica da credencial: %v", err)

				// Se falhar, tente novamente em um intervalo mais curto
				ticker.Reset(5 * time.Minute)
			} else {
				ticker.Reset(refreshInterval)
			}
		case <-cm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação periódica da credencial")
			return
		}
	}
}

// StopAutoRefresh para a goroutine de renovação automática
func (cm *CredentialManager) StopAutoRefresh() {
	close(cm.stopRefresh)
}

// CalculateCredentialExpiration converte o expires_in (segundos) em um
// instante absoluto, com margem de segurança de um minuto
func CalculateCredentialExpiration(expiresIn int) time.Time {
	if expiresIn <= 0 {
		return time.Time{}
	}
	return time.Now().Add(time.Duration(expiresIn)*time.Second - time.Minute)
}

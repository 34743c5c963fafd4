package gscclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	gscdomain "github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc/domain"
)

// QuerySearchAnalytics executa uma única consulta (uma página) contra o
// endpoint searchAnalytics/query. A resposta pode ser vazia: a API omite o
// campo rows quando não há dados para o intervalo.
func (c *GSCClient) QuerySearchAnalytics(siteURL string, query *gscdomain.SearchAnalyticsQuery) ([]gscdomain.SearchAnalyticsRow, error) {
	// Garantir que a credencial seja válida antes de fazer a requisição
	if err := c.EnsureValidCredential(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/sites/%s/searchAnalytics/query", c.Cfg.GSC.URL, url.PathEscape(siteURL))

	payload, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a consulta: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.Cfg.GSC.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &gscdomain.TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response gscdomain.SearchAnalyticsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, &gscdomain.TransportError{StatusCode: resp.StatusCode, Message: "resposta inválida: " + err.Error()}
	}

	return response.Rows, nil
}

package gscclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	gscdomain "github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc/domain"
)

// ListSites lista todas as propriedades do Search Console acessíveis pela
// credencial configurada, inclusive as não verificadas
func (c *GSCClient) ListSites() ([]gscdomain.SiteEntry, error) {
	if err := c.EnsureValidCredential(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/sites", c.Cfg.GSC.URL)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.Cfg.GSC.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &gscdomain.TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response gscdomain.SitesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, &gscdomain.TransportError{StatusCode: resp.StatusCode, Message: "resposta inválida: " + err.Error()}
	}

	return response.SiteEntry, nil
}

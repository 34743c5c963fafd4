package gscdomain

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrorResponse representa a estrutura de erro da API do Google
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Google
type ErrorDetails struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []ErrorItem `json:"errors,omitempty"`
}

// ErrorItem é um item individual da lista de erros da resposta
type ErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// HasReason verifica se algum item de erro carrega o motivo informado
func (e *ErrorResponse) HasReason(reason string) bool {
	for _, item := range e.Error.Errors {
		if item.Reason == reason {
			return true
		}
	}
	return false
}

// IsRateLimited verifica se o erro é de limite de requisições excedido
func (e *ErrorResponse) IsRateLimited() bool {
	return e.Error.Code == 429 ||
		e.HasReason("rateLimitExceeded") ||
		e.HasReason("userRateLimitExceeded") ||
		e.HasReason("quotaExceeded")
}

// IsAuthFault verifica se o erro é de credencial inválida, expirada ou revogada
func (e *ErrorResponse) IsAuthFault() bool {
	return e.Error.Code == 401 ||
		e.Error.Status == "UNAUTHENTICATED" ||
		e.HasReason("authError") ||
		e.HasReason("invalid_grant")
}

// RateLimitError indica que a API recusou a requisição por excesso de
// chamadas. Falha transitória: a página pode ser tentada novamente.
// RetryAfter fica zerado quando a API não informa o intervalo sugerido.
type RateLimitError struct {
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("limite de requisições excedido (aguardar %s): %s", e.RetryAfter, e.Message)
	}
	return fmt.Sprintf("limite de requisições excedido: %s", e.Message)
}

// TransportError indica uma falha não transitória na comunicação com a API
// (requisição malformada, permissão negada, erro do servidor). A drenagem é
// abortada imediatamente, sem retry.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("erro na resposta da API. Status: %d, Mensagem: %s", e.StatusCode, e.Message)
}

// AuthError indica credencial ausente, expirada ou revogada. Nunca é
// retryada pelo núcleo: o chamador precisa reautenticar.
type AuthError struct {
	Reason  string
	Message string
}

func (e *AuthError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("erro de autenticação (%s): %s", e.Reason, e.Message)
	}
	return fmt.Sprintf("erro de autenticação: %s", e.Message)
}

// ClassifyResponse converte uma resposta de erro HTTP da API no tipo de
// falha correspondente da taxonomia (rate limit, autenticação ou transporte)
func ClassifyResponse(statusCode int, body []byte, retryAfter time.Duration) error {
	errorResp := &ErrorResponse{}
	parseErr := json.Unmarshal(body, errorResp)

	if parseErr == nil {
		if errorResp.IsRateLimited() {
			return &RateLimitError{RetryAfter: retryAfter, Message: errorResp.Error.Message}
		}
		if errorResp.IsAuthFault() {
			return &AuthError{Reason: errorResp.Error.Status, Message: errorResp.Error.Message}
		}
		return &TransportError{StatusCode: statusCode, Message: errorResp.Error.Message}
	}

	// Corpo não estruturado: classificar apenas pelo status HTTP
	if statusCode == 429 {
		return &RateLimitError{RetryAfter: retryAfter, Message: string(body)}
	}
	if statusCode == 401 {
		return &AuthError{Message: string(body)}
	}
	return &TransportError{StatusCode: statusCode, Message: string(body)}
}

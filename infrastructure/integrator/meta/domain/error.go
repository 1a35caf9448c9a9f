package metadomain

import (
	"fmt"
	"strings"
)

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsPermissionDenied verifica se o erro é de permissão não concedida.
// Código 10 e a faixa 200-299 são os erros de permissão da Graph API.
func (e *ErrorResponse) IsPermissionDenied() bool {
	return e.Error.Code == 10 || (e.Error.Code >= 200 && e.Error.Code <= 299)
}

// GraphError é o erro retornado pelo client quando a API responde com payload de erro
type GraphError struct {
	StatusCode int
	Response   ErrorResponse
}

func (e *GraphError) Error() string {
	return fmt.Sprintf("graph api: status %d, code %d (%s): %s",
		e.StatusCode, e.Response.Error.Code, e.Response.Error.Type, e.Response.Error.Message)
}

func (e *GraphError) IsTokenExpired() bool {
	return e.Response.IsTokenExpired() || containsTokenExpirationMessage(e.Response.Error.Message)
}

func (e *GraphError) IsPermissionDenied() bool {
	return e.Response.IsPermissionDenied()
}

// containsTokenExpirationMessage verifica se a mensagem contém indicação de token expirado
func containsTokenExpirationMessage(message string) bool {
	return strings.Contains(message, "Error validating access token") ||
		strings.Contains(message, "Session has expired") ||
		strings.Contains(message, "The session has been invalidated")
}

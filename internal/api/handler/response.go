package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/page-audit-api/internal/domain"
	"github.com/vfg2006/page-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/page-audit-api/pkg/apiErrors"
	"github.com/vfg2006/page-audit-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// mensagens exibidas ao cliente por código
var errorMessages = map[string]string{
	apiErrors.ErrConnectionNotFound:  "Conexão de página não encontrada",
	apiErrors.ErrInvalidCredential:   "A conexão com a página precisa ser refeita",
	apiErrors.ErrQuotaExceeded:       "Limite mensal de auditorias atingido",
	apiErrors.ErrAuditNotFound:       "Auditoria não encontrada",
	apiErrors.ErrInvalidRequest:      "Requisição inválida",
	apiErrors.ErrMissingRequiredData: "Dados obrigatórios ausentes",
	apiErrors.ErrDatabaseOperation:   "Erro ao acessar o banco de dados",
	apiErrors.ErrExternalService:     "Erro ao consultar o Facebook",
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError converte erros dos casos de uso no envelope padronizado
func writeServiceError(w http.ResponseWriter, err error) {
	code := auditing.CodeOf(err)

	var details any
	var auditErr *auditing.AuditError
	if errors.As(err, &auditErr) {
		details = auditErr.Details
	}

	message, ok := errorMessages[code]
	if !ok {
		message = "Erro interno no servidor"
	}

	// erro de validação pode expor a causa
	if code == apiErrors.ErrInvalidRequest {
		cause := err
		if auditErr != nil && auditErr.Err != nil {
			cause = auditErr.Err
		}
		message = apiErrors.FromError(cause, code).Message
	}

	apiErrors.WriteError(w, code, message, details)
}

// identityOrReject retorna a identidade autenticada ou responde AUTH_006
func identityOrReject(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return domain.Identity{}, false
	}
	return *identity, true
}

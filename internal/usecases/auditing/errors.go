package auditing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/page-audit-api/internal/domain"
	"github.com/vfg2006/page-audit-api/pkg/apiErrors"
)

// AuditError é um erro terminal do pipeline com o código estável retornado pela API
type AuditError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details any    // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuditError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuditError) Unwrap() error {
	return e.Err
}

// NewAuditError cria um novo erro de auditoria
func NewAuditError(baseErr error, code string, details any) *AuditError {
	return &AuditError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// CodeOf retorna o código de API do erro, derivando dos erros de domínio quando não há AuditError
func CodeOf(err error) string {
	var auditErr *AuditError
	if errors.As(err, &auditErr) {
		return auditErr.Code
	}

	switch {
	case errors.Is(err, domain.ErrConnectionNotFound):
		return apiErrors.ErrConnectionNotFound
	case errors.Is(err, domain.ErrInvalidCredential):
		return apiErrors.ErrInvalidCredential
	case errors.Is(err, domain.ErrQuotaExceeded):
		return apiErrors.ErrQuotaExceeded
	case errors.Is(err, domain.ErrAuditNotFound):
		return apiErrors.ErrAuditNotFound
	case errors.Is(err, domain.ErrInvalidTimeWindow):
		return apiErrors.ErrInvalidRequest
	default:
		return apiErrors.ErrInternalServer
	}
}

// resultLabel é o rótulo da métrica de execuções
func resultLabel(err error) string {
	if err == nil {
		return "success"
	}

	switch CodeOf(err) {
	case apiErrors.ErrConnectionNotFound:
		return "connection_not_found"
	case apiErrors.ErrInvalidCredential:
		return "invalid_credential"
	case apiErrors.ErrQuotaExceeded:
		return "quota_exceeded"
	case apiErrors.ErrInvalidRequest, apiErrors.ErrMissingRequiredData:
		return "invalid_request"
	default:
		return "error"
	}
}

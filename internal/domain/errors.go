package domain

import "errors"

// Erros terminais do pipeline de auditoria
var (
	ErrConnectionNotFound     = errors.New("conexão de página não encontrada")
	ErrInvalidCredential      = errors.New("credencial da página ausente ou inválida")
	ErrQuotaExceeded          = errors.New("limite mensal de auditorias atingido")
	ErrAuditNotFound          = errors.New("auditoria não encontrada")
	ErrInvalidTimeWindow      = errors.New("janela de tempo inválida")
	ErrInvalidStateTransition = errors.New("transição de estado inválida")
)

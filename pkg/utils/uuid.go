package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const shareCodeLength = 10

// GenerateShareCode gera o código curto usado no link público do relatório
func GenerateShareCode() (string, error) {
	return gonanoid.Generate(characters, shareCodeLength)
}

// NewAuditID gera o identificador de uma auditoria
func NewAuditID() string {
	return uuid.NewString()
}

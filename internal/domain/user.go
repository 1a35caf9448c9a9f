package domain

import (
	"time"
)

// Papéis aceitos no JWT
const (
	RoleAuthenticated = "authenticated"
	RoleService       = "service_role"
)

// User é o dono das conexões de página. O acesso Pro é gravado de forma assíncrona pelo fluxo de pagamento.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	IsPro        bool       `json:"is_pro"`
	ProExpiresAt *time.Time `json:"pro_expires_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsEntitled informa se o usuário tem acesso Pro vigente em now
func (u *User) IsEntitled(now time.Time) bool {
	if u == nil || !u.IsPro {
		return false
	}
	return u.ProExpiresAt == nil || u.ProExpiresAt.After(now)
}

package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PageConnection é a página do Facebook conectada por um usuário
type PageConnection struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	PageID      string    `json:"page_id"`
	PageName    string    `json:"page_name"`
	AccessToken string    `json:"-"`
	AutoAudit   bool      `json:"auto_audit"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Identity é o usuário autenticado junto com o direito de acesso Pro
type Identity struct {
	UserID     string
	Email      string
	Role       string
	IsEntitled bool
}

// Claims são as declarações do JWT emitido pelo backend de autenticação
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// FetchRequest descreve o que deve ser buscado no Graph para uma página
type FetchRequest struct {
	PageID        string
	Credential    string
	Window        TimeWindow
	IncludeDetail bool
}

// FetchResult contém os dados brutos obtidos, com a disponibilidade por categoria
type FetchResult struct {
	Page             *PageSnapshot
	PageInsights     []InsightValue
	Posts            []Post
	PostInsights     map[string]PostInsight
	Demographics     *Demographics
	DataAvailability DataAvailability
}

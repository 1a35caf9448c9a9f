package domain

import (
	"strings"
	"time"
)

// PageSnapshot guarda os atributos estáticos da página no momento da auditoria
type PageSnapshot struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	About         string `json:"about,omitempty"`
	Category      string `json:"category,omitempty"`
	Website       string `json:"website,omitempty"`
	Phone         string `json:"phone,omitempty"`
	FollowerCount *int   `json:"followerCount,omitempty"`
	PictureURL    string `json:"pictureUrl,omitempty"`
}

// HasField informa se o campo de perfil está preenchido
func (p *PageSnapshot) HasField(field string) bool {
	if p == nil {
		return false
	}

	var value string
	switch field {
	case "about":
		value = p.About
	case "category":
		value = p.Category
	case "website":
		value = p.Website
	case "phone":
		value = p.Phone
	}

	return strings.TrimSpace(value) != ""
}

// Followers retorna a contagem de seguidores, se conhecida e positiva
func (p *PageSnapshot) Followers() (int, bool) {
	if p == nil || p.FollowerCount == nil || *p.FollowerCount <= 0 {
		return 0, false
	}
	return *p.FollowerCount, true
}

// Post é a publicação já normalizada a partir da resposta do Graph
type Post struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"createdAt"`
	Message      string    `json:"message,omitempty"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	ShareCount   int       `json:"shareCount"`
	PermalinkURL string    `json:"permalinkUrl,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	MediaType    string    `json:"mediaType,omitempty"`
}

// Tipos de post reconhecidos
const (
	PostTypeStatus = "status"
	PostTypePhoto  = "photo"
	PostTypeVideo  = "video"
	PostTypeLink   = "link"
)

// Engagement é a soma de curtidas, comentários e compartilhamentos
func (p Post) Engagement() int {
	return p.LikeCount + p.CommentCount + p.ShareCount
}

// PostInsight contém as métricas opcionais de um post. Ponteiros nulos indicam valor ausente.
type PostInsight struct {
	Impressions        *int `json:"impressions,omitempty"`
	OrganicImpressions *int `json:"organicImpressions,omitempty"`
	PaidImpressions    *int `json:"paidImpressions,omitempty"`
	EngagedUsers       *int `json:"engagedUsers,omitempty"`
	Clicks             *int `json:"clicks,omitempty"`
}

// HasData informa se ao menos uma métrica veio preenchida
func (i PostInsight) HasData() bool {
	return i.Impressions != nil || i.OrganicImpressions != nil || i.PaidImpressions != nil ||
		i.EngagedUsers != nil || i.Clicks != nil
}

// InsightValue é um ponto de uma métrica de página (page insights)
type InsightValue struct {
	Metric  string     `json:"metric"`
	Period  string     `json:"period,omitempty"`
	Value   float64    `json:"value"`
	EndTime *time.Time `json:"endTime,omitempty"`
}

// Demographics agrupa as distribuições de seguidores por dimensão
type Demographics struct {
	City      map[string]int `json:"city,omitempty"`
	Country   map[string]int `json:"country,omitempty"`
	GenderAge map[string]int `json:"genderAge,omitempty"`
}

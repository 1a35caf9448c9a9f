package insighting

import (
	"github.com/vfg2006/page-audit-api/internal/domain"
)

// MetricAggregator reduz os dados brutos de uma página em resumos escalares e séries temporais.
// Todas as operações são puras: mesma entrada, mesma saída.
type MetricAggregator interface {
	// Aggregate calcula os totais, médias e cadência de postagem
	Aggregate(page *domain.PageSnapshot, posts []domain.Post) domain.AggregatedMetrics

	// PaidVsOrganic soma as impressões pagas e orgânicas dos posts com insights
	PaidVsOrganic(posts []domain.Post, insights map[string]domain.PostInsight) domain.PaidVsOrganic

	// PostTypeAnalysis agrupa os posts por tipo
	PostTypeAnalysis(posts []domain.Post) []domain.PostTypeStats

	// TrendSeries agrupa os valores de insights da página por métrica e data
	TrendSeries(values []domain.InsightValue) map[string][]domain.TrendPoint
}

package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/vfg2006/page-audit-api/internal/domain"
	"github.com/vfg2006/page-audit-api/pkg/utils"
)

const (
	minScore = 0
	maxScore = 100
)

// Categorias de recomendação
const (
	CategoryEngagement  = "engagement"
	CategoryConsistency = "consistency"
	CategoryContent     = "content"
	CategoryTiming      = "timing"
	CategoryProfile     = "profile"
)

type Scorer interface {
	Score(metrics domain.AggregatedMetrics, page *domain.PageSnapshot) domain.ScoreBreakdown
	Recommend(breakdown domain.ScoreBreakdown, metrics domain.AggregatedMetrics, page *domain.PageSnapshot, entitled bool) []domain.Recommendation
	Benchmarks(metrics domain.AggregatedMetrics) domain.Benchmarks
}

// Engine é determinístico: não consulta serviços externos nem usa aleatoriedade
type Engine struct {
	policy Policy
}

func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

func (e *Engine) Policy() Policy {
	return e.policy
}

func (e *Engine) Score(metrics domain.AggregatedMetrics, page *domain.PageSnapshot) domain.ScoreBreakdown {
	breakdown := domain.ScoreBreakdown{
		Engagement:  utils.ClampInt(e.engagementScore(metrics), minScore, maxScore),
		Consistency: utils.ClampInt(e.consistencyScore(metrics.PostsPerWeek), minScore, maxScore),
		Readiness:   utils.ClampInt(e.readinessScore(page), minScore, maxScore),
	}

	// conversões explícitas evitam fusão em FMA
	w := e.policy.Weights
	overall := float64(w.Engagement*float64(breakdown.Engagement)) +
		float64(w.Consistency*float64(breakdown.Consistency)) +
		float64(w.Readiness*float64(breakdown.Readiness))

	breakdown.Overall = utils.ClampInt(int(math.Round(overall)), minScore, maxScore)

	return breakdown
}

// EngagementRate recalcula a taxa a partir da média não arredondada
func (e *Engine) EngagementRate(metrics domain.AggregatedMetrics) float64 {
	followers := metrics.Followers
	if followers <= 0 {
		followers = e.policy.DefaultFollowers
	}
	if followers <= 0 {
		return 0
	}
	return metrics.AvgEngagementPerPost / float64(followers) * 100
}

func (e *Engine) engagementScore(metrics domain.AggregatedMetrics) int {
	tiers := e.policy.Engagement
	rate := e.EngagementRate(metrics)
	linear := math.Min(100, rate*tiers.Multiplier)

	switch {
	case rate >= tiers.TopRate:
		return maxScore
	case rate >= tiers.HighRate:
		return max(tiers.HighFloor, int(math.Round(linear)))
	case rate >= tiers.MediumRate:
		return max(tiers.MediumFloor, int(math.Round(linear)))
	default:
		return max(tiers.Floor, int(math.Round(linear)))
	}
}

func (e *Engine) consistencyScore(postsPerWeek float64) int {
	for _, step := range e.policy.ConsistencySteps {
		if postsPerWeek >= step.MinPostsPerWeek {
			return step.Score
		}
	}
	return e.policy.ConsistencyFloor
}

func (e *Engine) readinessScore(page *domain.PageSnapshot) int {
	score := 0
	for _, field := range e.policy.ReadinessFields {
		if page.HasField(field) {
			score += e.policy.ReadinessPoints
		}
	}
	return score
}

// Recommend gera as recomendações em ordem fixa: engajamento, consistência e, para usuários Pro,
// tipo de conteúdo, horário e perfil.
func (e *Engine) Recommend(breakdown domain.ScoreBreakdown, metrics domain.AggregatedMetrics, page *domain.PageSnapshot, entitled bool) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0)
	th := e.policy.Thresholds

	if breakdown.Engagement < th.Engagement {
		recs = append(recs, domain.Recommendation{
			Priority: domain.PriorityHigh,
			Category: CategoryEngagement,
			Title:    "Aumente o engajamento dos posts",
			Description: fmt.Sprintf(
				"A taxa de engajamento está em %.2f%%, abaixo da faixa de referência de %.0f%% a %.0f%%. Faça perguntas, use chamadas para ação e responda os comentários.",
				metrics.EngagementRatePercent, e.policy.Benchmarks.EngagementRateMin, e.policy.Benchmarks.EngagementRateMax,
			),
		})
	}

	if breakdown.Consistency < th.Consistency {
		recs = append(recs, domain.Recommendation{
			Priority: domain.PriorityHigh,
			Category: CategoryConsistency,
			Title:    "Publique com mais frequência",
			Description: fmt.Sprintf(
				"A página publica %.1f posts por semana. Mantenha um calendário com pelo menos %.0f posts semanais.",
				metrics.PostsPerWeek, e.policy.Benchmarks.PostsPerWeek,
			),
		})
	}

	if !entitled {
		return recs
	}

	topType := metrics.TopPostType
	if topType == "" {
		topType = domain.PostTypePhoto
	}
	recs = append(recs, domain.Recommendation{
		Priority:    domain.PriorityMedium,
		Category:    CategoryContent,
		Title:       "Aposte no formato que mais aparece",
		Description: fmt.Sprintf("O formato predominante é %q. Teste variações desse formato e compare com vídeos curtos.", topType),
		IsProOnly:   true,
	})

	recs = append(recs, domain.Recommendation{
		Priority:    domain.PriorityLow,
		Category:    CategoryTiming,
		Title:       "Poste nos horários de maior audiência",
		Description: fmt.Sprintf("Concentre as publicações em %s.", e.policy.BestTimeToPost),
		IsProOnly:   true,
	})

	if breakdown.Readiness < th.Readiness {
		missing := make([]string, 0)
		for _, field := range e.policy.ReadinessFields {
			if !page.HasField(field) {
				missing = append(missing, field)
			}
		}
		recs = append(recs, domain.Recommendation{
			Priority:    domain.PriorityMedium,
			Category:    CategoryProfile,
			Title:       "Complete o perfil da página",
			Description: fmt.Sprintf("Preencha os campos ausentes: %s.", strings.Join(missing, ", ")),
			IsProOnly:   true,
		})
	}

	return recs
}

// Benchmarks compara as métricas com as referências de mercado
func (e *Engine) Benchmarks(metrics domain.AggregatedMetrics) domain.Benchmarks {
	return domain.Benchmarks{
		PostingFrequency: domain.PostingFrequencyBenchmark{
			Current: metrics.PostsPerWeek,
			Target:  e.policy.Benchmarks.PostsPerWeek,
			Unit:    "posts/semana",
		},
		EngagementRate: domain.EngagementRateBenchmark{
			Current: metrics.EngagementRatePercent,
			Min:     e.policy.Benchmarks.EngagementRateMin,
			Max:     e.policy.Benchmarks.EngagementRateMax,
		},
	}
}

// FilterForTier aplica o recorte do plano: sem acesso Pro, remove itens Pro e mantém só os primeiros limit
func FilterForTier(recs []domain.Recommendation, entitled bool, limit int) []domain.Recommendation {
	if entitled {
		out := make([]domain.Recommendation, len(recs))
		copy(out, recs)
		return out
	}

	out := make([]domain.Recommendation, 0, len(recs))
	for _, r := range recs {
		if r.IsProOnly {
			continue
		}
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, r)
	}
	return out
}

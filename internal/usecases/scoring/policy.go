package scoring

import (
	"github.com/vfg2006/page-audit-api/internal/config"
	"github.com/vfg2006/page-audit-api/internal/domain"
)

// Weights são os pesos de cada nota parcial na nota geral
type Weights struct {
	Engagement  float64
	Consistency float64
	Readiness   float64
}

// EngagementTiers define os pisos aplicados à taxa de engajamento (em %)
type EngagementTiers struct {
	TopRate     float64
	HighRate    float64
	HighFloor   int
	MediumRate  float64
	MediumFloor int
	Floor       int
	Multiplier  float64
}

// ConsistencyStep mapeia uma cadência mínima de posts por semana para uma nota
type ConsistencyStep struct {
	MinPostsPerWeek float64
	Score           int
}

// Thresholds abaixo dos quais uma recomendação é emitida
type Thresholds struct {
	Engagement  int
	Consistency int
	Readiness   int
}

// BenchmarkTargets são as referências de mercado exibidas no relatório detalhado
type BenchmarkTargets struct {
	PostsPerWeek      float64
	EngagementRateMin float64
	EngagementRateMax float64
}

// Policy reúne todas as constantes de negócio da pontuação
type Policy struct {
	Weights          Weights
	Engagement       EngagementTiers
	ConsistencySteps []ConsistencyStep
	ConsistencyFloor int
	ReadinessFields  []string
	ReadinessPoints  int
	DefaultFollowers int
	Thresholds       Thresholds
	Benchmarks       BenchmarkTargets
	BestTimeToPost   string
}

func DefaultPolicy() Policy {
	return Policy{
		Weights: Weights{
			Engagement:  0.4,
			Consistency: 0.35,
			Readiness:   0.25,
		},
		Engagement: EngagementTiers{
			TopRate:     5,
			HighRate:    3,
			HighFloor:   85,
			MediumRate:  1,
			MediumFloor: 65,
			Floor:       20,
			Multiplier:  20,
		},
		// Ordem decrescente, primeira que casar vence
		ConsistencySteps: []ConsistencyStep{
			{MinPostsPerWeek: 7, Score: 100},
			{MinPostsPerWeek: 5, Score: 85},
			{MinPostsPerWeek: 3, Score: 70},
			{MinPostsPerWeek: 1, Score: 50},
		},
		ConsistencyFloor: 20,
		ReadinessFields:  []string{"about", "category", "website", "phone"},
		ReadinessPoints:  25,
		DefaultFollowers: domain.DefaultFollowers,
		Thresholds: Thresholds{
			Engagement:  50,
			Consistency: 60,
			Readiness:   75,
		},
		Benchmarks: BenchmarkTargets{
			PostsPerWeek:      4,
			EngagementRateMin: 1,
			EngagementRateMax: 3,
		},
		BestTimeToPost: "terças a quintas, entre 9h e 13h",
	}
}

// PolicyFromConfig sobrepõe os valores configurados aos padrões. Valores não positivos são ignorados.
func PolicyFromConfig(cfg *config.Config) Policy {
	p := DefaultPolicy()
	if cfg == nil {
		return p
	}

	s := cfg.Scoring

	setFloat(&p.Weights.Engagement, s.EngagementWeight)
	setFloat(&p.Weights.Consistency, s.ConsistencyWeight)
	setFloat(&p.Weights.Readiness, s.ReadinessWeight)

	setFloat(&p.Engagement.TopRate, s.EngagementTopRate)
	setFloat(&p.Engagement.HighRate, s.EngagementHighRate)
	setInt(&p.Engagement.HighFloor, s.EngagementHighFloor)
	setFloat(&p.Engagement.MediumRate, s.EngagementMediumRate)
	setInt(&p.Engagement.MediumFloor, s.EngagementMediumFloor)
	setInt(&p.Engagement.Floor, s.EngagementFloor)
	setFloat(&p.Engagement.Multiplier, s.EngagementMultiplier)

	setInt(&p.DefaultFollowers, s.DefaultFollowers)

	setInt(&p.Thresholds.Engagement, s.EngagementRecThreshold)
	setInt(&p.Thresholds.Consistency, s.ConsistencyRecThreshold)
	setInt(&p.Thresholds.Readiness, s.ReadinessRecThreshold)

	return p
}

func setFloat(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

package domain

// DefaultFollowers substitui a contagem de seguidores quando a página não a informa
const DefaultFollowers = 1000

// AggregatedMetrics é o resumo escalar derivado dos posts e da página
type AggregatedMetrics struct {
	Followers             int     `json:"followers"`
	TotalLikes            int     `json:"totalLikes"`
	TotalComments         int     `json:"totalComments"`
	TotalShares           int     `json:"totalShares"`
	TotalEngagements      int     `json:"totalEngagements"`
	PostsCount            int     `json:"postsCount"`
	PostsPerWeek          float64 `json:"postsPerWeek"`
	AvgEngagementPerPost  float64 `json:"avgEngagementPerPost"`
	EngagementRatePercent float64 `json:"engagementRatePercent"`
	TopPostType           string  `json:"topPostType,omitempty"`
}

// ScoreBreakdown contém as notas parciais e a nota geral, todas em [0,100]
type ScoreBreakdown struct {
	Engagement  int `json:"engagement"`
	Consistency int `json:"consistency"`
	Readiness   int `json:"readiness"`
	Overall     int `json:"overall"`
}

// Prioridades de recomendação
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Recommendation é um item de ação sugerido ao dono da página
type Recommendation struct {
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsProOnly   bool   `json:"isProOnly"`
}

// RankedPost é a visão combinada de post + insight usada no ranking
type RankedPost struct {
	Post
	Insight               *PostInsight `json:"insight,omitempty"`
	Engagement            int          `json:"engagement"`
	EngagementRatePercent *float64     `json:"engagementRatePercent,omitempty"`
	Reason                string       `json:"reason"`
}

// PostsAnalysis contém os subconjuntos de melhores e piores posts
type PostsAnalysis struct {
	Top        []RankedPost `json:"top"`
	NeedsWork  []RankedPost `json:"needsWork"`
	TotalCount int          `json:"totalCount"`
}

// PaidVsOrganic resume a atribuição de impressões pagas x orgânicas.
// Available=false significa que nenhum post retornou insights.
type PaidVsOrganic struct {
	Available          bool    `json:"available"`
	PaidPercent        float64 `json:"paid"`
	OrganicPercent     float64 `json:"organic"`
	PaidImpressions    int     `json:"paidImpressions"`
	OrganicImpressions int     `json:"organicImpressions"`
	PostsWithInsights  int     `json:"postsWithInsights"`
	Note               string  `json:"note,omitempty"`
}

// PostTypeStats é o resumo de um tipo de post
type PostTypeStats struct {
	Type              string  `json:"type"`
	Count             int     `json:"count"`
	TotalEngagement   int     `json:"totalEngagement"`
	AvgEngagement     float64 `json:"avgEngagement"`
	SharePercentPosts float64 `json:"sharePercentPosts"`
}

// TrendPoint é um ponto de uma série temporal
type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Benchmark de frequência de postagem
type PostingFrequencyBenchmark struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Unit    string  `json:"unit"`
}

// Benchmark de taxa de engajamento
type EngagementRateBenchmark struct {
	Current float64 `json:"current"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Benchmarks compara as métricas da página com as referências de mercado
type Benchmarks struct {
	PostingFrequency PostingFrequencyBenchmark `json:"postingFrequency"`
	EngagementRate   EngagementRateBenchmark   `json:"engagementRate"`
}

package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/page-audit-api/internal/config"
	"github.com/vfg2006/page-audit-api/internal/domain"
	"github.com/vfg2006/page-audit-api/internal/usecases/insighting"
)

func fullPage() *domain.PageSnapshot {
	followers := 10000
	return &domain.PageSnapshot{
		About:         "Pizzaria no centro",
		Category:      "Restaurante",
		Website:       "https://exemplo.com",
		Phone:         "+55 11 99999-0000",
		FollowerCount: &followers,
	}
}

func TestScore_ConcreteScenario(t *testing.T) {
	engine := NewEngine(DefaultPolicy())

	metrics := domain.AggregatedMetrics{
		Followers:             10000,
		TotalLikes:            400,
		TotalComments:         80,
		TotalShares:           20,
		TotalEngagements:      500,
		PostsCount:            10,
		PostsPerWeek:          5,
		AvgEngagementPerPost:  50,
		EngagementRatePercent: 0.5,
	}

	breakdown := engine.Score(metrics, fullPage())
	assert.Equal(t, domain.ScoreBreakdown{Engagement: 20, Consistency: 85, Readiness: 100, Overall: 63}, breakdown)
}

func TestScore_DegradedData(t *testing.T) {
	engine := NewEngine(DefaultPolicy())

	// zero posts: seguidores padrão e cadência substituta de 3 por semana
	metrics := domain.AggregatedMetrics{Followers: 1000, PostsPerWeek: 3}

	breakdown := engine.Score(metrics, nil)
	assert.Equal(t, 20, breakdown.Engagement)
	assert.Equal(t, 70, breakdown.Consistency)
	assert.Equal(t, 0, breakdown.Readiness)
	assert.Equal(t, 33, breakdown.Overall)

	// sem o substituto a cadência real zero cai no piso
	metrics.PostsPerWeek = 0
	breakdown = engine.Score(metrics, &domain.PageSnapshot{Category: "Loja"})
	assert.Equal(t, 20, breakdown.Consistency)
	assert.Equal(t, 25, breakdown.Readiness)
}

func TestEngagementScoreTiers(t *testing.T) {
	engine := NewEngine(DefaultPolicy())

	tests := []struct {
		name     string
		avg      float64
		expected int
	}{
		{name: "acima de 5%", avg: 60, expected: 100},
		{name: "exatamente 5%", avg: 50, expected: 100},
		{name: "entre 3% e 5% com linear menor que o piso", avg: 35, expected: 85},
		{name: "entre 3% e 5% com linear maior que o piso", avg: 45, expected: 90},
		{name: "entre 1% e 3%", avg: 20, expected: 65},
		{name: "entre 1% e 3% com linear maior que o piso", avg: 29, expected: 65},
		{name: "abaixo de 1%", avg: 8, expected: 20},
		{name: "zero", avg: 0, expected: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := domain.AggregatedMetrics{Followers: 1000, AvgEngagementPerPost: tt.avg}
			assert.Equal(t, tt.expected, engine.Score(metrics, nil).Engagement)
		})
	}
}

func TestEngagementRate_FollowersFallback(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	assert.InDelta(t, 5.0, engine.EngagementRate(domain.AggregatedMetrics{AvgEngagementPerPost: 50}), 1e-9)
}

func TestEngagementScore_UsesUnroundedAverage(t *testing.T) {
	engine := NewEngine(DefaultPolicy())

	// 29.9967 por post em 3000 seguidores fica logo abaixo de 1%
	metrics := domain.AggregatedMetrics{Followers: 3000, AvgEngagementPerPost: 8999.0 / 300}
	assert.Equal(t, 20, engine.Score(metrics, nil).Engagement)

	metrics.AvgEngagementPerPost = 30
	assert.Equal(t, 65, engine.Score(metrics, nil).Engagement)
}

func TestDefaultFollowers_SharedWithAggregator(t *testing.T) {
	assert.Equal(t, insighting.DefaultSettings().DefaultFollowers, DefaultPolicy().DefaultFollowers)

	cfg := &config.Config{Scoring: config.Scoring{DefaultFollowers: 2500}}
	assert.Equal(t, insighting.SettingsFromConfig(cfg).DefaultFollowers, PolicyFromConfig(cfg).DefaultFollowers)
}

func TestConsistencyScore(t *testing.T) {
	engine := NewEngine(DefaultPolicy())

	tests := []struct {
		postsPerWeek float64
		expected     int
	}{
		{postsPerWeek: 10, expected: 100},
		{postsPerWeek: 7, expected: 100},
		{postsPerWeek: 6.9, expected: 85},
		{postsPerWeek: 5, expected: 85},
		{postsPerWeek: 3, expected: 70},
		{postsPerWeek: 1, expected: 50},
		{postsPerWeek: 0.5, expected: 20},
		{postsPerWeek: 0, expected: 20},
	}

	for _, tt := range tests {
		metrics := domain.AggregatedMetrics{Followers: 1000, PostsPerWeek: tt.postsPerWeek}
		assert.Equal(t, tt.expected, engine.Score(metrics, nil).Consistency, "postsPerWeek=%v", tt.postsPerWeek)
	}
}

func TestReadinessScore(t *testing.T) {
	engine := NewEngine(DefaultPolicy())

	pages := []struct {
		page     *domain.PageSnapshot
		expected int
	}{
		{page: nil, expected: 0},
		{page: &domain.PageSnapshot{}, expected: 0},
		{page: &domain.PageSnapshot{Phone: "1"}, expected: 25},
		{page: &domain.PageSnapshot{Website: "x", About: "y"}, expected: 50},
		{page: &domain.PageSnapshot{About: "a", Category: "b", Website: "c"}, expected: 75},
		{page: fullPage(), expected: 100},
	}

	for _, tt := range pages {
		assert.Equal(t, tt.expected, engine.Score(domain.AggregatedMetrics{Followers: 1}, tt.page).Readiness)
	}
}

func TestScore_Bounds(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	pages := []*domain.PageSnapshot{nil, {About: "a"}, fullPage()}

	for _, followers := range []int{-10, 0, 1, 50, 1000, 1_000_000} {
		for _, avg := range []float64{0, 0.3, 7, 42, 900, 1e9} {
			for _, ppw := range []float64{-1, 0, 0.9, 2.5, 4, 6, 21} {
				for _, page := range pages {
					metrics := domain.AggregatedMetrics{Followers: followers, AvgEngagementPerPost: avg, PostsPerWeek: ppw}
					b := engine.Score(metrics, page)

					for _, v := range []int{b.Engagement, b.Consistency, b.Readiness, b.Overall} {
						require.GreaterOrEqual(t, v, 0)
						require.LessOrEqual(t, v, 100)
					}

					expected := int(math.Round(0.4*float64(b.Engagement) + 0.35*float64(b.Consistency) + 0.25*float64(b.Readiness)))
					assert.InDelta(t, expected, b.Overall, 1)
				}
			}
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	metrics := domain.AggregatedMetrics{Followers: 321, AvgEngagementPerPost: 9.87, PostsPerWeek: 4.2}
	assert.Equal(t, engine.Score(metrics, fullPage()), engine.Score(metrics, fullPage()))
}

func TestRecommend(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	low := domain.ScoreBreakdown{Engagement: 20, Consistency: 50, Readiness: 50}
	metrics := domain.AggregatedMetrics{PostsPerWeek: 1.2, EngagementRatePercent: 0.3, TopPostType: domain.PostTypeVideo}
	page := &domain.PageSnapshot{About: "x", Category: "y"}

	t.Run("usuário gratuito recebe apenas regras básicas", func(t *testing.T) {
		recs := engine.Recommend(low, metrics, page, false)
		require.Len(t, recs, 2)
		assert.Equal(t, CategoryEngagement, recs[0].Category)
		assert.Equal(t, CategoryConsistency, recs[1].Category)
		for _, r := range recs {
			assert.False(t, r.IsProOnly)
			assert.Equal(t, domain.PriorityHigh, r.Priority)
		}
	})

	t.Run("usuário Pro recebe a lista completa em ordem fixa", func(t *testing.T) {
		recs := engine.Recommend(low, metrics, page, true)
		require.Len(t, recs, 5)
		categories := []string{recs[0].Category, recs[1].Category, recs[2].Category, recs[3].Category, recs[4].Category}
		assert.Equal(t, []string{CategoryEngagement, CategoryConsistency, CategoryContent, CategoryTiming, CategoryProfile}, categories)
		assert.Contains(t, recs[2].Description, "video")
		assert.Contains(t, recs[4].Description, "website, phone")
	})

	t.Run("notas boas sem recomendações básicas", func(t *testing.T) {
		good := domain.ScoreBreakdown{Engagement: 50, Consistency: 60, Readiness: 75}
		assert.Empty(t, engine.Recommend(good, metrics, page, false))

		recs := engine.Recommend(good, metrics, page, true)
		require.Len(t, recs, 2)
		assert.Equal(t, CategoryContent, recs[0].Category)
		assert.Equal(t, CategoryTiming, recs[1].Category)
	})
}

func TestFilterForTier(t *testing.T) {
	recs := []domain.Recommendation{
		{Title: "a"},
		{Title: "pro-1", IsProOnly: true},
		{Title: "b"},
		{Title: "c"},
		{Title: "d"},
		{Title: "pro-2", IsProOnly: true},
	}

	free := FilterForTier(recs, false, 3)
	require.Len(t, free, 3)
	for _, r := range free {
		assert.False(t, r.IsProOnly)
	}
	assert.Equal(t, "a", free[0].Title)
	assert.Equal(t, "c", free[2].Title)

	assert.Len(t, FilterForTier(recs, false, 0), 4)
	assert.Equal(t, recs, FilterForTier(recs, true, 3))
	assert.Empty(t, FilterForTier(nil, false, 3))
}

func TestPolicyFromConfig(t *testing.T) {
	assert.Equal(t, DefaultPolicy(), PolicyFromConfig(nil))

	cfg := &config.Config{Scoring: config.Scoring{
		EngagementWeight:        0.5,
		EngagementFloor:         10,
		ConsistencyRecThreshold: 70,
	}}
	p := PolicyFromConfig(cfg)
	assert.Equal(t, 0.5, p.Weights.Engagement)
	assert.Equal(t, 0.35, p.Weights.Consistency)
	assert.Equal(t, 10, p.Engagement.Floor)
	assert.Equal(t, 70, p.Thresholds.Consistency)
	assert.Equal(t, 85, p.Engagement.HighFloor)
}

func TestBenchmarks(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	b := engine.Benchmarks(domain.AggregatedMetrics{PostsPerWeek: 2.5, EngagementRatePercent: 1.75})

	assert.Equal(t, 2.5, b.PostingFrequency.Current)
	assert.Equal(t, 4.0, b.PostingFrequency.Target)
	assert.Equal(t, 1.75, b.EngagementRate.Current)
	assert.Equal(t, 1.0, b.EngagementRate.Min)
	assert.Equal(t, 3.0, b.EngagementRate.Max)
}

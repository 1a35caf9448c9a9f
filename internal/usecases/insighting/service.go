package insighting

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/page-audit-api/internal/config"
	"github.com/vfg2006/page-audit-api/internal/domain"
	"github.com/vfg2006/page-audit-api/pkg/utils"
)

const (
	defaultFallbackPostsWeek = 3.0
	minPostsForCadence       = 2
	unknownPostType          = "unknown"
	noPaidImpressionsNote    = "Nenhuma impressão paga no período: todo o alcance foi orgânico."
)

// Settings são os valores substitutos usados quando os dados não permitem o cálculo
type Settings struct {
	DefaultFollowers     int
	FallbackPostsPerWeek float64
}

func DefaultSettings() Settings {
	return Settings{
		DefaultFollowers:     domain.DefaultFollowers,
		FallbackPostsPerWeek: defaultFallbackPostsWeek,
	}
}

// SettingsFromConfig lê os substitutos da configuração de pontuação, mantendo os padrões para valores inválidos
func SettingsFromConfig(cfg *config.Config) Settings {
	s := DefaultSettings()
	if cfg == nil {
		return s
	}
	if cfg.Scoring.DefaultFollowers > 0 {
		s.DefaultFollowers = cfg.Scoring.DefaultFollowers
	}
	if cfg.Scoring.FallbackPostsPerWeek > 0 {
		s.FallbackPostsPerWeek = cfg.Scoring.FallbackPostsPerWeek
	}
	return s
}

type Service struct {
	settings Settings
}

func NewService(settings Settings) MetricAggregator {
	return &Service{settings: settings}
}

func (s *Service) Aggregate(page *domain.PageSnapshot, posts []domain.Post) domain.AggregatedMetrics {
	metrics := domain.AggregatedMetrics{
		PostsCount: len(posts),
	}

	for _, p := range posts {
		metrics.TotalLikes += p.LikeCount
		metrics.TotalComments += p.CommentCount
		metrics.TotalShares += p.ShareCount
	}
	metrics.TotalEngagements = metrics.TotalLikes + metrics.TotalComments + metrics.TotalShares

	followers, ok := page.Followers()
	if !ok {
		followers = s.settings.DefaultFollowers
	}
	metrics.Followers = followers

	// Sem posts o divisor vira 1 e a taxa fica em zero
	divisor := len(posts)
	if divisor == 0 {
		divisor = 1
	}

	// a média fica sem arredondamento para a pontuação; só a taxa é arredondada
	metrics.AvgEngagementPerPost = float64(metrics.TotalEngagements) / float64(divisor)
	metrics.EngagementRatePercent = utils.RoundWithTwoDecimalPlace(metrics.AvgEngagementPerPost / float64(followers) * 100)
	metrics.PostsPerWeek = s.postsPerWeek(posts)

	// Tipo do primeiro post na ordem de busca
	if len(posts) > 0 {
		metrics.TopPostType = posts[0].Type
	}

	return metrics
}

func (s *Service) postsPerWeek(posts []domain.Post) float64 {
	var oldest, newest time.Time
	dated := 0
	for _, p := range posts {
		if p.CreatedAt.IsZero() {
			continue
		}
		if dated == 0 || p.CreatedAt.Before(oldest) {
			oldest = p.CreatedAt
		}
		if dated == 0 || p.CreatedAt.After(newest) {
			newest = p.CreatedAt
		}
		dated++
	}

	if len(posts) < minPostsForCadence || dated < minPostsForCadence {
		return s.settings.FallbackPostsPerWeek
	}

	// intervalo fracionário em dias, com mínimo de um dia
	days := math.Max(1, newest.Sub(oldest).Hours()/24)

	return utils.RoundWithOneDecimalPlace(float64(len(posts)) / days * 7)
}

func (s *Service) PaidVsOrganic(posts []domain.Post, insights map[string]domain.PostInsight) domain.PaidVsOrganic {
	result := domain.PaidVsOrganic{}

	for _, p := range posts {
		insight, ok := insights[p.ID]
		if !ok || !insight.HasData() {
			continue
		}
		result.PostsWithInsights++
		if insight.PaidImpressions != nil {
			result.PaidImpressions += *insight.PaidImpressions
		}
		if insight.OrganicImpressions != nil {
			result.OrganicImpressions += *insight.OrganicImpressions
		}
	}

	if result.PostsWithInsights == 0 {
		return result
	}

	result.Available = true

	if result.PaidImpressions == 0 {
		result.PaidPercent = 0
		result.OrganicPercent = 100
		result.Note = noPaidImpressionsNote
		return result
	}

	total := float64(result.PaidImpressions + result.OrganicImpressions)
	result.PaidPercent = utils.RoundWithTwoDecimalPlace(float64(result.PaidImpressions) / total * 100)
	result.OrganicPercent = utils.RoundWithTwoDecimalPlace(100 - result.PaidPercent)

	return result
}

func (s *Service) PostTypeAnalysis(posts []domain.Post) []domain.PostTypeStats {
	stats := make([]domain.PostTypeStats, 0)
	if len(posts) == 0 {
		return stats
	}

	index := make(map[string]int)
	for _, p := range posts {
		postType := p.Type
		if postType == "" {
			postType = unknownPostType
		}

		i, ok := index[postType]
		if !ok {
			stats = append(stats, domain.PostTypeStats{Type: postType})
			i = len(stats) - 1
			index[postType] = i
		}
		stats[i].Count++
		stats[i].TotalEngagement += p.Engagement()
	}

	for i := range stats {
		stats[i].AvgEngagement = utils.RoundWithTwoDecimalPlace(float64(stats[i].TotalEngagement) / float64(stats[i].Count))
		stats[i].SharePercentPosts = utils.RoundWithOneDecimalPlace(float64(stats[i].Count) / float64(len(posts)) * 100)
	}

	return stats
}

func (s *Service) TrendSeries(values []domain.InsightValue) map[string][]domain.TrendPoint {
	grouped := make(map[string]map[string]float64)

	for _, v := range values {
		if v.EndTime == nil || v.Metric == "" {
			continue
		}
		date := v.EndTime.UTC().Format(time.DateOnly)
		if _, ok := grouped[v.Metric]; !ok {
			grouped[v.Metric] = make(map[string]float64)
		}
		grouped[v.Metric][date] += v.Value
	}

	series := make(map[string][]domain.TrendPoint, len(grouped))
	for metric, byDate := range grouped {
		points := make([]domain.TrendPoint, 0, len(byDate))
		for date, value := range byDate {
			points = append(points, domain.TrendPoint{Date: date, Value: value})
		}
		sort.Slice(points, func(i, j int) bool {
			return points[i].Date < points[j].Date
		})
		series[metric] = points
	}

	return series
}

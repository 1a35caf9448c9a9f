package ranking

import (
	"fmt"
	"sort"

	"github.com/vfg2006/page-audit-api/internal/domain"
	"github.com/vfg2006/page-audit-api/pkg/utils"
)

const subsetSize = 5

const (
	highEngagementFactor = 2.0
	lowEngagementFactor  = 0.5
	strongShareRatio     = 0.2
)

type Ranker interface {
	RankPosts(posts []domain.Post, insights map[string]domain.PostInsight) domain.PostsAnalysis
}

type PostRanker struct{}

func NewPostRanker() Ranker {
	return &PostRanker{}
}

// RankPosts ordena os posts por engajamento (ordenação estável, empates mantêm a ordem de busca).
// Com menos de 10 posts os dois grupos podem se sobrepor.
func (r *PostRanker) RankPosts(posts []domain.Post, insights map[string]domain.PostInsight) domain.PostsAnalysis {
	analysis := domain.PostsAnalysis{
		Top:        make([]domain.RankedPost, 0),
		NeedsWork:  make([]domain.RankedPost, 0),
		TotalCount: len(posts),
	}
	if len(posts) == 0 {
		return analysis
	}

	ranked := make([]domain.RankedPost, 0, len(posts))
	total := 0
	for _, p := range posts {
		rp := domain.RankedPost{
			Post:       p,
			Engagement: p.Engagement(),
		}
		if insight, ok := insights[p.ID]; ok && insight.HasData() {
			in := insight
			rp.Insight = &in
			if in.Impressions != nil && *in.Impressions > 0 {
				rate := utils.RoundWithTwoDecimalPlace(float64(rp.Engagement) / float64(*in.Impressions) * 100)
				rp.EngagementRatePercent = &rate
			}
		}
		total += rp.Engagement
		ranked = append(ranked, rp)
	}

	average := float64(total) / float64(len(ranked))

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Engagement > ranked[j].Engagement
	})

	n := min(subsetSize, len(ranked))

	for i := 0; i < n; i++ {
		rp := ranked[i]
		rp.Reason = topReason(rp, average)
		analysis.Top = append(analysis.Top, rp)
	}

	// Últimos n em ordem inversa: o pior post vem primeiro
	for i := len(ranked) - 1; i >= len(ranked)-n; i-- {
		rp := ranked[i]
		rp.Reason = needsWorkReason(rp, average)
		analysis.NeedsWork = append(analysis.NeedsWork, rp)
	}

	return analysis
}

func topReason(rp domain.RankedPost, average float64) string {
	switch {
	case average > 0 && float64(rp.Engagement) >= highEngagementFactor*average:
		return fmt.Sprintf("Engajamento alto: %.1fx a média dos posts", float64(rp.Engagement)/average)
	case rp.Type == domain.PostTypeVideo:
		return "Conteúdo em vídeo gera mais interação"
	case rp.ShareCount > 0 && float64(rp.ShareCount)/float64(rp.Engagement) >= strongShareRatio:
		return "Boa taxa de compartilhamento"
	default:
		return "Desempenho acima dos demais posts"
	}
}

func needsWorkReason(rp domain.RankedPost, average float64) string {
	switch {
	case float64(rp.Engagement) < lowEngagementFactor*average:
		return "Engajamento baixo: menos da metade da média dos posts"
	case rp.Type == domain.PostTypeStatus:
		return "Post só com texto: adicione imagem ou vídeo"
	case rp.ShareCount == 0:
		return "Nenhum compartilhamento"
	default:
		return "Desempenho abaixo dos demais posts"
	}
}

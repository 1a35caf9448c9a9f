package meta

import (
	"math"
	"strconv"
	"strings"
	"time"

	metadomain "github.com/vfg2006/page-audit-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/page-audit-api/internal/domain"
)

// Formato de data usado pelo Graph (ex.: 2024-05-01T07:00:00+0000)
const graphTimeLayout = "2006-01-02T15:04:05-0700"

func FactoryPageSnapshot(page *metadomain.Page) *domain.PageSnapshot {
	if page == nil {
		return nil
	}

	snapshot := &domain.PageSnapshot{
		ID:       asString(page.ID),
		Name:     asString(page.Name),
		About:    asString(page.About),
		Category: asString(page.Category),
		Website:  asString(page.Website),
		Phone:    asString(page.Phone),
	}

	// followers_count é o número atual; fan_count fica como alternativa
	if followers := asInt(page.FollowersCount); followers != nil {
		snapshot.FollowerCount = followers
	} else {
		snapshot.FollowerCount = asInt(page.FanCount)
	}

	if page.Picture != nil {
		snapshot.PictureURL = asString(page.Picture.Data.URL)
	}

	return snapshot
}

// FactoryPosts converte os posts descartando os que não têm id
func FactoryPosts(posts []metadomain.Post) []domain.Post {
	result := make([]domain.Post, 0, len(posts))

	for _, p := range posts {
		id := asString(p.ID)
		if id == "" {
			continue
		}

		post := domain.Post{
			ID:           id,
			Message:      asString(p.Message),
			PermalinkURL: asString(p.PermalinkURL),
			ThumbnailURL: asString(p.FullPicture),
			MediaType:    attachmentMediaType(p.Attachments),
		}
		if createdAt := asTime(p.CreatedTime); createdAt != nil {
			post.CreatedAt = *createdAt
		}
		if p.Likes != nil {
			post.LikeCount = intOrZero(p.Likes.Summary.TotalCount)
		}
		if p.Comments != nil {
			post.CommentCount = intOrZero(p.Comments.Summary.TotalCount)
		}
		if p.Shares != nil {
			post.ShareCount = intOrZero(p.Shares.Count)
		}
		post.Type = postType(asString(p.StatusType), post.MediaType, post.ThumbnailURL)

		result = append(result, post)
	}

	return result
}

func attachmentMediaType(attachments *metadomain.Attachments) string {
	if attachments == nil {
		return ""
	}
	for _, a := range attachments.Data {
		if mt := strings.ToLower(asString(a.MediaType)); mt != "" {
			return mt
		}
	}
	return ""
}

func postType(statusType, mediaType, picture string) string {
	switch mediaType {
	case "video":
		return domain.PostTypeVideo
	case "photo", "album":
		return domain.PostTypePhoto
	case "link":
		return domain.PostTypeLink
	}

	switch statusType {
	case "added_video":
		return domain.PostTypeVideo
	case "added_photos":
		return domain.PostTypePhoto
	case "shared_story":
		return domain.PostTypeLink
	case "mobile_status_update", "wall_post", "created_note":
		return domain.PostTypeStatus
	}

	if picture != "" {
		return domain.PostTypePhoto
	}

	return domain.PostTypeStatus
}

// FactoryPostInsight lê o primeiro valor de cada métrica de post
func FactoryPostInsight(insights []metadomain.Insight) domain.PostInsight {
	result := domain.PostInsight{}

	for _, in := range insights {
		if len(in.Values) == 0 {
			continue
		}
		value := asInt(in.Values[0].Value)
		if value == nil {
			continue
		}

		switch asString(in.Name) {
		case metadomain.MetricPostImpressions:
			result.Impressions = value
		case metadomain.MetricPostImpressionsOrganic:
			result.OrganicImpressions = value
		case metadomain.MetricPostImpressionsPaid:
			result.PaidImpressions = value
		case metadomain.MetricPostEngagedUsers:
			result.EngagedUsers = value
		case metadomain.MetricPostClicks:
			result.Clicks = value
		}
	}

	return result
}

// FactoryInsightValues achata as métricas de página em pontos. Valores não numéricos são ignorados.
func FactoryInsightValues(insights []metadomain.Insight) []domain.InsightValue {
	values := make([]domain.InsightValue, 0)

	for _, in := range insights {
		metric := asString(in.Name)
		if metric == "" {
			continue
		}
		period := asString(in.Period)

		for _, v := range in.Values {
			number, ok := asFloat(v.Value)
			if !ok {
				continue
			}
			values = append(values, domain.InsightValue{
				Metric:  metric,
				Period:  period,
				Value:   number,
				EndTime: asTime(v.EndTime),
			})
		}
	}

	return values
}

// FactoryDemographics usa o valor mais recente de cada distribuição
func FactoryDemographics(insights []metadomain.Insight) *domain.Demographics {
	demographics := &domain.Demographics{}
	found := false

	for _, in := range insights {
		if len(in.Values) == 0 {
			continue
		}
		distribution := asDistribution(in.Values[len(in.Values)-1].Value)
		if len(distribution) == 0 {
			continue
		}

		switch asString(in.Name) {
		case metadomain.MetricFansCity:
			demographics.City = distribution
		case metadomain.MetricFansCountry:
			demographics.Country = distribution
		case metadomain.MetricFansGenderAge:
			demographics.GenderAge = distribution
		default:
			continue
		}
		found = true
	}

	if !found {
		return nil
	}

	return demographics
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return ""
	default:
		return ""
	}
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// asInt lê contagens: valores negativos ou fora da faixa são tratados como ausentes
func asInt(v any) *int {
	f, ok := asFloat(v)
	if !ok || f < 0 || f > math.MaxInt32 {
		return nil
	}
	i := int(f)
	return &i
}

func intOrZero(v any) int {
	if i := asInt(v); i != nil && *i > 0 {
		return *i
	}
	return 0
}

func asTime(v any) *time.Time {
	s := asString(v)
	if s == "" {
		return nil
	}
	for _, layout := range []string{graphTimeLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func asDistribution(v any) map[string]int {
	raw, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	distribution := make(map[string]int, len(raw))
	for key, value := range raw {
		if i := asInt(value); i != nil {
			distribution[key] = *i
		}
	}
	return distribution
}

package metadomain

// Insight é um item de /{object-id}/insights
type Insight struct {
	Name   any            `json:"name"`
	Period any            `json:"period"`
	Values []InsightValue `json:"values"`
}

// InsightValue pode trazer número (métricas simples) ou objeto (distribuições demográficas)
type InsightValue struct {
	Value   any `json:"value"`
	EndTime any `json:"end_time"`
}

// Métricas de página usadas nas séries de tendência
var PageInsightMetrics = []string{
	"page_impressions",
	"page_impressions_unique",
	"page_post_engagements",
	"page_fan_adds",
}

// Métricas de post
const (
	MetricPostImpressions        = "post_impressions"
	MetricPostImpressionsOrganic = "post_impressions_organic"
	MetricPostImpressionsPaid    = "post_impressions_paid"
	MetricPostEngagedUsers       = "post_engaged_users"
	MetricPostClicks             = "post_clicks"
)

var PostInsightMetrics = []string{
	MetricPostImpressions,
	MetricPostImpressionsOrganic,
	MetricPostImpressionsPaid,
	MetricPostEngagedUsers,
	MetricPostClicks,
}

// Métricas demográficas
const (
	MetricFansCity      = "page_fans_city"
	MetricFansCountry   = "page_fans_country"
	MetricFansGenderAge = "page_fans_gender_age"
)

var DemographicMetrics = []string{
	MetricFansCity,
	MetricFansCountry,
	MetricFansGenderAge,
}

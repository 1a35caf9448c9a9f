package metaclient

import (
	"context"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/page-audit-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/page-audit-api/internal/domain"
)

func (c *MetaClient) GetPageInsights(ctx context.Context, pageID, token string, window domain.TimeWindow) ([]metadomain.Insight, error) {
	params := url.Values{}
	params.Add("metric", strings.Join(metadomain.PageInsightMetrics, ","))
	params.Add("period", "day")
	params.Add("since", window.SinceParam())
	params.Add("until", window.UntilParam())

	return c.getInsights(ctx, "page_insights", pageID, token, params)
}

func (c *MetaClient) GetPostInsights(ctx context.Context, postID, token string) ([]metadomain.Insight, error) {
	params := url.Values{}
	params.Add("metric", strings.Join(metadomain.PostInsightMetrics, ","))
	params.Add("period", "lifetime")

	return c.getInsights(ctx, "post_insights", postID, token, params)
}

func (c *MetaClient) GetPageDemographics(ctx context.Context, pageID, token string) ([]metadomain.Insight, error) {
	params := url.Values{}
	params.Add("metric", strings.Join(metadomain.DemographicMetrics, ","))
	params.Add("period", "lifetime")

	return c.getInsights(ctx, "demographics", pageID, token, params)
}

func (c *MetaClient) getInsights(ctx context.Context, endpoint, objectID, token string, params url.Values) ([]metadomain.Insight, error) {
	body, err := c.get(ctx, endpoint, objectID+"/insights", token, params)
	if err != nil {
		return nil, err
	}

	var response metadomain.ListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).WithField("object_id", objectID).Error("Erro ao decodificar JSON dos insights")
		return nil, err
	}

	insights := make([]metadomain.Insight, 0, len(response.Data))
	for _, raw := range response.Data {
		var insight metadomain.Insight
		if err := json.Unmarshal(raw, &insight); err != nil {
			logrus.WithError(err).WithField("object_id", objectID).Warn("metaclient: insight descartado por payload inválido")
			continue
		}
		insights = append(insights, insight)
	}

	return insights, nil
}

package metaclient

import (
	"context"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/page-audit-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetPage(ctx context.Context, pageID, token string) (*metadomain.Page, error) {
	params := url.Values{}
	params.Add("fields", metadomain.PageFields)

	body, err := c.get(ctx, "page", pageID, token, params)
	if err != nil {
		return nil, err
	}

	var page metadomain.Page
	if err := json.Unmarshal(body, &page); err != nil {
		logrus.WithError(err).WithField("page_id", pageID).Error("Erro ao decodificar JSON da página")
		return nil, err
	}

	return &page, nil
}

package metaclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/page-audit-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/page-audit-api/internal/domain"
)

const (
	defaultPostsLimit = 100
	postsPageSize     = 25
)

// GetPosts lista os posts da janela seguindo paging.next até META_POSTS_LIMIT.
// Itens que não decodificam são descartados individualmente.
func (c *MetaClient) GetPosts(ctx context.Context, pageID, token string, window domain.TimeWindow) ([]metadomain.Post, error) {
	limit := c.Cfg.Meta.PostsLimit
	if limit <= 0 {
		limit = defaultPostsLimit
	}

	params := url.Values{}
	params.Add("fields", metadomain.PostFields)
	params.Add("since", window.SinceParam())
	params.Add("until", window.UntilParam())
	params.Add("limit", strconv.Itoa(min(postsPageSize, limit)))

	body, err := c.get(ctx, "posts", pageID+"/posts", token, params)
	if err != nil {
		return nil, err
	}

	posts := make([]metadomain.Post, 0)
	for {
		var page metadomain.ListResponse
		if err := json.Unmarshal(body, &page); err != nil {
			logrus.WithError(err).WithField("page_id", pageID).Error("Erro ao decodificar JSON dos posts")
			if len(posts) > 0 {
				return posts, nil
			}
			return nil, err
		}

		for _, raw := range page.Data {
			var post metadomain.Post
			if err := json.Unmarshal(raw, &post); err != nil {
				logrus.WithError(err).WithField("page_id", pageID).Warn("metaclient: post descartado por payload inválido")
				continue
			}
			posts = append(posts, post)
			if len(posts) >= limit {
				return posts, nil
			}
		}

		if page.Paging == nil || page.Paging.Next == "" || len(page.Data) == 0 {
			return posts, nil
		}

		body, err = c.getURL(ctx, "posts", page.Paging.Next, token)
		if err != nil {
			// a primeira página já foi obtida; os posts parciais seguem para o cálculo
			logrus.WithError(err).WithFields(logrus.Fields{
				"page_id": pageID,
				"fetched": len(posts),
			}).Warn("metaclient: falha ao paginar posts")
			return posts, nil
		}
	}
}

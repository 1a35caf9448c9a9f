package meta

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/page-audit-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/page-audit-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/page-audit-api/internal/config"
	"github.com/vfg2006/page-audit-api/internal/domain"
)

const (
	defaultPostInsightsLimit       = 25
	defaultPostInsightsConcurrency = 5
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchPageData busca as categorias em sequência. A falha de uma categoria fica registrada em
// DataAvailability e não interrompe as demais. Só retorna erro quando a credencial é inválida.
func (s *MetaIntegrator) FetchPageData(ctx context.Context, req domain.FetchRequest) (*domain.FetchResult, error) {
	if req.Credential == "" || req.PageID == "" {
		return nil, domain.ErrInvalidCredential
	}

	logger := logrus.WithField("page_id", req.PageID)

	result := &domain.FetchResult{
		Posts:            make([]domain.Post, 0),
		PostInsights:     make(map[string]domain.PostInsight),
		DataAvailability: domain.NewDataAvailability(),
	}

	page, err := s.Client.GetPage(ctx, req.PageID, req.Credential)
	if err != nil {
		var graphErr *metadomain.GraphError
		if errors.As(err, &graphErr) && graphErr.IsTokenExpired() {
			logger.WithError(err).Error("meta: credencial da página rejeitada pelo Graph")
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCredential, err)
		}
		s.markFailed(result, domain.CategoryPageInfo, err, logger)
	} else {
		result.Page = FactoryPageSnapshot(page)
		result.DataAvailability.MarkOK(domain.CategoryPageInfo)
	}

	pageInsights, err := s.Client.GetPageInsights(ctx, req.PageID, req.Credential, req.Window)
	if err != nil {
		s.markFailed(result, domain.CategoryInsights, err, logger)
	} else {
		result.PageInsights = FactoryInsightValues(pageInsights)
		result.DataAvailability.MarkOK(domain.CategoryInsights)
	}

	posts, err := s.Client.GetPosts(ctx, req.PageID, req.Credential, req.Window)
	if err != nil {
		s.markFailed(result, domain.CategoryPosts, err, logger)
	} else {
		result.Posts = FactoryPosts(posts)
		result.DataAvailability.MarkOK(domain.CategoryPosts)
	}

	if !req.IncludeDetail {
		result.DataAvailability.MarkSkipped(domain.CategoryPostInsights, domain.ReasonNotEntitled)
		result.DataAvailability.MarkSkipped(domain.CategoryDemographics, domain.ReasonNotEntitled)
		return result, nil
	}

	s.fetchPostInsights(ctx, req, result, logger)

	demographics, err := s.Client.GetPageDemographics(ctx, req.PageID, req.Credential)
	if err != nil {
		s.markFailed(result, domain.CategoryDemographics, err, logger)
		return result, nil
	}

	result.Demographics = FactoryDemographics(demographics)
	if result.Demographics == nil {
		result.DataAvailability.MarkFailed(domain.CategoryDemographics, domain.ReasonNoData, nil)
	} else {
		result.DataAvailability.MarkOK(domain.CategoryDemographics)
	}

	return result, nil
}

// fetchPostInsights busca os insights dos primeiros posts em paralelo. Cada post é independente
// e o resultado é mesclado pelo id do post.
func (s *MetaIntegrator) fetchPostInsights(ctx context.Context, req domain.FetchRequest, result *domain.FetchResult, logger *logrus.Entry) {
	if len(result.Posts) == 0 {
		result.DataAvailability.MarkFailed(domain.CategoryPostInsights, domain.ReasonNoData, nil)
		return
	}

	limit := s.cfg.Meta.PostInsightsLimit
	if limit <= 0 {
		limit = defaultPostInsightsLimit
	}
	concurrency := s.cfg.Meta.PostInsightsConcurrent
	if concurrency <= 0 {
		concurrency = defaultPostInsightsConcurrency
	}

	targets := result.Posts[:min(limit, len(result.Posts))]

	var (
		wg            sync.WaitGroup
		mutex         sync.Mutex
		semaphore     = make(chan struct{}, concurrency)
		failures      int
		permissionErr error
		lastErr       error
	)

	for _, post := range targets {
		wg.Add(1)
		go func(postID string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			insights, err := s.Client.GetPostInsights(ctx, postID, req.Credential)

			mutex.Lock()
			defer mutex.Unlock()

			if err != nil {
				failures++
				lastErr = err
				if isPermissionDenied(err) {
					permissionErr = err
				}
				logger.WithError(err).WithField("post_id", postID).Debug("meta: falha ao buscar insights do post")
				return
			}

			insight := FactoryPostInsight(insights)
			if insight.HasData() {
				result.PostInsights[postID] = insight
			}
		}(post.ID)
	}

	wg.Wait()

	switch {
	case failures < len(targets):
		result.DataAvailability.MarkOK(domain.CategoryPostInsights)
	case permissionErr != nil:
		s.markFailed(result, domain.CategoryPostInsights, permissionErr, logger)
	default:
		s.markFailed(result, domain.CategoryPostInsights, lastErr, logger)
	}

	logger.WithFields(logrus.Fields{
		"requested": len(targets),
		"failures":  failures,
		"with_data": len(result.PostInsights),
	}).Debug("meta: insights de posts obtidos")
}

func (s *MetaIntegrator) markFailed(result *domain.FetchResult, category domain.DataCategory, err error, logger *logrus.Entry) {
	reason := domain.ReasonFetchFailed
	if isPermissionDenied(err) {
		reason = domain.ReasonPermissionNotGranted
	}

	logger.WithError(err).WithFields(logrus.Fields{
		"category": category,
		"reason":   reason,
	}).Warn("meta: categoria de dados indisponível")

	result.DataAvailability.MarkFailed(category, reason, err)
}

func isPermissionDenied(err error) bool {
	var graphErr *metadomain.GraphError
	return errors.As(err, &graphErr) && graphErr.IsPermissionDenied()
}

package auditing

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/page-audit-api/infrastructure/repository"
	"github.com/vfg2006/page-audit-api/internal/config"
	"github.com/vfg2006/page-audit-api/internal/domain"
	"github.com/vfg2006/page-audit-api/internal/usecases/insighting"
	"github.com/vfg2006/page-audit-api/internal/usecases/ranking"
	"github.com/vfg2006/page-audit-api/internal/usecases/scoring"
	"github.com/vfg2006/page-audit-api/pkg/apiErrors"
	"github.com/vfg2006/page-audit-api/pkg/metrics"
)

// Settings são os limites por plano
type Settings struct {
	FreeMonthlyLimit        int
	ProMonthlyLimit         int
	FreeRecommendationLimit int
	DefaultPreset           string
}

func DefaultSettings() Settings {
	return Settings{
		FreeMonthlyLimit:        3,
		ProMonthlyLimit:         50,
		FreeRecommendationLimit: 3,
		DefaultPreset:           domain.DefaultPreset,
	}
}

func SettingsFromConfig(cfg *config.Config) Settings {
	s := DefaultSettings()
	if cfg == nil {
		return s
	}

	// cotas vêm sempre da configuração; zero ou negativo libera o plano
	s.FreeMonthlyLimit = cfg.Audit.FreeMonthlyLimit
	s.ProMonthlyLimit = cfg.Audit.ProMonthlyLimit
	if cfg.Audit.FreeRecommendationLimit > 0 {
		s.FreeRecommendationLimit = cfg.Audit.FreeRecommendationLimit
	}
	if cfg.Audit.DefaultPreset != "" {
		s.DefaultPreset = cfg.Audit.DefaultPreset
	}

	return s
}

// MonthlyLimit retorna a cota mensal do plano
func (s Settings) MonthlyLimit(entitled bool) int {
	if entitled {
		return s.ProMonthlyLimit
	}
	return s.FreeMonthlyLimit
}

type Service struct {
	connections repository.PageConnectionRepository
	audits      repository.AuditRepository
	fetcher     MetricFetcher
	aggregator  insighting.MetricAggregator
	scorer      scoring.Scorer
	ranker      ranking.Ranker
	metrics     *metrics.Registry
	settings    Settings
	now         func() time.Time
}

func NewService(
	connections repository.PageConnectionRepository,
	audits repository.AuditRepository,
	fetcher MetricFetcher,
	aggregator insighting.MetricAggregator,
	scorer scoring.Scorer,
	ranker ranking.Ranker,
	registry *metrics.Registry,
	settings Settings,
) *Service {
	return &Service{
		connections: connections,
		audits:      audits,
		fetcher:     fetcher,
		aggregator:  aggregator,
		scorer:      scorer,
		ranker:      ranker,
		metrics:     registry,
		settings:    settings,
		now:         time.Now,
	}
}

// Run executa uma auditoria completa. Só retorna erro nas condições terminais (conexão, credencial,
// cota, persistência); falhas de categorias de dados ficam registradas em DataAvailability.
func (s *Service) Run(ctx context.Context, identity domain.Identity, req domain.AuditRequest) (record *domain.AuditRecord, err error) {
	started := s.now()
	defer func() {
		s.metrics.ObserveAudit(resultLabel(err), started)
	}()

	logger := logrus.WithFields(logrus.Fields{
		"user_id":       identity.UserID,
		"connection_id": req.ConnectionID,
		"entitled":      identity.IsEntitled,
	})

	if identity.UserID == "" || req.ConnectionID == "" {
		return nil, NewAuditError(errors.New("connection_id é obrigatório"), apiErrors.ErrMissingRequiredData, nil)
	}

	preset := req.Preset
	if preset == "" {
		preset = s.settings.DefaultPreset
	}
	window, err := domain.ResolveTimeWindow(preset, req.Since, req.Until, started.UTC())
	if err != nil {
		return nil, NewAuditError(err, apiErrors.ErrInvalidRequest, nil)
	}

	connection, err := s.connections.GetConnection(ctx, req.ConnectionID, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrConnectionNotFound) {
			logger.Warn("auditoria abortada: conexão não encontrada")
			return nil, NewAuditError(err, apiErrors.ErrConnectionNotFound, nil)
		}
		logger.WithError(err).Error("erro ao buscar conexão da página")
		return nil, NewAuditError(err, apiErrors.ErrDatabaseOperation, nil)
	}

	if connection.AccessToken == "" {
		logger.Warn("auditoria abortada: conexão sem credencial")
		return nil, NewAuditError(domain.ErrInvalidCredential, apiErrors.ErrInvalidCredential, nil)
	}

	logger = logger.WithField("page_id", connection.PageID)

	limit := s.settings.MonthlyLimit(identity.IsEntitled)
	if err := s.checkQuota(ctx, identity.UserID, limit, started); err != nil {
		logger.WithError(err).Warn("auditoria abortada na verificação de cota")
		return nil, err
	}

	fetched, err := s.fetcher.FetchPageData(ctx, domain.FetchRequest{
		PageID:        connection.PageID,
		Credential:    connection.AccessToken,
		Window:        window,
		IncludeDetail: identity.IsEntitled,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredential) {
			logger.WithError(err).Error("auditoria abortada: credencial rejeitada")
			return nil, NewAuditError(err, apiErrors.ErrInvalidCredential, nil)
		}
		logger.WithError(err).Error("erro ao buscar dados da página")
		return nil, NewAuditError(err, apiErrors.ErrExternalService, nil)
	}

	builder, err := NewBuilder(identity, connection, started)
	if err != nil {
		return nil, NewAuditError(err, apiErrors.ErrInternalServer, nil)
	}

	if err := s.assemble(builder, identity.IsEntitled, connection, window, fetched); err != nil {
		logger.WithError(err).Error("erro ao montar registro de auditoria")
		return nil, NewAuditError(err, apiErrors.ErrInternalServer, nil)
	}

	built := builder.Record()
	if err := s.audits.CreateWithinQuota(ctx, built, limit); err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			logger.Warn("cota atingida durante a gravação")
			return nil, NewAuditError(err, apiErrors.ErrQuotaExceeded, map[string]int{"limit": limit})
		}
		logger.WithError(err).Error("erro ao gravar auditoria")
		return nil, NewAuditError(err, apiErrors.ErrDatabaseOperation, nil)
	}

	if err := builder.MarkPersisted(); err != nil {
		return nil, NewAuditError(err, apiErrors.ErrInternalServer, nil)
	}

	logger.WithFields(logrus.Fields{
		"audit_id":    built.ID,
		"score_total": built.ScoreTotal,
	}).Info("auditoria concluída")

	return Project(built, identity.IsEntitled, s.settings.FreeRecommendationLimit), nil
}

// checkQuota é a verificação antecipada; a garantia atômica fica em CreateWithinQuota
func (s *Service) checkQuota(ctx context.Context, userID string, limit int, at time.Time) error {
	if limit <= 0 {
		return nil
	}

	start, end := domain.MonthPeriod(at)
	used, err := s.audits.CountInPeriod(ctx, userID, start, end)
	if err != nil {
		return NewAuditError(err, apiErrors.ErrDatabaseOperation, nil)
	}

	if used >= limit {
		return NewAuditError(domain.ErrQuotaExceeded, apiErrors.ErrQuotaExceeded, map[string]int{"used": used, "limit": limit})
	}

	return nil
}

// assemble calcula tudo a partir do snapshot buscado e alimenta o builder
func (s *Service) assemble(builder *Builder, entitled bool, connection *domain.PageConnection, window domain.TimeWindow, fetched *domain.FetchResult) error {
	availability := fetched.DataAvailability
	if availability == nil {
		availability = domain.NewDataAvailability()
	}

	aggregated := s.aggregator.Aggregate(fetched.Page, fetched.Posts)

	paidVsOrganic := s.aggregator.PaidVsOrganic(fetched.Posts, fetched.PostInsights)
	switch {
	case paidVsOrganic.Available:
		availability.MarkOK(domain.CategoryPaidVsOrganic)
	case !entitled:
		availability.MarkSkipped(domain.CategoryPaidVsOrganic, domain.ReasonNotEntitled)
	default:
		availability.MarkFailed(domain.CategoryPaidVsOrganic, domain.ReasonNoData, nil)
	}

	for _, category := range domain.AllCategories {
		if a := availability[category]; a.Status == domain.StatusFailed {
			s.metrics.IncDegraded(string(category), a.Reason)
		}
	}

	breakdown := s.scorer.Score(aggregated, fetched.Page)
	recs := scoring.FilterForTier(
		s.scorer.Recommend(breakdown, aggregated, fetched.Page, entitled),
		entitled,
		s.settings.FreeRecommendationLimit,
	)

	pageName := connection.PageName
	if fetched.Page != nil && fetched.Page.Name != "" {
		pageName = fetched.Page.Name
	}

	summary := domain.InputSummary{
		AggregatedMetrics: aggregated,
		PageName:          pageName,
		Window:            window,
		DataAvailability:  availability,
	}

	if err := builder.Score(breakdown, recs, summary); err != nil {
		return err
	}

	if !entitled {
		return nil
	}

	return builder.Detail(&domain.AuditDetail{
		RawMetrics: domain.RawMetrics{
			Page:          fetched.Page,
			PageInsights:  fetched.PageInsights,
			Posts:         fetched.Posts,
			PostInsights:  fetched.PostInsights,
			FetchedWindow: window,
		},
		ComputedMetrics: domain.ComputedMetrics{
			AggregatedMetrics: aggregated,
			PaidVsOrganic:     paidVsOrganic,
			PostTypeAnalysis:  s.aggregator.PostTypeAnalysis(fetched.Posts),
			TrendData:         s.aggregator.TrendSeries(fetched.PageInsights),
			PostsAnalysis:     s.ranker.RankPosts(fetched.Posts, fetched.PostInsights),
			Benchmarks:        s.scorer.Benchmarks(aggregated),
		},
		DataAvailability: availability,
		Demographics:     fetched.Demographics,
	})
}

package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/page-audit-api/infrastructure/repository"
	"github.com/vfg2006/page-audit-api/internal/config"
	"github.com/vfg2006/page-audit-api/internal/domain"
	"github.com/vfg2006/page-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/page-audit-api/pkg/metrics"
)

const (
	defaultScheduledCron        = "0 6 * * 1"
	defaultScheduledConcurrency = 3
	scheduledAuditTimeout       = 2 * time.Minute
)

// ScheduledAuditConfig representa a configuração das auditorias automáticas
type ScheduledAuditConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	Preset            string
	Enabled           bool
}

// RunSummary resume uma execução das auditorias automáticas
type RunSummary struct {
	Connections int `json:"connections"`
	Succeeded   int `json:"succeeded"`
	Failed      int `json:"failed"`
	Skipped     int `json:"skipped"`
}

// ScheduledAuditService reexecuta a auditoria das páginas com auditoria automática de usuários Pro
type ScheduledAuditService struct {
	scheduler       *gocron.Scheduler
	config          ScheduledAuditConfig
	connectionRepo  repository.PageConnectionRepository
	auditor         auditing.Auditor
	metrics         *metrics.Registry
	syncRunning     bool
	syncMutex       sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastSummary     RunSummary
}

func NewScheduledAuditService(
	connectionRepo repository.PageConnectionRepository,
	auditor auditing.Auditor,
	registry *metrics.Registry,
	appConfig *config.Config,
) *ScheduledAuditService {
	auditConfig := ScheduledAuditConfig{
		CronSchedule:      appConfig.ScheduledAudit.CronSchedule,
		MaxConcurrentJobs: appConfig.ScheduledAudit.MaxConcurrentJobs,
		Preset:            appConfig.ScheduledAudit.Preset,
		Enabled:           appConfig.ScheduledAudit.Enabled,
	}
	if auditConfig.CronSchedule == "" {
		auditConfig.CronSchedule = defaultScheduledCron
	}
	if auditConfig.MaxConcurrentJobs <= 0 {
		auditConfig.MaxConcurrentJobs = defaultScheduledConcurrency
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       auditConfig.CronSchedule,
		"max_concurrent_jobs": auditConfig.MaxConcurrentJobs,
		"preset":              auditConfig.Preset,
		"enabled":             auditConfig.Enabled,
	}).Info("Configuração do agendador de auditorias automáticas carregada")

	return &ScheduledAuditService{
		scheduler:      gocron.NewScheduler(time.UTC),
		config:         auditConfig,
		connectionRepo: connectionRepo,
		auditor:        auditor,
		metrics:        registry,
	}
}

// Start inicia o agendador
func (s *ScheduledAuditService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Auditorias automáticas desabilitadas por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de auditorias automáticas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunScheduledAudits(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar auditorias automáticas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de auditorias automáticas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunScheduledAudits executa a auditoria de todas as conexões elegíveis.
// Retorna ok=false quando outra execução já está em andamento.
func (s *ScheduledAuditService) RunScheduledAudits(ctx context.Context) (summary RunSummary, ok bool) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Auditorias automáticas já em andamento, ignorando")
		return RunSummary{}, false
	}
	s.syncRunning = true
	s.lastStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastCompletedAt = time.Now()
		s.lastSummary = summary
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()

	connections, err := s.connectionRepo.ListAutoAuditConnections(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar conexões para auditoria automática")
		return summary, true
	}

	if len(connections) == 0 {
		logrus.Info("Nenhuma conexão com auditoria automática encontrada")
		return summary, true
	}

	summary = s.processConnections(ctx, connections)

	logrus.WithFields(logrus.Fields{
		"duration":    time.Since(startTime).String(),
		"connections": summary.Connections,
		"succeeded":   summary.Succeeded,
		"failed":      summary.Failed,
		"skipped":     summary.Skipped,
	}).Info("Auditorias automáticas concluídas")

	return summary, true
}

// processConnections audita as conexões com no máximo MaxConcurrentJobs execuções simultâneas
func (s *ScheduledAuditService) processConnections(ctx context.Context, connections []*domain.PageConnection) RunSummary {
	summary := RunSummary{Connections: len(connections)}

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, connection := range connections {
		if connection.AccessToken == "" {
			logrus.WithField("connection_id", connection.ID).Warn("Conexão sem token. Pulando.")
			s.metrics.IncScheduledAudit("skipped")
			summary.Skipped++
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(conn *domain.PageConnection) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			result := s.auditConnection(ctx, conn)
			s.metrics.IncScheduledAudit(result)

			mu.Lock()
			defer mu.Unlock()
			switch result {
			case "success":
				summary.Succeeded++
			case "quota_exceeded":
				summary.Skipped++
			default:
				summary.Failed++
			}
		}(connection)
	}

	wg.Wait()

	return summary
}

func (s *ScheduledAuditService) auditConnection(ctx context.Context, conn *domain.PageConnection) string {
	logger := logrus.WithFields(logrus.Fields{
		"connection_id": conn.ID,
		"user_id":       conn.UserID,
		"page_id":       conn.PageID,
	})

	runCtx, cancel := context.WithTimeout(ctx, scheduledAuditTimeout)
	defer cancel()

	identity := domain.Identity{
		UserID:     conn.UserID,
		Role:       domain.RoleService,
		IsEntitled: true,
	}

	record, err := s.auditor.Run(runCtx, identity, domain.AuditRequest{
		ConnectionID: conn.ID,
		Preset:       s.config.Preset,
	})
	if err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			logger.Warn("Cota mensal atingida, auditoria automática ignorada")
			return "quota_exceeded"
		}
		logger.WithError(err).Error("Erro na auditoria automática")
		return "error"
	}

	logger.WithFields(logrus.Fields{
		"audit_id":    record.ID,
		"score_total": record.ScoreTotal,
	}).Info("Auditoria automática concluída")

	return "success"
}

// TriggerManualSync inicia manualmente as auditorias automáticas
func (s *ScheduledAuditService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Auditorias automáticas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando auditorias automáticas manualmente")
	go s.RunScheduledAudits(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *ScheduledAuditService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":             s.config.Enabled,
		"cron":                s.config.CronSchedule,
		"max_concurrent_jobs": s.config.MaxConcurrentJobs,
		"preset":              s.config.Preset,
		"running":             s.syncRunning,
		"last_started_at":     s.lastStartedAt,
		"last_completed_at":   s.lastCompletedAt,
		"last_summary":        s.lastSummary,
	}
}

package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/page-audit-api/infrastructure/database/postgres"
	"github.com/vfg2006/page-audit-api/infrastructure/integrator/meta"
	"github.com/vfg2006/page-audit-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/page-audit-api/infrastructure/repository"
	"github.com/vfg2006/page-audit-api/internal/api"
	"github.com/vfg2006/page-audit-api/internal/api/handler"
	"github.com/vfg2006/page-audit-api/internal/config"
	"github.com/vfg2006/page-audit-api/internal/scheduler"
	"github.com/vfg2006/page-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/page-audit-api/internal/usecases/authenticating"
	"github.com/vfg2006/page-audit-api/internal/usecases/insighting"
	"github.com/vfg2006/page-audit-api/internal/usecases/ranking"
	"github.com/vfg2006/page-audit-api/internal/usecases/reporting"
	"github.com/vfg2006/page-audit-api/internal/usecases/scoring"
	"github.com/vfg2006/page-audit-api/pkg/log"
	"github.com/vfg2006/page-audit-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// segredos do provedor sobrescrevem os do ambiente; sem eles seguimos com o .env
	if err := config.LoadSecrets(ctx, cfg, config.NewRenderClient(cfg)); err != nil {
		logrus.WithError(err).Warn("Não foi possível carregar segredos do provedor, usando variáveis de ambiente")
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	connectionRepo := repository.NewPageConnectionRepository(pgConn)
	auditRepo := repository.NewAuditRepository(pgConn)

	registry := metrics.NewRegistry()

	metaClient := metaclient.NewClient(cfg, registry)
	metaIntegrator := meta.New(cfg, metaClient)

	settings := auditing.SettingsFromConfig(cfg)

	auditService := auditing.NewService(
		connectionRepo,
		auditRepo,
		metaIntegrator,
		insighting.NewService(insighting.SettingsFromConfig(cfg)),
		scoring.NewEngine(scoring.PolicyFromConfig(cfg)),
		ranking.NewPostRanker(),
		registry,
		settings,
	)

	reportService := reporting.NewService(auditRepo, settings)
	authenticator := authenticating.NewService(userRepo, cfg)

	scheduledAuditService := scheduler.NewScheduledAuditService(connectionRepo, auditService, registry, cfg)
	if err := scheduledAuditService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de auditorias automáticas")
	} else {
		logrus.Info("Agendador de auditorias automáticas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Auditor:       auditService,
		Reporter:      reportService,
		Authenticator: authenticator,
		Database:      pgConn,
		Metrics:       registry,
		CronServices: handler.CronJobServices{
			ScheduledAuditService: scheduledAuditService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"sync"

	"worktime/internal/absence"
	absencemetrics "worktime/internal/absence/metrics"
	absencestore "worktime/internal/absence/store"
	"worktime/internal/audit"
	auditstore "worktime/internal/audit/store"
	clockstore "worktime/internal/clock/store"
	"worktime/internal/compliance"
	"worktime/internal/compliance/lock"
	compliancemetrics "worktime/internal/compliance/metrics"
	"worktime/internal/compliance/publisher"
	compliancestore "worktime/internal/compliance/store"
	dirstore "worktime/internal/directory/store"
	"worktime/internal/integrity"
	integritymetrics "worktime/internal/integrity/metrics"
	"worktime/internal/integrity/notary"
	integritystore "worktime/internal/integrity/store"
	"worktime/internal/platform/config"
	"worktime/internal/platform/kafka"
	"worktime/internal/platform/postgres"
	"worktime/internal/platform/redis"
	"worktime/internal/rules"
	rulesstore "worktime/internal/rules/store"
	"worktime/pkg/platform/circuit"
)

const auditBuffer = 256

// app holds the services shared by the server and the batch commands.
type app struct {
	logger *slog.Logger
	db     *sql.DB
	redis  *redis.Client
	kafka  *kafka.Client

	auditWorker *audit.Worker
	auditCancel context.CancelFunc
	auditDone   sync.WaitGroup

	compliance *compliance.Service
	integrity  *integrity.Service
	// reconciler is nil when no QTSP is configured.
	reconciler *integrity.Reconciler
	vacation   *absence.VacationCalculator
	escalator  *absence.Escalator
}

// buildApp opens the infrastructure described by cfg and wires every
// service. Callers must Close the result.
func buildApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (_ *app, err error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("WORKTIME_DATABASE_URL is required")
	}
	catalog, err := config.LoadCatalogFile(cfg.RuleCatalogPath)
	if err != nil {
		return nil, err
	}

	a := &app{logger: logger}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	a.db, err = postgres.Open(ctx, cfg.DatabaseURL, postgres.DefaultOptions())
	if err != nil {
		return nil, err
	}
	if err = postgres.Migrate(ctx, a.db); err != nil {
		return nil, err
	}

	a.redis, err = redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	a.kafka, err = kafka.New(cfg.Kafka)
	if err != nil {
		return nil, err
	}

	directory := dirstore.NewPostgres(a.db)
	events := clockstore.NewPostgres(a.db)

	a.auditWorker = audit.NewWorker(auditstore.NewPostgres(a.db), auditBuffer, logger)
	auditPublisher := audit.NewPublisher(a.auditWorker, logger)
	a.startAudit()

	complianceOpts := []compliance.Option{
		compliance.WithLogger(logger),
		compliance.WithMetrics(compliancemetrics.New()),
		compliance.WithAuditPublisher(auditPublisher),
		compliance.WithLocation(cfg.Location()),
		compliance.WithWorkers(cfg.BatchWorkers),
		compliance.WithLockTTL(cfg.EvaluationLockTTL),
	}
	if a.redis != nil {
		complianceOpts = append(complianceOpts, compliance.WithLocker(lock.NewRedis(a.redis.Client)))
	} else {
		logger.WarnContext(ctx, "redis not configured, evaluation lock is process local")
	}
	if a.kafka != nil {
		if err = a.kafka.EnsureTopics(ctx, logger, cfg.Kafka.ViolationTopic); err != nil {
			return nil, err
		}
		complianceOpts = append(complianceOpts, compliance.WithSink(publisher.NewKafka(a.kafka, cfg.Kafka.ViolationTopic)))
	}
	resolver := rules.NewResolver(rulesstore.NewPostgres(a.db), rules.CatalogFromConfig(catalog))
	a.compliance = compliance.New(directory, events, resolver, compliancestore.NewPostgres(a.db), complianceOpts...)

	integrityMetrics := integritymetrics.New()
	evidence := integritystore.NewPostgres(a.db)
	integrityOpts := []integrity.Option{
		integrity.WithLogger(logger),
		integrity.WithMetrics(integrityMetrics),
		integrity.WithAuditPublisher(auditPublisher),
		integrity.WithWorkers(cfg.BatchWorkers),
	}
	if cfg.QTSP.Enabled() {
		breaker := circuit.New("qtsp",
			circuit.WithFailureThreshold(cfg.QTSP.BreakerThreshold),
			circuit.WithCooldown(cfg.QTSP.BreakerCooldown),
		)
		sealer := integrity.NewSealer(notary.NewClient(cfg.QTSP), evidence, logger, integrityMetrics, auditPublisher,
			integrity.WithBreaker(breaker))
		integrityOpts = append(integrityOpts,
			integrity.WithNotarizer(sealer),
			integrity.WithNotaryTimeout(cfg.QTSP.Timeout),
		)
		a.reconciler = integrity.NewReconciler(directory, evidence, sealer, logger, integrityMetrics)
	} else {
		logger.WarnContext(ctx, "qtsp not configured, daily roots are stored unsealed")
	}
	a.integrity = integrity.New(directory, events, evidence, integrityOpts...)

	absences := absencestore.NewPostgres(a.db)
	absenceOpts := []absence.Option{
		absence.WithLogger(logger),
		absence.WithMetrics(absencemetrics.New()),
		absence.WithAuditPublisher(auditPublisher),
		absence.WithWorkers(cfg.BatchWorkers),
		absence.WithCatalog(catalog),
	}
	a.vacation = absence.NewVacationCalculator(directory, absences, absenceOpts...)
	a.escalator = absence.NewEscalator(directory, absences, absences, absenceOpts...)

	return a, nil
}

func (a *app) startAudit() {
	ctx, cancel := context.WithCancel(context.Background())
	a.auditCancel = cancel
	a.auditDone.Add(1)
	go func() {
		defer a.auditDone.Done()
		_ = a.auditWorker.Run(ctx)
	}()
}

// healthChecks lists the dependencies probed by /healthz.
func (a *app) healthChecks() []healthCheck {
	checks := []healthCheck{{name: "postgres", check: a.db.PingContext}}
	if a.redis != nil {
		checks = append(checks, healthCheck{name: "redis", check: a.redis.Health})
	}
	if a.kafka != nil {
		checks = append(checks, healthCheck{name: "kafka", check: a.kafka.Health})
	}
	return checks
}

// Close flushes queued audit events and releases connections.
func (a *app) Close() {
	if a.auditCancel != nil {
		a.auditCancel()
		a.auditDone.Wait()
	}
	if a.kafka != nil {
		a.kafka.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error("close redis", "error", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("close postgres", "error", err)
		}
	}
}

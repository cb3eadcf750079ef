package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/sqs"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/TraineeHub/notify/config"
	"github.com/TraineeHub/notify/internal/database"
	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/internal/migrations"
	"github.com/TraineeHub/notify/internal/repository"
	"github.com/TraineeHub/notify/internal/server"
	"github.com/TraineeHub/notify/internal/service"
	"github.com/TraineeHub/notify/internal/service/queue"
	"github.com/TraineeHub/notify/pkg/logger"
	"github.com/TraineeHub/notify/pkg/tracing"
)

// App assembles the notification pipeline: stores, senders, planners, the
// scheduler runner, one SQS consumer per inbound queue and the health
// server. Construction is staged so tests can drive individual Init steps.
type App struct {
	config *config.Config
	logger logger.Logger

	mongoClient *mongo.Client
	schedulerDB *sql.DB

	sqsClient domain.SQSClient
	snsClient domain.SNSClient
	s3Client  domain.S3Client

	eventBus domain.EventBus

	// Repositories
	historyRepo domain.HistoryRepository
	jobRepo     domain.JobRepository
	appliedRepo migrations.AppliedStore

	// Services
	historyService    *service.HistoryService
	templateService   *service.TemplateService
	smtpService       *service.SMTPService
	attachmentService *service.AttachmentService
	emailSender       *service.EmailSenderService
	inAppService      *service.InAppService
	recipientService  *service.RecipientService
	contactsService   *service.ContactsService
	executorService   *service.NotificationExecutorService
	jobService        *service.JobService
	outboxService     *service.OutboxService
	eventPublisher    *service.EventPublisherService

	// Inbound event handlers
	programmeService      *service.ProgrammeMembershipService
	placementService      *service.PlacementService
	ltftService           *service.LtftService
	emailEventService     *service.EmailEventService
	contactDetailsService *service.ContactDetailsService
	accountService        *service.AccountService
	cojService            *service.CojService
	formService           *service.FormService
	gmcService            *service.GmcService

	// Workers
	jobRunner *service.JobRunner
	consumers []*queue.Consumer

	healthServer *server.Server

	// runCtx is cancelled on Shutdown so every worker loop exits.
	runCtx    context.Context
	runCancel context.CancelFunc
}

// Option defines a functional option for configuring the App
type Option func(*App)

// WithLogger sets a custom logger
func WithLogger(log logger.Logger) Option {
	return func(a *App) {
		a.logger = log
	}
}

// WithAWSClients configures the app to use pre-built AWS clients, e.g.
// mocks in tests.
func WithAWSClients(sqsClient domain.SQSClient, snsClient domain.SNSClient, s3Client domain.S3Client) Option {
	return func(a *App) {
		a.sqsClient = sqsClient
		a.snsClient = snsClient
		a.s3Client = s3Client
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...Option) *App {
	runCtx, runCancel := context.WithCancel(context.Background())

	app := &App{
		config:    cfg,
		logger:    logger.NewLoggerWithLevel(cfg.LogLevel),
		runCtx:    runCtx,
		runCancel: runCancel,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitTracing initializes OpenCensus tracing
func (a *App) InitTracing() error {
	tracingConfig := &a.config.Tracing

	if err := tracing.InitTracing(tracingConfig); err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	if tracingConfig.Enabled {
		exporter := tracingConfig.TraceExporter
		if exporter == "" {
			exporter = "jaeger"
		}

		metricsExporter := tracingConfig.MetricsExporter
		if metricsExporter == "" {
			metricsExporter = "prometheus"
		}

		a.logger.WithField("trace_exporter", exporter).
			WithField("metrics_exporter", metricsExporter).
			WithField("sampling_rate", tracingConfig.SamplingProbability).
			Info("Tracing initialized successfully")
	}

	return nil
}

// InitAWS builds the SQS, SNS and S3 clients from one shared session.
func (a *App) InitAWS() error {
	// Skip if clients already set (e.g., by mocks)
	if a.sqsClient != nil && a.snsClient != nil && a.s3Client != nil {
		return nil
	}

	awsCfg := a.config.AWS
	sessionConfig := &aws.Config{Region: aws.String(awsCfg.Region)}
	if awsCfg.Endpoint != "" {
		sessionConfig.Endpoint = aws.String(awsCfg.Endpoint)
		// Virtual-host addressing does not resolve against a local endpoint.
		sessionConfig.S3ForcePathStyle = aws.Bool(true)
	}
	if awsCfg.AccessKey != "" {
		sessionConfig.Credentials = credentials.NewStaticCredentials(awsCfg.AccessKey, awsCfg.SecretKey, "")
	}

	sess, err := session.NewSession(sessionConfig)
	if err != nil {
		return fmt.Errorf("failed to create AWS session: %w", err)
	}

	if a.sqsClient == nil {
		a.sqsClient = sqs.New(sess)
	}
	if a.snsClient == nil {
		a.snsClient = sns.New(sess)
	}
	if a.s3Client == nil {
		a.s3Client = s3.New(sess)
	}

	a.logger.WithField("region", awsCfg.Region).Info("AWS clients initialized")
	return nil
}

// InitStores connects the history store and the scheduler database.
func (a *App) InitStores() error {
	cfg := a.config

	ctx := context.Background()
	mongoTimeout := time.Duration(cfg.Mongo.TimeoutSeconds) * time.Second
	client, err := database.ConnectMongo(ctx, cfg.Mongo.URI, mongoTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	a.mongoClient = client
	a.logger.WithField("database", cfg.Mongo.Database).Info("Connected to MongoDB")

	password := cfg.SchedulerDB.Password
	maskedPassword := ""
	if len(password) > 0 {
		maskedPassword = fmt.Sprintf("%c...%c", password[0], password[len(password)-1])
	}
	a.logger.Info(fmt.Sprintf("Connecting to scheduler database %s:%d, user %s, sslmode %s, password: %s, dbname: %s",
		cfg.SchedulerDB.Host, cfg.SchedulerDB.Port, cfg.SchedulerDB.User, cfg.SchedulerDB.SSLMode, maskedPassword, cfg.SchedulerDB.DBName))

	db, err := database.ConnectScheduler(database.SchedulerDSNConfig{
		Host:     cfg.SchedulerDB.Host,
		Port:     cfg.SchedulerDB.Port,
		User:     cfg.SchedulerDB.User,
		Password: cfg.SchedulerDB.Password,
		DBName:   cfg.SchedulerDB.DBName,
		SSLMode:  cfg.SchedulerDB.SSLMode,
	}, cfg.Tracing.Enabled)
	if err != nil {
		return fmt.Errorf("failed to connect to scheduler database: %w", err)
	}
	a.schedulerDB = db

	return nil
}

// InitRepositories initializes the repositories
func (a *App) InitRepositories() error {
	ctx := context.Background()
	db := a.mongoClient.Database(a.config.Mongo.Database)

	historyRepo, err := repository.NewHistoryRepository(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to initialize history repository: %w", err)
	}
	a.historyRepo = historyRepo
	a.jobRepo = repository.NewJobRepository(a.schedulerDB)
	a.appliedRepo = repository.NewAppliedMigrationsRepository(db)

	return nil
}

// InitServices wires the sender, planner and scheduler graph.
func (a *App) InitServices() error {
	cfg := a.config

	location, err := time.LoadLocation(cfg.App.TimezoneID)
	if err != nil {
		return fmt.Errorf("failed to load timezone %s: %w", cfg.App.TimezoneID, err)
	}

	a.eventBus = domain.NewInMemoryEventBus()
	a.historyService = service.NewHistoryService(a.historyRepo, a.eventBus, a.logger)

	a.eventPublisher = service.NewEventPublisherService(a.snsClient, cfg.AWS.NotificationsEventTopicARN, a.logger)
	a.eventBus.Subscribe(domain.EventHistorySaved, func(ctx context.Context, payload domain.EventPayload) {
		if payload.History == nil {
			return
		}
		if err := a.eventPublisher.Publish(ctx, payload.History); err != nil {
			a.logger.WithField("id", payload.EntityID).
				Error(fmt.Sprintf("Failed to broadcast saved notification: %v", err))
		}
	})
	a.eventBus.Subscribe(domain.EventHistoryDeleted, func(ctx context.Context, payload domain.EventPayload) {
		if err := a.eventPublisher.PublishDelete(ctx, payload.EntityID); err != nil {
			a.logger.WithField("id", payload.EntityID).
				Error(fmt.Sprintf("Failed to broadcast deleted notification: %v", err))
		}
	})

	a.templateService = service.NewTemplateService(cfg.Templates, location, a.logger)
	a.smtpService = service.NewSMTPService(cfg.SMTP, a.logger)
	a.attachmentService = service.NewAttachmentService(a.s3Client, a.logger)
	a.emailSender = service.NewEmailSenderService(
		a.templateService,
		a.smtpService,
		a.attachmentService,
		a.historyService,
		a.historyRepo,
		cfg.App.EmailNotificationsOn,
		a.logger,
	)
	a.inAppService = service.NewInAppService(a.templateService, a.historyService, cfg.App.InAppNotificationsOn, a.logger)

	httpClient := &http.Client{Timeout: time.Duration(cfg.App.HTTPTimeoutSeconds) * time.Second}
	if cfg.Tracing.Enabled {
		httpClient = tracing.WrapHTTPClient(httpClient)
	}

	accountClient := service.NewAccountClient(cfg.App.AccountServiceURL, httpClient, a.logger)
	profileClient := service.NewProfileClient(cfg.App.ProfileServiceURL, httpClient, a.logger)
	referenceClient := service.NewReferenceClient(cfg.App.ReferenceServiceURL, httpClient, a.logger)
	actionsClient := service.NewActionsClient(cfg.App.ActionsServiceURL, httpClient, a.logger)

	a.recipientService = service.NewRecipientService(accountClient, profileClient, a.logger)
	a.contactsService = service.NewContactsService(referenceClient, a.logger)
	a.executorService = service.NewNotificationExecutorService(a.recipientService, a.emailSender, a.logger)

	immediateDelay := time.Duration(cfg.App.ImmediateDelayMinutes) * time.Minute
	a.jobService = service.NewJobService(a.jobRepo, a.executorService, location, immediateDelay, a.logger)

	a.outboxService = service.NewOutboxService(a.sqsClient, cfg.Queues.Outbox, a.logger)

	a.programmeService = service.NewProgrammeMembershipService(
		a.historyRepo,
		a.jobService,
		a.inAppService,
		actionsClient,
		cfg.App.NotificationsWhitelist,
		location,
		a.logger,
	)
	a.placementService = service.NewPlacementService(a.historyRepo, a.jobService, a.logger)
	a.ltftService = service.NewLtftService(a.recipientService, a.contactsService, a.emailSender, a.logger)
	a.emailEventService = service.NewEmailEventService(a.historyService, a.logger)
	a.contactDetailsService = service.NewContactDetailsService(a.historyService, a.emailSender, a.logger)
	a.accountService = service.NewAccountService(a.historyService, a.inAppService, a.emailSender, a.logger)
	a.cojService = service.NewCojService(a.recipientService, a.emailSender, a.logger)
	a.formService = service.NewFormService(a.inAppService, a.logger)
	a.gmcService = service.NewGmcService(a.recipientService, a.contactsService, a.inAppService, a.emailSender, a.logger)

	return nil
}

// runMigrations applies pending one-shot migrations. Failures are logged
// and retried on the next startup, so this never blocks boot.
func (a *App) runMigrations(ctx context.Context) {
	manager := migrations.NewManager(a.appliedRepo, a.logger)
	manager.Run(ctx, &migrations.Dependencies{
		HistoryRepository: a.historyRepo,
		HistoryService:    a.historyService,
		EmailSender:       a.emailSender,
		Scheduler:         a.jobService,
		OutboxSender:      a.outboxService,
		Logger:            a.logger,
	})
}

// InitWorkers builds the job runner, the queue consumers and the health
// server. Queues without a configured URL are skipped.
func (a *App) InitWorkers() error {
	cfg := a.config

	a.jobRunner = service.NewJobRunner(
		a.jobRepo,
		a.executorService,
		a.logger,
		time.Duration(cfg.Worker.SchedulerInterval)*time.Second,
		cfg.Worker.SchedulerBatchSize,
	)

	consumerConfig := &queue.Config{
		WaitSeconds: cfg.Worker.ConsumerWaitSeconds,
		BatchSize:   cfg.Worker.ConsumerBatchSize,
		WorkerCount: cfg.Worker.ConsumerCount,
	}

	accountListener := service.NewAccountListener(a.accountService, a.logger)
	cojListener := service.NewCojListener(a.cojService, a.logger)
	contactDetailsListener := service.NewContactDetailsListener(a.contactDetailsService, a.logger)
	emailEventListener := service.NewEmailEventListener(a.emailEventService, a.logger)
	formListener := service.NewFormListener(a.formService, a.logger)
	gmcListener := service.NewGmcListener(a.gmcService, a.logger)
	ltftListener := service.NewLtftListener(a.ltftService, a.logger)
	placementListener := service.NewPlacementListener(a.placementService, a.logger)
	programmeListener := service.NewProgrammeMembershipListener(a.programmeService, a.logger)
	outboxListener := service.NewOutboxListener(a.historyService, a.logger)

	bindings := []struct {
		name     string
		queueURL string
		handler  queue.HandlerFunc
	}{
		{"account-confirmed", cfg.Queues.AccountConfirmed, accountListener.HandleConfirmed},
		{"account-updated", cfg.Queues.AccountUpdated, accountListener.HandleUpdated},
		{"coj-published", cfg.Queues.CojPublished, cojListener.HandlePublished},
		{"contact-details-updated", cfg.Queues.ContactDetailsUpdated, contactDetailsListener.HandleUpdated},
		{"email-event", cfg.Queues.EmailEvent, emailEventListener.HandleEvent},
		{"form-updated", cfg.Queues.FormUpdated, formListener.HandleUpdated},
		{"gmc-rejected", cfg.Queues.GmcRejected, gmcListener.HandleRejected},
		{"gmc-updated", cfg.Queues.GmcUpdated, gmcListener.HandleUpdated},
		{"ltft-updated", cfg.Queues.LtftUpdated, ltftListener.HandleUpdated},
		{"ltft-updated-tpd", cfg.Queues.LtftUpdatedTpd, ltftListener.HandleTpdUpdated},
		{"placement-updated", cfg.Queues.PlacementUpdated, placementListener.HandleUpdated},
		{"placement-deleted", cfg.Queues.PlacementDeleted, placementListener.HandleDeleted},
		{"programme-membership-updated", cfg.Queues.ProgrammeMembershipUpdated, programmeListener.HandleUpdated},
		{"programme-membership-deleted", cfg.Queues.ProgrammeMembershipDeleted, programmeListener.HandleDeleted},
		{"outbox", cfg.Queues.Outbox, outboxListener.HandleBatch},
	}

	a.consumers = make([]*queue.Consumer, 0, len(bindings))
	for _, binding := range bindings {
		if binding.queueURL == "" {
			a.logger.WithField("queue", binding.name).Warn("Queue URL not configured, consumer disabled")
			continue
		}
		a.consumers = append(a.consumers,
			queue.NewConsumer(a.sqsClient, binding.queueURL, binding.name, binding.handler, consumerConfig, a.logger))
	}

	health := server.NewHealthHandler(a.logger).
		AddCheck("mongo", server.PingFunc(func(ctx context.Context) error {
			return a.mongoClient.Ping(ctx, nil)
		})).
		AddCheck("postgres", server.PingFunc(func(ctx context.Context) error {
			return a.schedulerDB.PingContext(ctx)
		}))

	var metrics http.Handler
	if cfg.Tracing.Enabled {
		metrics = tracing.PrometheusHandler()
	}
	a.healthServer = server.New(&cfg.Server, health, metrics, a.logger)

	return nil
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting notification service")

	if err := a.InitTracing(); err != nil {
		return err
	}

	if err := a.InitAWS(); err != nil {
		return err
	}

	if err := a.InitStores(); err != nil {
		return err
	}

	if err := a.InitRepositories(); err != nil {
		return err
	}

	if err := a.InitServices(); err != nil {
		return err
	}

	a.runMigrations(context.Background())

	if err := a.InitWorkers(); err != nil {
		return err
	}

	a.logger.Info("Application successfully initialized")

	return nil
}

// Start launches the job runner and queue consumers, then blocks serving
// health checks until Shutdown is called.
func (a *App) Start() error {
	a.jobRunner.Start(a.runCtx)

	for _, consumer := range a.consumers {
		consumer.Start(a.runCtx)
	}
	a.logger.WithField("consumers", len(a.consumers)).Info("Queue consumers started")

	return a.healthServer.Start()
}

// Shutdown gracefully stops the workers, the health server and the store
// connections. Consumers stop first so no new work arrives while in-flight
// handlers drain.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")

	a.runCancel()

	var wg sync.WaitGroup
	for _, consumer := range a.consumers {
		wg.Add(1)
		go func(c *queue.Consumer) {
			defer wg.Done()
			c.Stop()
		}(consumer)
	}
	wg.Wait()

	if a.jobRunner != nil {
		a.jobRunner.Stop()
	}

	var shutdownErr error
	if a.healthServer != nil {
		if err := a.healthServer.Shutdown(ctx); err != nil {
			a.logger.WithField("error", err.Error()).Error("Error shutting down health server")
			shutdownErr = err
		}
	}

	if cleanupErr := a.cleanupResources(ctx); cleanupErr != nil {
		a.logger.WithField("error", cleanupErr.Error()).Error("Error during resource cleanup")
		if shutdownErr == nil {
			shutdownErr = cleanupErr
		}
	}

	if shutdownErr != nil {
		a.logger.WithField("error", shutdownErr.Error()).Error("Graceful shutdown completed with errors")
	} else {
		a.logger.Info("Graceful shutdown completed successfully")
	}

	return shutdownErr
}

// cleanupResources handles cleanup of database and other resources
func (a *App) cleanupResources(ctx context.Context) error {
	a.logger.Info("Cleaning up resources...")

	var firstErr error
	if a.schedulerDB != nil {
		a.logger.Info("Closing scheduler database connection")
		if err := a.schedulerDB.Close(); err != nil {
			a.logger.WithField("error", err.Error()).Error("Error closing scheduler database connection")
			firstErr = err
		}
	}

	if a.mongoClient != nil {
		a.logger.Info("Disconnecting from MongoDB")
		if err := a.mongoClient.Disconnect(ctx); err != nil {
			a.logger.WithField("error", err.Error()).Error("Error disconnecting from MongoDB")
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	a.logger.Info("Resource cleanup completed")
	return firstErr
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app's logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

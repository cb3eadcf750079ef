package app

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraineeHub/notify/config"
	"github.com/TraineeHub/notify/internal/domain/mocks"
	"github.com/TraineeHub/notify/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8208},
		Mongo: config.MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "notifications-test",
			TimeoutSeconds: 5,
		},
		AWS: config.AWSConfig{
			Region:                     "eu-west-2",
			Endpoint:                   "http://localhost:4566",
			AccessKey:                  "test",
			SecretKey:                  "test",
			NotificationsEventTopicARN: "arn:aws:sns:eu-west-2:000000000000:notifications-event",
		},
		Queues: config.QueuesConfig{
			ProgrammeMembershipUpdated: "https://sqs.eu-west-2.amazonaws.com/000000000000/pm-updated",
			Outbox:                     "https://sqs.eu-west-2.amazonaws.com/000000000000/outbox",
		},
		Templates: config.TemplatesConfig{
			RootDir:  "testdata/templates",
			Versions: map[string]string{"WELCOME.IN_APP": "v1.0.0"},
		},
		App: config.AppConfig{
			TimezoneID:            "Europe/London",
			EmailNotificationsOn:  true,
			InAppNotificationsOn:  true,
			ImmediateDelayMinutes: 60,
			HTTPTimeoutSeconds:    5,
			ProfileServiceURL:     "http://localhost:8205",
			ReferenceServiceURL:   "http://localhost:8206",
			ActionsServiceURL:     "http://localhost:8207",
			AccountServiceURL:     "http://localhost:8204",
		},
		Worker: config.WorkerConfig{
			ConsumerCount:       2,
			SchedulerInterval:   10,
			SchedulerBatchSize:  10,
			ConsumerWaitSeconds: 1,
			ConsumerBatchSize:   10,
		},
		LogLevel: "error",
		Version:  "test",
	}
}

func newMockedApp(t *testing.T, ctrl *gomock.Controller, cfg *config.Config) *App {
	return NewApp(cfg,
		WithLogger(logger.NewTestLogger(t)),
		WithAWSClients(
			mocks.NewMockSQSClient(ctrl),
			mocks.NewMockSNSClient(ctrl),
			mocks.NewMockS3Client(ctrl),
		),
	)
}

func TestNewApp_AppliesOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.NewTestLogger(t)
	sqsClient := mocks.NewMockSQSClient(ctrl)
	snsClient := mocks.NewMockSNSClient(ctrl)
	s3Client := mocks.NewMockS3Client(ctrl)

	a := NewApp(testConfig(), WithLogger(log), WithAWSClients(sqsClient, snsClient, s3Client))

	assert.Same(t, log, a.logger)
	assert.Same(t, sqsClient, a.sqsClient)
	assert.Same(t, snsClient, a.snsClient)
	assert.Same(t, s3Client, a.s3Client)
}

func TestInitAWS_BuildsClients(t *testing.T) {
	a := NewApp(testConfig(), WithLogger(logger.NewTestLogger(t)))

	require.NoError(t, a.InitAWS())

	assert.NotNil(t, a.sqsClient)
	assert.NotNil(t, a.snsClient)
	assert.NotNil(t, a.s3Client)
}

func TestInitAWS_KeepsInjectedClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sqsClient := mocks.NewMockSQSClient(ctrl)
	snsClient := mocks.NewMockSNSClient(ctrl)
	s3Client := mocks.NewMockS3Client(ctrl)
	a := NewApp(testConfig(),
		WithLogger(logger.NewTestLogger(t)),
		WithAWSClients(sqsClient, snsClient, s3Client),
	)

	require.NoError(t, a.InitAWS())

	assert.Same(t, sqsClient, a.sqsClient)
	assert.Same(t, snsClient, a.snsClient)
	assert.Same(t, s3Client, a.s3Client)
}

func TestInitServices_WiresGraph(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newMockedApp(t, ctrl, testConfig())

	require.NoError(t, a.InitServices())

	assert.NotNil(t, a.eventBus)
	assert.NotNil(t, a.historyService)
	assert.NotNil(t, a.emailSender)
	assert.NotNil(t, a.inAppService)
	assert.NotNil(t, a.jobService)
	assert.NotNil(t, a.outboxService)
	assert.NotNil(t, a.eventPublisher)
	assert.NotNil(t, a.programmeService)
	assert.NotNil(t, a.placementService)
	assert.NotNil(t, a.ltftService)
	assert.NotNil(t, a.emailEventService)
	assert.NotNil(t, a.contactDetailsService)
	assert.NotNil(t, a.accountService)
	assert.NotNil(t, a.cojService)
	assert.NotNil(t, a.formService)
	assert.NotNil(t, a.gmcService)
}

func TestInitServices_RejectsUnknownTimezone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.App.TimezoneID = "Neverland/Clocktower"
	a := newMockedApp(t, ctrl, cfg)

	err := a.InitServices()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load timezone")
}

func TestInitWorkers_SkipsUnconfiguredQueues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Only two of the fifteen queue URLs are set in the test config.
	a := newMockedApp(t, ctrl, testConfig())
	require.NoError(t, a.InitServices())

	require.NoError(t, a.InitWorkers())

	assert.Len(t, a.consumers, 2)
	assert.NotNil(t, a.jobRunner)
	assert.NotNil(t, a.healthServer)
}

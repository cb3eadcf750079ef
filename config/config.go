package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const VERSION = "1.4"

type Config struct {
	Server      ServerConfig
	Mongo       MongoConfig
	SchedulerDB SchedulerDBConfig
	AWS         AWSConfig
	Queues      QueuesConfig
	SMTP        SMTPConfig
	Templates   TemplatesConfig
	App         AppConfig
	Worker      WorkerConfig
	Tracing     TracingConfig
	Environment string
	LogLevel    string
	Version     string
}

// ServerConfig configures the health endpoint listener.
type ServerConfig struct {
	Host string
	Port int
}

// MongoConfig configures the History document store.
type MongoConfig struct {
	URI            string
	Database       string
	TimeoutSeconds int
}

// SchedulerDBConfig configures the Postgres store backing the job scheduler.
type SchedulerDBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AWSConfig struct {
	Region    string
	Endpoint  string // optional override, e.g. localstack
	AccessKey string
	SecretKey string

	// Topic receiving the flat History view on every create/update/delete.
	NotificationsEventTopicARN string
}

// QueuesConfig holds one queue URL per inbound event kind plus the outbox.
type QueuesConfig struct {
	AccountConfirmed           string
	AccountUpdated             string
	CojPublished               string
	ContactDetailsUpdated      string
	EmailEvent                 string
	FormUpdated                string
	GmcRejected                string
	GmcUpdated                 string
	LtftUpdated                string
	LtftUpdatedTpd             string
	PlacementUpdated           string
	PlacementDeleted           string
	ProgrammeMembershipUpdated string
	ProgrammeMembershipDeleted string
	Outbox                     string
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// TemplatesConfig locates template files and pins the version used per
// notification kind and channel. Versions are keyed "{kind}.{channel}",
// e.g. "LTFT_SUBMITTED.EMAIL".
type TemplatesConfig struct {
	RootDir  string
	Versions map[string]string
}

type AppConfig struct {
	Domain                  string
	TimezoneID              string
	NotificationsWhitelist  []string
	EmailNotificationsOn    bool
	InAppNotificationsOn    bool
	ImmediateDelayMinutes   int
	HTTPTimeoutSeconds      int
	ProfileServiceURL       string
	ReferenceServiceURL     string
	ActionsServiceURL       string
	AccountServiceURL       string
}

type WorkerConfig struct {
	ConsumerCount        int
	SchedulerInterval    int // seconds between due-job polls
	SchedulerBatchSize   int
	ConsumerWaitSeconds  int // SQS long-poll wait
	ConsumerBatchSize    int // max messages per receive
}

type TracingConfig struct {
	Enabled             bool
	ServiceName         string
	Environment         string
	SamplingProbability float64

	// "jaeger", "zipkin", "stackdriver", "datadog", "xray" or "none"
	TraceExporter string

	JaegerEndpoint       string
	ZipkinEndpoint       string
	StackdriverProjectID string
	DatadogAgentAddress  string
	DatadogAPIKey        string
	XRayRegion           string
	AgentEndpoint        string

	// "prometheus", "stackdriver", "datadog", "none" or comma-separated list
	MetricsExporter string
	PrometheusPort  int
}

// LoadOptions contains options for loading configuration.
type LoadOptions struct {
	EnvFile string // optional environment file, e.g. ".env", ".env.test"
}

// Load loads the configuration with default options.
func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options.
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8208)

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "notifications")
	v.SetDefault("MONGO_TIMEOUT_SECONDS", 10)

	v.SetDefault("SCHEDULER_DB_HOST", "localhost")
	v.SetDefault("SCHEDULER_DB_PORT", 5432)
	v.SetDefault("SCHEDULER_DB_USER", "postgres")
	v.SetDefault("SCHEDULER_DB_PASSWORD", "postgres")
	v.SetDefault("SCHEDULER_DB_NAME", "scheduler")
	v.SetDefault("SCHEDULER_DB_SSLMODE", "require")

	v.SetDefault("AWS_REGION", "eu-west-2")
	v.SetDefault("AWS_ENDPOINT", "")

	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)

	// SMTP defaults
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM_NAME", "TSS Notifications")
	v.SetDefault("SMTP_FROM_EMAIL", "no-reply@tss.nhs.uk")

	// Template defaults
	v.SetDefault("TEMPLATE_ROOT", "templates")
	v.SetDefault("TEMPLATE_VERSIONS", "{}")

	// Application defaults
	v.SetDefault("APP_DOMAIN", "")
	v.SetDefault("APP_TIMEZONE", "Europe/London")
	v.SetDefault("NOTIFICATIONS_WHITELIST", "")
	v.SetDefault("EMAIL_NOTIFICATIONS_ENABLED", true)
	v.SetDefault("IN_APP_NOTIFICATIONS_ENABLED", true)
	v.SetDefault("IMMEDIATE_NOTIFICATIONS_DELAY_MINUTES", 60)
	v.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	v.SetDefault("PROFILE_SERVICE_URL", "http://localhost:8203")
	v.SetDefault("REFERENCE_SERVICE_URL", "http://localhost:8205")
	v.SetDefault("ACTIONS_SERVICE_URL", "http://localhost:8210")
	v.SetDefault("ACCOUNT_SERVICE_URL", "http://localhost:8212")

	// Worker defaults
	v.SetDefault("CONSUMER_COUNT", 5)
	v.SetDefault("SCHEDULER_INTERVAL_SECONDS", 10)
	v.SetDefault("SCHEDULER_BATCH_SIZE", 10)
	v.SetDefault("CONSUMER_WAIT_SECONDS", 20)
	v.SetDefault("CONSUMER_BATCH_SIZE", 10)

	// Default tracing config
	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_SERVICE_NAME", "trainee-notify")
	v.SetDefault("TRACING_SAMPLING_PROBABILITY", 0.1)
	v.SetDefault("TRACING_TRACE_EXPORTER", "none")
	v.SetDefault("TRACING_JAEGER_ENDPOINT", "http://localhost:14268/api/traces")
	v.SetDefault("TRACING_ZIPKIN_ENDPOINT", "http://localhost:9411/api/v2/spans")
	v.SetDefault("TRACING_STACKDRIVER_PROJECT_ID", "")
	v.SetDefault("TRACING_DATADOG_AGENT_ADDRESS", "localhost:8126")
	v.SetDefault("TRACING_DATADOG_API_KEY", "")
	v.SetDefault("TRACING_XRAY_REGION", "eu-west-2")
	v.SetDefault("TRACING_AGENT_ENDPOINT", "localhost:8126")
	v.SetDefault("TRACING_METRICS_EXPORTER", "none")
	v.SetDefault("TRACING_PROMETHEUS_PORT", 9464)

	// Load environment file if specified
	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if the env file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	versions := map[string]string{}
	if raw := v.GetString("TEMPLATE_VERSIONS"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &versions); err != nil {
			return nil, fmt.Errorf("error parsing TEMPLATE_VERSIONS: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Mongo: MongoConfig{
			URI:            v.GetString("MONGO_URI"),
			Database:       v.GetString("MONGO_DATABASE"),
			TimeoutSeconds: v.GetInt("MONGO_TIMEOUT_SECONDS"),
		},
		SchedulerDB: SchedulerDBConfig{
			Host:     v.GetString("SCHEDULER_DB_HOST"),
			Port:     v.GetInt("SCHEDULER_DB_PORT"),
			User:     v.GetString("SCHEDULER_DB_USER"),
			Password: v.GetString("SCHEDULER_DB_PASSWORD"),
			DBName:   v.GetString("SCHEDULER_DB_NAME"),
			SSLMode:  v.GetString("SCHEDULER_DB_SSLMODE"),
		},
		AWS: AWSConfig{
			Region:                     v.GetString("AWS_REGION"),
			Endpoint:                   v.GetString("AWS_ENDPOINT"),
			AccessKey:                  v.GetString("AWS_ACCESS_KEY_ID"),
			SecretKey:                  v.GetString("AWS_SECRET_ACCESS_KEY"),
			NotificationsEventTopicARN: v.GetString("NOTIFICATIONS_EVENT_TOPIC_ARN"),
		},
		Queues: QueuesConfig{
			AccountConfirmed:           v.GetString("QUEUE_ACCOUNT_CONFIRMED"),
			AccountUpdated:             v.GetString("QUEUE_ACCOUNT_UPDATED"),
			CojPublished:               v.GetString("QUEUE_COJ_PUBLISHED"),
			ContactDetailsUpdated:      v.GetString("QUEUE_CONTACT_DETAILS_UPDATED"),
			EmailEvent:                 v.GetString("QUEUE_EMAIL_EVENT"),
			FormUpdated:                v.GetString("QUEUE_FORM_UPDATED"),
			GmcRejected:                v.GetString("QUEUE_GMC_REJECTED"),
			GmcUpdated:                 v.GetString("QUEUE_GMC_UPDATED"),
			LtftUpdated:                v.GetString("QUEUE_LTFT_UPDATED"),
			LtftUpdatedTpd:             v.GetString("QUEUE_LTFT_UPDATED_TPD"),
			PlacementUpdated:           v.GetString("QUEUE_PLACEMENT_UPDATED"),
			PlacementDeleted:           v.GetString("QUEUE_PLACEMENT_DELETED"),
			ProgrammeMembershipUpdated: v.GetString("QUEUE_PROGRAMME_MEMBERSHIP_UPDATED"),
			ProgrammeMembershipDeleted: v.GetString("QUEUE_PROGRAMME_MEMBERSHIP_DELETED"),
			Outbox:                     v.GetString("QUEUE_OUTBOX"),
		},
		SMTP: SMTPConfig{
			Host:      v.GetString("SMTP_HOST"),
			Port:      v.GetInt("SMTP_PORT"),
			Username:  v.GetString("SMTP_USERNAME"),
			Password:  v.GetString("SMTP_PASSWORD"),
			FromEmail: v.GetString("SMTP_FROM_EMAIL"),
			FromName:  v.GetString("SMTP_FROM_NAME"),
		},
		Templates: TemplatesConfig{
			RootDir:  v.GetString("TEMPLATE_ROOT"),
			Versions: versions,
		},
		App: AppConfig{
			Domain:                 v.GetString("APP_DOMAIN"),
			TimezoneID:             v.GetString("APP_TIMEZONE"),
			NotificationsWhitelist: splitList(v.GetString("NOTIFICATIONS_WHITELIST")),
			EmailNotificationsOn:   v.GetBool("EMAIL_NOTIFICATIONS_ENABLED"),
			InAppNotificationsOn:   v.GetBool("IN_APP_NOTIFICATIONS_ENABLED"),
			ImmediateDelayMinutes:  v.GetInt("IMMEDIATE_NOTIFICATIONS_DELAY_MINUTES"),
			HTTPTimeoutSeconds:     v.GetInt("HTTP_TIMEOUT_SECONDS"),
			ProfileServiceURL:      v.GetString("PROFILE_SERVICE_URL"),
			ReferenceServiceURL:    v.GetString("REFERENCE_SERVICE_URL"),
			ActionsServiceURL:      v.GetString("ACTIONS_SERVICE_URL"),
			AccountServiceURL:      v.GetString("ACCOUNT_SERVICE_URL"),
		},
		Worker: WorkerConfig{
			ConsumerCount:       v.GetInt("CONSUMER_COUNT"),
			SchedulerInterval:   v.GetInt("SCHEDULER_INTERVAL_SECONDS"),
			SchedulerBatchSize:  v.GetInt("SCHEDULER_BATCH_SIZE"),
			ConsumerWaitSeconds: v.GetInt("CONSUMER_WAIT_SECONDS"),
			ConsumerBatchSize:   v.GetInt("CONSUMER_BATCH_SIZE"),
		},
		Tracing: TracingConfig{
			Enabled:              v.GetBool("TRACING_ENABLED"),
			ServiceName:          v.GetString("TRACING_SERVICE_NAME"),
			Environment:          v.GetString("ENVIRONMENT"),
			SamplingProbability:  v.GetFloat64("TRACING_SAMPLING_PROBABILITY"),
			TraceExporter:        v.GetString("TRACING_TRACE_EXPORTER"),
			JaegerEndpoint:       v.GetString("TRACING_JAEGER_ENDPOINT"),
			ZipkinEndpoint:       v.GetString("TRACING_ZIPKIN_ENDPOINT"),
			StackdriverProjectID: v.GetString("TRACING_STACKDRIVER_PROJECT_ID"),
			DatadogAgentAddress:  v.GetString("TRACING_DATADOG_AGENT_ADDRESS"),
			DatadogAPIKey:        v.GetString("TRACING_DATADOG_API_KEY"),
			XRayRegion:           v.GetString("TRACING_XRAY_REGION"),
			AgentEndpoint:        v.GetString("TRACING_AGENT_ENDPOINT"),
			MetricsExporter:      v.GetString("TRACING_METRICS_EXPORTER"),
			PrometheusPort:       v.GetInt("TRACING_PROMETHEUS_PORT"),
		},
		Environment: v.GetString("ENVIRONMENT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Version:     v.GetString("VERSION"),
	}

	return config, nil
}

// splitList parses a comma separated env value, trimming blanks.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsDevelopment returns true if the environment is set to development.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithOptions_Defaults(t *testing.T) {
	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "notifications", cfg.Mongo.Database)
	assert.Equal(t, 5432, cfg.SchedulerDB.Port)
	assert.Equal(t, "eu-west-2", cfg.AWS.Region)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "Europe/London", cfg.App.TimezoneID)
	assert.True(t, cfg.App.EmailNotificationsOn)
	assert.True(t, cfg.App.InAppNotificationsOn)
	assert.Equal(t, 60, cfg.App.ImmediateDelayMinutes)
	assert.Empty(t, cfg.App.NotificationsWhitelist)
	assert.Equal(t, 5, cfg.Worker.ConsumerCount)
	assert.Equal(t, 20, cfg.Worker.ConsumerWaitSeconds)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, VERSION, cfg.Version)
	assert.Empty(t, cfg.Templates.Versions)
}

func TestLoadWithOptions_Environment(t *testing.T) {
	t.Setenv("MONGO_DATABASE", "notify_test")
	t.Setenv("QUEUE_LTFT_UPDATED", "https://sqs.eu-west-2.amazonaws.com/1/ltft-updated")
	t.Setenv("NOTIFICATIONS_WHITELIST", "101, 202,303")
	t.Setenv("TEMPLATE_VERSIONS", `{"LTFT_SUBMITTED.EMAIL":"v1.2.0"}`)
	t.Setenv("IMMEDIATE_NOTIFICATIONS_DELAY_MINUTES", "5")
	t.Setenv("ENVIRONMENT", "development")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "notify_test", cfg.Mongo.Database)
	assert.Equal(t, "https://sqs.eu-west-2.amazonaws.com/1/ltft-updated", cfg.Queues.LtftUpdated)
	assert.Equal(t, []string{"101", "202", "303"}, cfg.App.NotificationsWhitelist)
	assert.Equal(t, "v1.2.0", cfg.Templates.Versions["LTFT_SUBMITTED.EMAIL"])
	assert.Equal(t, 5, cfg.App.ImmediateDelayMinutes)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "development", cfg.Tracing.Environment)
}

func TestLoadWithOptions_BadTemplateVersions(t *testing.T) {
	t.Setenv("TEMPLATE_VERSIONS", "{not json")

	_, err := LoadWithOptions(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEMPLATE_VERSIONS")
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a"}, splitList("a"))
	assert.Equal(t, []string{"a", "b"}, splitList(" a , b ,"))
}

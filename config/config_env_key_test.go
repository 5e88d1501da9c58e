package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"monitor": map[string]any{
			"tickInterval":               "15m",
			"defaultAlertThresholdHours": 12,
		},
		"pairing": map[string]any{
			"maxCodeAttempts": 50,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MONITOR_TICKINTERVAL", want: "monitor.tickInterval"},
		{envKey: "MONITOR_DEFAULTALERTTHRESHOLDHOURS", want: "monitor.defaultAlertThresholdHours"},
		{envKey: "PAIRING_MAXCODEATTEMPTS", want: "pairing.maxCodeAttempts"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsTunables(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultTickInterval, cfg.Monitor.TickInterval)
	assert.Equal(t, DefaultAlertThresholdHours, cfg.Monitor.DefaultAlertThresholdHours)
	assert.Equal(t, DefaultMonitorConcurrency, cfg.Monitor.Concurrency)
	assert.Equal(t, DefaultTimezone, cfg.Monitor.DefaultTimezone)
	assert.Equal(t, DefaultHandshakeTimeout, cfg.Pairing.HandshakeTimeout)
	assert.Equal(t, DefaultPollInterval, cfg.Pairing.PollInterval)
	assert.Equal(t, DefaultMaxCodeAttempts, cfg.Pairing.MaxCodeAttempts)
	assert.Equal(t, DefaultPerRecipientTimeout, cfg.Notification.PerRecipientTimeout)
	assert.Equal(t, DefaultFanoutTimeout, cfg.Notification.FanoutTimeout)
	assert.Equal(t, "noop", cfg.PubSub.Provider)
	assert.Equal(t, "http://localhost:8080", cfg.Client.BaseURL)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Monitor: &MonitorConfig{DefaultAlertThresholdHours: 24, Concurrency: 2},
		Pairing: &PairingConfig{MaxCodeAttempts: 10},
	}
	cfg.applyDefaults()

	assert.Equal(t, 24, cfg.Monitor.DefaultAlertThresholdHours)
	assert.Equal(t, 2, cfg.Monitor.Concurrency)
	assert.Equal(t, 10, cfg.Pairing.MaxCodeAttempts)
}

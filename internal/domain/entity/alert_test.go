package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func familyInactiveFor(d time.Duration, now time.Time, threshold int) *Family {
	last := now.Add(-d)

	return &Family{
		Settings:       MonitorSettings{MonitoringEnabled: true, AlertThresholdHours: threshold},
		LastActivityAt: &last,
	}
}

func TestEvaluateAlert(t *testing.T) {
	now := monday(12, 0)
	overnight := &SleepWindow{Enabled: true, StartMinuteOfDay: 22 * 60, EndMinuteOfDay: 6 * 60, ActiveWeekdays: allWeekdays}
	midday := &SleepWindow{Enabled: true, StartMinuteOfDay: 11 * 60, EndMinuteOfDay: 13 * 60, ActiveWeekdays: allWeekdays}

	tests := []struct {
		name      string
		family    *Family
		want      AlertDecision
		wantHours int
	}{
		{
			name:   "no baseline",
			family: &Family{Settings: MonitorSettings{AlertThresholdHours: 12}},
			want:   DecisionNoBaseline,
		},
		{
			name:      "over threshold raises",
			family:    familyInactiveFor(13*time.Hour, now, 12),
			want:      DecisionRaise,
			wantHours: 13,
		},
		{
			name:      "exactly threshold after flooring does not raise",
			family:    familyInactiveFor(12*time.Hour+59*time.Minute, now, 12),
			want:      DecisionNone,
			wantHours: 12,
		},
		{
			name: "over threshold and already active holds",
			family: func() *Family {
				f := familyInactiveFor(20*time.Hour, now, 12)
				f.AlertState = RaisedAlert(now.Add(-7*time.Hour), 13)
				return f
			}(),
			want:      DecisionHold,
			wantHours: 20,
		},
		{
			name: "over threshold inside sleep window is suppressed",
			family: func() *Family {
				f := familyInactiveFor(13*time.Hour, now, 12)
				f.Settings.SleepWindow = midday
				return f
			}(),
			want:      DecisionSuppressed,
			wantHours: 13,
		},
		{
			name: "suppression wins over an active alert",
			family: func() *Family {
				f := familyInactiveFor(30*time.Hour, now, 12)
				f.Settings.SleepWindow = midday
				f.AlertState = RaisedAlert(now.Add(-time.Hour), 29)
				return f
			}(),
			want:      DecisionSuppressed,
			wantHours: 30,
		},
		{
			name: "sleep window elsewhere in the day does not suppress",
			family: func() *Family {
				f := familyInactiveFor(13*time.Hour, now, 12)
				f.Settings.SleepWindow = overnight
				return f
			}(),
			want:      DecisionRaise,
			wantHours: 13,
		},
		{
			name: "activity resumed clears",
			family: func() *Family {
				f := familyInactiveFor(time.Minute, now, 12)
				f.AlertState = RaisedAlert(now.Add(-time.Hour), 14)
				return f
			}(),
			want:      DecisionClear,
			wantHours: 0,
		},
		{
			name:      "future activity counts as zero",
			family:    familyInactiveFor(-time.Hour, now, 1),
			want:      DecisionNone,
			wantHours: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hours := EvaluateAlert(tt.family, now, now)
			assert.Equal(t, tt.want, got, got.String())
			assert.Equal(t, tt.wantHours, hours)
		})
	}
}

func TestMonitorSettingsValidate(t *testing.T) {
	assert.NoError(t, MonitorSettings{AlertThresholdHours: 1}.Validate())
	assert.NoError(t, MonitorSettings{AlertThresholdHours: 72, Timezone: "Asia/Taipei"}.Validate())
	assert.Error(t, MonitorSettings{AlertThresholdHours: 0}.Validate())
	assert.Error(t, MonitorSettings{AlertThresholdHours: 73}.Validate())
	assert.Error(t, MonitorSettings{AlertThresholdHours: 12, Timezone: "Mars/Olympus"}.Validate())
	assert.Error(t, MonitorSettings{AlertThresholdHours: 12, SleepWindow: &SleepWindow{StartMinuteOfDay: 2000}}.Validate())
}

func TestLocalTime_UsesSettingsZone(t *testing.T) {
	now := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)

	local, err := MonitorSettings{Timezone: "Asia/Tokyo"}.LocalTime(now, time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, 5, local.Hour())
	assert.Equal(t, 2, ISOWeekday(local))

	local, err = MonitorSettings{}.LocalTime(now, time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, 20, local.Hour())
}

func TestTruncateToken(t *testing.T) {
	assert.Equal(t, "short", TruncateToken("short"))
	assert.Equal(t, "abcdefgh...", TruncateToken("abcdefghijklmnop"))
}

package config

import (
	"testing"
	"time"

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
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"remote": map[string]any{
			"baseUrl": "",
		},
		"upload": map[string]any{
			"maxFileSize": 0,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "REMOTE_BASEURL", want: "remote.baseUrl"},
		{envKey: "UPLOAD_MAXFILESIZE", want: "upload.maxFileSize"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultRemoteBaseURL, cfg.Remote.BaseURL)
	assert.Equal(t, defaultRemoteTimeout, cfg.Remote.Timeout)
	assert.Equal(t, defaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, int64(defaultMaxFileSize), cfg.Upload.MaxFileSize)
	assert.Equal(t, defaultMaxFiles, cfg.Upload.MaxFiles)
	assert.Equal(t, defaultMaxAttempts, cfg.Worker.MaxAttempts)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Remote:  &RemoteConfig{BaseURL: "https://api.example.vn/", Timeout: 5 * time.Second},
		Session: &SessionConfig{TTL: time.Hour},
		Upload:  &UploadConfig{MaxFileSize: 1024, MaxFiles: 2},
		Worker:  &WorkerConfig{MaxAttempts: 3},
	}

	applyDefaults(cfg)

	assert.Equal(t, "https://api.example.vn", cfg.Remote.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, int64(1024), cfg.Upload.MaxFileSize)
	assert.Equal(t, 2, cfg.Upload.MaxFiles)
	assert.Equal(t, 3, cfg.Worker.MaxAttempts)
}

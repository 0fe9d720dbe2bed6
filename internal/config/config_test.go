package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_NAME", "tracker_test")
	t.Setenv("JWT_EXPIRY", "90m")
	t.Setenv("MINIO_USE_SSL", "true")

	LoadConfig()

	assert.Equal(t, "tracker_test", DbName)
	assert.Equal(t, 90*time.Minute, JwtExpiry)
	assert.True(t, MinioUseSSL)
	assert.Contains(t, DSN(), "dbname=tracker_test")
}

func TestGetDuration_Invalid(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "soon")
	assert.Equal(t, time.Second, getDuration("SOME_TIMEOUT", time.Second))
}

func TestLoadConfig_TaskSettings(t *testing.T) {
	t.Setenv("AUDIT_RETENTION_DAYS", "-3")
	t.Setenv("RECONCILE_INTERVAL", "6h")

	LoadConfig()

	assert.Equal(t, 30, AuditRetentionDays)
	assert.Equal(t, 6*time.Hour, ReconcileInterval)
}

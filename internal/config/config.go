package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret          string
	JwtExpiry          time.Duration
	Issuer             string
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	ServerPort         string
	Env                string
	LogLevel           string
	MetricsPrefix      string
	Currency           string
	LifecycleFile      string
	AllowedOrigins     string
	AuditRetentionDays int
	ReconcileInterval  time.Duration
	MinioEndpoint      string
	MinioAccessKey     string
	MinioSecretKey     string
	MinioUseSSL        bool
	MinioBucket        string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	JwtExpiry = getDuration("JWT_EXPIRY", 24*time.Hour)
	Issuer = getEnv("ISSUER", "grant-tracker")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "tracker")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Env = getEnv("APP_ENV", "development")
	LogLevel = getEnv("LOG_LEVEL", "info")
	MetricsPrefix = getEnv("METRICS_PREFIX", "tracker")
	Currency = getEnv("TRACKER_CURRENCY", "CZK")
	LifecycleFile = getEnv("TRACKER_LIFECYCLE_FILE", "")
	AllowedOrigins = getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	AuditRetentionDays, _ = strconv.Atoi(getEnv("AUDIT_RETENTION_DAYS", "30"))
	if AuditRetentionDays <= 0 {
		AuditRetentionDays = 30
	}
	ReconcileInterval = getDuration("RECONCILE_INTERVAL", 0)

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "tracker-documents")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
}

// DSN is the PostgreSQL connection string for the configured database.
func DSN() string {
	return "host=" + DbHost +
		" port=" + DbPort +
		" user=" + DbUser +
		" password=" + DbPassword +
		" dbname=" + DbName +
		" sslmode=disable"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"perfumery/internal/adapters/out/audit"
	"perfumery/internal/jobs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// GatewaySecret, when set, is required in x-gateway-key on API requests
	// and forwarded on calls to remote components.
	GatewaySecret string

	// NATSURL selects the NATS audit sink; empty logs audit events instead.
	NATSURL            string
	AuditSubjectPrefix string

	// Remote component base URLs; empty runs the component in process.
	ProductionURL string
	ProcessingURL string
	StorageURL    string

	ReplantSchedule string
	LogLevel        string
}

// LoadConfig reads the optional .env file and the environment. Variables
// already present in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	return Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         getEnv("DB_PASSWORD", ""),
		DBName:             getEnv("DB_NAME", "perfumery"),
		DBSslMode:          getEnv("DB_SSLMODE", "disable"),
		GatewaySecret:      getEnv("GATEWAY_SECRET", ""),
		NATSURL:            getEnv("NATS_URL", ""),
		AuditSubjectPrefix: getEnv("AUDIT_SUBJECT_PREFIX", audit.DefaultSubjectPrefix),
		ProductionURL:      getEnv("PRODUCTION_URL", ""),
		ProcessingURL:      getEnv("PROCESSING_URL", ""),
		StorageURL:         getEnv("STORAGE_URL", ""),
		ReplantSchedule:    getEnv("REPLANT_SCHEDULE", jobs.DefaultReplantSchedule),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}, nil
}

// DSN is the libpq connection string shared by gorm and the pgx pool.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

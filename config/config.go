package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	HistoryPostgres = "postgres"
	HistorySQLite   = "sqlite"
	HistoryMemory   = "memory"

	EmbedderLocal  = "local"
	EmbedderGemini = "gemini"
)

// Config struct holds all configuration values needed by the application.
// The struct tags (mapstructure) tell Viper how to map environment variables to struct fields.
type Config struct {
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`   // Address where the server will run (e.g., "0.0.0.0:8000")
	FrontendURL     string        `mapstructure:"FRONTEND_URL"`     // Origin allowed by CORS
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"` // Grace period for in-flight requests
	MaxUploadBytes  int64         `mapstructure:"MAX_UPLOAD_BYTES"`

	ModelPath string `mapstructure:"MODEL_PATH"` // Trained vectorizer + classifier artifact

	HistoryDriver string `mapstructure:"HISTORY_DRIVER"` // postgres, sqlite or memory
	DBSource      string `mapstructure:"DB_SOURCE"`      // Postgres connection string
	SQLitePath    string `mapstructure:"SQLITE_PATH"`

	Embedder         string `mapstructure:"EMBEDDER"` // local or gemini
	GeminiAPIKey     string `mapstructure:"GEMINI_API_KEY"`
	GeminiEmbedModel string `mapstructure:"GEMINI_EMBED_MODEL"`

	ArchiveBucket    string `mapstructure:"ARCHIVE_BUCKET"` // Empty disables resume archiving
	ArchiveEndpoint  string `mapstructure:"ARCHIVE_ENDPOINT"`
	ArchiveRegion    string `mapstructure:"ARCHIVE_REGION"`
	ArchiveAccessKey string `mapstructure:"ARCHIVE_ACCESS_KEY"`
	ArchiveSecretKey string `mapstructure:"ARCHIVE_SECRET_KEY"`

	AMQPURL      string `mapstructure:"AMQP_URL"` // Empty disables event publishing
	AMQPExchange string `mapstructure:"AMQP_EXCHANGE"`

	LogJSON  bool `mapstructure:"LOG_JSON"`
	LogDebug bool `mapstructure:"LOG_DEBUG"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":     "0.0.0.0:8000",
	"FRONTEND_URL":       "http://localhost:5173",
	"SHUTDOWN_TIMEOUT":   "10s",
	"MAX_UPLOAD_BYTES":   10 << 20,
	"MODEL_PATH":         "model.json",
	"HISTORY_DRIVER":     HistorySQLite,
	"DB_SOURCE":          "",
	"SQLITE_PATH":        "history.db",
	"EMBEDDER":           EmbedderLocal,
	"GEMINI_API_KEY":     "",
	"GEMINI_EMBED_MODEL": "text-embedding-004",
	"ARCHIVE_BUCKET":     "",
	"ARCHIVE_ENDPOINT":   "",
	"ARCHIVE_REGION":     "auto",
	"ARCHIVE_ACCESS_KEY": "",
	"ARCHIVE_SECRET_KEY": "",
	"AMQP_URL":           "",
	"AMQP_EXCHANGE":      "coach_events",
	"LOG_JSON":           false,
	"LOG_DEBUG":          false,
}

// LoadConfig loads app.env from path and overlays environment variables into the Config struct.
// A missing app.env is fine; every key can come from the environment instead.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	// Defaults double as the key list AutomaticEnv needs for Unmarshal to see env-only values.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("unmarshal config: %w", err)
	}

	return config, config.Validate()
}

// Validate checks that the selected backends have what they need.
func (c Config) Validate() error {
	switch c.HistoryDriver {
	case HistoryPostgres:
		if c.DBSource == "" {
			return errors.New("DB_SOURCE is required when HISTORY_DRIVER=postgres")
		}
	case HistorySQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when HISTORY_DRIVER=sqlite")
		}
	case HistoryMemory:
	default:
		return fmt.Errorf("unknown HISTORY_DRIVER %q", c.HistoryDriver)
	}

	switch c.Embedder {
	case EmbedderLocal:
	case EmbedderGemini:
		if c.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY is required when EMBEDDER=gemini")
		}
	default:
		return fmt.Errorf("unknown EMBEDDER %q", c.Embedder)
	}

	if c.MaxUploadBytes <= 0 {
		return errors.New("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Telegram TelegramConfig
	Chat     ChatConfig
	Outbox   OutboxConfig
	Hub      HubConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	ChatLogFilePath    string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	OtelEnabled        bool
	OtelEndpoint       string
}

func (c AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

type DatabaseConfig struct {
	Connection string
	Verbose    bool
}

type AuthConfig struct {
	JwtSecret      string
	AccessTokenTTL time.Duration
	TempTokenTTL   time.Duration
	TotpIssuer     string
}

type TelegramConfig struct {
	BotToken      string
	APIBaseURL    string
	WebhookSecret string
	SendTimeout   time.Duration
	// DedupWindow is how long processed update ids are remembered.
	DedupWindow time.Duration
}

type ChatConfig struct {
	LockTTL  time.Duration
	LockWait time.Duration
	// MaxRetries bounds re-runs after a uniqueness race.
	MaxRetries int
}

type OutboxConfig struct {
	Interval  time.Duration
	BatchSize int
	Topic     string
}

type HubConfig struct {
	MaxClients   int
	RedisChannel string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			ChatLogFilePath:    getEnv("CHAT_LOG_FILE_PATH", "logs/chat.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
			OtelEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			Verbose:    getEnvAsBool("DB_VERBOSE", false),
		},
		Auth: AuthConfig{
			JwtSecret:      getEnv("JWT_SECRET", ""),
			AccessTokenTTL: getEnvAsDuration("ACCESS_TOKEN_TTL", 12*time.Hour),
			TempTokenTTL:   getEnvAsDuration("TEMP_TOKEN_TTL", 5*time.Minute),
			TotpIssuer:     getEnv("TOTP_ISSUER", "Skills Assessment"),
		},
		Telegram: TelegramConfig{
			BotToken:      getEnv("TELEGRAM_BOT_TOKEN", ""),
			APIBaseURL:    getEnv("TELEGRAM_API_BASE_URL", "https://api.telegram.org"),
			WebhookSecret: getEnv("TELEGRAM_WEBHOOK_SECRET", ""),
			SendTimeout:   getEnvAsDuration("TELEGRAM_SEND_TIMEOUT", 10*time.Second),
			DedupWindow:   getEnvAsDuration("TELEGRAM_DEDUP_WINDOW", 10*time.Minute),
		},
		Chat: ChatConfig{
			LockTTL:    getEnvAsDuration("CHAT_LOCK_TTL", 15*time.Second),
			LockWait:   getEnvAsDuration("CHAT_LOCK_WAIT", 10*time.Second),
			MaxRetries: getEnvAsInt("CHAT_MAX_RETRIES", 3),
		},
		Outbox: OutboxConfig{
			Interval:  getEnvAsDuration("OUTBOX_INTERVAL", 2*time.Second),
			BatchSize: getEnvAsInt("OUTBOX_BATCH_SIZE", 100),
			Topic:     getEnv("OUTBOX_TOPIC", "dashboard_events"),
		},
		Hub: HubConfig{
			MaxClients:   getEnvAsInt("WS_MAX_CLIENTS", 200),
			RedisChannel: getEnv("WS_REDIS_CHANNEL", "dashboard_events"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(strings.TrimSpace(getEnv(key, ""))); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("5s") or plain seconds ("5").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

package config

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Telegram TelegramConfig
	Records  RecordsConfig
	Ops      OpsConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	AuditLogPath       string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type TelegramConfig struct {
	BotToken string `validate:"required"`
	// WebhookBaseURL is the public HTTPS base the Bot API should call
	// (e.g. https://bot.example.com). Empty skips webhook registration,
	// useful behind a tunnel that registers it out of band.
	WebhookBaseURL string
	WebhookPath    string `validate:"required,startswith=/"`
}

type RecordsConfig struct {
	// ExcelFile is the spreadsheet path; used unless DBConnection is set.
	ExcelFile    string `validate:"required_without=DBConnection"`
	DBConnection string
}

type OpsConfig struct {
	JWTSecret string
	Username  string
	// PasswordHash is a bcrypt hash of the operator password.
	PasswordHash string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	cfg := &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "bot.log"),
			AuditLogPath:       getEnv("AUDIT_LOG_PATH", "audit.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Telegram: TelegramConfig{
			BotToken:       getEnv("BOT_TOKEN", ""),
			WebhookBaseURL: getEnv("WEBHOOK_BASE_URL", ""),
			WebhookPath:    getEnv("WEBHOOK_PATH", "/webhook"),
		},
		Records: RecordsConfig{
			ExcelFile:    getEnv("EXCEL_FILE", "DADOS_CLIENTES - INSTALAÇÃO E COORDENADAS.xlsx"),
			DBConnection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ops: OpsConfig{
			JWTSecret:    getEnv("JWT_SECRET", ""),
			Username:     getEnv("OPS_USERNAME", ""),
			PasswordHash: getEnv("OPS_PASSWORD_HASH", ""),
		},
	}

	validate := validator.New()
	if err := validate.Struct(cfg.Telegram); err != nil {
		log.Fatalf("Invalid Telegram config: %v", err)
	}
	if err := validate.Struct(cfg.Records); err != nil {
		log.Fatalf("Invalid records config: %v", err)
	}

	return cfg
}

// OpsEnabled reports whether the ops API can be served: it needs a JWT
// secret and operator credentials.
func (c *Config) OpsEnabled() bool {
	return c.Ops.JWTSecret != "" && c.Ops.Username != "" && c.Ops.PasswordHash != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

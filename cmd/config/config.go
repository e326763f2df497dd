package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment  string
	LogLevel     string
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	Auth         AuthConfig
	Feed         FeedConfig
	OTP          OTPConfig
	RabbitMQ     RabbitMQConfig
	Notification NotificationConfig
	Twilio       TwilioConfig
	Cloudinary   CloudinaryConfig
	Persona      PersonaConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	MaxUploadMB  int64
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsPath  string
	AutoMigrate     bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	SessionExpTime time.Duration
}

type FeedConfig struct {
	PageSize     int
	MaxPageSize  int
	DefaultMiles float64
}

type OTPConfig struct {
	TTL time.Duration
	// MaxAttempts wrong guesses invalidate the pending code.
	MaxAttempts int64
	// ExposeInMessage echoes the code in the API response outside production.
	ExposeInMessage bool
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type NotificationConfig struct {
	ConsumerEnabled    bool
	FCMProjectID       string
	FCMCredentialsFile string
	AdminWebhookURL    string
	AdminAPIKey        string
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

type PersonaConfig struct {
	APIKey  string
	BaseURL string
	// WebhookKey is the bearer token Persona sends on verification callbacks.
	WebhookKey string
}

// Load reads configuration from the environment, after loading .env if present.
func Load() *Config {
	_ = godotenv.Load()

	env := getString("APP_ENV", "development")
	return &Config{
		Environment: env,
		LogLevel:    getString("LOG_LEVEL", ""),
		Server: ServerConfig{
			Port:         getString("APP_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			MaxUploadMB:  int64(getInt("SERVER_MAX_UPLOAD_MB", 20)),
		},
		Database: DatabaseConfig{
			Host:            getString("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getString("DB_USER", "root"),
			Password:        getString("DB_PASSWORD", ""),
			Name:            getString("DB_NAME", "heart2help"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			MigrationsPath:  getString("DB_MIGRATIONS_PATH", "migrations"),
			AutoMigrate:     getBool("DB_AUTO_MIGRATE", false),
		},
		Redis: RedisConfig{
			Host:     getString("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getString("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret:      getString("JWT_SECRET", ""),
			JWTExpiration:  getDuration("JWT_EXPIRATION", 365*24*time.Hour),
			SessionExpTime: getDuration("SESSION_EXP_TIME", 365*24*time.Hour),
		},
		Feed: FeedConfig{
			PageSize:     getInt("PAGE_SIZE", 20),
			MaxPageSize:  getInt("MAX_PAGE_SIZE", 100),
			DefaultMiles: getFloat("DEFAULT_MILES", 5),
		},
		OTP: OTPConfig{
			TTL:             getDuration("OTP_TTL", 10*time.Minute),
			MaxAttempts:     int64(getInt("OTP_MAX_ATTEMPTS", 5)),
			ExposeInMessage: env != "production",
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getString("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getString("RABBITMQ_USER", "guest"),
			Password: getString("RABBITMQ_PASSWORD", "guest"),
		},
		Notification: NotificationConfig{
			ConsumerEnabled:    getBool("NOTIFICATION_CONSUMER_ENABLED", true),
			FCMProjectID:       getString("FCM_PROJECT_ID", ""),
			FCMCredentialsFile: getString("FCM_CREDENTIALS_FILE", ""),
			AdminWebhookURL:    getString("ADMIN_WEBHOOK_URL", ""),
			AdminAPIKey:        getString("ADMIN_API_KEY", ""),
		},
		Twilio: TwilioConfig{
			AccountSID: getString("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getString("TWILIO_AUTH_TOKEN", ""),
			FromNumber: getString("TWILIO_FROM_NUMBER", ""),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: getString("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getString("CLOUDINARY_API_KEY", ""),
			APISecret: getString("CLOUDINARY_API_SECRET", ""),
			Folder:    getString("CLOUDINARY_FOLDER", "heart2help"),
		},
		Persona: PersonaConfig{
			APIKey:     getString("PERSONA_API_KEY", ""),
			BaseURL:    getString("PERSONA_BASE_URL", "https://withpersona.com/api/v1"),
			WebhookKey: getString("PERSONA_WEBHOOK_KEY", ""),
		},
	}
}

// GetDSN returns the MySQL DSN for sqlx.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&charset=utf8mb4&multiStatements=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return def
	}
	return v
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

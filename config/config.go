package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	ServerPort string
	BaseURL    string
	LogLevel   string

	StoreDriver       string
	DatabaseDSN       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	JWTSecret    string
	JWTExpiry    string
	CookieDomain string
	CookieSecure bool

	RedisURL string

	KafkaBroker   string
	KafkaTopic    string
	KafkaGroupID  string
	KafkaUsername string
	KafkaPassword string

	CloudinaryUrl string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	MailFromName string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "dev")
	v.SetDefault("SERVER_PORT", ":3000")
	v.SetDefault("BASE_URL", "http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", "postgres")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("JWT_EXPIRY", "7d")
	v.SetDefault("COOKIE_SECURE", true)
	v.SetDefault("KAFKA_TOPIC", "jobboard.applications")
	v.SetDefault("KAFKA_GROUP_ID", "jobboard-mailer")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("MAIL_FROM_NAME", "Campus Job Board")
}

// LoadConfig reads .env (outside prod) and the process environment.
func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Debug().Err(err).Msg("env file not found or could not be loaded")
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	return Config{
		Env:        v.GetString("ENV"),
		ServerPort: v.GetString("SERVER_PORT"),
		BaseURL:    v.GetString("BASE_URL"),
		LogLevel:   v.GetString("LOG_LEVEL"),

		StoreDriver:       strings.ToLower(v.GetString("STORE_DRIVER")),
		DatabaseDSN:       v.GetString("DATABASE_DSN"),
		DBMaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),

		JWTSecret:    v.GetString("JWT_SECRET"),
		JWTExpiry:    v.GetString("JWT_EXPIRY"),
		CookieDomain: v.GetString("COOKIE_DOMAIN"),
		CookieSecure: v.GetBool("COOKIE_SECURE"),

		RedisURL: v.GetString("REDIS_URL"),

		KafkaBroker:   v.GetString("KAFKA_BROKER"),
		KafkaTopic:    v.GetString("KAFKA_TOPIC"),
		KafkaGroupID:  v.GetString("KAFKA_GROUP_ID"),
		KafkaUsername: v.GetString("KAFKA_USERNAME"),
		KafkaPassword: v.GetString("KAFKA_PASSWORD"),

		CloudinaryUrl: v.GetString("CLOUDINARY_URL"),

		SMTPHost:     v.GetString("SMTP_HOST"),
		SMTPPort:     v.GetInt("SMTP_PORT"),
		SMTPUser:     v.GetString("SMTP_USER"),
		SMTPPassword: v.GetString("SMTP_PASSWORD"),
		MailFrom:     v.GetString("MAIL_FROM"),
		MailFromName: v.GetString("MAIL_FROM_NAME"),
	}
}

func (c Config) IsProd() bool {
	return c.Env == "prod"
}

// Validate checks the settings the HTTP server cannot start without.
func (c Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	switch c.StoreDriver {
	case "postgres":
		if c.DatabaseDSN == "" {
			errs = append(errs, errors.New("DATABASE_DSN is required when STORE_DRIVER=postgres"))
		}
	case "memory":
	default:
		errs = append(errs, errors.New("STORE_DRIVER must be postgres or memory"))
	}
	return errors.Join(errs...)
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Redis Redis `validate:"required"`

	Cache Cache

	Payment Payment `validate:"required"`

	Orders Orders `validate:"required"`

	Pickup Pickup

	Auth Auth `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	AutoMigrate bool
}

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int           `validate:"gte=0"`
	CartTTL  time.Duration `validate:"gt=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Payment struct {
	BaseURL  string        `validate:"required,url"`
	APIKey   string        `validate:"required"`
	Currency string        `validate:"required,len=3,lowercase"`
	Timeout  time.Duration `validate:"gt=0"`

	// PlatformFeeBps is the marketplace cut in basis points of the order total.
	PlatformFeeBps int `validate:"gte=0,lte=10000"`
}

type Orders struct {
	ExpireAfter      time.Duration `validate:"gt=0"`
	SweepBatchSize   int           `validate:"gte=1"`
	SweepConcurrency int           `validate:"gte=1"`
}

type Pickup struct {
	Timezone string `validate:"required,timezone"`
}

type Auth struct {
	Mode                    string `validate:"required,oneof=header firebase"`
	FirebaseProjectID       string `validate:"required_if=Mode firebase"`
	FirebaseCredentialsFile string
	AdminEmails             []string `validate:"dive,email"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "chef-market"),
			Topic:   env("KAFKA_TOPIC", "order-status"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "chef_market"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			AutoMigrate: envBool("POSTGRES_AUTO_MIGRATE", true),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
			CartTTL:  envDuration("CART_TTL", 72*time.Hour),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", time.Minute),
		},

		Payment: Payment{
			BaseURL:        env("PAYMENT_BASE_URL", "http://localhost:54321/functions/v1"),
			APIKey:         env("PAYMENT_API_KEY", ""),
			Currency:       env("PAYMENT_CURRENCY", "usd"),
			Timeout:        envDuration("PAYMENT_TIMEOUT", 10*time.Second),
			PlatformFeeBps: envInt("PLATFORM_FEE_BPS", 1000),
		},

		Orders: Orders{
			ExpireAfter:      envDuration("ORDER_EXPIRE_AFTER", 24*time.Hour),
			SweepBatchSize:   envInt("SWEEP_BATCH_SIZE", 100),
			SweepConcurrency: envInt("SWEEP_CONCURRENCY", 4),
		},

		Pickup: Pickup{
			Timezone: env("PICKUP_TIMEZONE", "UTC"),
		},

		Auth: Auth{
			Mode:                    env("AUTH_MODE", "header"),
			FirebaseProjectID:       env("FIREBASE_PROJECT_ID", ""),
			FirebaseCredentialsFile: env("FIREBASE_CREDENTIALS_FILE", ""),
			AdminEmails:             envList("ADMIN_EMAILS"),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Pickup.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

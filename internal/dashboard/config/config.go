package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	Postgres      PostgresConfig
	Redis         RedisConfig
	Elasticsearch ElasticsearchConfig
	Kafka         KafkaConfig
	TGI           TGIConfig
	JWT           JWTConfig
	Mail          MailConfig
	HealthCheck   HealthCheckConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// LoginURL is the dashboard address included in invitation mails.
	LoginURL string `envconfig:"LOGIN_URL" required:"true"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" required:"true"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
	SSLMode  string `envconfig:"POSTGRES_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" required:"true"`
	Port     int    `envconfig:"REDIS_PORT" required:"true"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES" required:"true"`
	Username  string   `envconfig:"ELASTICSEARCH_USERNAME" default:""`
	Password  string   `envconfig:"ELASTICSEARCH_PASSWORD" default:""`
}

type KafkaConfig struct {
	Brokers              []string `envconfig:"KAFKA_BROKERS" required:"true"`
	HealthCheckTaskTopic string   `envconfig:"KAFKA_HEALTH_CHECK_TASK_TOPIC" default:"health-check-tasks"`
}

type TGIConfig struct {
	MaxRetries     int           `envconfig:"TGI_MAX_RETRIES" default:"3"`
	RequestTimeout time.Duration `envconfig:"TGI_REQUEST_TIMEOUT" default:"10s"`
	InitialBackoff time.Duration `envconfig:"TGI_INITIAL_BACKOFF" default:"500ms"`
}

type JWTConfig struct {
	SecretKey       string        `envconfig:"JWT_SECRET_KEY" required:"true"`
	AccessTokenTTL  time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"15m"`
	RefreshTokenTTL time.Duration `envconfig:"JWT_REFRESH_TOKEN_TTL" default:"168h"`
}

type MailConfig struct {
	Email            string `envconfig:"MAIL_EMAIL" required:"true"`
	Password         string `envconfig:"MAIL_PASSWORD" required:"true"`
	Host             string `envconfig:"MAIL_HOST" required:"true"`
	Port             int    `envconfig:"MAIL_PORT" required:"true"`
	AdminMailAddress string `envconfig:"MAIL_ADMIN_EMAIL" required:"true"`
}

type HealthCheckConfig struct {
	// EnqueueCron schedules health check task publication.
	EnqueueCron string `envconfig:"HEALTH_CHECK_ENQUEUE_CRON" default:"@every 30s"`
	// ReportCron schedules the daily fleet health mail.
	ReportCron string `envconfig:"HEALTH_CHECK_REPORT_CRON" default:"0 8 * * *"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}

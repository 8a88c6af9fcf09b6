package health_check_consumer

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	Elasticsearch ElasticsearchConfig
	Kafka         KafkaConfig
}

type ServerConfig struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES" required:"true"`
	Username  string   `envconfig:"ELASTICSEARCH_USERNAME" default:""`
	Password  string   `envconfig:"ELASTICSEARCH_PASSWORD" default:""`
}

type KafkaConfig struct {
	Brokers         []string `envconfig:"KAFKA_BROKERS" required:"true"`
	ConsumerTopic   string   `envconfig:"KAFKA_CONSUMER_TOPIC" required:"true"`
	ConsumerGroupID string   `envconfig:"KAFKA_CONSUMER_GROUP_ID" required:"true"`
	ConsumerCnt     int      `envconfig:"KAFKA_CONSUMER_CNT" required:"true"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}

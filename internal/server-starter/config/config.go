package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server    ServerConfig
	Postgres  PostgresConfig
	Kafka     KafkaConfig
	AWS       AWSConfig
	Bootstrap BootstrapConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8081"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" required:"true"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
}

type KafkaConfig struct {
	Brokers         []string `envconfig:"KAFKA_BROKERS" required:"true"`
	StartTopic      string   `envconfig:"KAFKA_START_INTENT_TOPIC" default:"server-start-intents"`
	ConsumerGroupID string   `envconfig:"KAFKA_CONSUMER_GROUP_ID" default:"server-starter"`
	TransitionTopic string   `envconfig:"KAFKA_TRANSITION_TOPIC" default:"server-state-transitions"`
}

type AWSConfig struct {
	Region             string `envconfig:"AWS_REGION" required:"true"`
	ImageID            string `envconfig:"EC2_IMAGE_ID" required:"true"`
	AvailabilityZone   string `envconfig:"EC2_AVAILABILITY_ZONE" required:"true"`
	SecurityGroupID    string `envconfig:"EC2_SECURITY_GROUP_ID" required:"true"`
	InstanceProfileARN string `envconfig:"EC2_INSTANCE_PROFILE_ARN" required:"true"`
}

type BootstrapConfig struct {
	ServerTableName string `envconfig:"SERVER_TABLE_NAME" required:"true"`
	ScriptsBucket   string `envconfig:"SCRIPTS_BUCKET" required:"true"`
	WorldDataBucket string `envconfig:"WORLD_DATA_BUCKET" required:"true"`
	LifecycleAPIURL string `envconfig:"LIFECYCLE_API_URL" required:"true"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}

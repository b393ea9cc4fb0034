package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Scheduler SchedulerConfig
	Postgres  PostgresConfig
	Kafka     KafkaConfig
}

type SchedulerConfig struct {
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
	TickInterval time.Duration `envconfig:"SCHEDULER_TICK_INTERVAL" default:"1m"`
	TickTimeout  time.Duration `envconfig:"SCHEDULER_TICK_TIMEOUT" default:"30s"`
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
	StopTopic       string   `envconfig:"KAFKA_STOP_INTENT_TOPIC" default:"server-stop-intents"`
	TransitionTopic string   `envconfig:"KAFKA_TRANSITION_TOPIC" default:"server-state-transitions"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}

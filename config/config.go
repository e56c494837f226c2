package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig        `yaml:"http"`
	GRPC    GRPCConfig        `yaml:"grpc"`
	Redis   RedisConfig       `yaml:"redis"`
	Kafka   KafkaConfig       `yaml:"kafka"`
	Worker  WorkerConfig      `yaml:"worker"`
	Flights map[string]string `yaml:"flights"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
	Swagger *bool  `yaml:"swagger"`
}

// SwaggerEnabled defaults to true when the key is absent.
func (h HTTPConfig) SwaggerEnabled() bool {
	return h.Swagger == nil || *h.Swagger
}

// GRPCConfig.Address left empty disables the gRPC listener.
type GRPCConfig struct {
	Address string `yaml:"address"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers     []string `yaml:"brokers"`
	LookupTopic string   `yaml:"lookup_topic"`
	GroupID     string   `yaml:"group_id"`
}

// Enabled reports whether lookup events should be published.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.LookupTopic != ""
}

type WorkerConfig struct {
	ReportIntervalSeconds int `yaml:"report_interval_seconds"`
}

func Default() *Config {
	return &Config{
		HTTP:   HTTPConfig{Address: ":5000"},
		Redis:  RedisConfig{Addr: "localhost:6379"},
		Kafka:  KafkaConfig{LookupTopic: "flight-lookups", GroupID: "flight-stats"},
		Worker: WorkerConfig{ReportIntervalSeconds: 60},
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadConfigOrDefault behaves like LoadConfig but returns Default() when
// the file does not exist.
func LoadConfigOrDefault(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	SourcePostgres = "postgres"
	SourceFile     = "file"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Board    BoardConfig    `yaml:"board"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers    []string `yaml:"brokers"`
	BoardTopic string   `yaml:"board_topic"`
}

type BoardConfig struct {
	// Source is "postgres" or "file".
	Source          string `yaml:"source"`
	FixturesPath    string `yaml:"fixtures_path"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	Message         string `yaml:"message"`
}

func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{Address: ":8080"},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			User:    "postgres",
			Name:    "airboard",
			SSLMode: "disable",
		},
		Board: BoardConfig{
			Source:       SourceFile,
			FixturesPath: "flights.yaml",
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOptional falls back to defaults when path does not exist.
func LoadOptional(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c *Config) Validate() error {
	switch c.Board.Source {
	case SourcePostgres:
	case SourceFile:
		if c.Board.FixturesPath == "" {
			return errors.New("board.fixtures_path is required for file source")
		}
	default:
		return fmt.Errorf("unknown board.source %q", c.Board.Source)
	}
	if c.Board.CacheTTLSeconds < 0 {
		return errors.New("board.cache_ttl_seconds must not be negative")
	}
	return nil
}

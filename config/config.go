package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"academyqa/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix prefixes every environment override, e.g. ACADEMYQA_QA_PROVIDER.
const EnvPrefix = "ACADEMYQA"

type Config struct {
	App      AppSection     `mapstructure:"app"`
	Log      LogConfig      `mapstructure:"log"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	QA       QAConfig       `mapstructure:"qa"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
}

type AppSection struct {
	Name string `mapstructure:"name"`
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// Addr is the listen address, host:port.
func (a AppSection) Addr() string {
	return a.Host + ":" + a.Port
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CatalogConfig struct {
	// Path of a catalog YAML file. Empty selects the built-in catalog.
	Path string `mapstructure:"path"`
}

// QAConfig selects and parameterises the extractive QA model used when no
// keyword rule answers a question.
type QAConfig struct {
	Provider string        `mapstructure:"provider"` // "lexical", "ollama" or "openai"
	Model    string        `mapstructure:"model"`
	BaseURL  string        `mapstructure:"base_url"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
	// RejectWhenUnavailable answers 503 before any rule runs when the model
	// failed to load. Set it to false to keep serving rule answers and only
	// refuse questions that need the model.
	RejectWhenUnavailable bool `mapstructure:"reject_when_unavailable"`
}

type DatabaseConfig struct {
	Dsn          string `mapstructure:"dsn"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type RedisConfig struct {
	Addr      string        `mapstructure:"addr"`
	DB        int           `mapstructure:"db"`
	Password  string        `mapstructure:"password"`
	AnswerTTL time.Duration `mapstructure:"answer_ttl"`
}

type RabbitMQConfig struct {
	Url   string `mapstructure:"url"`
	Queue string `mapstructure:"queue"`
}

var AppConfig *Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "academy-qa")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", "5000")
	v.SetDefault("app.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("catalog.path", "")
	v.SetDefault("qa.provider", "lexical")
	v.SetDefault("qa.model", "")
	v.SetDefault("qa.base_url", "")
	v.SetDefault("qa.api_key", "")
	v.SetDefault("qa.timeout", time.Duration(0))
	v.SetDefault("qa.reject_when_unavailable", true)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.answer_ttl", 24*time.Hour)
	v.SetDefault("rabbitmq.url", "")
	v.SetDefault("rabbitmq.queue", "qa.asked")
}

// Load reads configuration from path, or from ./config/config.yml when path is
// empty, with environment overrides on top. A missing default config file is
// not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yml")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	cfg.QA.Provider = strings.ToLower(strings.TrimSpace(cfg.QA.Provider))

	return cfg, nil
}

// InitConfig loads AppConfig and connects the optional backing stores.
func InitConfig(path string) {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	AppConfig = cfg

	if err := logger.Init(cfg.Log.Level); err != nil {
		logger.Fatal("Failed to initialise logger", zap.Error(err))
	}

	initDB()
	initRedis()
	initRabbit()
}

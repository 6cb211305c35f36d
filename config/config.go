package config

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"cpu-scheduler/internal/schedulers"
)

type SchedulerConfig struct {
	Port      int             `mapstructure:"port"`
	LogLevel  string          `mapstructure:"log_level"`
	Scheduler SchedulerParams `mapstructure:"scheduler"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Redis     RedisConfig     `mapstructure:"redis"`
}

type SchedulerParams struct {
	RoundRobin struct {
		TimeQuantum int `mapstructure:"time_quantum"`
	} `mapstructure:"round_robin"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RoundRobinTimeQuantum is the quantum used when a request does not carry one.
func (c *SchedulerConfig) RoundRobinTimeQuantum() int {
	return c.Scheduler.RoundRobin.TimeQuantum
}

func (c *SchedulerConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml plus SCHEDULER_* overrides once per process.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("")
		if err != nil {
			slog.Error("failed to load config, using defaults", "error", err)
			cfg = defaults()
		}
		config = cfg
	})

	return config
}

// Load reads the config file at path, or config.yaml in the working directory when
// path is empty. A missing default file is not an error.
func Load(path string) (*SchedulerConfig, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		slog.Debug("no config file found, using defaults and environment")
	}

	cfg := &SchedulerConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.Scheduler.RoundRobin.TimeQuantum < 1 {
		cfg.Scheduler.RoundRobin.TimeQuantum = 1
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.round_robin.time_quantum", schedulers.DefaultQuantum)
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("cache.ttl", "5m")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetEnvPrefix("SCHEDULER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func defaults() *SchedulerConfig {
	cfg := &SchedulerConfig{}
	_ = newViper().Unmarshal(cfg)
	return cfg
}

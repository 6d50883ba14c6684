package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/stayhub/stay-booking/pkg/kafka"
	"github.com/stayhub/stay-booking/pkg/logger"
	"github.com/stayhub/stay-booking/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"BOOKING_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"BOOKING_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"5s"`
	WriteTimeout time.Duration
}

type Booking struct {
	// AllowSameDay permits zero-length (same-day) windows and bookings.
	AllowSameDay bool `envconfig:"BOOKING_ALLOW_SAME_DAY" default:"false"`
	// PendingBlocks is strict mode: pending contenders also block admission.
	PendingBlocks bool `envconfig:"BOOKING_PENDING_BLOCKS" default:"false"`
	// SweepSchedule is a cron expression for the stale-pending sweep;
	// empty disables it.
	SweepSchedule string `envconfig:"BOOKING_SWEEP_SCHEDULE" default:""`
}

type Config struct {
	Server   HTTPServer `yaml:"server"`
	Database postgres.Config
	Kafka    kafka.Config
	Booking  Booking
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = timeout
	}
}

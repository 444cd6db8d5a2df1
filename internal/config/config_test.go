package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/egannguyen/seller-dashboard/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	c := qt.New(t)

	cfg, err := config.Load("")
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.HTTPAddr, qt.Equals, ":8080")
	c.Assert(cfg.DatabaseDriver, qt.Equals, "postgres")
	c.Assert(cfg.SessionCookie, qt.Equals, "__session")
	c.Assert(cfg.MessagingDriver, qt.Equals, config.MessagingNone)
	c.Assert(cfg.KafkaBrokers, qt.DeepEquals, []string{"localhost:9092"})
	c.Assert(cfg.DashboardTopLimit, qt.Equals, 5)
	c.Assert(cfg.NavSearchEnabled, qt.IsFalse)
	c.Assert(cfg.ShutdownTimeout, qt.Equals, 10*time.Second)
}

func TestLoad_Environment(t *testing.T) {
	c := qt.New(t)

	c.Setenv("HTTP_ADDR", ":9090")
	c.Setenv("DATABASE_DRIVER", "pgx")
	c.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	c.Setenv("MESSAGING_DRIVER", "Kafka")
	c.Setenv("NAV_SEARCH_ENABLED", "true")
	c.Setenv("DASHBOARD_TOP_LIMIT", "10")

	cfg, err := config.Load("")
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.HTTPAddr, qt.Equals, ":9090")
	c.Assert(cfg.DatabaseDriver, qt.Equals, "pgx")
	c.Assert(cfg.KafkaBrokers, qt.DeepEquals, []string{"k1:9092", "k2:9092"})
	c.Assert(cfg.MessagingDriver, qt.Equals, config.MessagingKafka)
	c.Assert(cfg.NavSearchEnabled, qt.IsTrue)
	c.Assert(cfg.DashboardTopLimit, qt.Equals, 10)
}

func TestLoad_File(t *testing.T) {
	c := qt.New(t)

	path := filepath.Join(c.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte("http:\n  addr: \":7070\"\nlog:\n  level: debug\n"), 0o600)
	c.Assert(err, qt.IsNil)

	cfg, err := config.Load(path)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.HTTPAddr, qt.Equals, ":7070")
	c.Assert(cfg.LogLevel, qt.Equals, "debug")
}

func TestLoad_FileBrokerList(t *testing.T) {
	c := qt.New(t)

	path := filepath.Join(c.TempDir(), "config.yaml")
	content := "messaging:\n  driver: kafka\nkafka:\n  brokers:\n    - a:9092\n    - \" b:9092\"\n"
	c.Assert(os.WriteFile(path, []byte(content), 0o600), qt.IsNil)

	cfg, err := config.Load(path)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.MessagingDriver, qt.Equals, config.MessagingKafka)
	c.Assert(cfg.KafkaBrokers, qt.DeepEquals, []string{"a:9092", "b:9092"})
}

func TestLoad_FileBrokerString(t *testing.T) {
	c := qt.New(t)

	path := filepath.Join(c.TempDir(), "config.yaml")
	c.Assert(os.WriteFile(path, []byte("kafka:\n  brokers: \"a:9092,b:9092\"\n"), 0o600), qt.IsNil)

	cfg, err := config.Load(path)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.KafkaBrokers, qt.DeepEquals, []string{"a:9092", "b:9092"})
}

func TestLoad_MissingFile(t *testing.T) {
	c := qt.New(t)

	_, err := config.Load(filepath.Join(c.TempDir(), "missing.yaml"))
	c.Assert(err, qt.ErrorMatches, "failed to read config file .*")
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		HTTPAddr:          ":8080",
		DatabaseURL:       "postgres://",
		MessagingDriver:   config.MessagingNone,
		DashboardTopLimit: 5,
	}

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "missing addr", mutate: func(cfg *config.Config) { cfg.HTTPAddr = "" }, wantErr: "http.addr is required"},
		{name: "unknown driver", mutate: func(cfg *config.Config) { cfg.MessagingDriver = "nats" }, wantErr: `unknown messaging driver "nats"`},
		{name: "kafka without brokers", mutate: func(cfg *config.Config) { cfg.MessagingDriver = config.MessagingWatermill }, wantErr: `kafka.brokers is required for messaging driver "watermill"`},
		{name: "zero top limit", mutate: func(cfg *config.Config) { cfg.DashboardTopLimit = 0 }, wantErr: "dashboard.top_limit must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				c.Assert(err, qt.IsNil)
				return
			}
			c.Assert(err, qt.ErrorMatches, tt.wantErr)
		})
	}
}

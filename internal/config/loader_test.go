package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/SumOfBesties/besties-layout/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"BESTIES_CONFIG",
		"BESTIES_ADDR",
		"BESTIES_LOG_LEVEL",
		"BESTIES_EVENT_SLUG",
		"BESTIES_IMPORT_ON_START",
		"BESTIES_SCHEDULE_PATH",
		"BESTIES_IMPORT_QUEUE_SIZE",
		"BESTIES_CATEGORY_CONCURRENCY",
		"BESTIES_SUBSCRIBER_BUFFER",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.ImportQueueSize, convey.ShouldEqual, 16)
				convey.So(cfg.CategoryConcurrency, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("BESTIES_ADDR", ":8080")
			_ = os.Setenv("BESTIES_EVENT_SLUG", "bestofest2024")
			_ = os.Setenv("BESTIES_IMPORT_QUEUE_SIZE", "32")
			_ = os.Setenv("BESTIES_IMPORT_ON_START", "true")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.EventSlug, convey.ShouldEqual, "bestofest2024")
				convey.So(cfg.ImportQueueSize, convey.ShouldEqual, 32)
				convey.So(cfg.ImportOnStart, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			yamlContent := `
addr: ":9090"
event_slug: "bestofest2024"
schedule_path: "payload.json"
import_queue_size: 64
category_concurrency: 8
`
			tmpFile := createTempConfigFile(t, yamlContent)
			_ = os.Setenv("BESTIES_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from the YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.EventSlug, convey.ShouldEqual, "bestofest2024")
				convey.So(cfg.SchedulePath, convey.ShouldEqual, "payload.json")
				convey.So(cfg.ImportQueueSize, convey.ShouldEqual, 64)
				convey.So(cfg.CategoryConcurrency, convey.ShouldEqual, 8)
			})
		})

		convey.Convey("When both file and environment variables are set", func() {
			yamlContent := `
addr: ":9090"
import_queue_size: 64
`
			tmpFile := createTempConfigFile(t, yamlContent)
			_ = os.Setenv("BESTIES_CONFIG", tmpFile)
			_ = os.Setenv("BESTIES_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should win", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ImportQueueSize, convey.ShouldEqual, 64)
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_ = os.Setenv("BESTIES_CONFIG", "/nonexistent/config.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When validation fails", func() {
			_ = os.Setenv("BESTIES_IMPORT_QUEUE_SIZE", "0")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then an invalid config error is returned", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

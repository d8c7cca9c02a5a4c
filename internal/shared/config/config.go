package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/shared/errors"
	"github.com/robfig/cron/v3"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	TelegramBotToken  string        `koanf:"telegram_bot_token"`
	TelegramAPIURL    string        `koanf:"telegram_api_url"`
	AdminID           int64         `koanf:"admin_id"`
	StorageDriver     StorageDriver `koanf:"storage_driver"`
	StoragePath       string        `koanf:"storage_path"`
	RedisURL          string        `koanf:"redis_url"`
	RedisPrefix       string        `koanf:"redis_prefix"`
	MongoDBURI        string        `koanf:"mongodb_uri"`
	MongoDBDatabase   string        `koanf:"mongodb_database"`
	HTTPPort          string        `koanf:"http_port"`
	WebhookURL        string        `koanf:"webhook_url"`
	WebhookPath       string        `koanf:"webhook_path"`
	WebhookSecret     string        `koanf:"webhook_secret"`
	BroadcastInterval int           `koanf:"broadcast_interval"`
	BroadcastSchedule string        `koanf:"broadcast_schedule"`
	DeliveryTimeout   int           `koanf:"delivery_timeout"`
	Language          string        `koanf:"bot_language"`
	SentryDSN         string        `koanf:"sentry_dsn"`
	AppEnv            AppEnv        `koanf:"app_env"`
}

var configFiles = []string{
	"config.yaml",
	"config.yml",
	"config.json",
	"config.toml",
}

// Load reads configuration from the first config file found in the working
// directory, then applies environment overrides.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom is Load with an explicit config file path. An empty path falls back
// to the default lookup.
func LoadFrom(path string) (*Config, error) {
	// .env is optional; real environment variables still win
	_ = godotenv.Load()

	k := koanf.New(".")

	configFile, found := path, path != ""
	if !found {
		configFile, found = lo.Find(configFiles, func(file string) bool {
			_, err := os.Stat(file)
			return err == nil
		})
	}

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	setDefaults(k)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	if appEnv, err := ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = appEnv
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	driverName := k.String("storage_driver")
	if driverName == "" {
		driverName = string(StorageDriverFile)
	}
	driver, err := ParseStorageDriver(driverName)
	if err != nil {
		return nil, oops.With("storage_driver", driverName).Wrap(errors.ErrUnsupportedStore)
	}
	cfg.StorageDriver = driver

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(k *koanf.Koanf) {
	defaults := map[string]any{
		"telegram_api_url":   "https://api.telegram.org",
		"storage_driver":     string(StorageDriverFile),
		"storage_path":       "./data",
		"redis_url":          "redis://localhost:6379/0",
		"redis_prefix":       "adbot:",
		"mongodb_uri":        "mongodb://localhost:27017",
		"mongodb_database":   "adbot",
		"http_port":          "8080",
		"webhook_path":       "/webhook",
		"broadcast_interval": 300,
		"delivery_timeout":   30,
		"bot_language":       "uz",
		"app_env":            string(AppEnvProduction),
	}
	for key, value := range defaults {
		if !k.Exists(key) {
			k.Set(key, value)
		}
	}
}

// Validate checks the fields the bot cannot start without.
func (c *Config) Validate() error {
	if c.TelegramBotToken == "" {
		return errors.ErrMissingBotToken
	}
	if c.AdminID == 0 {
		return errors.ErrMissingAdminID
	}
	if c.BroadcastInterval <= 0 {
		return oops.With("broadcast_interval", c.BroadcastInterval).Errorf("broadcast interval must be positive")
	}
	if c.DeliveryTimeout <= 0 {
		return oops.With("delivery_timeout", c.DeliveryTimeout).Errorf("delivery timeout must be positive")
	}
	if _, err := c.Schedule(); err != nil {
		return err
	}
	return nil
}

// Schedule returns the broadcast activation schedule: the cron expression when
// one is configured, a constant interval otherwise.
func (c *Config) Schedule() (cron.Schedule, error) {
	if c.BroadcastSchedule == "" {
		return cron.Every(c.BroadcastEvery()), nil
	}
	schedule, err := cron.ParseStandard(c.BroadcastSchedule)
	if err != nil {
		return nil, oops.With("broadcast_schedule", c.BroadcastSchedule, "reason", err.Error()).Wrap(errors.ErrInvalidSchedule)
	}
	// A date that never occurs, like February 30, parses but never fires
	if schedule.Next(time.Now()).IsZero() {
		return nil, oops.With("broadcast_schedule", c.BroadcastSchedule, "reason", "never activates").Wrap(errors.ErrInvalidSchedule)
	}
	return schedule, nil
}

func (c *Config) BroadcastEvery() time.Duration {
	return time.Duration(c.BroadcastInterval) * time.Second
}

func (c *Config) DeliveryTimeoutDuration() time.Duration {
	return time.Duration(c.DeliveryTimeout) * time.Second
}

// WebhookEnabled reports whether updates arrive through the webhook instead of long polling.
func (c *Config) WebhookEnabled() bool {
	return c.WebhookURL != ""
}

// Debug reports whether verbose logging should be enabled.
func (c *Config) Debug() bool {
	return c.AppEnv == AppEnvLocal || c.AppEnv == AppEnvDevelopment
}

package config

import (
	"sync/atomic"
	"time"

	"github.com/spf13/viper"

	"prolink/utils"
)

// Collections maps logical entity names to the storage collection
// identifiers backing them. Entries missing from the parameters document
// fall back to the entity name itself.
type Collections struct {
	Users         string `mapstructure:"users"`
	Professionals string `mapstructure:"professionals"`
	Bookings      string `mapstructure:"bookings"`
	Messages      string `mapstructure:"messages"`
	Conversations string `mapstructure:"conversations"`
	Translations  string `mapstructure:"translations"`
}

// Config holds all configuration values. It is written exactly once by
// Load and treated as immutable for the rest of the process lifetime;
// reload is not supported.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Simulated-network behavior of the entity store.
	SimLatencyMs int `mapstructure:"SIM_LATENCY_MS"`

	// Live-tracking stream settings.
	StreamTickMs     int     `mapstructure:"STREAM_TICK_MS"`
	StreamStepMax    float64 `mapstructure:"STREAM_STEP_MAX"`
	ETATickMs        int     `mapstructure:"ETA_TICK_MS"`
	ETAInitial       int     `mapstructure:"ETA_INITIAL"`
	AssistantDelayMs int     `mapstructure:"ASSISTANT_DELAY_MS"`

	Collections Collections `mapstructure:"collections"`
}

var AppConfig Config

var loaded atomic.Bool

// Loaded reports whether the configuration gate has completed. Components
// constructed before that must fail fast rather than read partial values.
func Loaded() bool {
	return loaded.Load()
}

// Load reads the parameters document at the given path, merges entry-level
// defaults and opens the configuration gate. A missing or corrupt document
// is fatal to the caller: no core component may run without it.
func Load(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("JWT_SECRET", "prolink-dev-secret")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("SIM_LATENCY_MS", 500)
	v.SetDefault("STREAM_TICK_MS", 2000)
	v.SetDefault("STREAM_STEP_MAX", 0.00025)
	v.SetDefault("ETA_TICK_MS", 2000)
	v.SetDefault("ETA_INITIAL", 15)
	v.SetDefault("ASSISTANT_DELAY_MS", 800)
	v.SetDefault("collections.users", "users")
	v.SetDefault("collections.professionals", "professionals")
	v.SetDefault("collections.bookings", "bookings")
	v.SetDefault("collections.messages", "messages")
	v.SetDefault("collections.conversations", "conversations")
	v.SetDefault("collections.translations", "translations")

	if err := v.ReadInConfig(); err != nil {
		return utils.ConfigurationError("failed to read parameters document", err)
	}
	if err := v.Unmarshal(&AppConfig); err != nil {
		return utils.ConfigurationError("failed to parse parameters document", err)
	}
	loaded.Store(true)
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// SimLatency is the artificial delay injected into every entity store
// operation.
func (c Config) SimLatency() time.Duration {
	return time.Duration(c.SimLatencyMs) * time.Millisecond
}

func (c Config) StreamTick() time.Duration {
	return time.Duration(c.StreamTickMs) * time.Millisecond
}

func (c Config) ETATick() time.Duration {
	return time.Duration(c.ETATickMs) * time.Millisecond
}

func (c Config) AssistantReplyDelay() time.Duration {
	return time.Duration(c.AssistantDelayMs) * time.Millisecond
}

// Package config loads runtime settings for the paydate CLI and server.
//
// Settings come from, in increasing precedence: built-in defaults, an
// optional YAML file, a .env file in the working directory, and PAYDATE_*
// environment variables (e.g. PAYDATE_SERVER_ADDRESS, PAYDATE_LOGGING_LEVEL).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/warp/paydate-engine/calendar"
)

const (
	EnvPrefix             = "PAYDATE"
	DefaultServerAddress  = ":8080"
	DefaultMaxCount       = 520
	DefaultReadTimeout    = 15 * time.Second
	DefaultWriteTimeout   = 15 * time.Second
	DefaultIdleTimeout    = 60 * time.Second
	DefaultShutdownPeriod = 30 * time.Second
)

// DotEnvFile is read from the working directory by Load.
var DotEnvFile = ".env"

// Configuration holds all settings.
type Configuration struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Paydate PaydateConfig `mapstructure:"paydate"`
}

type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	CORSOrigins  []string      `mapstructure:"cors_origins"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputFile string `mapstructure:"output_file"` // optional file output
}

type PaydateConfig struct {
	// MaxCount caps how many paydates one HTTP request may ask for.
	MaxCount int `mapstructure:"max_count"`

	// Holidays are added to the embedded 2014-2015 list.
	Holidays []HolidayEntry `mapstructure:"holidays"`
}

type HolidayEntry struct {
	Date string `mapstructure:"date"`
	Name string `mapstructure:"name"`
}

// Load reads configuration. An empty path skips the file and uses
// defaults plus environment.
func Load(path string) (*Configuration, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	var conf Configuration
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// loadDotEnv exports the variables in path that are not already set.
// A missing file is the normal case outside development.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error reading %s: %w", path, err)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", DefaultServerAddress)
	v.SetDefault("server.cors_origins", []string{"http://localhost:5173", "http://localhost:8080"})
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("server.idle_timeout", DefaultIdleTimeout)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_file", "")
	v.SetDefault("paydate.max_count", DefaultMaxCount)
}

func (c *Configuration) validate() error {
	if c.Paydate.MaxCount <= 0 {
		return fmt.Errorf("paydate.max_count must be positive, got %d", c.Paydate.MaxCount)
	}
	if _, err := c.HolidaySet(); err != nil {
		return err
	}
	return nil
}

// HolidaySet returns the embedded holidays plus any configured extras.
func (c *Configuration) HolidaySet() (*calendar.HolidaySet, error) {
	set := calendar.DefaultHolidays()
	if len(c.Paydate.Holidays) == 0 {
		return set, nil
	}
	extra := make([]calendar.Holiday, 0, len(c.Paydate.Holidays))
	for i, h := range c.Paydate.Holidays {
		d, err := calendar.Parse(h.Date)
		if err != nil {
			return nil, fmt.Errorf("paydate.holidays[%d]: %w", i, err)
		}
		extra = append(extra, calendar.Holiday{Date: d, Name: h.Name})
	}
	return set.With(extra...), nil
}

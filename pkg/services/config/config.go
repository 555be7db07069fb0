package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "ASTRO"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Archive  ArchiveConfig  `mapstructure:"archive"`
	Profiles ProfilesConfig `mapstructure:"profiles"`
	Report   ReportConfig   `mapstructure:"report"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

type StoreConfig struct {
	// Path of the DuckDB file; empty disables persistence.
	Path string `mapstructure:"path"`
}

type ArchiveConfig struct {
	Bucket  string `mapstructure:"bucket"`
	Prefix  string `mapstructure:"prefix"`
	Region  string `mapstructure:"region"`
	// Profile is an optional shared AWS config profile.
	Profile string `mapstructure:"profile"`
}

func (a ArchiveConfig) Enabled() bool {
	return a.Bucket != ""
}

type ProfilesConfig struct {
	Path string `mapstructure:"path"`
}

type ReportConfig struct {
	Gender    string `mapstructure:"gender"`
	VedicSeed uint64 `mapstructure:"vedic_seed"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("store.path", "astro-atlas.db")
	v.SetDefault("archive.prefix", "reports")
	v.SetDefault("report.gender", "male")
	v.SetDefault("report.vedic_seed", 0)
	v.SetDefault("profiles.path", "")
	v.SetDefault("archive.bucket", "")
	v.SetDefault("archive.region", "")
	v.SetDefault("archive.profile", "")
}

// LoadConfig reads a YAML config file. An empty path loads defaults and the
// environment only. Any key can be overridden as ASTRO_<SECTION>_<KEY>, for
// example ASTRO_SERVER_PORT.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

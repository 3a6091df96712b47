package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported database drivers.
const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Registry RegistryConfig `mapstructure:"registry"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"` // gin mode: debug, release or test
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// Address is the listen address for http.Server.
func (s ServerConfig) Address() string {
	return fmt.Sprintf(":%d", s.Port)
}

type DatabaseConfig struct {
	Driver  string        `mapstructure:"driver"`
	URI     string        `mapstructure:"uri"`
	Name    string        `mapstructure:"name"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RegistryConfig controls user id generation.
type RegistryConfig struct {
	MaxIDAttempts int `mapstructure:"max_id_attempts"`
	IDDigits      int `mapstructure:"id_digits"`
}

// LoadConfig reads configuration from path: an optional .env file, an
// optional config.yaml, then environment variables, later sources winning.
// PORT and MONGO_URI are honoured as aliases of SERVER_PORT and DATABASE_URI.
func LoadConfig(path string) (config Config, err error) {
	// .env only fills variables that are not already set.
	if err = godotenv.Load(filepath.Join(path, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// --- Environment Variable Handling ---
	v.AutomaticEnv()
	// server.port -> SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	if err = v.BindEnv("server.port", "SERVER_PORT", "PORT"); err != nil {
		return config, err
	}
	if err = v.BindEnv("database.uri", "DATABASE_URI", "MONGO_URI"); err != nil {
		return config, err
	}

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("database.driver", DriverMongo)
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "exercise_tracker")
	v.SetDefault("database.timeout", "10s")
	v.SetDefault("registry.max_id_attempts", 10)
	v.SetDefault("registry.id_digits", 9)

	// --- Read Config File ---
	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = nil // the file is optional
	} else if err != nil {
		return config, fmt.Errorf("reading config file: %w", err)
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("decoding config: %w", err)
	}
	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("server.mode %q must be debug, release or test", c.Server.Mode))
	}
	switch c.Database.Driver {
	case DriverMongo:
		if c.Database.URI == "" || c.Database.Name == "" {
			errs = append(errs, errors.New("database.uri and database.name are required for the mongo driver"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("database.driver %q must be %s or %s", c.Database.Driver, DriverMongo, DriverMemory))
	}
	if c.Registry.MaxIDAttempts < 1 {
		errs = append(errs, fmt.Errorf("registry.max_id_attempts must be at least 1, got %d", c.Registry.MaxIDAttempts))
	}
	if c.Registry.IDDigits < 1 || c.Registry.IDDigits > 18 {
		errs = append(errs, fmt.Errorf("registry.id_digits must be between 1 and 18, got %d", c.Registry.IDDigits))
	}
	return errors.Join(errs...)
}

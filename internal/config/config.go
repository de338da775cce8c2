package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// AppConfig holds application-specific configuration.
type AppConfig struct {
	DockerTimeoutSeconds int               `mapstructure:"docker_timeout_seconds"`
	Categories           map[string]string `mapstructure:"categories"`
}

// LoggingConfig holds the logging-related configuration.
type LoggingConfig struct {
	Level string `mapstructure:"log_level"`
}

// HomepageConfig holds everything about the dashboard we sync into.
type HomepageConfig struct {
	ConfigPath           string   `mapstructure:"config_path"`
	AllowedDir           string   `mapstructure:"allowed_dir"`
	AllowedPrefixes      []string `mapstructure:"allowed_prefixes"`
	ReloadURL            string   `mapstructure:"reload_url"`
	ReloadTimeoutSeconds int      `mapstructure:"reload_timeout_seconds"`
	LockTimeoutSeconds   int      `mapstructure:"lock_timeout_seconds"`
}

// Config is the top-level configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Logging  LoggingConfig  `mapstructure:"log"`
	Homepage HomepageConfig `mapstructure:"homepage"`
}

// InitConfig performs the initial configuration: setting defaults, specifying the config file, and reading it.
// An empty configFile falls back to config.yaml in the current directory.
func InitConfig(configFile string) error {
	// Set defaults for each sub-configuration.
	viper.SetDefault("app.docker_timeout_seconds", 10)
	viper.SetDefault("app.categories", map[string]string{})
	viper.SetDefault("log.log_level", "INFO")
	viper.SetDefault("homepage.config_path", "/volume1/docker/Homepage/services.yaml")
	viper.SetDefault("homepage.allowed_dir", "/volume1/docker/Homepage")
	viper.SetDefault("homepage.allowed_prefixes", []string{})
	viper.SetDefault("homepage.reload_url", "http://localhost:3000/reload")
	viper.SetDefault("homepage.reload_timeout_seconds", 5)
	viper.SetDefault("homepage.lock_timeout_seconds", 5)

	// Specify the config file details.
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config") // Looks for config.yaml
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".") // current directory
	}

	// Read the config file if available.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// If the file is not found, just continue with defaults and env vars.
	}

	// Enable automatic environment variable binding.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return nil
}

// Load unmarshals the configuration into the Config struct.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &config, nil
}

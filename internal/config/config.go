package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds remote movie service configuration
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"` // TMDB API base URL
	Key     string        `mapstructure:"key"`      // API read access token (bearer)
	Timeout time.Duration `mapstructure:"timeout"`  // Per-request timeout
}

// UIConfig holds UI behavior configuration
type UIConfig struct {
	SuggestDebounce  time.Duration `mapstructure:"suggest_debounce"`   // Delay before search suggestions fire
	PrefetchRows     int           `mapstructure:"prefetch_rows"`      // Rows from the bottom that trigger the next page
	ReviewsPerDetail int           `mapstructure:"reviews_per_detail"` // Reviews shown on the detail surface
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "https://api.themoviedb.org/3",
			Timeout: 15 * time.Second,
		},
		UI: UIConfig{
			SuggestDebounce:  300 * time.Millisecond,
			PrefetchRows:     5,
			ReviewsPerDetail: 3,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "screenings", "screenings.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "screenings", "screenings.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "screenings")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "screenings")
	}
}

// DefaultDataPath returns the directory holding durable client state
// (the session credential database)
func DefaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "screenings")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "screenings")
	}
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides (SCREENINGS_API_KEY etc.)
	viper.SetEnvPrefix("SCREENINGS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if key := viper.GetString("api_key"); key != "" && cfg.API.Key == "" {
		cfg.API.Key = key
	}

	return cfg, nil
}

// Save writes the current configuration to file
func Save(cfg *Config) error {
	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set("api.base_url", cfg.API.BaseURL)
	viper.Set("api.key", cfg.API.Key)
	viper.Set("api.timeout", cfg.API.Timeout)

	viper.Set("ui.suggest_debounce", cfg.UI.SuggestDebounce)
	viper.Set("ui.prefetch_rows", cfg.UI.PrefetchRows)
	viper.Set("ui.reviews_per_detail", cfg.UI.ReviewsPerDetail)

	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if the API key is set
func (c *Config) IsConfigured() bool {
	return c.API.Key != ""
}

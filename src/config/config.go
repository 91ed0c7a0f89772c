package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configDir  = ".polyhello"
	configFile = "config.yaml"
	dotEnvFile = ".env"

	defaultTimeout = 30 * time.Second
)

type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type Config struct {
	Gemini ProviderConfig
	Groq   ProviderConfig
	OpenAI ProviderConfig

	// Provider is the raw forced preference; it is matched case-insensitively later.
	Provider string
	Timeout  time.Duration
	Format   string
	LogLevel string
}

// LoadOptions points Load at its files. Empty paths fall back to the
// defaults: ~/.polyhello/config.yaml and ./.env.
type LoadOptions struct {
	ConfigFile string
	DotEnvFile string
}

// Load builds the Config once per process. Sources, lowest precedence first:
// defaults, the YAML config file, the .env file, the process environment.
// Missing files are skipped; unreadable or malformed ones are errors.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	cfgPath := opts.ConfigFile
	if cfgPath == "" {
		cfgPath = DefaultConfigFile()
	}
	if cfgPath != "" {
		if _, err := os.Stat(cfgPath); err == nil {
			v.SetConfigFile(cfgPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", cfgPath, err)
			}
		}
	}

	envPath := opts.DotEnvFile
	if envPath == "" {
		envPath = dotEnvFile
	}
	dot, err := godotenv.Read(envPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read env file %s: %w", envPath, err)
	}
	if len(dot) > 0 {
		values := make(map[string]any, len(dot))
		for k, val := range dot {
			values[strings.ToLower(k)] = val
		}
		if err := v.MergeConfigMap(values); err != nil {
			return nil, fmt.Errorf("failed to merge env file %s: %w", envPath, err)
		}
	}

	v.AutomaticEnv()

	return fromViper(v)
}

func DefaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("hello_timeout", defaultTimeout.String())
	v.SetDefault("hello_format", "json")
	v.SetDefault("hello_log_level", "warn")
}

func fromViper(v *viper.Viper) (*Config, error) {
	timeout, err := time.ParseDuration(v.GetString("hello_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid HELLO_TIMEOUT %q: %w", v.GetString("hello_timeout"), err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid HELLO_TIMEOUT %q: must be positive", v.GetString("hello_timeout"))
	}

	format := strings.ToLower(v.GetString("hello_format"))
	switch format {
	case "json", "yaml":
	default:
		return nil, fmt.Errorf("invalid HELLO_FORMAT %q: expected json or yaml", format)
	}

	return &Config{
		Gemini: ProviderConfig{
			APIKey:  v.GetString("google_api_key"),
			Model:   v.GetString("gemini_model"),
			BaseURL: v.GetString("gemini_base_url"),
		},
		Groq: ProviderConfig{
			APIKey:  v.GetString("groq_api_key"),
			Model:   v.GetString("groq_model"),
			BaseURL: v.GetString("groq_base_url"),
		},
		OpenAI: ProviderConfig{
			APIKey:  v.GetString("openai_api_key"),
			Model:   v.GetString("openai_model"),
			BaseURL: v.GetString("openai_base_url"),
		},
		Provider: v.GetString("provider"),
		Timeout:  timeout,
		Format:   format,
		LogLevel: strings.ToLower(v.GetString("hello_log_level")),
	}, nil
}

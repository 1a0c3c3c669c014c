package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrConfiguration marks a configuration problem that must stop the process at boot.
var ErrConfiguration = errors.New("configuration error")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Storage
	Database DatabaseConfig
	Redis    RedisConfig

	// Dialogue routing
	LLM      LLMConfig
	Dialogue DialogueConfig
	Tools    ToolsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// DatabaseConfig selects the conversation store backend.
type DatabaseConfig struct {
	Driver          string // "postgres" or "sqlite"
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig enables cross-replica ordering of conversation writes. Empty Addr keeps ordering in-process.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	LockTTL  time.Duration
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers         []ProviderConfig `yaml:"providers"`
	FallbackEnabled   bool             `yaml:"fallback_enabled"`
	RetryAttempts     int              `yaml:"retry_attempts"`
	RetryDelay        string           `yaml:"retry_delay"`
	MaxTotalTimeout   string           `yaml:"max_total_timeout"`
	SystemInstruction string           `yaml:"system_instruction"`
	MaxToolCalls      int              `yaml:"max_tool_calls"`
	Temperature       float64          `yaml:"temperature"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// DialogueConfig tunes the local/LLM routing decision.
type DialogueConfig struct {
	ConfidenceThreshold float64
	LocalIntents        []string // empty means every intent with a handler
	SoftmaxScale        float64
}

// ToolsConfig holds tool credentials, endpoints and limits.
type ToolsConfig struct {
	Timeout         time.Duration
	Timezone        string
	DefaultCity     string
	BaseCurrency    string
	QuoteCurrency   string
	NewsCountry     string
	NewsLanguage    string
	TranslateTarget string

	OpenWeatherAPIKey string
	GNewsAPIKey       string
	TranslateAPIKey   string

	// TranslateCredentialsFile is a service account JSON used when TranslateAPIKey is empty.
	TranslateCredentialsFile string

	WeatherURL      string
	NewsURL         string
	ExchangeRateURL string
	PokeAPIURL      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Storage
	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.URL = viper.GetString("database.url")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Database.URL = dbURL
	}
	cfg.Database.MaxOpenConns = viper.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = viper.GetInt("database.max_idle_conns")
	cfg.Database.ConnMaxLifetime = viper.GetDuration("database.conn_max_lifetime")

	cfg.Redis.Addr = viper.GetString("redis.addr")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Redis.Addr = redisAddr
	}
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.LockTTL = viper.GetDuration("redis.lock_ttl")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.SystemInstruction = viper.GetString("llm.system_instruction")
	cfg.LLM.MaxToolCalls = viper.GetInt("llm.max_tool_calls")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	} else {
		cfg.LLM.Providers = defaultProviders()
	}

	// Dialogue
	cfg.Dialogue.ConfidenceThreshold = viper.GetFloat64("dialogue.confidence_threshold")
	cfg.Dialogue.SoftmaxScale = viper.GetFloat64("dialogue.softmax_scale")
	cfg.Dialogue.LocalIntents = splitList(viper.GetStringSlice("dialogue.local_intents"))

	// Tools
	cfg.Tools.Timeout = viper.GetDuration("tools.timeout")
	cfg.Tools.Timezone = viper.GetString("tools.timezone")
	cfg.Tools.DefaultCity = viper.GetString("tools.default_city")
	cfg.Tools.BaseCurrency = viper.GetString("tools.base_currency")
	cfg.Tools.QuoteCurrency = viper.GetString("tools.quote_currency")
	cfg.Tools.NewsCountry = viper.GetString("tools.news_country")
	cfg.Tools.NewsLanguage = viper.GetString("tools.news_language")
	cfg.Tools.TranslateTarget = viper.GetString("tools.translate_target")
	cfg.Tools.WeatherURL = viper.GetString("tools.weather_url")
	cfg.Tools.NewsURL = viper.GetString("tools.news_url")
	cfg.Tools.ExchangeRateURL = viper.GetString("tools.exchange_rate_url")
	cfg.Tools.PokeAPIURL = viper.GetString("tools.pokeapi_url")
	cfg.Tools.OpenWeatherAPIKey = firstNonEmpty(viper.GetString("openweather_api_key"), viper.GetString("tools.openweather_api_key"))
	cfg.Tools.GNewsAPIKey = firstNonEmpty(viper.GetString("gnews_api_key"), viper.GetString("tools.gnews_api_key"))
	cfg.Tools.TranslateAPIKey = firstNonEmpty(viper.GetString("google_translate_api_key"), viper.GetString("tools.translate_api_key"))
	cfg.Tools.TranslateCredentialsFile = firstNonEmpty(viper.GetString("tools.translate_credentials_file"), viper.GetString("google_application_credentials"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports boot-time configuration errors wrapped in ErrConfiguration.
func (c *Config) Validate() error {
	if err := validateLLMConfig(&c.LLM); err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if c.Dialogue.ConfidenceThreshold < 0 || c.Dialogue.ConfidenceThreshold > 1 {
		return fmt.Errorf("%w: dialogue.confidence_threshold must be within [0,1], got %v",
			ErrConfiguration, c.Dialogue.ConfidenceThreshold)
	}
	if c.Dialogue.SoftmaxScale <= 0 {
		return fmt.Errorf("%w: dialogue.softmax_scale must be positive", ErrConfiguration)
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("%w: unsupported database.driver %q", ErrConfiguration, c.Database.Driver)
	}
	if c.Database.URL == "" {
		return fmt.Errorf("%w: database.url is required", ErrConfiguration)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.url", "file:fulano.db")
	viper.SetDefault("database.max_open_conns", 10)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", "30m")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.lock_ttl", "90s")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
	viper.SetDefault("llm.system_instruction", DefaultSystemInstruction)
	viper.SetDefault("llm.max_tool_calls", 1)
	viper.SetDefault("llm.temperature", 0.7)

	viper.SetDefault("dialogue.confidence_threshold", 0.70)
	viper.SetDefault("dialogue.softmax_scale", 8.0)

	viper.SetDefault("tools.timeout", "15s")
	viper.SetDefault("tools.timezone", "America/Bogota")
	viper.SetDefault("tools.default_city", "Bogotá")
	viper.SetDefault("tools.base_currency", "USD")
	viper.SetDefault("tools.quote_currency", "COP")
	viper.SetDefault("tools.news_country", "co")
	viper.SetDefault("tools.news_language", "es")
	viper.SetDefault("tools.translate_target", "en")
	viper.SetDefault("tools.weather_url", "https://api.openweathermap.org/data/2.5/weather")
	viper.SetDefault("tools.news_url", "https://gnews.io/api/v4/top-headlines")
	viper.SetDefault("tools.exchange_rate_url", "https://open.er-api.com/v6/latest")
	viper.SetDefault("tools.pokeapi_url", "https://pokeapi.co/api/v2")
}

// defaultProviders is used when config.yaml declares no llm.providers.
// Gemini is primary; an OpenAI-compatible endpoint joins only when its key is present.
func defaultProviders() []ProviderConfig {
	providers := []ProviderConfig{{
		Name:     "gemini",
		Enabled:  true,
		Priority: 1,
		APIKey:   viper.GetString("gemini_api_key"),
		Model:    "gemini-2.5-flash",
		Timeout:  "30s",
	}}
	if key := viper.GetString("openai_api_key"); key != "" {
		providers = append(providers, ProviderConfig{
			Name:     "openai",
			Enabled:  true,
			Priority: 2,
			APIKey:   key,
			BaseURL:  viper.GetString("openai_base_url"),
			Model:    firstNonEmpty(viper.GetString("openai_model"), "gpt-4o-mini"),
			Timeout:  "30s",
		})
	}
	return providers
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration. A provider that is enabled without a key is fatal.
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}
	if cfg.MaxToolCalls < 1 {
		return fmt.Errorf("llm.max_tool_calls must be at least 1")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true

			if provider.APIKey == "" {
				return fmt.Errorf("provider %s: API key is not configured", provider.Name)
			}
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

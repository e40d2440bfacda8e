package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// AuxLLM is the cheaper provider chain used to score responses. When
	// no aux providers are configured the primary chain is reused.
	AuxLLM LLMConfig

	// Response cache
	Cache CacheConfig

	// Pipeline behavior
	Orchestrator OrchestratorConfig
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

// LLMConfig holds configuration for one LLM provider chain
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
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

type CacheConfig struct {
	// Backend is "memory" or "redis".
	Backend string
	Redis   RedisConfig
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type OrchestratorConfig struct {
	AdvancedPlanning bool
	StepTimeout      string
	RateLimitPerMin  int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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

	// LLM provider chains
	cfg.LLM = loadLLMConfig("llm")
	cfg.AuxLLM = loadLLMConfig("aux_llm")

	if len(cfg.LLM.Providers) == 0 {
		return nil, fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	// Cache
	cfg.Cache.Backend = viper.GetString("cache.backend")
	cfg.Cache.Redis.Address = viper.GetString("cache.redis.address")
	cfg.Cache.Redis.Password = viper.GetString("cache.redis.password")
	cfg.Cache.Redis.DB = viper.GetInt("cache.redis.db")
	if redisAddr := viper.GetString("redis_address"); redisAddr != "" {
		cfg.Cache.Redis.Address = redisAddr
	}

	// Orchestrator
	cfg.Orchestrator.AdvancedPlanning = viper.GetBool("orchestrator.advanced_planning")
	cfg.Orchestrator.StepTimeout = viper.GetString("orchestrator.step_timeout")
	cfg.Orchestrator.RateLimitPerMin = viper.GetInt("orchestrator.rate_limit_per_min")

	return cfg, nil
}

// loadLLMConfig reads one provider chain from the given config prefix.
func loadLLMConfig(prefix string) LLMConfig {
	cfg := LLMConfig{
		FallbackEnabled: viper.GetBool(prefix + ".fallback_enabled"),
		RetryAttempts:   viper.GetInt(prefix + ".retry_attempts"),
		RetryDelay:      viper.GetString(prefix + ".retry_delay"),
		MaxTotalTimeout: viper.GetString(prefix + ".max_total_timeout"),
	}

	if !viper.IsSet(prefix + ".providers") {
		return cfg
	}

	providersRaw := viper.Get(prefix + ".providers")
	providersList, ok := providersRaw.([]interface{})
	if !ok {
		return cfg
	}

	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		cfg.Providers = append(cfg.Providers, ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Enabled:  getBoolFromMap(providerMap, "enabled"),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Model:    getStringFromMap(providerMap, "model"),
			Timeout:  getStringFromMap(providerMap, "timeout"),
		})
	}

	return cfg
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("cache.backend", "memory")

	viper.SetDefault("orchestrator.advanced_planning", true)
	viper.SetDefault("orchestrator.step_timeout", "45s")
	viper.SetDefault("orchestrator.rate_limit_per_min", 60)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")

	viper.SetDefault("aux_llm.fallback_enabled", false)
	viper.SetDefault("aux_llm.retry_attempts", 1)
	viper.SetDefault("aux_llm.retry_delay", "500ms")
	viper.SetDefault("aux_llm.max_total_timeout", "20s")
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
	}

	return value
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultDatasetURL = "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/bank_loan_status-KnWrWJZnELagdKyOCHVYuElLqzgHS3.csv"

type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatasetConfig struct {
	URL        string        `yaml:"url"`
	Timeout    time.Duration `yaml:"timeout"`
	SampleSize int           `yaml:"sample_size"`
	// CacheTTL of zero disables caching: every request re-fetches the dataset.
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type AdvisorConfig struct {
	APIKey    string        `yaml:"api_key"`
	APIURL    string        `yaml:"api_url"`
	Model     string        `yaml:"model"`
	MaxTokens int           `yaml:"max_tokens"`
	Timeout   time.Duration `yaml:"timeout"`
}

type RateLimitConfig struct {
	Capacity int           `yaml:"capacity"`
	Refill   time.Duration `yaml:"refill"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AppConfig holds every setting of the service. It is built once at start-up
// and handed to constructors.
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Redis     RedisConfig     `yaml:"redis"`
	Advisor   AdvisorConfig   `yaml:"advisor"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Logging   LogConfig       `yaml:"logging"`
}

// Default returns the configuration used when neither a file nor the
// environment overrides a value.
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Port:            5000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    45 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Dataset: DatasetConfig{
			URL:        DefaultDatasetURL,
			Timeout:    20 * time.Second,
			SampleSize: 100,
		},
		Advisor: AdvisorConfig{
			APIURL:    "https://api.together.xyz/v1/chat/completions",
			Model:     "meta-llama/Llama-3-8b-chat-hf",
			MaxTokens: 300,
			Timeout:   30 * time.Second,
		},
		RateLimit: RateLimitConfig{
			Capacity: 30,
			Refill:   time.Minute,
		},
		Logging: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads an optional .env file, an optional YAML file at CONFIG_PATH and
// finally the environment, then validates the result.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", slog.Any("error", err))
	}

	cfg := Default()
	configPath := GetEnvOrDefaultAsString("CONFIG_PATH", "configs/config.yaml")
	if err := loadFile(configPath, &cfg); err != nil {
		return nil, err
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadFile(path string, cfg *AppConfig) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("config file not found, using defaults", slog.String("path", path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *AppConfig) {
	cfg.Server.Port = GetEnvOrDefaultAsInt("SERVER_PORT", cfg.Server.Port)

	cfg.Dataset.URL = GetEnvOrDefaultAsString("DATASET_URL", cfg.Dataset.URL)
	cfg.Dataset.Timeout = GetEnvOrDefaultAsSeconds("DATASET_TIMEOUT_SECONDS", cfg.Dataset.Timeout)
	cfg.Dataset.SampleSize = GetEnvOrDefaultAsInt("DATASET_SAMPLE_SIZE", cfg.Dataset.SampleSize)
	cfg.Dataset.CacheTTL = GetEnvOrDefaultAsSeconds("DATASET_CACHE_TTL_SECONDS", cfg.Dataset.CacheTTL)

	cfg.Redis.Addr = GetEnvOrDefaultAsString("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = GetEnvOrDefaultAsString("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = GetEnvOrDefaultAsInt("REDIS_DB", cfg.Redis.DB)

	cfg.Advisor.APIKey = GetEnvOrDefaultAsString("TOGETHER_API_KEY", cfg.Advisor.APIKey)
	cfg.Advisor.APIURL = GetEnvOrDefaultAsString("ADVISOR_API_URL", cfg.Advisor.APIURL)
	cfg.Advisor.Model = GetEnvOrDefaultAsString("ADVISOR_MODEL", cfg.Advisor.Model)

	cfg.RateLimit.Capacity = GetEnvOrDefaultAsInt("RATE_LIMIT_CAPACITY", cfg.RateLimit.Capacity)
	cfg.RateLimit.Refill = GetEnvOrDefaultAsSeconds("RATE_LIMIT_REFILL_SECONDS", cfg.RateLimit.Refill)

	cfg.Logging.Level = GetEnvOrDefaultAsString("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = GetEnvOrDefaultAsString("LOG_FORMAT", cfg.Logging.Format)
}

func (c AppConfig) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if strings.TrimSpace(c.Dataset.URL) == "" {
		return errors.New("dataset.url is required")
	}
	if c.Dataset.Timeout <= 0 {
		return fmt.Errorf("dataset.timeout must be positive, got %v", c.Dataset.Timeout)
	}
	if c.Dataset.SampleSize <= 0 {
		return fmt.Errorf("dataset.sample_size must be positive, got %d", c.Dataset.SampleSize)
	}
	if c.Dataset.CacheTTL < 0 {
		return fmt.Errorf("dataset.cache_ttl cannot be negative, got %v", c.Dataset.CacheTTL)
	}
	if c.RateLimit.Capacity <= 0 {
		return fmt.Errorf("rate_limit.capacity must be positive, got %d", c.RateLimit.Capacity)
	}
	if c.RateLimit.Refill <= 0 {
		return fmt.Errorf("rate_limit.refill must be positive, got %v", c.RateLimit.Refill)
	}
	return nil
}

func (c AppConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// Enabled reports whether a usable API key is configured. Placeholder or very
// short keys are treated as absent.
func (c AdvisorConfig) Enabled() bool {
	return len(c.APIKey) > 10 && c.APIKey != "together_dummy_key"
}

func GetEnvOrDefaultAsString(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		if strings.TrimSpace(val) != "" {
			return val
		}
	}
	return defaultVal
}

// GetEnvOrDefaultAsInt returns the value of the given env variable
// as an int or the default value if not set or invalid.
func GetEnvOrDefaultAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		return defaultValue
	}
	return value
}

func GetEnvOrDefaultAsSeconds(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		return defaultValue
	}
	return time.Duration(value) * time.Second
}

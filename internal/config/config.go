package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCollectorTimeout = 10 * time.Second
	DefaultCacheTTL         = time.Hour
)

// Config is the immutable provider configuration handed to every collector
// and client at construction. Secrets come from the environment, provider
// toggles and feed lists from an optional YAML file.
type Config struct {
	Env string

	Reddit    RedditConfig    `yaml:"reddit"`
	Wikipedia WikipediaConfig `yaml:"wikipedia"`
	News      NewsConfig      `yaml:"news"`
	LLM       LLMConfig       `yaml:"llm"`
	Sentiment SentimentConfig `yaml:"sentiment"`

	Storage StorageConfig `yaml:"-"`
	Cache   CacheConfig   `yaml:"-"`

	CollectorTimeout time.Duration `yaml:"-"`
}

type RedditConfig struct {
	Enabled     bool   `yaml:"enabled"`
	BaseURL     string `yaml:"baseUrl"`
	UserAgent   string `yaml:"userAgent"`
	SearchLimit int    `yaml:"searchLimit"`
}

type WikipediaConfig struct {
	BaseURL         string `yaml:"baseUrl"`
	Language        string `yaml:"language"`
	MaxResults      int    `yaml:"maxResults"`
	MaxRetries      int    `yaml:"maxRetries"`
	MaxRedirectHops int    `yaml:"maxRedirectHops"`
}

type FeedConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type NewsConfig struct {
	NewsAPIKey  string       `yaml:"-"`
	GNewsAPIKey string       `yaml:"-"`
	Feeds       []FeedConfig `yaml:"feeds"`
	MaxArticles int          `yaml:"maxArticles"`
}

type LLMConfig struct {
	APIKey            string `yaml:"-"`
	Model             string `yaml:"model"`
	RequestsPerMinute int    `yaml:"requestsPerMinute"`
}

type SentimentConfig struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"baseUrl"`
	Model   string `yaml:"model"`
}

type StorageConfig struct {
	ConnStr string
}

type CacheConfig struct {
	RedisURL string
	TTL      time.Duration
}

// Load builds the configuration from the environment and, when
// PROVIDERS_CONFIG_PATH points at a file, overlays the YAML provider section.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("PROVIDERS_CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read providers config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse providers config: %w", err)
		}
	}

	cfg.Env = os.Getenv("APP_ENV")

	cfg.News.NewsAPIKey = os.Getenv("NEWSAPI_KEY")
	cfg.News.GNewsAPIKey = os.Getenv("GNEWS_API_KEY")
	cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		cfg.LLM.Model = model
	}

	cfg.Storage.ConnStr = os.Getenv("DATABASE_URL")
	cfg.Cache.RedisURL = os.Getenv("REDIS_URL")
	if ttl := os.Getenv("CACHE_TTL_SECONDS"); ttl != "" {
		secs, err := strconv.Atoi(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL_SECONDS: %w", err)
		}
		cfg.Cache.TTL = time.Duration(secs) * time.Second
	}

	if timeout := os.Getenv("COLLECTOR_TIMEOUT_SECONDS"); timeout != "" {
		secs, err := strconv.Atoi(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid COLLECTOR_TIMEOUT_SECONDS: %w", err)
		}
		cfg.CollectorTimeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Reddit: RedditConfig{
			Enabled:     true,
			BaseURL:     "https://www.reddit.com",
			UserAgent:   "news-verifier/1.0",
			SearchLimit: 20,
		},
		Wikipedia: WikipediaConfig{
			BaseURL:         "https://en.wikipedia.org/w/api.php",
			Language:        "en",
			MaxResults:      5,
			MaxRetries:      3,
			MaxRedirectHops: 1,
		},
		News: NewsConfig{
			MaxArticles: 20,
		},
		LLM: LLMConfig{
			Model:             "gpt-3.5-turbo",
			RequestsPerMinute: 20,
		},
		Cache: CacheConfig{
			TTL: DefaultCacheTTL,
		},
		CollectorTimeout: DefaultCollectorTimeout,
	}
}

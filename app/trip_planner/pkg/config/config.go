package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 项目配置结构体
type Config struct {
	LLM          LLMConfig          `yaml:"llm"`
	Search       SearchConfig       `yaml:"search"`
	SerpAPI      SerpAPIConfig      `yaml:"serpapi"`
	Weather      WeatherConfig      `yaml:"weather"`
	Travel       TravelConfig       `yaml:"travel"`
	AirportCache AirportCacheConfig `yaml:"airport_cache"`
	Log          LogConfig          `yaml:"log"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency"`
	Timeouts     TimeoutConfig      `yaml:"timeouts"`
	DB           DBConfig           `yaml:"db"`
}

// LLMConfig LLM 相关配置
type LLMConfig struct {
	Provider string `yaml:"provider"` // gemini or openai
	BaseURL  string `yaml:"base_url"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

// DBConfig 数据库相关配置，Host 为空时使用内存存储
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// SearchConfig 搜索相关配置，用于机场代码解析
type SearchConfig struct {
	Provider string        `yaml:"provider"`
	Tavily   TavilyConfig  `yaml:"tavily"`
	SearXNG  SearXNGConfig `yaml:"searxng"`
}

// TavilyConfig Tavily 配置
type TavilyConfig struct {
	APIKey string `yaml:"api_key"`
}

// SearXNGConfig SearXNG 配置
type SearXNGConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
}

// SerpAPIConfig SerpApi 配置，航班、酒店与谷歌搜索共用
type SerpAPIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// WeatherConfig OpenWeather 配置
type WeatherConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// TravelConfig 航班与酒店查询参数
type TravelConfig struct {
	Currency  string `yaml:"currency"`
	Country   string `yaml:"country"`
	Language  string `yaml:"language"`
	MaxHotels int    `yaml:"max_hotels"`
}

// AirportCacheConfig 机场代码缓存配置，默认关闭
type AirportCacheConfig struct {
	Enabled       bool   `yaml:"enabled"`
	RedisAddr     string `yaml:"redis_addr"` // 为空时使用进程内缓存
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	TTL           string `yaml:"ttl"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig 并发控制配置
type ConcurrencyConfig struct {
	QPS             int  `yaml:"qps"`
	RPM             int  `yaml:"rpm"`
	ParallelLookups bool `yaml:"parallel_lookups"`
}

// TimeoutConfig 远程调用超时配置
type TimeoutConfig struct {
	RemoteCall string `yaml:"remote_call"`
}

// RemoteCallTimeout 返回单次远程调用的超时时间
func (c *Config) RemoteCallTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Timeouts.RemoteCall); err == nil && d > 0 {
		return d
	}
	return 30 * time.Second
}

// CacheTTL 返回机场代码缓存有效期
func (c *Config) CacheTTL() time.Duration {
	if d, err := time.ParseDuration(c.AirportCache.TTL); err == nil && d > 0 {
		return d
	}
	return 30 * 24 * time.Hour
}

// ApplyDefaults 填充未配置的默认值
func (c *Config) ApplyDefaults() {
	if c.LLM.Provider == "" {
		c.LLM.Provider = "gemini"
	}
	if c.LLM.Model == "" && c.LLM.Provider == "gemini" {
		c.LLM.Model = "gemini-2.5-flash-lite"
	}
	if c.Search.Provider == "" {
		c.Search.Provider = "serpapi"
	}
	if c.Travel.Currency == "" {
		c.Travel.Currency = "INR"
	}
	if c.Travel.Country == "" {
		c.Travel.Country = "in"
	}
	if c.Travel.Language == "" {
		c.Travel.Language = "en"
	}
	if c.Travel.MaxHotels <= 0 {
		c.Travel.MaxHotels = 5
	}
	if c.Concurrency.RPM <= 0 {
		c.Concurrency.RPM = 60
	}
	if c.Concurrency.QPS <= 0 {
		c.Concurrency.QPS = 1
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate 校验必填项
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required")
	}
	if c.SerpAPI.APIKey == "" {
		return fmt.Errorf("serpapi.api_key is required")
	}
	if c.Weather.APIKey == "" {
		return fmt.Errorf("weather.api_key is required")
	}
	return nil
}

// LoadConfig 从指定路径加载配置，支持 ${ENV} 占位符（会先读取 .env）
func LoadConfig(path string) (*Config, error) {
	// .env 不存在时忽略
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}

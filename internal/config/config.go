// Package config 配置管理模块
package config

import (
	"encoding/json"
	"os"
	"strconv"
	"sync"
)

// Config 全局配置结构
type Config struct {
	API       APIConfig       `json:"api"`
	Images    ImagesConfig    `json:"images"`
	Database  DatabaseConfig  `json:"database"`
	Logging   LoggingConfig   `json:"logging"`
	Web       WebConfig       `json:"web"`
	Scheduler SchedulerConfig `json:"scheduler"`
	Notify    NotifyConfig    `json:"notify"`
}

// APIConfig 上游 API 配置
type APIConfig struct {
	BaseURL  string `json:"base_url"`
	PageFrom int    `json:"page_from"`
	PageTo   int    `json:"page_to"`
	Delay    int    `json:"delay"`   // 请求间隔（秒）
	Timeout  int    `json:"timeout"` // 单次请求超时（秒）
	Retries  int    `json:"retries"` // 失败重试次数
}

// ImagesConfig 图片处理配置
type ImagesConfig struct {
	MaxDimensions int    `json:"max_dimensions"` // 最大宽/高（像素）
	Quality       int    `json:"quality"`        // JPEG 质量 (0-100)
	StoragePath   string `json:"storage_path"`   // 存储根目录
	SaveDirectory string `json:"save_directory"` // 存储内的子目录
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Enabled bool   `json:"enabled"`
	Channel string `json:"channel"`
}

// WebConfig 状态接口配置
type WebConfig struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
}

// SchedulerConfig 定时抓取配置
type SchedulerConfig struct {
	Enabled bool   `json:"enabled"`
	CrawlAt string `json:"crawl_at"` // 每日执行时间，如 "03:00"
}

// NotifyConfig Telegram 通知配置
type NotifyConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"bot_token"`
	ChatID   int64  `json:"chat_id"`
}

var (
	cfg     *Config
	cfgLock sync.RWMutex
)

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// 设置默认值并应用环境变量覆盖
	config.setDefaults()
	config.applyEnv()

	cfgLock.Lock()
	cfg = &config
	cfgLock.Unlock()

	return &config, nil
}

// Get 获取全局配置（线程安全）
func Get() *Config {
	cfgLock.RLock()
	defer cfgLock.RUnlock()
	return cfg
}

// setDefaults 设置默认值
func (c *Config) setDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "https://xxvnapi.com/api"
	}
	if c.API.PageFrom == 0 {
		c.API.PageFrom = 3
	}
	if c.API.PageTo == 0 {
		c.API.PageTo = 1
	}
	if c.API.Delay == 0 {
		c.API.Delay = 1
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 60
	}
	if c.API.Retries == 0 {
		c.API.Retries = 3
	}
	if c.Images.MaxDimensions == 0 {
		c.Images.MaxDimensions = 500
	}
	if c.Images.Quality == 0 {
		c.Images.Quality = 85
	}
	if c.Images.StoragePath == "" {
		c.Images.StoragePath = "storage/public"
	}
	if c.Images.SaveDirectory == "" {
		c.Images.SaveDirectory = "movies"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 3306
	}
	if c.Logging.Channel == "" {
		c.Logging.Channel = "crawler"
	}
	if c.Web.Port == 0 {
		c.Web.Port = 8868
	}
	if c.Scheduler.CrawlAt == "" {
		c.Scheduler.CrawlAt = "03:00"
	}
}

// applyEnv 从环境变量覆盖数据库凭据
func (c *Config) applyEnv() {
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Database.Port = port
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.Name = v
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// Config 全局配置结构体（完全匹配config.yaml）
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`   // 服务器配置
	Database DatabaseConfig `mapstructure:"database"` // 存储配置
	Career   CareerConfig   `mapstructure:"career"`   // 新生涯生成参数
	Client   ClientConfig   `mapstructure:"client"`   // 终端客户端访问远端服务的配置
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port int    `mapstructure:"port"` // 服务端口
	Mode string `mapstructure:"mode"` // Gin运行模式：debug/release/test
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`            // sqlite（本地文件，默认）/ postgres
	DSN             string        `mapstructure:"dsn"`               // 连接DSN，sqlite 时为文件路径
	MaxOpenConns    int           `mapstructure:"max_open_conns"`    // 最大打开连接数
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`    // 最大空闲连接数
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"` // 连接最大存活时间
	LogSQL          bool          `mapstructure:"log_sql"`           // 是否打印SQL
}

// CareerConfig 新生涯生成参数
type CareerConfig struct {
	LeagueName string `mapstructure:"league_name"` // 默认联赛名
	TeamCount  int    `mapstructure:"team_count"`  // 联赛球队数（不超过球队目录长度）
	SquadSize  int    `mapstructure:"squad_size"`  // 每队球员数
	MinAge     int    `mapstructure:"min_age"`     // 球员最小年龄
	MaxAge     int    `mapstructure:"max_age"`     // 球员最大年龄
}

// ClientConfig 终端客户端配置
type ClientConfig struct {
	BaseURL string `mapstructure:"base_url"` // 服务地址，如 http://127.0.0.1:8080
	Timeout int    `mapstructure:"timeout"`  // 请求超时（秒）
	Proxy   string `mapstructure:"proxy"`    // 代理地址
}

// Default 返回不依赖配置文件的默认配置
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// LoadConfig 加载配置文件（config/config.yaml），敏感项从 .env 覆盖（不提交 git）
func LoadConfig() (*Config, error) {
	return LoadConfigFrom("./config")
}

// LoadConfigFrom 从指定目录加载 config.yaml
func LoadConfigFrom(dir string) (*Config, error) {
	// 1. 加载 .env（若存在），env 中的值会覆盖 config.yaml 中同名字段
	_ = godotenv.Load() // 忽略错误（.env 可不存在）

	// 2. 读取 config.yaml
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	v.SetTypeByDefaultValue(true)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 3. 敏感字段：用 env 覆盖（优先级 env > yaml）
	overrideFromEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadConfigOrDefault 与 LoadConfigFrom 相同，但目录下没有 config.yaml 时退回默认配置（env 覆盖仍生效）；
// 文件存在但无法解析时返回错误
func LoadConfigOrDefault(dir string) (*Config, error) {
	cfg, err := LoadConfigFrom(dir)
	if err == nil {
		return cfg, nil
	}
	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}
	cfg = &Config{}
	overrideFromEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

// overrideFromEnv 用环境变量覆盖敏感配置
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("CAREER_DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("CAREER_DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("CAREER_SERVER_URL"); v != "" {
		cfg.Client.BaseURL = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.DSN == "" && cfg.Database.Driver == "sqlite" {
		cfg.Database.DSN = "career.db"
	}
	if cfg.Database.MaxOpenConns <= 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns <= 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime <= 0 {
		cfg.Database.ConnMaxLifetime = time.Hour
	}
	if cfg.Career.LeagueName == "" {
		cfg.Career.LeagueName = "Premier Division"
	}
	if cfg.Career.SquadSize <= 0 {
		cfg.Career.SquadSize = 11
	}
	if cfg.Career.MinAge <= 0 {
		cfg.Career.MinAge = 18
	}
	if cfg.Career.MaxAge < cfg.Career.MinAge {
		cfg.Career.MaxAge = 35
	}
	if cfg.Client.Timeout <= 0 {
		cfg.Client.Timeout = 10
	}
}

// GetGORMConfig 获取数据库配置（适配GORM）
func (d *DatabaseConfig) GetGORMConfig() gorm.Config {
	return gorm.Config{} // 可扩展：添加日志、命名策略等
}

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	JWT      JWTConfig
	Database DatabaseConfig
	Log      LogConfig
	Locale   LocaleConfig
}

type AppConfig struct {
	Name         string
	Env          string
	Host         string
	Port         int
	ReadTimeout  int `mapstructure:"read_timeout"`
	WriteTimeout int `mapstructure:"write_timeout"`
	IdleTimeout  int `mapstructure:"idle_timeout"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
	ExpiresIn int    `mapstructure:"expires_in"`
	Issuer    string
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            int
	Username        string
	Password        string
	DBName          string `mapstructure:"dbname"`
	SSLMode         string `mapstructure:"sslmode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	MigrationsTable string `mapstructure:"migrations_table"`
}

type LogConfig struct {
	Level    string
	Format   string
	Output   string
	FilePath string `mapstructure:"file_path"`
}

// LocaleConfig 语言相关配置
type LocaleConfig struct {
	// Default 请求与用户均未指定语言时使用，空字符串表示按英文处理
	Default string
	// QueryParam 会话语言的查询参数名
	QueryParam string `mapstructure:"query_param"`
}

var globalConfig *Config

// setDefaults 设置默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "poa-backend")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.read_timeout", 15)
	v.SetDefault("app.write_timeout", 15)
	v.SetDefault("app.idle_timeout", 60)

	v.SetDefault("jwt.expires_in", 86400)
	v.SetDefault("jwt.issuer", "poa-backend")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 3600)
	v.SetDefault("database.migrations_table", "schema_migrations")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("locale.default", "")
	v.SetDefault("locale.query_param", "lang")
}

// LoadConfig 加载配置
// configPath 可以是目录（查找其中的 app.yaml）或者具体的配置文件路径
// env 为空时使用 app.env 的值，对应的 app.<env>.yaml 存在时会合并到基础配置之上
func LoadConfig(configPath string, env string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("POA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile, err := findConfigFile(configPath)
	if err != nil {
		return nil, err
	}
	v.SetConfigFile(configFile)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	if env == "" {
		env = v.GetString("app.env")
	}

	// 合并环境特定配置
	if env != "" {
		envConfigFile := filepath.Join(filepath.Dir(configFile), fmt.Sprintf("app.%s.yaml", env))
		if fileExists(envConfigFile) {
			envViper := viper.New()
			envViper.SetConfigFile(envConfigFile)

			if err := envViper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("读取环境配置文件失败: %w", err)
			}

			if err := v.MergeConfigMap(envViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("合并环境配置失败: %w", err)
			}
		}
		v.Set("app.env", env)
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if config.JWT.SecretKey == "" {
		return nil, fmt.Errorf("jwt.secret_key 未配置")
	}

	globalConfig = config
	return config, nil
}

// findConfigFile 查找配置文件
func findConfigFile(configPath string) (string, error) {
	configPaths := []string{
		configPath,
		"./configs",
		"../configs",
	}

	for _, path := range configPaths {
		if path == "" {
			continue
		}
		if isDir(path) {
			baseConfigFile := filepath.Join(path, "app.yaml")
			if fileExists(baseConfigFile) {
				return baseConfigFile, nil
			}
		} else if fileExists(path) {
			return path, nil
		}
	}

	return "", fmt.Errorf("无法找到配置文件，已尝试路径: %v", configPaths)
}

// 检查是否是目录
func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// 检查文件是否存在
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	return globalConfig
}

// SetConfig 替换全局配置，测试中使用
func SetConfig(cfg *Config) {
	globalConfig = cfg
}

// GetDSN 获取数据库连接字符串
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.DBName, c.SSLMode)
}

// GetConnURL 获取 postgres:// 形式的连接 URL
func (c *DatabaseConfig) GetConnURL() string {
	return c.buildURL(false)
}

// GetURL 获取 golang-migrate 使用的连接 URL
func (c *DatabaseConfig) GetURL() string {
	return c.buildURL(true)
}

func (c *DatabaseConfig) buildURL(withMigrationsTable bool) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Username, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/" + c.DBName,
	}
	q := u.Query()
	q.Set("sslmode", c.SSLMode)
	if withMigrationsTable && c.MigrationsTable != "" {
		q.Set("x-migrations-table", c.MigrationsTable)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// GetConnMaxLifetime 获取数据库连接最大生命周期
func (c *DatabaseConfig) GetConnMaxLifetime() time.Duration {
	return time.Duration(c.ConnMaxLifetime) * time.Second
}

// GetJWTExpiration 获取 JWT 过期时间
func (c *JWTConfig) GetJWTExpiration() time.Duration {
	return time.Duration(c.ExpiresIn) * time.Second
}

// Timeouts 返回 HTTP 服务器的读、写、空闲超时
func (c *AppConfig) Timeouts() (read, write, idle time.Duration) {
	return time.Duration(c.ReadTimeout) * time.Second,
		time.Duration(c.WriteTimeout) * time.Second,
		time.Duration(c.IdleTimeout) * time.Second
}

// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/haierkeys/lead-intention-service/internal/dao"
	"github.com/haierkeys/lead-intention-service/pkg/mailer"
	"github.com/haierkeys/lead-intention-service/pkg/util"
	"github.com/haierkeys/lead-intention-service/pkg/viacep"
	"github.com/haierkeys/lead-intention-service/pkg/workerpool"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AppConfig 应用配置
type AppConfig struct {
	File     string         `yaml:"-"` // 配置文件路径，不序列化
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	App      AppSettings    `yaml:"app"`
	Lead     LeadConfig     `yaml:"lead"`
	Zipcode  ZipcodeConfig  `yaml:"zipcode"`
	Mail     MailConfig     `yaml:"mail"`
	Tracer   TracerConfig   `yaml:"tracer"`
	Limiter  LimiterConfig  `yaml:"limiter"`
}

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别，参见 zapcore.ParseLevel
	Level string `yaml:"level" default:"info"`
	// File 日志文件路径，为空时只输出到 stdout
	File string `yaml:"file" default:"storage/logs/log.log"`
	// Production 是否启用 JSON 输出
	Production bool `yaml:"production" default:"true"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	// RunMode 运行模式 debug / release / test
	RunMode string `yaml:"run-mode" default:"release"`
	// HttpPort HTTP 端口
	HttpPort string `yaml:"http-port" default:":3333"`
	// ReadTimeout 读取超时（秒）
	ReadTimeout int `yaml:"read-timeout" default:"60"`
	// WriteTimeout 写入超时（秒）
	WriteTimeout int `yaml:"write-timeout" default:"60"`
	// PrivateHttpListen 私有 HTTP 监听地址（metrics / pprof），为空则不启动
	PrivateHttpListen string `yaml:"private-http-listen" default:"127.0.0.1:3334"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	// Type sqlite / mysql / postgres
	Type string `yaml:"type" default:"sqlite"`
	// Path SQLite 数据库文件路径
	Path string `yaml:"path" default:"storage/database/db.sqlite3"`
	// UserName 用户名
	UserName string `yaml:"username"`
	// Password 密码
	Password string `yaml:"password"`
	// Host 主机
	Host string `yaml:"host"`
	// Port 端口，0 表示驱动默认端口
	Port int `yaml:"port"`
	// Name 数据库名
	Name string `yaml:"name"`
	// TablePrefix 表前缀
	TablePrefix string `yaml:"table-prefix"`
	// AutoMigrate 是否启用自动迁移
	AutoMigrate bool `yaml:"auto-migrate" default:"true"`
	// Charset 字符集
	Charset string `yaml:"charset" default:"utf8mb4"`
	// ParseTime 是否解析时间
	ParseTime bool `yaml:"parse-time" default:"true"`
	// SSLMode postgres sslmode
	SSLMode string `yaml:"ssl-mode" default:"disable"`
	// MaxIdleConns 最大闲置连接数
	MaxIdleConns int `yaml:"max-idle-conns" default:"10"`
	// MaxOpenConns 最大打开连接数
	MaxOpenConns int `yaml:"max-open-conns" default:"100"`
	// ConnMaxLifetime 连接最大生命周期，支持格式：30m、1h
	ConnMaxLifetime string `yaml:"conn-max-lifetime" default:"30m"`
	// ConnMaxIdleTime 空闲连接最大生命周期
	ConnMaxIdleTime string `yaml:"conn-max-idle-time" default:"10m"`
}

// AppSettings 应用设置
type AppSettings struct {
	// DefaultContextTimeout 请求上下文超时（秒）
	DefaultContextTimeout int `yaml:"default-context-timeout" default:"60"`
	// MailWorkers 邮件发送并发数
	MailWorkers int `yaml:"mail-workers" default:"4"`
	// MailQueueSize 邮件发送队列长度
	MailQueueSize int `yaml:"mail-queue-size" default:"64"`
	// StatsInterval 意向统计刷新间隔
	StatsInterval string `yaml:"stats-interval" default:"1m"`
	// DefaultLang 请求未指定语言时的响应语言 en / pt_br
	DefaultLang string `yaml:"default-lang" default:"en"`
}

// LeadConfig 线索配置
type LeadConfig struct {
	// EmailMinLength 邮箱最小长度
	EmailMinLength int `yaml:"email-min-length" default:"20"`
}

// ZipcodeConfig 邮编查询配置
type ZipcodeConfig struct {
	BaseURL string `yaml:"base-url" default:"https://viacep.com.br"`
	Timeout string `yaml:"timeout" default:"5s"`
}

// MailConfig 邮件配置
type MailConfig struct {
	mailer.Config  `yaml:",inline"`
	WelcomeSubject string `yaml:"welcome-subject" default:"Bem-vindo!"`
	// Timeout 单封邮件发送超时
	Timeout string `yaml:"timeout" default:"10s"`
}

// TracerConfig 请求追踪配置
type TracerConfig struct {
	// Enabled 是否启用追踪
	Enabled bool `yaml:"enabled" default:"true"`
	// Header 追踪 ID 请求头名称，默认 X-Trace-ID
	Header string `yaml:"header" default:"X-Trace-ID"`
}

// LimiterConfig 公共接口限流配置（令牌桶）
type LimiterConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
	// Capacity 桶容量
	Capacity int64 `yaml:"capacity" default:"100"`
	// Quantum 每个 FillInterval 补充的令牌数
	Quantum int64 `yaml:"quantum" default:"100"`
	// FillInterval 补充间隔
	FillInterval string `yaml:"fill-interval" default:"1s"`
}

// LoadConfig 从文件加载配置
// 读取前先加载同目录及工作目录下的 .env，YAML 中的 ${VAR} 从环境变量展开
// 返回配置实例和配置文件的绝对路径
func LoadConfig(f string) (*AppConfig, string, error) {
	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, "", err
	}
	realpath = filepath.Clean(realpath)

	loadDotEnv(filepath.Join(filepath.Dir(realpath), ".env"), ".env")

	c := new(AppConfig)
	c.File = realpath

	// 设置默认值
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "set default config failed")
	}

	file, err := os.ReadFile(realpath)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "read config file failed")
	}

	err = yaml.Unmarshal([]byte(os.ExpandEnv(string(file))), c)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "parse config file failed")
	}

	// 再次设置默认值，以填充 YAML 中存在但值为空的字段
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "re-set default config failed")
	}

	return c, realpath, nil
}

// loadDotEnv 加载存在的 .env 文件，已存在的环境变量不会被覆盖
func loadDotEnv(paths ...string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
		}
	}
}

// GetDatabaseConfig 转换为 DAO 层数据库配置
func (c *AppConfig) GetDatabaseConfig() dao.DatabaseConfig {
	return dao.DatabaseConfig{
		Type:            c.Database.Type,
		Path:            c.Database.Path,
		UserName:        c.Database.UserName,
		Password:        c.Database.Password,
		Host:            c.Database.Host,
		Port:            c.Database.Port,
		Name:            c.Database.Name,
		TablePrefix:     c.Database.TablePrefix,
		AutoMigrate:     c.Database.AutoMigrate,
		Charset:         c.Database.Charset,
		ParseTime:       c.Database.ParseTime,
		SSLMode:         c.Database.SSLMode,
		MaxIdleConns:    c.Database.MaxIdleConns,
		MaxOpenConns:    c.Database.MaxOpenConns,
		ConnMaxLifetime: c.Database.ConnMaxLifetime,
		ConnMaxIdleTime: c.Database.ConnMaxIdleTime,
		RunMode:         c.Server.RunMode,
	}
}

// GetMailPoolConfig 获取邮件 Worker Pool 配置
func (c *AppConfig) GetMailPoolConfig() workerpool.Config {
	return workerpool.Config{
		Name:       "mail",
		MaxWorkers: c.App.MailWorkers,
		QueueSize:  c.App.MailQueueSize,
	}
}

// GetZipcodeConfig 获取邮编查询客户端配置
func (c *AppConfig) GetZipcodeConfig() viacep.Config {
	return viacep.Config{
		BaseURL: c.Zipcode.BaseURL,
		Timeout: durationOr(c.Zipcode.Timeout, viacep.DefaultTimeout),
	}
}

// GetMailTimeout 单封邮件发送超时
func (c *AppConfig) GetMailTimeout() time.Duration {
	return durationOr(c.Mail.Timeout, 10*time.Second)
}

// GetStatsInterval 意向统计刷新间隔
func (c *AppConfig) GetStatsInterval() time.Duration {
	return durationOr(c.App.StatsInterval, time.Minute)
}

// GetLimiterFillInterval 限流令牌补充间隔
func (c *AppConfig) GetLimiterFillInterval() time.Duration {
	return durationOr(c.Limiter.FillInterval, time.Second)
}

// GetContextTimeout 请求上下文超时
func (c *AppConfig) GetContextTimeout() time.Duration {
	return time.Duration(c.App.DefaultContextTimeout) * time.Second
}

func durationOr(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	if d, err := util.ParseDuration(s); err == nil && d > 0 {
		return d
	}
	return fallback
}

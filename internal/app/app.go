// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/haierkeys/lead-intention-service/internal/dao"
	"github.com/haierkeys/lead-intention-service/internal/domain"
	"github.com/haierkeys/lead-intention-service/internal/service"
	pkgapp "github.com/haierkeys/lead-intention-service/pkg/app"
	"github.com/haierkeys/lead-intention-service/pkg/code"
	"github.com/haierkeys/lead-intention-service/pkg/mailer"
	"github.com/haierkeys/lead-intention-service/pkg/metrics"
	"github.com/haierkeys/lead-intention-service/pkg/viacep"
	"github.com/haierkeys/lead-intention-service/pkg/workerpool"

	"github.com/gin-gonic/gin/binding"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	// Metrics 服务指标
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry

	// 邮件发送 Worker Pool
	mailPool *workerpool.Pool

	// Repository 层
	LeadRepo      domain.LeadRepository
	IntentionRepo domain.IntentionRepository

	// Service 层
	ZipcodeService   service.ZipcodeService
	LeadService      service.LeadService
	IntentionService service.IntentionService

	// StartTime 容器创建时间
	StartTime time.Time

	// 关闭控制
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// Option customizes NewApp; used by tests to swap outbound clients
// Option 用于替换外部依赖（测试中使用）
type Option func(*options)

type options struct {
	lookup   viacep.Lookuper
	sender   mailer.Sender
	registry *prometheus.Registry
}

// WithLookup replaces the ViaCEP client
func WithLookup(l viacep.Lookuper) Option {
	return func(o *options) { o.lookup = l }
}

// WithSender replaces the mail driver
func WithSender(s mailer.Sender) Option {
	return func(o *options) { o.sender = s }
}

// WithRegistry registers metrics on r instead of a fresh registry
func WithRegistry(r *prometheus.Registry) Option {
	return func(o *options) { o.registry = r }
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// db: 数据库连接（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	a := &App{
		config:     cfg,
		logger:     logger,
		DB:         db,
		StartTime:  time.Now(),
		shutdownCh: make(chan struct{}),
	}

	if err := code.SetGlobalDefaultLang(cfg.App.DefaultLang); err != nil {
		logger.Warn("unsupported default language", zap.String("lang", cfg.App.DefaultLang), zap.Error(err))
	}

	a.Registry = o.registry
	if a.Registry == nil {
		a.Registry = prometheus.NewRegistry()
		a.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	a.Metrics = metrics.New(a.Registry)

	a.Dao = dao.New(db, logger)

	// 初始化 Repository 层
	a.LeadRepo = dao.NewLeadRepository(a.Dao)
	a.IntentionRepo = dao.NewIntentionRepository(a.Dao)

	// 外部依赖：邮编查询与邮件发送
	lookup := o.lookup
	if lookup == nil {
		lookup = viacep.New(cfg.GetZipcodeConfig())
	}

	sender := o.sender
	if sender == nil {
		s, err := mailer.New(context.Background(), cfg.Mail.Config, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to init mailer: %w", err)
		}
		sender = s
	}

	a.mailPool = workerpool.New(cfg.GetMailPoolConfig(), logger)
	dispatcher := mailer.NewDispatcher(sender, a.mailPool, cfg.GetMailTimeout())

	// 创建 ServiceConfig（从 AppConfig 提取 Service 层需要的配置）
	svcConfig := service.ServiceConfig{
		Lead: service.LeadServiceConfig{
			EmailMinLength: cfg.Lead.EmailMinLength,
			WelcomeSubject: cfg.Mail.WelcomeSubject,
		},
	}

	// 初始化 Service 层（依赖注入）
	a.ZipcodeService = service.NewZipcodeService(lookup, a.Metrics)
	a.LeadService = service.NewLeadService(a.LeadRepo, dispatcher, a.Metrics, svcConfig.Lead)
	a.IntentionService = service.NewIntentionService(a.IntentionRepo, a.LeadRepo, a.ZipcodeService)

	logger.Info("App container initialized successfully",
		zap.String("mailDriver", cfg.Mail.Driver),
		zap.Int("mailWorkers", cfg.App.MailWorkers))

	return a, nil
}

// Close 释放应用容器持有的资源
func (a *App) Close() error {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.logger.Info("Database connection closed")
	}
	return nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version 获取版本信息
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// Uptime 容器运行时长
func (a *App) Uptime() time.Duration {
	return time.Since(a.StartTime)
}

// Validator 获取验证器
func (a *App) Validator() pkgapp.ValidatorInterface {
	if binding.Validator == nil {
		return nil
	}
	if v, ok := binding.Validator.(pkgapp.ValidatorInterface); ok {
		return v
	}
	return nil
}

// MailPool 获取邮件 Worker Pool
func (a *App) MailPool() *workerpool.Pool {
	return a.mailPool
}

// DefaultShutdownTimeout 默认关闭超时时间
const DefaultShutdownTimeout = 30 * time.Second

// Shutdown 优雅关闭应用容器
// 按顺序关闭：Mail Worker Pool -> Database
// ctx 用于控制关闭超时，如果为 nil 则使用默认 30 秒超时
func (a *App) Shutdown(ctx context.Context) error {
	var err error
	a.shutdownOnce.Do(func() {
		err = a.shutdown(ctx)
	})
	return err
}

func (a *App) shutdown(ctx context.Context) error {
	a.logger.Info("App container shutting down...")

	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()
	}
	close(a.shutdownCh)

	var errs []error

	// 1. 关闭邮件 Worker Pool（停止接受新任务，等待在途邮件发送完成）
	if a.mailPool != nil {
		a.logger.Info("Shutting down mail worker pool...")
		if err := a.mailPool.Shutdown(ctx); err != nil {
			a.logger.Warn("Mail worker pool shutdown error", zap.Error(err))
			errs = append(errs, fmt.Errorf("mail worker pool shutdown: %w", err))
		}
	}

	// 2. 关闭数据库连接
	if err := a.Close(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		a.logger.Warn("App container shutdown completed with errors",
			zap.Int("errorCount", len(errs)))
		return fmt.Errorf("shutdown completed with %d errors: %v", len(errs), errs)
	}

	a.logger.Info("App container shutdown completed successfully")
	return nil
}

// IsShuttingDown 检查应用是否正在关闭
func (a *App) IsShuttingDown() bool {
	select {
	case <-a.shutdownCh:
		return true
	default:
		return false
	}
}

// ShutdownCh 返回关闭信号通道（用于监听关闭事件）
func (a *App) ShutdownCh() <-chan struct{} {
	return a.shutdownCh
}

// Package dao gorm 仓储实现
package dao

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/haierkeys/gormTracing"
	"github.com/haierkeys/lead-intention-service/internal/model"
	"github.com/haierkeys/lead-intention-service/pkg/fileurl"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	// Type sqlite / mysql / postgres
	Type            string
	Path            string
	UserName        string
	Password        string
	Host            string
	Port            int
	Name            string
	TablePrefix     string
	AutoMigrate     bool
	Charset         string
	ParseTime       bool
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime string
	ConnMaxIdleTime string
	RunMode         string
}

// Dao shares one gorm engine between repositories.
type Dao struct {
	db     *gorm.DB
	logger *zap.Logger
}

func New(db *gorm.DB, lg *zap.Logger) *Dao {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &Dao{db: db, logger: lg}
}

// DB 返回带 context 的会话
func (d *Dao) DB(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx)
}

// Ping 检查数据库连通性
func (d *Dao) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// NewDBEngineWithConfig opens the database, tunes the pool and optionally
// migrates every table.
// NewDBEngineWithConfig 打开数据库连接，配置连接池并按需迁移表
func NewDBEngineWithConfig(c DatabaseConfig, lg *zap.Logger) (*gorm.DB, error) {
	if lg == nil {
		lg = zap.NewNop()
	}

	dialector, err := dialector(c)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Silent
	if c.RunMode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   c.TablePrefix,
			SingularTable: true,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}

	if c.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	}
	if d := parseDuration(c.ConnMaxLifetime, lg); d > 0 {
		sqlDB.SetConnMaxLifetime(d)
	}
	if d := parseDuration(c.ConnMaxIdleTime, lg); d > 0 {
		sqlDB.SetConnMaxIdleTime(d)
	}

	if err := db.Use(&gormTracing.OpentracingPlugin{}); err != nil {
		lg.Warn("gorm tracing plugin not registered", zap.Error(err))
	}

	if c.AutoMigrate {
		if err := model.AutoMigrateAll(db); err != nil {
			return nil, errors.Wrap(err, "auto migrate")
		}
	}

	return db, nil
}

func parseDuration(s string, lg *zap.Logger) time.Duration {
	if s == "" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		lg.Warn("invalid database duration", zap.String("value", s), zap.Error(err))
		return 0
	}
	return d
}

func dialector(c DatabaseConfig) (gorm.Dialector, error) {
	switch strings.ToLower(c.Type) {
	case "mysql":
		charset := c.Charset
		if charset == "" {
			charset = "utf8mb4"
		}
		host := c.Host
		if c.Port > 0 {
			host = fmt.Sprintf("%s:%d", c.Host, c.Port)
		}
		return mysql.Open(fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=%t&loc=Local",
			c.UserName, c.Password, host, c.Name, charset, c.ParseTime,
		)), nil
	case "postgres", "postgresql":
		port := c.Port
		if port == 0 {
			port = 5432
		}
		sslMode := c.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return postgres.Open(fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, port, c.UserName, c.Password, c.Name, sslMode,
		)), nil
	case "sqlite", "":
		if c.Path != ":memory:" && !strings.HasPrefix(c.Path, "file:") {
			if !fileurl.IsExist(c.Path) {
				if err := fileurl.CreatePath(c.Path, os.ModePerm); err != nil {
					return nil, errors.Wrap(err, "create sqlite dir")
				}
			}
		}
		return sqlite.Open(c.Path), nil
	}
	return nil, errors.Errorf("unsupported database type %q", c.Type)
}

// Package mailer sends transactional email through a pluggable driver.
// Package mailer 邮件发送，支持 smtp / ses / log 驱动
package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// 驱动名称
const (
	DriverSMTP = "smtp"
	DriverSES  = "ses"
	DriverLog  = "log"
)

// DefaultFromName display name used in the From header
const DefaultFromName = "Leads API"

// ErrEmptyRecipient 收件人为空
var ErrEmptyRecipient = errors.New("mailer: empty recipient")

// Message 单封邮件
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers one message per call.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// From 发件人
type From struct {
	Name    string `yaml:"name" default:"Leads API"`
	Address string `yaml:"address" default:"no-reply@leads.local"`
}

// Header renders `"Name" <address>`.
func (f From) Header() string {
	return fmt.Sprintf("%q <%s>", f.displayName(), f.Address)
}

func (f From) displayName() string {
	if f.Name == "" {
		return DefaultFromName
	}
	return f.Name
}

// Config 邮件配置
type Config struct {
	Driver string     `yaml:"driver" default:"log"`
	From   From       `yaml:"from"`
	SMTP   SMTPConfig `yaml:"smtp"`
	SES    SESConfig  `yaml:"ses"`
}

// New builds the Sender selected by cfg.Driver.
// New 根据配置创建发送驱动
func New(ctx context.Context, cfg Config, logger *zap.Logger) (Sender, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverSMTP:
		return NewSMTPSender(cfg.SMTP, cfg.From), nil
	case DriverSES:
		return NewSESSender(ctx, cfg.SES, cfg.From)
	case DriverLog, "":
		return NewLogSender(logger, cfg.From), nil
	default:
		return nil, errors.Errorf("mailer: unknown driver %q", cfg.Driver)
	}
}

func validate(msg *Message) error {
	if msg == nil || strings.TrimSpace(msg.To) == "" {
		return ErrEmptyRecipient
	}
	return nil
}

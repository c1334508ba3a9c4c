package mailer

import (
	"context"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// SMTPConfig SMTP 服务器配置
type SMTPConfig struct {
	Host     string `yaml:"host" default:"localhost"`
	Port     int    `yaml:"port" default:"587"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSL      bool   `yaml:"ssl"`
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender 使用 gomail 通过 SMTP 发送
type SMTPSender struct {
	from   From
	dialer dialer
}

var _ Sender = (*SMTPSender)(nil)

func NewSMTPSender(cfg SMTPConfig, from From) *SMTPSender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.SSL
	return &SMTPSender{from: from, dialer: d}
}

func (s *SMTPSender) buildMessage(msg *Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.from.Address, s.from.displayName()))
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	return m
}

// Send gomail has no context support; the dial runs in a goroutine so the
// caller can give up when ctx expires.
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	if err := validate(msg); err != nil {
		return err
	}

	m := s.buildMessage(msg)
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "mailer: smtp send")
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "mailer: smtp send")
	}
}


package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/haierkeys/lead-intention-service/pkg/code"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadConfig_Defaults(t *testing.T) {
	p := writeConfig(t, "server:\n  run-mode: debug\n")

	cfg, realpath, err := LoadConfig(p)
	require.NoError(t, err)

	assert.Equal(t, p, realpath)
	assert.Equal(t, "debug", cfg.Server.RunMode)
	assert.Equal(t, ":3333", cfg.Server.HttpPort)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, 20, cfg.Lead.EmailMinLength)
	assert.Equal(t, "en", cfg.App.DefaultLang)
	assert.Equal(t, "log", cfg.Mail.Driver)
	assert.Equal(t, "Leads API", cfg.Mail.From.Name)
	assert.Equal(t, "Bem-vindo!", cfg.Mail.WelcomeSubject)
	assert.Equal(t, "X-Trace-ID", cfg.Tracer.Header)
	assert.Equal(t, 5*time.Second, cfg.GetZipcodeConfig().Timeout)
	assert.Equal(t, "https://viacep.com.br", cfg.GetZipcodeConfig().BaseURL)
	assert.Equal(t, 10*time.Second, cfg.GetMailTimeout())
	assert.Equal(t, time.Minute, cfg.GetStatsInterval())
}

func TestLoadConfig_Overrides(t *testing.T) {
	p := writeConfig(t, `
lead:
  email-min-length: 6
zipcode:
  base-url: http://localhost:8089
  timeout: 2s
mail:
  driver: smtp
  welcome-subject: Olá
  smtp:
    host: smtp.example.com
    port: 465
    ssl: true
  from:
    address: leads@example.com
app:
  mail-workers: 2
`)

	cfg, _, err := LoadConfig(p)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Lead.EmailMinLength)
	assert.Equal(t, "http://localhost:8089", cfg.Zipcode.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.GetZipcodeConfig().Timeout)
	assert.Equal(t, "smtp", cfg.Mail.Driver)
	assert.Equal(t, "Olá", cfg.Mail.WelcomeSubject)
	assert.Equal(t, "smtp.example.com", cfg.Mail.SMTP.Host)
	assert.Equal(t, 465, cfg.Mail.SMTP.Port)
	assert.True(t, cfg.Mail.SMTP.SSL)
	assert.Equal(t, "leads@example.com", cfg.Mail.From.Address)
	assert.Equal(t, "Leads API", cfg.Mail.From.Name)

	pool := cfg.GetMailPoolConfig()
	assert.Equal(t, 2, pool.MaxWorkers)
	assert.Equal(t, 64, pool.QueueSize)
}

func TestLoadConfig_ExpandsEnv(t *testing.T) {
	t.Setenv("LEAD_TEST_SMTP_PASSWORD", "s3cret")
	p := writeConfig(t, "mail:\n  smtp:\n    password: ${LEAD_TEST_SMTP_PASSWORD}\n")

	cfg, _, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Mail.SMTP.Password)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LEAD_TEST_DB_NAME=leads\n"), 0o644))
	p := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("database:\n  name: ${LEAD_TEST_DB_NAME}\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("LEAD_TEST_DB_NAME") })

	cfg, _, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "leads", cfg.Database.Name)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	p := writeConfig(t, "server: [unterminated\n")
	_, _, err = LoadConfig(p)
	assert.Error(t, err)
}

func TestDurationOr(t *testing.T) {
	assert.Equal(t, 3*time.Second, durationOr("3s", time.Second))
	assert.Equal(t, time.Second, durationOr("", time.Second))
	assert.Equal(t, time.Second, durationOr("bogus", time.Second))
}

func TestNewApp(t *testing.T) {
	_, err := NewApp(nil, zap.NewNop(), nil)
	assert.Error(t, err)

	p := writeConfig(t, "server:\n  run-mode: test\n")
	cfg, _, err := LoadConfig(p)
	require.NoError(t, err)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "app.db")), &gorm.Config{})
	require.NoError(t, err)

	a, err := NewApp(cfg, zap.NewNop(), db)
	require.NoError(t, err)

	assert.NotNil(t, a.LeadService)
	assert.NotNil(t, a.IntentionService)
	assert.NotNil(t, a.ZipcodeService)
	assert.NotNil(t, a.Metrics)
	assert.Equal(t, Version, a.Version().Version)
	assert.False(t, a.IsShuttingDown())

	require.NoError(t, a.Shutdown(context.Background()))
	assert.True(t, a.IsShuttingDown())
	assert.NoError(t, a.Shutdown(context.Background()))
}

func TestNewApp_DefaultLang(t *testing.T) {
	t.Cleanup(func() { _ = code.SetGlobalDefaultLang(code.FALLBACK_LNG) })

	p := writeConfig(t, "server:\n  run-mode: test\napp:\n  default-lang: pt_br\n")
	cfg, _, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "pt_br", cfg.App.DefaultLang)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "app.db")), &gorm.Config{})
	require.NoError(t, err)

	a, err := NewApp(cfg, zap.NewNop(), db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Shutdown(context.Background()) })

	assert.Equal(t, "pt_br", code.GetGlobalDefaultLang())
	assert.Equal(t, "CEP inválido", code.ErrorZipcodeInvalid.Msg())
}

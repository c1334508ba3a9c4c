// Package service implements the business logic layer
// Package service 实现业务逻辑层
package service

// 线索字段长度限制
const (
	LeadNameMinLength     = 3
	LeadNameMaxLength     = 100
	LeadEmailMaxLength    = 100
	DefaultEmailMinLength = 20
	DefaultWelcomeSubject = "Bem-vindo!"
)

// ServiceConfig service layer configuration
// ServiceConfig 服务层配置
type ServiceConfig struct {
	Lead LeadServiceConfig // Lead related config // 线索相关配置
}

// LeadServiceConfig lead service configuration
// LeadServiceConfig 线索服务配置
type LeadServiceConfig struct {
	EmailMinLength int    // Minimum email length, inclusive // 邮箱最小长度（包含）
	WelcomeSubject string // Welcome email subject // 欢迎邮件主题
}

func (c LeadServiceConfig) withDefaults() LeadServiceConfig {
	if c.EmailMinLength <= 0 {
		c.EmailMinLength = DefaultEmailMinLength
	}
	if c.WelcomeSubject == "" {
		c.WelcomeSubject = DefaultWelcomeSubject
	}
	return c
}

package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/haierkeys/lead-intention-service/internal/domain"
	"github.com/haierkeys/lead-intention-service/internal/dto"
	"github.com/haierkeys/lead-intention-service/pkg/code"
	"github.com/haierkeys/lead-intention-service/pkg/mailer"
	"github.com/haierkeys/lead-intention-service/pkg/metrics"
	"github.com/haierkeys/lead-intention-service/pkg/timex"
	"github.com/haierkeys/lead-intention-service/pkg/util"
	"gorm.io/gorm"
)

// LeadService 线索业务服务接口
type LeadService interface {
	// Create validates, stores the lead and sends one welcome email.
	Create(ctx context.Context, params *dto.LeadCreateRequest) (*dto.LeadDTO, error)
}

type leadService struct {
	leadRepo domain.LeadRepository
	sender   mailer.Sender
	metrics  *metrics.Metrics
	config   LeadServiceConfig
}

func NewLeadService(leadRepo domain.LeadRepository, sender mailer.Sender, m *metrics.Metrics, cfg LeadServiceConfig) LeadService {
	return &leadService{
		leadRepo: leadRepo,
		sender:   sender,
		metrics:  m,
		config:   cfg.withDefaults(),
	}
}

func leadToDTO(l *domain.Lead) *dto.LeadDTO {
	if l == nil {
		return nil
	}
	return &dto.LeadDTO{
		ID:        l.ID,
		Name:      l.Name,
		Email:     l.Email,
		CreatedAt: timex.Time(l.CreatedAt),
		UpdatedAt: timex.Ptr(l.UpdatedAt),
		DeletedAt: timex.Ptr(l.DeletedAt),
	}
}

func (s *leadService) validate(params *dto.LeadCreateRequest) error {
	if params == nil || params.Name == "" || params.Email == "" {
		return code.ErrorLeadFieldsRequired
	}
	if n := utf8.RuneCountInString(params.Name); n < LeadNameMinLength || n > LeadNameMaxLength {
		return code.ErrorLeadNameLength
	}
	if n := utf8.RuneCountInString(params.Email); n < s.config.EmailMinLength || n > LeadEmailMaxLength {
		return code.ErrorLeadEmailLength.Clone().WithArgs(s.config.EmailMinLength, LeadEmailMaxLength)
	}
	if !util.IsEmailValid(params.Email) {
		return code.ErrorLeadEmailInvalid
	}
	return nil
}

func (s *leadService) Create(ctx context.Context, params *dto.LeadCreateRequest) (*dto.LeadDTO, error) {
	if err := s.validate(params); err != nil {
		return nil, err
	}

	existing, err := s.leadRepo.GetActiveByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.ErrorDBQuery.Clone().WithDetails(err.Error())
	}
	if existing != nil {
		return nil, code.ErrorLeadEmailAlreadyExists
	}

	lead, err := s.leadRepo.Create(ctx, &domain.Lead{Name: params.Name, Email: params.Email})
	if err != nil {
		return nil, code.ErrorDBCreate.Clone().WithDetails(err.Error())
	}
	if s.metrics != nil {
		s.metrics.LeadsCreated.Inc()
	}

	if err := s.sendWelcome(ctx, lead); err != nil {
		return nil, code.ErrorMailSend.Clone().WithDetails(err.Error())
	}

	return leadToDTO(lead), nil
}

func (s *leadService) sendWelcome(ctx context.Context, lead *domain.Lead) error {
	body, err := renderWelcome(strings.TrimSpace(lead.Name))
	if err != nil {
		return err
	}

	err = s.sender.Send(ctx, &mailer.Message{
		To:      lead.Email,
		Subject: s.config.WelcomeSubject,
		HTML:    body,
	})
	if s.metrics != nil {
		outcome := metrics.OutcomeOK
		if err != nil {
			outcome = metrics.OutcomeError
		}
		s.metrics.MailsSent.WithLabelValues(outcome).Inc()
	}
	return err
}

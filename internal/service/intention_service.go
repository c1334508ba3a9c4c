package service

import (
	"context"
	"errors"

	"github.com/haierkeys/lead-intention-service/internal/domain"
	"github.com/haierkeys/lead-intention-service/internal/dto"
	"github.com/haierkeys/lead-intention-service/pkg/code"
	"github.com/haierkeys/lead-intention-service/pkg/timex"
	"github.com/haierkeys/lead-intention-service/pkg/util"
	"gorm.io/gorm"
)

// IntentionService 运输意向业务服务接口
type IntentionService interface {
	// Create verifies both zip codes and stores an unlinked intention.
	Create(ctx context.Context, params *dto.IntentionCreateRequest) (*dto.IntentionDTO, error)
	// LinkLead attaches an active lead to an unlinked intention.
	LinkLead(ctx context.Context, params *dto.IntentionLinkLeadRequest) (*dto.IntentionDTO, error)
}

type intentionService struct {
	intentionRepo  domain.IntentionRepository
	leadRepo       domain.LeadRepository
	zipcodeService ZipcodeService
}

func NewIntentionService(intentionRepo domain.IntentionRepository, leadRepo domain.LeadRepository, zipcodeSvc ZipcodeService) IntentionService {
	return &intentionService{
		intentionRepo:  intentionRepo,
		leadRepo:       leadRepo,
		zipcodeService: zipcodeSvc,
	}
}

func intentionToDTO(i *domain.Intention) *dto.IntentionDTO {
	if i == nil {
		return nil
	}
	return &dto.IntentionDTO{
		ID:           i.ID,
		ZipcodeStart: i.ZipcodeStart,
		ZipcodeEnd:   i.ZipcodeEnd,
		LeadID:       i.LeadID,
		CreatedAt:    timex.Time(i.CreatedAt),
		UpdatedAt:    timex.Ptr(i.UpdatedAt),
		DeletedAt:    timex.Ptr(i.DeletedAt),
	}
}

func (s *intentionService) Create(ctx context.Context, params *dto.IntentionCreateRequest) (*dto.IntentionDTO, error) {
	if params == nil || params.ZipcodeStart == "" || params.ZipcodeEnd == "" {
		return nil, code.ErrorIntentionZipcodeRequired
	}

	start := util.FormatZipcode(params.ZipcodeStart)
	end := util.FormatZipcode(params.ZipcodeEnd)

	if _, err := s.zipcodeService.Verify(ctx, start); err != nil {
		return nil, err
	}
	if _, err := s.zipcodeService.Verify(ctx, end); err != nil {
		return nil, err
	}

	intention, err := s.intentionRepo.Create(ctx, &domain.Intention{
		ZipcodeStart: start,
		ZipcodeEnd:   end,
	})
	if err != nil {
		return nil, code.ErrorDBCreate.Clone().WithDetails(err.Error())
	}

	return intentionToDTO(intention), nil
}

func (s *intentionService) LinkLead(ctx context.Context, params *dto.IntentionLinkLeadRequest) (*dto.IntentionDTO, error) {
	if params == nil || params.IntentionID == "" {
		return nil, code.ErrorIntentionIDRequired
	}

	intention, err := s.intentionRepo.GetByID(ctx, params.IntentionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorIntentionNotFound
		}
		return nil, code.ErrorDBQuery.Clone().WithDetails(err.Error())
	}
	if intention.IsLinked() {
		return nil, code.ErrorIntentionAlreadyLinked
	}

	if params.LeadID == "" {
		return nil, code.ErrorLeadIDRequired
	}

	lead, err := s.leadRepo.GetByID(ctx, params.LeadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorLeadNotFound
		}
		return nil, code.ErrorDBQuery.Clone().WithDetails(err.Error())
	}
	if !lead.IsActive() {
		return nil, code.ErrorLeadInactive
	}

	updated, err := s.intentionRepo.LinkLead(ctx, intention.ID, lead.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIntentionAlreadyLinked):
			return nil, code.ErrorIntentionAlreadyLinked
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, code.ErrorIntentionNotFound
		}
		return nil, code.ErrorDBUpdate.Clone().WithDetails(err.Error())
	}

	return intentionToDTO(updated), nil
}

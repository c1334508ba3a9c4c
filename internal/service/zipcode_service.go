package service

import (
	"context"
	"errors"

	"github.com/haierkeys/lead-intention-service/internal/domain"
	"github.com/haierkeys/lead-intention-service/pkg/code"
	"github.com/haierkeys/lead-intention-service/pkg/metrics"
	"github.com/haierkeys/lead-intention-service/pkg/util"
	"github.com/haierkeys/lead-intention-service/pkg/viacep"
	pkgerrors "github.com/pkg/errors"
)

// ZipcodeService CEP 校验服务接口
type ZipcodeService interface {
	// Verify formats raw, checks its shape and confirms it with the lookup service.
	Verify(ctx context.Context, raw string) (*domain.Address, error)
}

type zipcodeService struct {
	lookup  viacep.Lookuper
	metrics *metrics.Metrics
}

func NewZipcodeService(lookup viacep.Lookuper, m *metrics.Metrics) ZipcodeService {
	return &zipcodeService{lookup: lookup, metrics: m}
}

func (s *zipcodeService) observe(outcome string) {
	if s.metrics != nil {
		s.metrics.ZipcodeLookups.WithLabelValues(outcome).Inc()
	}
}

func (s *zipcodeService) Verify(ctx context.Context, raw string) (*domain.Address, error) {
	zipcode := util.FormatZipcode(raw)
	if !util.IsValidZipcode(zipcode) {
		return nil, code.ErrorZipcodeInvalid
	}

	addr, err := s.lookup.Lookup(ctx, zipcode)
	switch {
	case err == nil:
		s.observe(metrics.OutcomeOK)
		return toDomainAddress(addr), nil
	case errors.Is(err, viacep.ErrNotFound):
		s.observe(metrics.OutcomeNotFound)
		return nil, code.ErrorZipcodeNotFound.Clone().WithArgs(zipcode)
	case errors.Is(err, viacep.ErrBadStatus):
		s.observe(metrics.OutcomeInvalid)
		return nil, code.ErrorZipcodeInvalid.Clone().WithDetails(err.Error())
	default:
		s.observe(metrics.OutcomeError)
		return nil, pkgerrors.Wrapf(err, "verify zipcode %s", zipcode)
	}
}

func toDomainAddress(a *viacep.Address) *domain.Address {
	if a == nil {
		return nil
	}
	return &domain.Address{
		Zipcode:      a.Cep,
		Street:       a.Logradouro,
		Complement:   a.Complemento,
		Neighborhood: a.Bairro,
		City:         a.Localidade,
		State:        a.Uf,
		IBGE:         a.Ibge,
		GIA:          a.Gia,
		DDD:          a.Ddd,
		SIAFI:        a.Siafi,
	}
}

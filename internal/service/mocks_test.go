package service

import (
	"context"
	"sync"

	"github.com/haierkeys/lead-intention-service/internal/domain"
	"github.com/haierkeys/lead-intention-service/pkg/mailer"
	"github.com/haierkeys/lead-intention-service/pkg/viacep"
	"gorm.io/gorm"
)

type mockLeadRepo struct {
	domain.LeadRepository
	leads     map[string]*domain.Lead
	created   []*domain.Lead
	createErr error
	queryErr  error
}

func newMockLeadRepo(leads ...*domain.Lead) *mockLeadRepo {
	m := &mockLeadRepo{leads: map[string]*domain.Lead{}}
	for _, l := range leads {
		m.leads[l.ID] = l
	}
	return m
}

func (m *mockLeadRepo) Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	l := *lead
	l.ID = "lead-new"
	m.created = append(m.created, &l)
	m.leads[l.ID] = &l
	return &l, nil
}

func (m *mockLeadRepo) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	if l, ok := m.leads[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLeadRepo) GetActiveByEmail(ctx context.Context, email string) (*domain.Lead, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	for _, l := range m.leads {
		if l.Email == email && l.IsActive() {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type mockIntentionRepo struct {
	domain.IntentionRepository
	mu         sync.Mutex
	intentions map[string]*domain.Intention
	created    []*domain.Intention
	linkCalls  int
	linkErr    error
}

func newMockIntentionRepo(items ...*domain.Intention) *mockIntentionRepo {
	m := &mockIntentionRepo{intentions: map[string]*domain.Intention{}}
	for _, i := range items {
		m.intentions[i.ID] = i
	}
	return m
}

func (m *mockIntentionRepo) Create(ctx context.Context, intention *domain.Intention) (*domain.Intention, error) {
	i := *intention
	i.ID = "intention-new"
	m.created = append(m.created, &i)
	return &i, nil
}

func (m *mockIntentionRepo) GetByID(ctx context.Context, id string) (*domain.Intention, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i, ok := m.intentions[id]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// LinkLead mirrors the conditional update of the gorm repository.
func (m *mockIntentionRepo) LinkLead(ctx context.Context, intentionID, leadID string) (*domain.Intention, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.linkCalls++
	if m.linkErr != nil {
		return nil, m.linkErr
	}
	i, ok := m.intentions[intentionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if i.LeadID != nil {
		return nil, domain.ErrIntentionAlreadyLinked
	}
	id := leadID
	i.LeadID = &id
	cp := *i
	return &cp, nil
}

type mockSender struct {
	mu   sync.Mutex
	sent []*mailer.Message
	err  error
}

func (m *mockSender) Send(ctx context.Context, msg *mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return m.err
}

type mockLookup struct {
	calls   []string
	results map[string]*viacep.Address
	errs    map[string]error
}

func (m *mockLookup) Lookup(ctx context.Context, zipcode string) (*viacep.Address, error) {
	m.calls = append(m.calls, zipcode)
	if err, ok := m.errs[zipcode]; ok {
		return nil, err
	}
	if a, ok := m.results[zipcode]; ok {
		return a, nil
	}
	return &viacep.Address{Cep: zipcode}, nil
}

type mockZipcodeService struct {
	calls []string
	fail  map[string]error
}

func (m *mockZipcodeService) Verify(ctx context.Context, raw string) (*domain.Address, error) {
	m.calls = append(m.calls, raw)
	if err, ok := m.fail[raw]; ok {
		return nil, err
	}
	return &domain.Address{Zipcode: raw}, nil
}

package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/haierkeys/lead-intention-service/internal/domain"
	"github.com/haierkeys/lead-intention-service/internal/model"
	"github.com/jinzhu/copier"
)

type leadRepository struct {
	*Dao
}

var _ domain.LeadRepository = (*leadRepository)(nil)

func NewLeadRepository(d *Dao) domain.LeadRepository {
	return &leadRepository{Dao: d}
}

func (r *leadRepository) toDomain(m *model.Lead) *domain.Lead {
	if m == nil {
		return nil
	}
	l := &domain.Lead{}
	_ = copier.Copy(l, m)
	return l
}

func (r *leadRepository) Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	m := &model.Lead{
		ID:        uuid.NewString(),
		Name:      lead.Name,
		Email:     lead.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.DB(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

func (r *leadRepository) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	var m model.Lead
	if err := r.DB(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *leadRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.Lead, error) {
	var m model.Lead
	err := r.DB(ctx).
		Where("email = ? AND deleted_at IS NULL", email).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

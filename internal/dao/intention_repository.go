package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/haierkeys/lead-intention-service/internal/domain"
	"github.com/haierkeys/lead-intention-service/internal/model"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type intentionRepository struct {
	*Dao
}

var _ domain.IntentionRepository = (*intentionRepository)(nil)

func NewIntentionRepository(d *Dao) domain.IntentionRepository {
	return &intentionRepository{Dao: d}
}

func (r *intentionRepository) toDomain(m *model.Intention) *domain.Intention {
	if m == nil {
		return nil
	}
	i := &domain.Intention{}
	_ = copier.Copy(i, m)
	return i
}

func (r *intentionRepository) Create(ctx context.Context, intention *domain.Intention) (*domain.Intention, error) {
	m := &model.Intention{
		ID:           uuid.NewString(),
		ZipcodeStart: intention.ZipcodeStart,
		ZipcodeEnd:   intention.ZipcodeEnd,
		CreatedAt:    time.Now().UTC(),
	}
	if err := r.DB(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

func (r *intentionRepository) GetByID(ctx context.Context, id string) (*domain.Intention, error) {
	var m model.Intention
	if err := r.DB(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// LinkLead 条件更新：仅当 lead_id 为空时写入
func (r *intentionRepository) LinkLead(ctx context.Context, intentionID, leadID string) (*domain.Intention, error) {
	now := time.Now().UTC()
	res := r.DB(ctx).Model(&model.Intention{}).
		Where("id = ? AND lead_id IS NULL", intentionID).
		Updates(map[string]interface{}{
			"lead_id":    leadID,
			"updated_at": now,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		// Either the row is gone or another request linked it first.
		if _, err := r.GetByID(ctx, intentionID); err != nil {
			return nil, err
		}
		return nil, domain.ErrIntentionAlreadyLinked
	}

	return r.GetByID(ctx, intentionID)
}

func (r *intentionRepository) CountByLinkState(ctx context.Context) (linked, unlinked int64, err error) {
	db := r.DB(ctx).Model(&model.Intention{}).Where("deleted_at IS NULL")
	if err = db.Session(&gorm.Session{}).Where("lead_id IS NOT NULL").Count(&linked).Error; err != nil {
		return 0, 0, err
	}
	if err = db.Session(&gorm.Session{}).Where("lead_id IS NULL").Count(&unlinked).Error; err != nil {
		return 0, 0, err
	}
	return linked, unlinked, nil
}

// Package domain 定义领域模型和接口
package domain

import "context"

// LeadRepository 线索仓储接口
// 未找到时返回 gorm.ErrRecordNotFound
type LeadRepository interface {
	// Create 创建线索，ID 与创建时间由仓储生成
	Create(ctx context.Context, lead *Lead) (*Lead, error)

	// GetByID 根据ID获取线索（包含已软删除）
	GetByID(ctx context.Context, id string) (*Lead, error)

	// GetActiveByEmail 根据邮箱获取未删除的线索
	GetActiveByEmail(ctx context.Context, email string) (*Lead, error)
}

// IntentionRepository 运输意向仓储接口
type IntentionRepository interface {
	// Create 创建意向，lead_id 为空
	Create(ctx context.Context, intention *Intention) (*Intention, error)

	// GetByID 根据ID获取意向
	GetByID(ctx context.Context, id string) (*Intention, error)

	// LinkLead sets lead_id only when it is still null.
	// Returns ErrIntentionAlreadyLinked when no unlinked row matched.
	LinkLead(ctx context.Context, intentionID, leadID string) (*Intention, error)

	// CountByLinkState 统计已关联/未关联数量
	CountByLinkState(ctx context.Context) (linked, unlinked int64, err error)
}

package domain

import (
	"errors"
	"time"
)

// ErrIntentionAlreadyLinked is returned by the store when the conditional
// link update matched no unlinked row.
// ErrIntentionAlreadyLinked 条件更新未命中未关联的记录
var ErrIntentionAlreadyLinked = errors.New("intention already linked to a lead")

// Intention freight request between two zip codes. It moves from unlinked to
// linked exactly once.
// Intention 运输意向领域模型，只能从未关联变为已关联一次
type Intention struct {
	ID           string
	ZipcodeStart string
	ZipcodeEnd   string
	LeadID       *string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
}

// IsLinked 是否已关联线索
func (i *Intention) IsLinked() bool {
	return i.LeadID != nil
}

package domain

import "time"

// Lead 销售线索领域模型
type Lead struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// IsActive 线索未被软删除
func (l *Lead) IsActive() bool {
	return l.DeletedAt == nil
}

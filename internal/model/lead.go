package model

import "time"

const TableNameLead = "lead"

// Lead mapped to table <lead>
type Lead struct {
	ID        string     `gorm:"column:id;primaryKey;type:varchar(36)" json:"id" form:"id"`
	Name      string     `gorm:"column:name;type:varchar(100);not null" json:"name" form:"name"`
	Email     string     `gorm:"column:email;type:varchar(100);not null;index:idx_lead_email" json:"email" form:"email"`
	CreatedAt time.Time  `gorm:"column:created_at;not null;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
	DeletedAt *time.Time `gorm:"column:deleted_at;index:idx_lead_deleted_at" json:"deletedAt" form:"deletedAt"`
}

// TableName Lead's table name
func (*Lead) TableName() string {
	return TableNameLead
}

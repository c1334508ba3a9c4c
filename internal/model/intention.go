package model

import "time"

const TableNameIntention = "intention"

// Intention mapped to table <intention>
type Intention struct {
	ID           string     `gorm:"column:id;primaryKey;type:varchar(36)" json:"id" form:"id"`
	ZipcodeStart string     `gorm:"column:zipcode_start;type:char(8);not null" json:"zipcodeStart" form:"zipcodeStart"`
	ZipcodeEnd   string     `gorm:"column:zipcode_end;type:char(8);not null" json:"zipcodeEnd" form:"zipcodeEnd"`
	LeadID       *string    `gorm:"column:lead_id;type:varchar(36);index:idx_intention_lead_id" json:"leadId" form:"leadId"`
	CreatedAt    time.Time  `gorm:"column:created_at;not null;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt    *time.Time `gorm:"column:updated_at;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
	DeletedAt    *time.Time `gorm:"column:deleted_at" json:"deletedAt" form:"deletedAt"`
}

// TableName Intention's table name
func (*Intention) TableName() string {
	return TableNameIntention
}

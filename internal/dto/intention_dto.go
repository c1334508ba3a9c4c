package dto

import "github.com/haierkeys/lead-intention-service/pkg/timex"

// IntentionCreateRequest Freight intention request parameters
// 运输意向创建请求参数
type IntentionCreateRequest struct {
	ZipcodeStart string `json:"zipcode_start" form:"zipcode_start" binding:"omitempty,zipcode" example:"18020-000"` // Origin CEP // 起点 CEP
	ZipcodeEnd   string `json:"zipcode_end" form:"zipcode_end" binding:"omitempty,zipcode" example:"01001-000"`     // Destination CEP // 终点 CEP
}

// IntentionLinkLeadRequest links an existing lead to an intention.
// IntentionID comes from the path.
// IntentionLinkLeadRequest 关联线索请求参数，IntentionID 来自路径
type IntentionLinkLeadRequest struct {
	IntentionID string `json:"-" uri:"intention_id"`
	LeadID      string `json:"lead_id" form:"lead_id" example:"6f1c1f5e-2b8a-4d5e-9b1e-0c7f3a4d2e11"`
}

// ---------------- DTO / Response ----------------

// IntentionDTO Freight intention data transfer object
// IntentionDTO 运输意向数据传输对象
type IntentionDTO struct {
	ID           string      `json:"id"`
	ZipcodeStart string      `json:"zipcode_start"`
	ZipcodeEnd   string      `json:"zipcode_end"`
	LeadID       *string     `json:"lead_id"`
	CreatedAt    timex.Time  `json:"created_at"`
	UpdatedAt    *timex.Time `json:"updated_at"`
	DeletedAt    *timex.Time `json:"deleted_at"`
}

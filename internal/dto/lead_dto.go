package dto

import "github.com/haierkeys/lead-intention-service/pkg/timex"

// LeadCreateRequest Lead registration request parameters
// 线索注册请求参数
type LeadCreateRequest struct {
	Name  string `json:"name" form:"name" example:"Ana Souza"`              // Lead name // 姓名
	Email string `json:"email" form:"email" example:"ana.souza@example.com"` // Lead email // 邮箱
}

// ---------------- DTO / Response ----------------

// LeadDTO Lead data transfer object
// LeadDTO 线索数据传输对象
type LeadDTO struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	CreatedAt timex.Time  `json:"created_at"`
	UpdatedAt *timex.Time `json:"updated_at"`
	DeletedAt *timex.Time `json:"deleted_at"`
}

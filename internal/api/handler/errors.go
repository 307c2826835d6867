package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"timesheet/backend/internal/service"
	"timesheet/backend/internal/timesheet"
	"timesheet/backend/pkg/response"
)

// handleTimesheetError 工时记录 / 工时表 / 导出共用的业务错误映射
func handleTimesheetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoPermission):
		response.Forbidden(c, response.CodeForbidden, "无权访问该用户的工时数据")
	case errors.Is(err, service.ErrEntryNotFound):
		response.NotFound(c, 12001, "工时记录不存在")
	case errors.Is(err, service.ErrEntryExists):
		response.Conflict(c, 12002, "该日期已有工时记录")
	case errors.Is(err, service.ErrEndBeforeStart):
		response.BadRequest(c, 12003, "结束时间必须晚于开始时间")
	case errors.Is(err, service.ErrBreakTooLong):
		response.BadRequest(c, 12004, "休息时长必须短于工作时段")
	case errors.Is(err, service.ErrInvalidTime):
		response.BadRequest(c, 12005, "时间格式无效，应为 HH:MM")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 12006, "日期格式无效，应为 YYYY-MM-DD")
	case errors.Is(err, service.ErrEntryConflict):
		response.Conflict(c, 12007, "工时记录已被修改，请刷新后重试")
	case errors.Is(err, service.ErrPlaceholderEdit):
		response.BadRequest(c, 12008, "占位记录不可编辑")
	case errors.Is(err, service.ErrInvalidRange):
		response.BadRequest(c, 13001, "日期区间无效：开始日期晚于结束日期或跨度超过 5 年")
	case errors.Is(err, timesheet.ErrUnknownPreset):
		response.BadRequest(c, 13002, "未知的快捷筛选")
	case errors.Is(err, service.ErrExportNoEntries):
		response.NotFound(c, 13101, "所选范围内没有工时记录")
	default:
		response.InternalError(c)
	}
}

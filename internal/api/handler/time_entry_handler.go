package handler

import (
	"github.com/gin-gonic/gin"

	"timesheet/backend/internal/dto"
	"timesheet/backend/internal/service"
	"timesheet/backend/pkg/response"
)

// TimeEntryHandler 工时记录 HTTP 处理器
type TimeEntryHandler struct {
	entrySvc service.TimeEntryService
}

// NewTimeEntryHandler 创建 TimeEntryHandler
func NewTimeEntryHandler(entrySvc service.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{entrySvc: entrySvc}
}

// List 工时记录列表
// GET /api/v1/time-entries
func (h *TimeEntryHandler) List(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.TimeEntryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	list, total, err := h.entrySvc.List(c.Request.Context(), actor, &req)
	if err != nil {
		handleTimesheetError(c, err)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// Get 工时记录详情
// GET /api/v1/time-entries/:id
func (h *TimeEntryHandler) Get(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	result, err := h.entrySvc.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		handleTimesheetError(c, err)
		return
	}
	response.OK(c, result)
}

// Create 新增工时记录
// POST /api/v1/time-entries
func (h *TimeEntryHandler) Create(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	result, err := h.entrySvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		handleTimesheetError(c, err)
		return
	}
	response.Created(c, result)
}

// Update 修改工时记录（乐观锁）
// PUT /api/v1/time-entries/:id
func (h *TimeEntryHandler) Update(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	result, err := h.entrySvc.Update(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		handleTimesheetError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete 删除工时记录
// DELETE /api/v1/time-entries/:id
func (h *TimeEntryHandler) Delete(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	if err := h.entrySvc.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		handleTimesheetError(c, err)
		return
	}
	response.OK(c, nil)
}

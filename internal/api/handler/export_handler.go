package handler

import (
	"github.com/gin-gonic/gin"

	"timesheet/backend/internal/dto"
	"timesheet/backend/internal/service"
	"timesheet/backend/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportTimesheet 导出工时表
// GET /api/v1/export/timesheet?user_id=&start_date=&end_date=&page=&page_size=
func (h *ExportHandler) ExportTimesheet(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	buf, filename, err := h.exportSvc.ExportTimesheet(c.Request.Context(), actor, &req)
	if err != nil {
		handleTimesheetError(c, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	response.Attachment(c, filename, service.XLSXContentType, buf.Bytes())
}

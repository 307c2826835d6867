package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"timesheet/backend/internal/dto"
	"timesheet/backend/internal/model"
	"timesheet/backend/internal/repository"
	"timesheet/backend/internal/timesheet"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoEntries    = errors.New("所选范围内没有工时记录")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// XLSXContentType .xlsx 的 MIME 类型
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportService 导出业务接口
//
// 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response；
// 缺失日期中只有周末补占位行，工作日缺失直接略过。
type ExportService interface {
	// ExportTimesheet 导出工时表为 Excel，返回内容与建议文件名（含 .xlsx）
	ExportTimesheet(ctx context.Context, actor Actor, req *dto.ExportRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	policy AccessPolicy
	loc    *time.Location
	now    Clock
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, loc *time.Location, now Clock, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, loc: loc, now: now, logger: logger}
}

func (s *exportService) ExportTimesheet(ctx context.Context, actor Actor, req *dto.ExportRequest) (*bytes.Buffer, string, error) {
	userID, err := s.policy.ResolveUser(actor, req.UserID, false)
	if err != nil {
		return nil, "", err
	}

	start, err := parseOptionalDate(req.StartDate, s.loc)
	if err != nil {
		return nil, "", err
	}
	end, err := parseOptionalDate(req.EndDate, s.loc)
	if err != nil {
		return nil, "", err
	}
	if err := checkRange(start, end); err != nil {
		return nil, "", err
	}

	// 1. 查询记录
	entries, err := s.repo.TimeEntry.List(ctx, model.TimeEntryFilter{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		s.logger.Error("查询工时记录失败", zap.String("user_id", userID), zap.Error(err))
		return nil, "", err
	}

	// 2. 确定区间：未给出的一端取记录覆盖范围
	r, ok := timesheet.Span(entries)
	if !ok && (start == nil || end == nil) {
		return nil, "", ErrExportNoEntries
	}
	if start != nil {
		r.Start = timesheet.StartOfDay(*start)
	}
	if end != nil {
		r.End = timesheet.EndOfDay(*end)
	}

	// 3. 对齐与汇总，指定页码时只保留该页
	now := s.now()
	complete := timesheet.ReconcileForExport(entries, r)
	if req.Page > 0 {
		complete = paginate(complete, req.GetOffset(), req.GetPageSize())
		entries = complete
	}
	rows := timesheet.BuildRows(complete)
	summary := timesheet.BuildExportSummary(entries, complete, now)

	// 4. 生成 Excel
	buf, err := RenderWorkbook(rows, summary)
	if err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := timesheet.DefaultFilename(now)
	switch {
	case req.Page > 0:
		filename = timesheet.PageFilename(req.Page-1, now)
	case start != nil && end != nil:
		filename = timesheet.RangeFilename(r)
	}

	s.logger.Info("工时表已导出",
		zap.String("user_id", userID),
		zap.Int("rows", len(rows)),
		zap.String("filename", filename),
	)
	return buf, filename + ".xlsx", nil
}

// ═══════════════════════════════════════════════════════════
// RenderWorkbook — 工时表渲染为 .xlsx
// ═══════════════════════════════════════════════════════════
//
// 版式：
//   - 第 1 行表头（蓝底白字），冻结并开启自动筛选
//   - 数据行偶数行浅灰、周末行浅黄，状态列按状态着色
//   - 数据下方空两行后为汇总块（紫色标题合并 A:H）
//   - A4 横向打印，宽度适配一页

const sheetName = "Timesheet"

var exportColumns = []struct {
	header string
	width  float64
}{
	{"Date", 18},
	{"Day of Week", 15},
	{"Start Time", 12},
	{"End Time", 12},
	{"Break Duration", 15},
	{"Total Worked", 15},
	{"Status", 12},
	{"Created Date", 20},
}

// 颜色
const (
	colorHeader     = "#2563EB"
	colorSummary    = "#7C3AED"
	colorEvenRow    = "#F8FAFC"
	colorOddRow     = "#FFFFFF"
	colorWeekend    = "#FEF3C7"
	colorGridBorder = "#E5E7EB"
)

var statusColors = map[timesheet.Status]string{
	timesheet.StatusComplete:   "#10B981",
	timesheet.StatusInProgress: "#F59E0B",
	timesheet.StatusPending:    "#6B7280",
	timesheet.StatusNoEntry:    "#EF4444",
}

// RenderWorkbook 将对齐后的行与汇总写入 Excel
func RenderWorkbook(rows []timesheet.ExportRow, summary timesheet.ExportSummary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	st, err := newExportStyles(f)
	if err != nil {
		return nil, fmt.Errorf("创建样式失败: %w", err)
	}

	// 表头
	header := make([]interface{}, 0, len(exportColumns))
	for i, c := range exportColumns {
		col := colName(i)
		if err := f.SetColWidth(sheetName, col, col, c.width); err != nil {
			return nil, err
		}
		header = append(header, c.header)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCell(1), st.header); err != nil {
		return nil, err
	}
	_ = f.SetRowHeight(sheetName, 1, 25)

	// 数据行
	for i, r := range rows {
		rowNum := i + 2
		values := []interface{}{
			r.Date, r.DayOfWeek, r.StartTime, r.EndTime, r.BreakDuration,
			r.TotalWorked, string(r.Status), r.Created,
		}
		if err := f.SetSheetRow(sheetName, cell("A", rowNum), &values); err != nil {
			return nil, err
		}

		fill := colorOddRow
		if rowNum%2 == 0 {
			fill = colorEvenRow
		}
		if r.Weekend {
			fill = colorWeekend
		}
		base, mono := st.body[fill], st.mono[fill]
		_ = f.SetCellStyle(sheetName, cell("A", rowNum), cell("B", rowNum), base)
		_ = f.SetCellStyle(sheetName, cell("C", rowNum), cell("F", rowNum), mono)
		_ = f.SetCellStyle(sheetName, cell("G", rowNum), cell("G", rowNum), st.status[r.Status])
		_ = f.SetCellStyle(sheetName, cell("H", rowNum), cell("H", rowNum), base)
		_ = f.SetRowHeight(sheetName, rowNum, 20)
	}

	// 汇总块
	row := len(rows) + 4
	_ = f.SetCellValue(sheetName, cell("A", row), "SUMMARY REPORT")
	if err := f.MergeCell(sheetName, cell("A", row), lastCell(row)); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(sheetName, cell("A", row), lastCell(row), st.summaryHeader)

	for _, item := range summaryItems(summary) {
		row++
		_ = f.SetCellValue(sheetName, cell("A", row), item[0])
		_ = f.SetCellValue(sheetName, cell("B", row), item[1])
		_ = f.SetCellStyle(sheetName, cell("A", row), cell("A", row), st.summaryLabel)
		_ = f.SetCellStyle(sheetName, cell("B", row), cell("B", row), st.summaryValue)
	}

	// 冻结表头、自动筛选、打印设置
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}
	if err := f.AutoFilter(sheetName, "A1:"+lastCell(1), nil); err != nil {
		return nil, err
	}
	paper, orientation, fitWidth, fitHeight, fit := 9, "landscape", 1, 0, true
	if err := f.SetPageLayout(sheetName, &excelize.PageLayoutOptions{
		Size:        &paper,
		Orientation: &orientation,
		FitToWidth:  &fitWidth,
		FitToHeight: &fitHeight,
	}); err != nil {
		return nil, err
	}
	if err := f.SetSheetProps(sheetName, &excelize.SheetPropsOptions{FitToPage: &fit}); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

// summaryItems 汇总块的标签与取值
func summaryItems(s timesheet.ExportSummary) [][2]string {
	return [][2]string{
		{"Total Entries", fmt.Sprint(s.TotalEntries)},
		{"Total Hours Worked", s.TotalWorked},
		{"Average Hours/Day", s.AverageHoursPerDay + " hours"},
		{"Complete Days", fmt.Sprint(s.StatusCounts[timesheet.StatusComplete])},
		{"In Progress Days", fmt.Sprint(s.StatusCounts[timesheet.StatusInProgress])},
		{"Pending Days", fmt.Sprint(s.StatusCounts[timesheet.StatusPending])},
		{"Export Date", s.ExportDate},
	}
}

type exportStyles struct {
	header        int
	body          map[string]int // 按底色
	mono          map[string]int // 时间列，按底色
	status        map[timesheet.Status]int
	summaryHeader int
	summaryLabel  int
	summaryValue  int
}

func newExportStyles(f *excelize.File) (*exportStyles, error) {
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	border := func(color string) []excelize.Border {
		return []excelize.Border{
			{Type: "left", Color: color, Style: 1},
			{Type: "top", Color: color, Style: 1},
			{Type: "right", Color: color, Style: 1},
			{Type: "bottom", Color: color, Style: 1},
		}
	}
	solid := func(color string) excelize.Fill {
		return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
	}

	st := &exportStyles{
		body:   make(map[string]int),
		mono:   make(map[string]int),
		status: make(map[timesheet.Status]int),
	}

	var err error
	if st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "#FFFFFF"},
		Fill:      solid(colorHeader),
		Alignment: center,
		Border:    border("#000000"),
	}); err != nil {
		return nil, err
	}

	for _, fill := range []string{colorOddRow, colorEvenRow, colorWeekend} {
		if st.body[fill], err = f.NewStyle(&excelize.Style{
			Fill:      solid(fill),
			Alignment: center,
			Border:    border(colorGridBorder),
		}); err != nil {
			return nil, err
		}
		if st.mono[fill], err = f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Family: "Consolas", Size: 10},
			Fill:      solid(fill),
			Alignment: center,
			Border:    border(colorGridBorder),
		}); err != nil {
			return nil, err
		}
	}

	for status, color := range statusColors {
		if st.status[status], err = f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
			Fill:      solid(color),
			Alignment: center,
			Border:    border(colorGridBorder),
		}); err != nil {
			return nil, err
		}
	}

	if st.summaryHeader, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "#FFFFFF"},
		Fill: solid(colorSummary),
	}); err != nil {
		return nil, err
	}
	if st.summaryLabel, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	}); err != nil {
		return nil, err
	}
	if st.summaryValue, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: colorHeader},
	}); err != nil {
		return nil, err
	}
	return st, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func lastCell(row int) string {
	return cell(colName(len(exportColumns)-1), row)
}

package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"timesheet/backend/internal/dto"
	"timesheet/backend/internal/model"
	"timesheet/backend/internal/repository"
	"timesheet/backend/internal/timesheet"
	"timesheet/backend/pkg/response"
)

// TimesheetService 工时表视图业务接口
type TimesheetService interface {
	// View 对齐日期区间后的表格视图，两端日期都给出时缺失日期补占位行
	View(ctx context.Context, actor Actor, req *dto.TimesheetViewRequest) (*dto.TimesheetViewResponse, error)
	// Summaries 今日 / 本周 / 本月 / 近 30 天汇总卡片
	Summaries(ctx context.Context, actor Actor, userID string) (*dto.SummariesResponse, error)
}

type timesheetService struct {
	repo   *repository.Repository
	policy AccessPolicy
	loc    *time.Location
	now    Clock
	logger *zap.Logger
}

// NewTimesheetService 创建 TimesheetService 实例
func NewTimesheetService(repo *repository.Repository, loc *time.Location, now Clock, logger *zap.Logger) TimesheetService {
	return &timesheetService{repo: repo, loc: loc, now: now, logger: logger}
}

func (s *timesheetService) View(ctx context.Context, actor Actor, req *dto.TimesheetViewRequest) (*dto.TimesheetViewResponse, error) {
	userID, err := s.policy.ResolveUser(actor, req.UserID, false)
	if err != nil {
		return nil, err
	}

	start, end, err := s.bounds(req)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.TimeEntry.List(ctx, model.TimeEntryFilter{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		s.logger.Error("查询工时记录失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	resp := &dto.TimesheetViewResponse{}
	seq := entries
	if start != nil && end != nil {
		r := timesheet.NewDateRange(*start, *end)
		seq = timesheet.ReconcileForTable(entries, r)
		resp.StartDate = start.Format(timesheet.DateLayout)
		resp.EndDate = end.Format(timesheet.DateLayout)
	}
	timesheet.SortByDate(seq, req.Sort == "desc")

	resp.Summary = toSummaryResponse(timesheet.Summarize(seq, nil))

	page := paginate(seq, req.GetOffset(), req.GetPageSize())
	resp.List = make([]dto.TimesheetRow, 0, len(page))
	for i := range page {
		resp.List = append(resp.List, toTimesheetRow(&page[i]))
	}
	resp.Pagination = response.Pagination{
		Page:       req.GetPage(),
		PageSize:   req.GetPageSize(),
		Total:      int64(len(seq)),
		TotalPages: response.TotalPages(int64(len(seq)), req.GetPageSize()),
	}
	return resp, nil
}

// bounds 快捷筛选优先于显式日期
func (s *timesheetService) bounds(req *dto.TimesheetViewRequest) (start, end *time.Time, err error) {
	if req.Preset != "" {
		p, err := timesheet.ParsePreset(req.Preset)
		if err != nil {
			return nil, nil, err
		}
		r := p.Range(s.now())
		return &r.Start, &r.End, nil
	}

	if start, err = parseOptionalDate(req.StartDate, s.loc); err != nil {
		return nil, nil, err
	}
	if end, err = parseOptionalDate(req.EndDate, s.loc); err != nil {
		return nil, nil, err
	}
	if err := checkRange(start, end); err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func (s *timesheetService) Summaries(ctx context.Context, actor Actor, userID string) (*dto.SummariesResponse, error) {
	target, err := s.policy.ResolveUser(actor, userID, false)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.TimeEntry.List(ctx, model.TimeEntryFilter{UserID: target})
	if err != nil {
		s.logger.Error("查询工时记录失败", zap.String("user_id", target), zap.Error(err))
		return nil, err
	}

	d := timesheet.BuildDashboard(entries, s.now())
	return &dto.SummariesResponse{
		Today:      toSummaryResponse(d.Today),
		ThisWeek:   toSummaryResponse(d.ThisWeek),
		ThisMonth:  toSummaryResponse(d.ThisMonth),
		Last30Days: toSummaryResponse(d.Last30Days),
	}, nil
}

func toSummaryResponse(s timesheet.Summary) dto.SummaryResponse {
	return dto.SummaryResponse{
		Entries:       s.Entries,
		WorkedMinutes: s.WorkedMinutes,
		TotalWorked:   s.TotalWorked,
	}
}

// toTimesheetRow 周末行不可操作，占位行只展示日期与状态
func toTimesheetRow(e *model.TimeEntry) dto.TimesheetRow {
	placeholder := timesheet.IsPlaceholder(e)
	weekend := timesheet.IsWeekend(e.Date)
	row := dto.TimesheetRow{
		ID:              e.ID,
		Date:            e.Date.Format(timesheet.DateLayout),
		DayOfWeek:       e.Date.Weekday().String(),
		WorkedTime:      timesheet.CalculateWorkedTime(e.StartTime, e.EndTime, e.BreakDuration),
		Status:          string(timesheet.Classify(e)),
		Weekend:         weekend,
		Placeholder:     placeholder,
		ActionsDisabled: weekend,
	}
	if !placeholder {
		row.StartTime = e.StartTime
		row.EndTime = e.EndTime
		row.BreakDuration = e.BreakDuration
		row.Version = e.Version
	}
	return row
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"timesheet/backend/internal/dto"
)

func setupTestTimeEntryService() (TimeEntryService, *mockTimeEntryRepo) {
	repo, entries, _ := newMockRepository()
	seedJuly(entries)
	return NewTimeEntryService(repo, time.UTC, zap.NewNop()), entries
}

func strPtr(s string) *string { return &s }

// ── Create ──

func TestTimeEntryService_Create_Success(t *testing.T) {
	svc, repo := setupTestTimeEntryService()

	resp, err := svc.Create(context.Background(), employee, &dto.CreateTimeEntryRequest{
		Date:          "2025-07-10",
		StartTime:     "09:00",
		EndTime:       "17:00",
		BreakDuration: "00:30",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if resp.UserID != "user1" {
		t.Errorf("期望 UserID=user1，实际=%s", resp.UserID)
	}
	if resp.WorkedTime != "07:30" {
		t.Errorf("期望工时 07:30，实际=%s", resp.WorkedTime)
	}
	if resp.Status != "In Progress" {
		t.Errorf("期望状态 In Progress，实际=%s", resp.Status)
	}
	if resp.Version != 1 {
		t.Errorf("期望 Version=1，实际=%d", resp.Version)
	}
	if len(repo.entries) != 8 {
		t.Errorf("期望 8 条记录，实际=%d", len(repo.entries))
	}
}

func TestTimeEntryService_Create_Validation(t *testing.T) {
	svc, _ := setupTestTimeEntryService()

	tests := []struct {
		name string
		req  dto.CreateTimeEntryRequest
		want error
	}{
		{"同日已有记录", dto.CreateTimeEntryRequest{Date: "2025-07-01", StartTime: "09:00", EndTime: "17:00", BreakDuration: "00:30"}, ErrEntryExists},
		{"结束早于开始", dto.CreateTimeEntryRequest{Date: "2025-07-10", StartTime: "17:00", EndTime: "09:00", BreakDuration: "00:30"}, ErrEndBeforeStart},
		{"结束等于开始", dto.CreateTimeEntryRequest{Date: "2025-07-10", StartTime: "09:00", EndTime: "09:00", BreakDuration: "00:00"}, ErrEndBeforeStart},
		{"休息过长", dto.CreateTimeEntryRequest{Date: "2025-07-10", StartTime: "09:00", EndTime: "10:00", BreakDuration: "01:00"}, ErrBreakTooLong},
		{"时间格式无效", dto.CreateTimeEntryRequest{Date: "2025-07-10", StartTime: "25:00", EndTime: "26:00", BreakDuration: "00:30"}, ErrInvalidTime},
		{"日期格式无效", dto.CreateTimeEntryRequest{Date: "07/10/2025", StartTime: "09:00", EndTime: "17:00", BreakDuration: "00:30"}, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := svc.Create(context.Background(), employee, &req)
			if !errors.Is(err, tt.want) {
				t.Errorf("期望 %v，实际: %v", tt.want, err)
			}
		})
	}
}

func TestTimeEntryService_Create_ForOtherUser(t *testing.T) {
	svc, _ := setupTestTimeEntryService()
	req := &dto.CreateTimeEntryRequest{
		UserID: "user3", Date: "2025-07-10", StartTime: "09:00", EndTime: "17:00", BreakDuration: "00:30",
	}

	if _, err := svc.Create(context.Background(), employee, req); !errors.Is(err, ErrNoPermission) {
		t.Errorf("员工代他人录入应返回 ErrNoPermission，实际: %v", err)
	}

	resp, err := svc.Create(context.Background(), employer, req)
	if err != nil {
		t.Fatalf("管理员代录应成功: %v", err)
	}
	if resp.UserID != "user3" {
		t.Errorf("期望 UserID=user3，实际=%s", resp.UserID)
	}
}

// ── List / Get ──

func TestTimeEntryService_List(t *testing.T) {
	svc, _ := setupTestTimeEntryService()

	list, total, err := svc.List(context.Background(), employee, &dto.TimeEntryListRequest{Sort: "desc"})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 7 || len(list) != 7 {
		t.Fatalf("期望 7 条，实际 total=%d len=%d", total, len(list))
	}
	if list[0].Date != "2025-07-09" {
		t.Errorf("降序首条应为 2025-07-09，实际=%s", list[0].Date)
	}

	ranged, total, err := svc.List(context.Background(), employee, &dto.TimeEntryListRequest{
		PaginationRequest: dto.PaginationRequest{Page: 1, PageSize: 2},
		StartDate:         "2025-07-02",
		EndDate:           "2025-07-04",
	})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 3 || len(ranged) != 2 {
		t.Errorf("期望 total=3 本页 2 条，实际 total=%d len=%d", total, len(ranged))
	}
	if ranged[0].Date != "2025-07-02" {
		t.Errorf("升序首条应为 2025-07-02，实际=%s", ranged[0].Date)
	}
}

func TestTimeEntryService_List_Errors(t *testing.T) {
	svc, _ := setupTestTimeEntryService()

	_, _, err := svc.List(context.Background(), employee, &dto.TimeEntryListRequest{UserID: "user2"})
	if !errors.Is(err, ErrNoPermission) {
		t.Errorf("期望 ErrNoPermission，实际: %v", err)
	}

	_, _, err = svc.List(context.Background(), employee, &dto.TimeEntryListRequest{StartDate: "2025-07-09", EndDate: "2025-07-01"})
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("期望 ErrInvalidRange，实际: %v", err)
	}
}

func TestTimeEntryService_List_StoreError(t *testing.T) {
	svc, repo := setupTestTimeEntryService()
	storeErr := errors.New("connection reset")
	repo.listErr = storeErr

	if _, _, err := svc.List(context.Background(), employee, &dto.TimeEntryListRequest{}); !errors.Is(err, storeErr) {
		t.Errorf("期望透传存储错误，实际: %v", err)
	}
}

func TestTimeEntryService_Get(t *testing.T) {
	svc, _ := setupTestTimeEntryService()

	resp, err := svc.Get(context.Background(), employee, "a")
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if resp.Status != "Complete" || resp.WorkedTime != "08:00" {
		t.Errorf("期望 Complete/08:00，实际=%s/%s", resp.Status, resp.WorkedTime)
	}

	if _, err := svc.Get(context.Background(), outsider, "a"); !errors.Is(err, ErrNoPermission) {
		t.Errorf("他人记录应返回 ErrNoPermission，实际: %v", err)
	}
	if _, err := svc.Get(context.Background(), employer, "a"); err != nil {
		t.Errorf("管理员应可查看: %v", err)
	}
	if _, err := svc.Get(context.Background(), employee, "missing"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("期望 ErrEntryNotFound，实际: %v", err)
	}
	if _, err := svc.Get(context.Background(), employee, "placeholder-2025-07-05"); !errors.Is(err, ErrPlaceholderEdit) {
		t.Errorf("期望 ErrPlaceholderEdit，实际: %v", err)
	}
}

// ── Update / Delete ──

func TestTimeEntryService_Update(t *testing.T) {
	svc, _ := setupTestTimeEntryService()

	resp, err := svc.Update(context.Background(), employee, "a", &dto.UpdateTimeEntryRequest{
		EndTime: strPtr("18:00"),
		Version: 1,
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if resp.WorkedTime != "08:30" {
		t.Errorf("期望工时 08:30，实际=%s", resp.WorkedTime)
	}
	if resp.Version != 2 {
		t.Errorf("期望 Version=2，实际=%d", resp.Version)
	}

	// 旧版本号再次提交
	_, err = svc.Update(context.Background(), employee, "a", &dto.UpdateTimeEntryRequest{EndTime: strPtr("19:00"), Version: 1})
	if !errors.Is(err, ErrEntryConflict) {
		t.Errorf("期望 ErrEntryConflict，实际: %v", err)
	}
}

func TestTimeEntryService_Update_Errors(t *testing.T) {
	svc, _ := setupTestTimeEntryService()

	_, err := svc.Update(context.Background(), employee, "a", &dto.UpdateTimeEntryRequest{Date: strPtr("2025-07-02"), Version: 1})
	if !errors.Is(err, ErrEntryExists) {
		t.Errorf("移动到已有记录的日期应返回 ErrEntryExists，实际: %v", err)
	}

	_, err = svc.Update(context.Background(), employee, "a", &dto.UpdateTimeEntryRequest{StartTime: strPtr("18:00"), Version: 1})
	if !errors.Is(err, ErrEndBeforeStart) {
		t.Errorf("期望 ErrEndBeforeStart，实际: %v", err)
	}

	_, err = svc.Update(context.Background(), outsider, "a", &dto.UpdateTimeEntryRequest{EndTime: strPtr("18:00"), Version: 1})
	if !errors.Is(err, ErrNoPermission) {
		t.Errorf("期望 ErrNoPermission，实际: %v", err)
	}

	// 同一天内修改日期不触发重复检查
	if _, err := svc.Update(context.Background(), employee, "a", &dto.UpdateTimeEntryRequest{Date: strPtr("2025-07-01"), Version: 1}); err != nil {
		t.Errorf("日期未变化应成功: %v", err)
	}
}

func TestTimeEntryService_Delete(t *testing.T) {
	svc, repo := setupTestTimeEntryService()

	if err := svc.Delete(context.Background(), outsider, "a"); !errors.Is(err, ErrNoPermission) {
		t.Errorf("期望 ErrNoPermission，实际: %v", err)
	}
	if err := svc.Delete(context.Background(), employee, "a"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, ok := repo.entries["a"]; ok {
		t.Error("记录应已删除")
	}
	if err := svc.Delete(context.Background(), employee, "a"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("期望 ErrEntryNotFound，实际: %v", err)
	}
}

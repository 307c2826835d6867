package service

import (
	"context"
	"sort"
	"time"

	"timesheet/backend/internal/model"
	"timesheet/backend/internal/repository"
	pkgerrors "timesheet/backend/pkg/errors"
)

// ── Mock TimeEntryRepository ──

type mockTimeEntryRepo struct {
	entries map[string]*model.TimeEntry
	listErr error // 非 nil 时 List 直接返回该错误
}

func newMockTimeEntryRepo() *mockTimeEntryRepo {
	return &mockTimeEntryRepo{entries: make(map[string]*model.TimeEntry)}
}

func (m *mockTimeEntryRepo) Create(_ context.Context, entry *model.TimeEntry) error {
	if _, ok := m.entries[entry.ID]; ok {
		return pkgerrors.ErrDuplicate
	}
	if entry.Version == 0 {
		entry.Version = 1
	}
	cp := *entry
	m.entries[entry.ID] = &cp
	return nil
}

func (m *mockTimeEntryRepo) GetByID(_ context.Context, id string) (*model.TimeEntry, error) {
	if e, ok := m.entries[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, pkgerrors.ErrNotFound
}

func (m *mockTimeEntryRepo) List(_ context.Context, filter model.TimeEntryFilter) ([]model.TimeEntry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []model.TimeEntry
	for _, e := range m.entries {
		if filter.UserID != "" && e.UserID != filter.UserID {
			continue
		}
		if filter.StartDate != nil && dayKey(e.Date) < dayKey(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && dayKey(e.Date) > dayKey(*filter.EndDate) {
			continue
		}
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return dayKey(result[i].Date) < dayKey(result[j].Date) })
	return result, nil
}

func (m *mockTimeEntryRepo) Update(_ context.Context, entry *model.TimeEntry) error {
	cur, ok := m.entries[entry.ID]
	if !ok {
		return pkgerrors.ErrNotFound
	}
	if cur.Version != entry.Version {
		return pkgerrors.ErrOptimisticLock
	}
	entry.Version++
	cp := *entry
	m.entries[entry.ID] = &cp
	return nil
}

func (m *mockTimeEntryRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.entries[id]; !ok {
		return pkgerrors.ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, pkgerrors.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, pkgerrors.ErrNotFound
}

func (m *mockUserRepo) List(_ context.Context, offset, limit int) ([]model.User, int64, error) {
	var all []model.User
	for _, u := range m.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// ── Mock TokenBlacklist ──

type mockBlacklist struct {
	jtis map[string]time.Duration
}

func newMockBlacklist() *mockBlacklist {
	return &mockBlacklist{jtis: make(map[string]time.Duration)}
}

func (m *mockBlacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	if ttl > 0 {
		m.jtis[jti] = ttl
	}
	return nil
}

func (m *mockBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	_, ok := m.jtis[jti]
	return ok, nil
}

// ── 测试辅助 ──

func newMockRepository() (*repository.Repository, *mockTimeEntryRepo, *mockUserRepo) {
	entries := newMockTimeEntryRepo()
	users := newMockUserRepo()
	return &repository.Repository{TimeEntry: entries, User: users}, entries, users
}

// fixedClock 2025-07-09（周三）12:00 UTC
func fixedClock() time.Time {
	return time.Date(2025, 7, 9, 12, 0, 0, 0, time.UTC)
}

func julyDay(d int) time.Time {
	return time.Date(2025, 7, d, 0, 0, 0, 0, time.UTC)
}

// seedJuly 为 user1 写入 7/1–7/4 与 7/7–7/9 共 7 条记录
func seedJuly(repo *mockTimeEntryRepo) {
	rows := []struct {
		day             int
		start, end, brk string
	}{
		{1, "09:00", "17:30", "00:30"},
		{2, "08:30", "17:00", "00:45"},
		{3, "09:15", "18:00", "01:00"},
		{4, "08:45", "17:15", "00:30"},
		{7, "09:00", "18:30", "01:15"},
		{8, "08:00", "16:30", "00:30"},
		{9, "09:30", "18:00", "01:00"},
	}
	for i, r := range rows {
		_ = repo.Create(context.Background(), &model.TimeEntry{
			ID:            string(rune('a' + i)),
			UserID:        "user1",
			Date:          julyDay(r.day),
			StartTime:     r.start,
			EndTime:       r.end,
			BreakDuration: r.brk,
			VersionedModel: model.VersionedModel{
				BaseModel: model.BaseModel{CreatedAt: julyDay(r.day).Add(18 * time.Hour)},
			},
		})
	}
}

var (
	employee = Actor{UserID: "user1", Role: model.RoleEmployee}
	outsider = Actor{UserID: "user2", Role: model.RoleEmployee}
	employer = Actor{UserID: "admin", Role: model.RoleAdmin}
)

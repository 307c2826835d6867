package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"timesheet/backend/internal/model"
	pkgerrors "timesheet/backend/pkg/errors"
)

// NewMemoryRepository 创建基于内存的 Repository 聚合（开发与测试默认后端）
func NewMemoryRepository() *Repository {
	return &Repository{
		TimeEntry: NewMemoryTimeEntryRepo(),
		User:      NewMemoryUserRepo(),
	}
}

// memoryTimeEntryRepo 读写锁保护的 map，返回值均为副本
type memoryTimeEntryRepo struct {
	mu      sync.RWMutex
	entries map[string]model.TimeEntry
}

// NewMemoryTimeEntryRepo 创建内存版 TimeEntryRepository
func NewMemoryTimeEntryRepo() TimeEntryRepository {
	return &memoryTimeEntryRepo{entries: make(map[string]model.TimeEntry)}
}

func (r *memoryTimeEntryRepo) Create(_ context.Context, entry *model.TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entry.ID]; ok {
		return pkgerrors.ErrDuplicate
	}

	entry.Date = dateOnly(entry.Date)
	entry.InitVersion(time.Now().UTC())
	r.entries[entry.ID] = *entry
	return nil
}

func (r *memoryTimeEntryRepo) GetByID(_ context.Context, id string) (*model.TimeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, pkgerrors.ErrNotFound
	}
	return &e, nil
}

func (r *memoryTimeEntryRepo) List(_ context.Context, filter model.TimeEntryFilter) ([]model.TimeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var from, to time.Time
	if filter.StartDate != nil {
		from = dateOnly(*filter.StartDate)
	}
	if filter.EndDate != nil {
		to = dateOnly(*filter.EndDate)
	}

	out := make([]model.TimeEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if filter.UserID != "" && e.UserID != filter.UserID {
			continue
		}
		if filter.StartDate != nil && e.Date.Before(from) {
			continue
		}
		if filter.EndDate != nil && e.Date.After(to) {
			continue
		}
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memoryTimeEntryRepo) Update(_ context.Context, entry *model.TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.entries[entry.ID]
	if !ok {
		return pkgerrors.ErrNotFound
	}
	if cur.Version != entry.Version {
		return pkgerrors.ErrOptimisticLock
	}

	cur.Date = dateOnly(entry.Date)
	cur.StartTime = entry.StartTime
	cur.EndTime = entry.EndTime
	cur.BreakDuration = entry.BreakDuration
	cur.Bump(time.Now().UTC())
	r.entries[entry.ID] = cur

	*entry = cur
	return nil
}

func (r *memoryTimeEntryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return pkgerrors.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

// memoryUserRepo 内存版 UserRepository，email 唯一
type memoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]model.User
}

// NewMemoryUserRepo 创建内存版 UserRepository
func NewMemoryUserRepo() UserRepository {
	return &memoryUserRepo{users: make(map[string]model.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserID]; ok {
		return pkgerrors.ErrDuplicate
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return pkgerrors.ErrDuplicate
		}
	}

	user.Stamp(time.Now().UTC())
	r.users[user.UserID] = *user
	return nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, pkgerrors.ErrNotFound
	}
	return &u, nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, pkgerrors.ErrNotFound
}

func (r *memoryUserRepo) List(_ context.Context, offset, limit int) ([]model.User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	total := int64(len(all))
	if offset >= len(all) {
		return []model.User{}, total, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], total, nil
}

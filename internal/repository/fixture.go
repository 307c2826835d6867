package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"timesheet/backend/internal/model"
)

//go:embed fixtures/seed.json
var seedJSON []byte

// Fixture 内置样例数据
type Fixture struct {
	Users       []FixtureUser  `json:"users"`
	TimeEntries []FixtureEntry `json:"time_entries"`
}

// FixtureUser 样例用户，密码为明文，导入时哈希
type FixtureUser struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// FixtureEntry 样例工时记录
type FixtureEntry struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	BreakDuration string    `json:"break_duration"`
	CreatedAt     time.Time `json:"created_at"`
}

// LoadFixture 解析内置样例数据
func LoadFixture() (*Fixture, error) {
	var f Fixture
	if err := json.Unmarshal(seedJSON, &f); err != nil {
		return nil, fmt.Errorf("解析样例数据失败: %w", err)
	}
	return &f, nil
}

// Entries 转换为工时记录模型
func (f *Fixture) Entries() ([]model.TimeEntry, error) {
	out := make([]model.TimeEntry, 0, len(f.TimeEntries))
	for _, e := range f.TimeEntries {
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			return nil, fmt.Errorf("样例记录 %s 日期无效: %w", e.ID, err)
		}
		out = append(out, model.TimeEntry{
			ID:            e.ID,
			UserID:        e.UserID,
			Date:          d,
			StartTime:     e.StartTime,
			EndTime:       e.EndTime,
			BreakDuration: e.BreakDuration,
			VersionedModel: model.VersionedModel{
				BaseModel: model.BaseModel{CreatedAt: e.CreatedAt, UpdatedAt: e.CreatedAt},
				Version:   1,
			},
		})
	}
	return out, nil
}

// Seed 用户表为空时导入样例数据；返回是否实际导入
func Seed(ctx context.Context, repo *Repository, logger *zap.Logger) (bool, error) {
	_, total, err := repo.User.List(ctx, 0, 1)
	if err != nil {
		return false, fmt.Errorf("检查用户表失败: %w", err)
	}
	if total > 0 {
		logger.Debug("存储非空，跳过样例数据导入", zap.Int64("users", total))
		return false, nil
	}

	f, err := LoadFixture()
	if err != nil {
		return false, err
	}

	for _, u := range f.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return false, fmt.Errorf("密码哈希失败: %w", err)
		}
		user := &model.User{
			UserID:       u.UserID,
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: string(hash),
			Role:         u.Role,
		}
		if err := repo.User.Create(ctx, user); err != nil {
			return false, fmt.Errorf("导入用户 %s 失败: %w", u.Email, err)
		}
	}

	entries, err := f.Entries()
	if err != nil {
		return false, err
	}
	for i := range entries {
		if err := repo.TimeEntry.Create(ctx, &entries[i]); err != nil {
			return false, fmt.Errorf("导入工时记录 %s 失败: %w", entries[i].ID, err)
		}
	}

	logger.Info("样例数据导入完成",
		zap.Int("users", len(f.Users)),
		zap.Int("time_entries", len(entries)),
	)
	return true, nil
}

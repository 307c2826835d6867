package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"timesheet/backend/internal/model"
	pkgerrors "timesheet/backend/pkg/errors"
)

const (
	sqliteDateLayout = "2006-01-02"
	// 定宽时间戳，保证按字符串排序即按时间排序
	sqliteStampLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// OpenSQLite 打开（必要时创建）SQLite 数据库文件并执行建表
func OpenSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("创建数据目录失败: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("打开 SQLite 失败: %w", err)
	}
	// SQLite 单写者
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("连接 SQLite 失败: %w", err)
	}

	if err := migrateSQLite(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("SQLite 建表失败: %w", err)
	}
	return db, nil
}

func migrateSQLite(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'employee',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS time_entries (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			date TEXT NOT NULL,
			start_time TEXT NOT NULL DEFAULT '',
			end_time TEXT NOT NULL DEFAULT '',
			break_duration TEXT NOT NULL DEFAULT '',
			version INTEGER NOT NULL DEFAULT 1,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_time_entries_user_date ON time_entries (user_id, date)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("执行建表语句失败: %w", err)
		}
	}
	return nil
}

// NewSQLiteRepository 基于 database/sql + modernc.org/sqlite 创建 Repository 聚合
func NewSQLiteRepository(db *sql.DB) *Repository {
	return &Repository{
		TimeEntry: &sqliteTimeEntryRepo{db: db},
		User:      &sqliteUserRepo{db: db},
		close:     db.Close,
	}
}

func isConstraintErr(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	}
	return false
}

func formatStamp(t time.Time) string {
	return t.UTC().Format(sqliteStampLayout)
}

func parseStamp(s string) time.Time {
	t, err := time.Parse(sqliteStampLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ── 工时记录 ──

type sqliteTimeEntryRepo struct {
	db *sql.DB
}

const timeEntryColumns = `id, user_id, date, start_time, end_time, break_duration, version, created_at, updated_at`

func (r *sqliteTimeEntryRepo) Create(ctx context.Context, entry *model.TimeEntry) error {
	entry.Date = dateOnly(entry.Date)
	entry.InitVersion(time.Now().UTC())

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO time_entries (`+timeEntryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.UserID, entry.Date.Format(sqliteDateLayout),
		entry.StartTime, entry.EndTime, entry.BreakDuration, entry.Version,
		formatStamp(entry.CreatedAt), formatStamp(entry.UpdatedAt),
	)
	if err != nil {
		if isConstraintErr(err) {
			return pkgerrors.ErrDuplicate
		}
		return fmt.Errorf("插入工时记录失败: %w", err)
	}
	return nil
}

func (r *sqliteTimeEntryRepo) GetByID(ctx context.Context, id string) (*model.TimeEntry, error) {
	entries, err := r.query(ctx, `SELECT `+timeEntryColumns+` FROM time_entries WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, pkgerrors.ErrNotFound
	}
	return &entries[0], nil
}

func (r *sqliteTimeEntryRepo) List(ctx context.Context, filter model.TimeEntryFilter) ([]model.TimeEntry, error) {
	var where []string
	var args []interface{}
	if filter.UserID != "" {
		where = append(where, "user_id = ?")
		args = append(args, filter.UserID)
	}
	if filter.StartDate != nil {
		where = append(where, "date >= ?")
		args = append(args, dateOnly(*filter.StartDate).Format(sqliteDateLayout))
	}
	if filter.EndDate != nil {
		where = append(where, "date <= ?")
		args = append(args, dateOnly(*filter.EndDate).Format(sqliteDateLayout))
	}

	q := `SELECT ` + timeEntryColumns + ` FROM time_entries`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY date ASC, created_at ASC, id ASC`
	return r.query(ctx, q, args...)
}

func (r *sqliteTimeEntryRepo) Update(ctx context.Context, entry *model.TimeEntry) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE time_entries
		 SET date = ?, start_time = ?, end_time = ?, break_duration = ?, version = version + 1, updated_at = ?
		 WHERE id = ? AND version = ?`,
		dateOnly(entry.Date).Format(sqliteDateLayout), entry.StartTime, entry.EndTime, entry.BreakDuration,
		formatStamp(now), entry.ID, entry.Version,
	)
	if err != nil {
		return fmt.Errorf("更新工时记录失败: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, entry.ID); err != nil {
			return err
		}
		return pkgerrors.ErrOptimisticLock
	}

	entry.Date = dateOnly(entry.Date)
	entry.Bump(now)
	return nil
}

func (r *sqliteTimeEntryRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM time_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("删除工时记录失败: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}

func (r *sqliteTimeEntryRepo) query(ctx context.Context, query string, args ...interface{}) ([]model.TimeEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("查询工时记录失败: %w", err)
	}
	defer rows.Close()

	entries := []model.TimeEntry{}
	for rows.Next() {
		var e model.TimeEntry
		var dateStr, createdStr, updatedStr string
		if err := rows.Scan(
			&e.ID, &e.UserID, &dateStr, &e.StartTime, &e.EndTime, &e.BreakDuration,
			&e.Version, &createdStr, &updatedStr,
		); err != nil {
			return nil, fmt.Errorf("读取工时记录失败: %w", err)
		}
		d, err := time.Parse(sqliteDateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("读取工时记录失败: 记录 %s 的日期 %q 无效: %w", e.ID, dateStr, err)
		}
		e.Date = d
		e.CreatedAt = parseStamp(createdStr)
		e.UpdatedAt = parseStamp(updatedStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ── 用户 ──

type sqliteUserRepo struct {
	db *sql.DB
}

const userColumns = `user_id, name, email, password_hash, role, created_at, updated_at`

func (r *sqliteUserRepo) Create(ctx context.Context, user *model.User) error {
	user.Stamp(time.Now().UTC())

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.UserID, user.Name, user.Email, user.PasswordHash, user.Role,
		formatStamp(user.CreatedAt), formatStamp(user.UpdatedAt),
	)
	if err != nil {
		if isConstraintErr(err) {
			return pkgerrors.ErrDuplicate
		}
		return fmt.Errorf("插入用户失败: %w", err)
	}
	return nil
}

func (r *sqliteUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.first(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = ?`, id)
}

func (r *sqliteUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.first(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

func (r *sqliteUserRepo) first(ctx context.Context, query string, arg interface{}) (*model.User, error) {
	users, err := r.query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, pkgerrors.ErrNotFound
	}
	return &users[0], nil
}

func (r *sqliteUserRepo) List(ctx context.Context, offset, limit int) ([]model.User, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("统计用户失败: %w", err)
	}
	if limit <= 0 {
		limit = -1 // SQLite 中 LIMIT -1 表示不限制
	}
	users, err := r.query(ctx, `SELECT `+userColumns+` FROM users ORDER BY name ASC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *sqliteUserRepo) query(ctx context.Context, query string, args ...interface{}) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		var createdStr, updatedStr string
		if err := rows.Scan(&u.UserID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &createdStr, &updatedStr); err != nil {
			return nil, fmt.Errorf("读取用户失败: %w", err)
		}
		u.CreatedAt = parseStamp(createdStr)
		u.UpdatedAt = parseStamp(updatedStr)
		users = append(users, u)
	}
	return users, rows.Err()
}

package service

import (
	"errors"

	"timesheet/backend/internal/model"
)

// ErrNoPermission 访问他人数据且非管理员
var ErrNoPermission = errors.New("无权访问该用户的工时数据")

// Actor 当前请求的调用者，来自 JWT 声明
type Actor struct {
	UserID string
	Role   string
}

// IsAdmin 是否为管理员（雇主）
func (a Actor) IsAdmin() bool { return a.Role == model.RoleAdmin }

// AccessPolicy 工时数据访问规则：管理员可见全部，其他人仅可见本人
type AccessPolicy struct{}

// CanAccess 调用者能否读写该记录
func (AccessPolicy) CanAccess(actor Actor, entry *model.TimeEntry) bool {
	if entry == nil {
		return false
	}
	return actor.IsAdmin() || entry.UserID == actor.UserID
}

// ResolveUser 确定查询的目标用户。
// requested 为空时默认本人；allowAll 为 true 且调用者为管理员时，空值表示不限用户。
func (AccessPolicy) ResolveUser(actor Actor, requested string, allowAll bool) (string, error) {
	if requested == "" {
		if allowAll && actor.IsAdmin() {
			return "", nil
		}
		return actor.UserID, nil
	}
	if requested != actor.UserID && !actor.IsAdmin() {
		return "", ErrNoPermission
	}
	return requested, nil
}

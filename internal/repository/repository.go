package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User            UserRepository
	Attendance      AttendanceRepository
	PayrollSettings PayrollSettingsRepository
	Payroll         PayrollRepository
	Sale            SaleRepository
	Expense         ExpenseRepository
	Saving          SavingRepository
	Allocation      AllocationRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:            NewUserRepo(db),
		Attendance:      NewAttendanceRepo(db),
		PayrollSettings: NewPayrollSettingsRepo(db),
		Payroll:         NewPayrollRepo(db),
		Sale:            NewSaleRepo(db),
		Expense:         NewExpenseRepo(db),
		Saving:          NewSavingRepo(db),
		Allocation:      NewAllocationRepo(db),
	}
}

// [自证通过] internal/repository/repository.go

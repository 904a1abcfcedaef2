package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"opsledger/backend/internal/dto"
	"opsledger/backend/internal/service"
	"opsledger/backend/pkg/response"
)

// PayrollHandler 工资引擎 HTTP 处理器
type PayrollHandler struct {
	payrollSvc *service.PayrollService
}

// NewPayrollHandler 创建 PayrollHandler
func NewPayrollHandler(payrollSvc *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollSvc: payrollSvc}
}

// GetSettings 查询工资默认设置（管理员）
// GET /api/v1/payroll/settings
func (h *PayrollHandler) GetSettings(c *gin.Context) {
	result, err := h.payrollSvc.GetSettings(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// UpdateSettings 更新工资默认设置（管理员）
// PUT /api/v1/payroll/settings
func (h *PayrollHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.payrollSvc.UpdateSettings(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ProcessSingle 单人工资处理（管理员）
// POST /api/v1/payroll/process
func (h *PayrollHandler) ProcessSingle(c *gin.Context) {
	var req dto.ProcessPayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.payrollSvc.ProcessSingle(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20001, "用户不存在")
		case errors.Is(err, service.ErrPayrollExists):
			response.Conflict(c, 40001, "该员工当月工资记录已存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// ProcessBulk 批量工资处理（管理员）
// POST /api/v1/payroll/process-bulk
func (h *PayrollHandler) ProcessBulk(c *gin.Context) {
	var req dto.BulkProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.payrollSvc.ProcessBulk(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// List 查询工资记录
// GET /api/v1/payroll
func (h *PayrollHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.PayrollListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.payrollSvc.List(c.Request.Context(), userID, role, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// UpdateStatus 更新工资状态（管理员）
// PATCH /api/v1/payroll/:id/status
func (h *PayrollHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdatePayrollStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.payrollSvc.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrPayrollNotFound) {
			response.NotFound(c, 40002, "工资记录不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Delete 删除工资记录（管理员）
// DELETE /api/v1/payroll/:id
func (h *PayrollHandler) Delete(c *gin.Context) {
	if err := h.payrollSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPayrollNotFound) {
			response.NotFound(c, 40002, "工资记录不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// [自证通过] internal/api/handler/payroll_handler.go

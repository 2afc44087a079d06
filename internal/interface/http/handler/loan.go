package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vasujain/booksync/internal/domain/book"
	"github.com/vasujain/booksync/internal/domain/loan"
	"github.com/vasujain/booksync/internal/interface/http/dto"
	apperrors "github.com/vasujain/booksync/pkg/errors"
	"github.com/vasujain/booksync/pkg/metrics"
	"github.com/vasujain/booksync/pkg/response"
)

// LoanHandler 借阅HTTP处理器
type LoanHandler struct {
	loans loan.Service
}

// NewLoanHandler 创建借阅处理器
func NewLoanHandler(loans loan.Service) *LoanHandler {
	return &LoanHandler{loans: loans}
}

// List 借阅列表
// @Summary      借阅列表
// @Tags         借阅
// @Produce      json
// @Param        paginate query bool false "是否分页" default(false)
// @Param        page query int false "页码(从0开始)" default(0)
// @Param        size query int false "每页条数" default(10)
// @Param        sortBy query string false "排序列" default(borrowed_date)
// @Param        sortDirection query string false "排序方向(asc/desc)" default(asc)
// @Success      200 {object} response.Response{data=[]dto.LoanResponse}
// @Router       /api/v1/loans [get]
func (h *LoanHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeBindError, "参数错误: "+err.Error()))
		return
	}

	result, err := h.loans.List(c.Request.Context(), q.Paginate, q.Page, q.Size, q.SortBy, q.SortDirection)
	if err != nil {
		response.Error(c, err)
		return
	}

	data := dto.NewLoanResponses(result.Items)
	if result.Page != nil {
		response.Paginated(c, "Loans retrieved successfully", data, result.Page)
		return
	}
	response.OK(c, "Loans retrieved successfully", data)
}

// Get 借阅详情
// @Summary      借阅详情
// @Tags         借阅
// @Produce      json
// @Param        id path string true "借阅ID(UUID)"
// @Success      200 {object} response.Response{data=dto.LoanResponse}
// @Failure      404 {object} response.Response "借阅记录不存在"
// @Router       /api/v1/loans/{id} [get]
func (h *LoanHandler) Get(c *gin.Context) {
	l, err := h.loans.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Loan retrieved successfully", dto.NewLoanResponse(l))
}

// Create 创建借阅(借出)
// @Summary      创建借阅
// @Description  用户与图书必须存在;无可借副本返回409;借阅创建与副本扣减原子完成
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateLoanRequest true "借阅信息"
// @Success      201 {object} response.Response{data=dto.LoanResponse}
// @Failure      400 {object} response.Response "日期非法"
// @Failure      404 {object} response.Response "用户/图书不存在"
// @Failure      409 {object} response.Response "无可借副本"
// @Router       /api/v1/loans [post]
func (h *LoanHandler) Create(c *gin.Context) {
	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeBindError, "参数错误: "+err.Error()))
		return
	}

	params, err := req.ToParams()
	if err != nil {
		response.Error(c, err)
		return
	}

	start := time.Now()
	l, err := h.loans.Create(c.Request.Context(), params)
	metrics.ObserveDuration(metrics.LoanCreationDuration, start)
	if err != nil {
		if errors.Is(err, book.ErrNoAvailableCopies) {
			metrics.IncCounter(metrics.LoanConflictsTotal)
		}
		response.Error(c, err)
		return
	}

	metrics.IncCounter(metrics.LoansCreatedTotal)
	response.Created(c, "Loan created successfully", dto.NewLoanResponse(l))
}

// Update 借阅状态更新
// @Summary      更新借阅
// @Description  归还(提供returnedDate)或标记逾期(status=overdue);已归还的借阅拒绝任何更新
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Param        id path string true "借阅ID(UUID)"
// @Param        request body dto.UpdateLoanRequest true "更新字段"
// @Success      200 {object} response.Response{data=dto.LoanResponse}
// @Failure      400 {object} response.Response "状态非法"
// @Failure      404 {object} response.Response "借阅记录不存在"
// @Failure      409 {object} response.Response "已归还/非法流转"
// @Router       /api/v1/loans/{id} [put]
func (h *LoanHandler) Update(c *gin.Context) {
	var req dto.UpdateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeBindError, "参数错误: "+err.Error()))
		return
	}

	params, err := req.ToParams()
	if err != nil {
		response.Error(c, err)
		return
	}

	l, err := h.loans.Update(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	if l.IsReturned() && params.ReturnedDate != nil {
		metrics.IncCounter(metrics.LoansReturnedTotal)
	}
	response.OK(c, "Loan updated successfully", dto.NewLoanResponse(l))
}

// Delete 删除借阅
// @Summary      删除借阅
// @Description  行政修正操作,不恢复图书可借副本数
// @Tags         借阅
// @Produce      json
// @Param        id path string true "借阅ID(UUID)"
// @Success      204 "无响应体"
// @Failure      404 {object} response.Response "借阅记录不存在"
// @Router       /api/v1/loans/{id} [delete]
func (h *LoanHandler) Delete(c *gin.Context) {
	if err := h.loans.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

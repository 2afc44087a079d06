package dto

import (
	"github.com/vasujain/booksync/internal/domain/loan"
	apperrors "github.com/vasujain/booksync/pkg/errors"
)

// CreateLoanRequest HTTP借阅创建请求
// 状态不可指定,新借阅固定为active
type CreateLoanRequest struct {
	UserID       string `json:"userId" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	BookID       string `json:"bookId" binding:"required,uuid" example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`
	BorrowedDate string `json:"borrowedDate" binding:"required,datetime=2006-01-02" example:"2024-11-01"`
	DueDate      string `json:"dueDate" binding:"required,datetime=2006-01-02" example:"2024-11-15"`
}

// ToParams 转换为领域层创建参数(解析业务日期)
func (r *CreateLoanRequest) ToParams() (loan.CreateParams, error) {
	borrowed, err := parseDate(r.BorrowedDate)
	if err != nil {
		return loan.CreateParams{}, apperrors.New(apperrors.ErrCodeInvalidDate, "borrowedDate格式错误,应为yyyy-MM-dd")
	}
	due, err := parseDate(r.DueDate)
	if err != nil {
		return loan.CreateParams{}, apperrors.New(apperrors.ErrCodeInvalidDate, "dueDate格式错误,应为yyyy-MM-dd")
	}
	return loan.CreateParams{
		UserID:       r.UserID,
		BookID:       r.BookID,
		BorrowedDate: borrowed,
		DueDate:      due,
	}, nil
}

// UpdateLoanRequest HTTP借阅更新请求
// 两种合法用法:
// 1. 归还: 提供returnedDate(status可省略或为returned)
// 2. 标记逾期: 仅提供status=overdue
type UpdateLoanRequest struct {
	ReturnedDate *string `json:"returnedDate" binding:"omitempty,datetime=2006-01-02" example:"2024-11-10"`
	Status       *string `json:"status" binding:"omitempty,oneof=active returned overdue" example:"returned"`
}

// ToParams 转换为领域层更新参数
func (r *UpdateLoanRequest) ToParams() (loan.UpdateParams, error) {
	p := loan.UpdateParams{Status: r.Status}
	if r.ReturnedDate != nil {
		returned, err := parseDate(*r.ReturnedDate)
		if err != nil {
			return loan.UpdateParams{}, apperrors.New(apperrors.ErrCodeInvalidDate, "returnedDate格式错误,应为yyyy-MM-dd")
		}
		p.ReturnedDate = &returned
	}
	return p, nil
}

// LoanResponse HTTP借阅响应
// returnedDate未归还时为null
type LoanResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	BookID       string  `json:"bookId"`
	BorrowedDate string  `json:"borrowedDate" example:"2024-11-01"`
	DueDate      string  `json:"dueDate" example:"2024-11-15"`
	ReturnedDate *string `json:"returnedDate" example:"2024-11-10"`
	Status       string  `json:"status" example:"active"`
	CreatedAt    string  `json:"createdAt" example:"2024-11-01 10:30:00"`
	UpdatedAt    string  `json:"updatedAt" example:"2024-11-01 10:30:00"`
}

// NewLoanResponse 领域实体 → HTTP响应
func NewLoanResponse(l *loan.Loan) *LoanResponse {
	return &LoanResponse{
		ID:           l.ID,
		UserID:       l.UserID,
		BookID:       l.BookID,
		BorrowedDate: formatDate(l.BorrowedDate),
		DueDate:      formatDate(l.DueDate),
		ReturnedDate: formatDatePtr(l.ReturnedDate),
		Status:       string(l.Status),
		CreatedAt:    formatDateTime(l.CreatedAt),
		UpdatedAt:    formatDateTime(l.UpdatedAt),
	}
}

// NewLoanResponses 批量转换(列表响应)
func NewLoanResponses(loans []*loan.Loan) []*LoanResponse {
	out := make([]*LoanResponse, len(loans))
	for i, l := range loans {
		out[i] = NewLoanResponse(l)
	}
	return out
}

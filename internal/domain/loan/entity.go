package loan

import (
	"time"

	"github.com/google/uuid"
)

// Status 借阅状态
// 状态机:active为初始态,returned为终态
//
//	active ──→ returned (归还,需提供returnedDate)
//	active ──→ overdue  (外部逾期扫描器显式标记,核心不做基于时间的自动流转)
//	overdue ─→ returned (逾期后归还)
type Status string

const (
	StatusActive   Status = "active"
	StatusReturned Status = "returned"
	StatusOverdue  Status = "overdue"
)

// Valid 状态值是否合法
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusReturned || s == StatusOverdue
}

// Loan 借阅实体(聚合根)
// 设计说明:
// 1. UserID/BookID为弱引用,创建时校验存在性
// 2. 不变式: ReturnedDate非nil ⇔ Status=returned
// 3. 状态流转单向,returned为终态,之后任何状态/归还日期更新都被拒绝
type Loan struct {
	ID           string
	UserID       string
	BookID       string
	BorrowedDate time.Time
	DueDate      time.Time
	ReturnedDate *time.Time
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewLoan 创建新借阅(工厂方法)
// 初始状态固定为active,不接受调用方指定
func NewLoan(userID, bookID string, borrowedDate, dueDate time.Time) (*Loan, error) {
	if dueDate.Before(borrowedDate) {
		return nil, ErrInvalidDates
	}
	now := time.Now()
	return &Loan{
		ID:           uuid.NewString(),
		UserID:       userID,
		BookID:       bookID,
		BorrowedDate: borrowedDate,
		DueDate:      dueDate,
		ReturnedDate: nil,
		Status:       StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// CanTransitionTo 检查是否可以转换到目标状态
// 状态机设计,防止非法状态跳转(如returned → active)
func (l *Loan) CanTransitionTo(target Status) bool {
	transitions := map[Status][]Status{
		StatusActive:   {StatusReturned, StatusOverdue},
		StatusOverdue:  {StatusReturned},
		StatusReturned: {}, // 终态
	}

	for _, allowed := range transitions[l.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Return 归还(领域行为)
// active/overdue → returned,设置归还日期
func (l *Loan) Return(returnedDate time.Time) error {
	if l.Status == StatusReturned {
		return ErrAlreadyReturned
	}
	if !l.CanTransitionTo(StatusReturned) {
		return ErrInvalidTransition
	}
	l.Status = StatusReturned
	l.ReturnedDate = &returnedDate
	l.UpdatedAt = time.Now()
	return nil
}

// MarkOverdue 标记逾期(领域行为)
// 仅active可标记;逾期判定(dueDate与当前日期比较)由外部扫描器负责
func (l *Loan) MarkOverdue() error {
	if l.Status == StatusReturned {
		return ErrAlreadyReturned
	}
	if !l.CanTransitionTo(StatusOverdue) {
		return ErrInvalidTransition
	}
	l.Status = StatusOverdue
	l.UpdatedAt = time.Now()
	return nil
}

// IsReturned 是否已归还(终态)
func (l *Loan) IsReturned() bool {
	return l.Status == StatusReturned
}

package loan

import (
	"context"
	"log"
	"time"

	"github.com/vasujain/booksync/internal/domain/book"
	"github.com/vasujain/booksync/internal/domain/user"
	"github.com/vasujain/booksync/pkg/pagination"
)

// Service 借阅领域服务(借阅生命周期/可借副本协调器)
//
// 这是整个系统最核心的组件,涉及:事务处理、并发控制、跨实体不变式
//
// 核心问题:副本超借
// 场景:某书available_copies=1,两个并发借阅请求
// 错误实现:
//  1. 查询可借副本 → 1
//  2. 判断够不够 → 够
//  3. 扣减副本 → available_copies - 1
//     结果:两个请求都通过了步骤2,副本数变成-1(超借!)
//
// 正确实现:悲观锁
//  1. SELECT FOR UPDATE锁定图书行
//  2. 检查available_copies > 0
//  3. 插入借阅记录
//  4. 扣减副本数
//  5. COMMIT释放锁
type Service interface {
	// List 列表查询
	List(ctx context.Context, paginate bool, page, size int, sortBy, sortDirection string) (pagination.Result[*Loan], error)

	// GetByID 根据ID获取借阅
	GetByID(ctx context.Context, id string) (*Loan, error)

	// Create 创建借阅(借出)
	// 引用的用户与图书必须存在;无可借副本返回Conflict;
	// 借阅插入与副本扣减在同一事务内完成
	Create(ctx context.Context, p CreateParams) (*Loan, error)

	// Update 借阅状态更新
	// 仅允许: active/overdue→returned(提供returnedDate,副本数+1)
	// 以及 active→overdue(显式status)
	// returned为终态,再次更新返回Conflict
	Update(ctx context.Context, id string, p UpdateParams) (*Loan, error)

	// Delete 删除借阅(行政修正,不恢复副本数)
	Delete(ctx context.Context, id string) error
}

// CreateParams 创建借阅参数
// 状态不可由调用方指定,固定为active
type CreateParams struct {
	UserID       string
	BookID       string
	BorrowedDate time.Time
	DueDate      time.Time
}

// UpdateParams 借阅更新参数(nil表示不修改)
type UpdateParams struct {
	ReturnedDate *time.Time
	Status       *string
}

type service struct {
	loans  Repository
	books  book.Repository
	users  user.Repository
	tx     TxManager
	events EventPublisher
}

// NewService 创建借阅领域服务
func NewService(loans Repository, books book.Repository, users user.Repository, tx TxManager, events EventPublisher) Service {
	if events == nil {
		events = NopPublisher{}
	}
	return &service{
		loans:  loans,
		books:  books,
		users:  users,
		tx:     tx,
		events: events,
	}
}

func (s *service) List(ctx context.Context, paginate bool, page, size int, sortBy, sortDirection string) (pagination.Result[*Loan], error) {
	q := SortPolicy.Normalize(paginate, page, size, sortBy, sortDirection)

	items, err := s.loans.FindPage(ctx, q)
	if err != nil {
		return pagination.Result[*Loan]{}, err
	}

	if !q.Paginate {
		return pagination.NewList(items), nil
	}

	total, err := s.loans.Count(ctx)
	if err != nil {
		return pagination.Result[*Loan]{}, err
	}
	return pagination.NewPage(items, q.Page, q.Size, total), nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Loan, error) {
	return s.loans.FindByID(ctx, id)
}

// Create 创建借阅
func (s *service) Create(ctx context.Context, p CreateParams) (*Loan, error) {
	// 引用完整性:借阅人必须存在(图书在事务内锁定时校验)
	if _, err := s.users.FindByID(ctx, p.UserID); err != nil {
		return nil, err
	}

	var created *Loan
	err := s.tx.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 锁定图书行(悲观锁,防止并发超借)
		b, err := s.books.LockByID(txCtx, p.BookID)
		if err != nil {
			return err
		}

		// 2. 检查可借副本;必须在锁定后检查,否则并发扣减会超借
		if !b.HasAvailableCopies() {
			return book.ErrNoAvailableCopies
		}

		// 3. 创建借阅记录
		l, err := NewLoan(p.UserID, p.BookID, p.BorrowedDate, p.DueDate)
		if err != nil {
			return err
		}
		if err := s.loans.Create(txCtx, l); err != nil {
			return err
		}

		// 4. 扣减可借副本(失败则整个事务回滚,借阅不会创建)
		if err := s.books.AdjustAvailableCopies(txCtx, b.ID, -1); err != nil {
			return err
		}

		created = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(EventLoanCreated, created)
	return created, nil
}

// Update 借阅状态更新
func (s *service) Update(ctx context.Context, id string, p UpdateParams) (*Loan, error) {
	var updated *Loan
	var returnedNow, overdueNow bool

	err := s.tx.Transaction(ctx, func(txCtx context.Context) error {
		// 锁定借阅行,串行化并发的重复归还请求
		l, err := s.loans.LockByID(txCtx, id)
		if err != nil {
			return err
		}

		switch {
		case p.ReturnedDate != nil:
			// 归还流转;若同时携带status,必须是returned
			if p.Status != nil && Status(*p.Status) != StatusReturned {
				return ErrInvalidTransition
			}
			if err := l.Return(*p.ReturnedDate); err != nil {
				return err
			}
			returnedNow = true

		case p.Status != nil:
			target := Status(*p.Status)
			if !target.Valid() {
				return ErrInvalidStatus
			}
			switch target {
			case StatusOverdue:
				if err := l.MarkOverdue(); err != nil {
					return err
				}
				overdueNow = true
			case StatusReturned:
				// 归还必须携带returnedDate(不变式:returnedDate非nil ⇔ returned)
				return ErrReturnedDateRequired
			default:
				// active是初始态,不存在回到active的流转
				return ErrInvalidTransition
			}

		default:
			// 空更新:终态仍然拒绝,其余仅刷新updatedAt
			if l.IsReturned() {
				return ErrAlreadyReturned
			}
			l.UpdatedAt = time.Now()
		}

		if err := s.loans.Update(txCtx, l); err != nil {
			return err
		}

		// 归还时在同一事务内恢复副本数
		if returnedNow {
			if err := s.books.AdjustAvailableCopies(txCtx, l.BookID, +1); err != nil {
				return err
			}
		}

		updated = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	if returnedNow {
		s.publish(EventLoanReturned, updated)
	}
	if overdueNow {
		s.publish(EventLoanOverdue, updated)
	}
	return updated, nil
}

// Delete 删除借阅
// 行政修正操作:不恢复available_copies(与归还语义区分)
func (s *service) Delete(ctx context.Context, id string) error {
	return s.loans.Delete(ctx, id)
}

// publish 事务提交后发布事件
// 发布失败只记录日志,不影响已提交的业务结果
func (s *service) publish(routingKey string, l *Loan) {
	if err := s.events.Publish(routingKey, NewEvent(l)); err != nil {
		log.Printf("[loan] 发布事件失败 key=%s loan=%s: %v", routingKey, l.ID, err)
	}
}

package loan

import (
	"context"

	"github.com/vasujain/booksync/pkg/pagination"
)

// SortPolicy 借阅列表的排序策略
// 默认borrowed_date ASC
var SortPolicy = pagination.Policy{
	DefaultSortBy:  "borrowed_date",
	DefaultSortDir: pagination.DirAsc,
	AllowedColumns: []string{
		"id", "user_id", "book_id", "borrowed_date", "due_date",
		"returned_date", "status", "created_at", "updated_at",
	},
}

// Repository 借阅仓储接口
type Repository interface {
	// Create 创建借阅记录
	Create(ctx context.Context, loan *Loan) error

	// FindByID 根据ID查找借阅,不存在返回NotFound
	FindByID(ctx context.Context, id string) (*Loan, error)

	// FindPage 按规范化查询描述符取一页有序结果
	FindPage(ctx context.Context, q pagination.Query) ([]*Loan, error)

	// Count 借阅总数
	Count(ctx context.Context) (int64, error)

	// Update 更新借阅记录
	Update(ctx context.Context, loan *Loan) error

	// Delete 删除借阅记录,id不存在返回NotFound
	Delete(ctx context.Context, id string) error

	// LockByID 悲观锁查询借阅(SELECT FOR UPDATE)
	// 归还时锁定行,防止并发重复归还导致副本数多加
	LockByID(ctx context.Context, id string) (*Loan, error)
}

// TxManager 事务边界(由infrastructure层实现)
// 借阅创建/归还与图书副本数调整必须在同一事务内
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

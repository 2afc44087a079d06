package review

import (
	"context"

	"github.com/vasujain/booksync/pkg/pagination"
)

// SortPolicy 书评列表的排序策略
// 默认created_at ASC
var SortPolicy = pagination.Policy{
	DefaultSortBy:  "created_at",
	DefaultSortDir: pagination.DirAsc,
	AllowedColumns: []string{
		"id", "book_id", "user_id", "rating", "created_at",
	},
}

// Repository 书评仓储接口
type Repository interface {
	// Create 创建书评
	Create(ctx context.Context, review *Review) error

	// FindByID 根据ID查找书评,不存在返回NotFound
	FindByID(ctx context.Context, id string) (*Review, error)

	// FindPage 按规范化查询描述符取一页有序结果
	FindPage(ctx context.Context, q pagination.Query) ([]*Review, error)

	// Count 书评总数
	Count(ctx context.Context) (int64, error)

	// Update 更新书评
	Update(ctx context.Context, review *Review) error

	// Delete 删除书评,id不存在返回NotFound
	Delete(ctx context.Context, id string) error

	// LockByID 悲观锁查询书评(SELECT FOR UPDATE)
	// 部分更新的读取-合并-写入序列在锁内执行
	LockByID(ctx context.Context, id string) (*Review, error)
}

// TxManager 事务边界(由infrastructure层实现)
// 读取-校验-写入序列必须在单个事务内执行
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

package book

import (
	"context"

	"github.com/vasujain/booksync/pkg/pagination"
)

// SortPolicy 图书列表的排序策略
// 默认created_at DESC,白名单为book表已知列
var SortPolicy = pagination.Policy{
	DefaultSortBy:  "created_at",
	DefaultSortDir: pagination.DirDesc,
	AllowedColumns: []string{
		"id", "title", "publisher", "published_date", "category",
		"total_copies", "available_copies", "created_at", "updated_at",
	},
}

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书,不存在返回NotFound
	FindByID(ctx context.Context, id string) (*Book, error)

	// FindPage 按规范化查询描述符取一页(或无界)有序结果
	FindPage(ctx context.Context, q pagination.Query) ([]*Book, error)

	// Count 图书总数
	Count(ctx context.Context) (int64, error)

	// Update 更新图书
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书,id不存在返回NotFound且不产生任何变更
	Delete(ctx context.Context, id string) error

	// LockByID 悲观锁查询图书(SELECT FOR UPDATE)
	// 借阅创建/归还时锁定行,防止并发超借
	LockByID(ctx context.Context, id string) (*Book, error)

	// AdjustAvailableCopies 原子调整可借副本数
	// delta为正表示归还,负表示借出
	// 内部保证 0 <= available_copies <= total_copies,违反则报错
	AdjustAvailableCopies(ctx context.Context, id string, delta int) error
}

// TxManager 事务边界(由infrastructure层实现)
// 读取-校验-写入序列必须在单个事务内执行
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

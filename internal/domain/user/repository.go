package user

import (
	"context"

	"github.com/vasujain/booksync/pkg/pagination"
)

// SortPolicy 用户列表的排序策略
// 默认username ASC
var SortPolicy = pagination.Policy{
	DefaultSortBy:  "username",
	DefaultSortDir: pagination.DirAsc,
	AllowedColumns: []string{
		"id", "username", "email", "role", "first_name", "last_name",
		"created_at", "updated_at",
	},
}

// Repository 用户仓储接口
type Repository interface {
	// Create 创建用户(用户名/邮箱重复返回ErrDuplicate)
	Create(ctx context.Context, user *User) error

	// FindByID 根据ID查找用户,不存在返回NotFound
	FindByID(ctx context.Context, id string) (*User, error)

	// FindPage 按规范化查询描述符取一页有序结果
	FindPage(ctx context.Context, q pagination.Query) ([]*User, error)

	// Count 用户总数
	Count(ctx context.Context) (int64, error)

	// Update 更新用户
	Update(ctx context.Context, user *User) error

	// Delete 删除用户,id不存在返回NotFound
	Delete(ctx context.Context, id string) error

	// LockByID 悲观锁查询用户(SELECT FOR UPDATE)
	// 部分更新的读取-合并-写入序列在锁内执行
	LockByID(ctx context.Context, id string) (*User, error)
}

// TxManager 事务边界(由infrastructure层实现)
// 读取-校验-写入序列必须在单个事务内执行
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

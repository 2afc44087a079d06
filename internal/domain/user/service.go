package user

import (
	"context"

	"github.com/vasujain/booksync/pkg/pagination"
)

// Service 用户领域服务接口
type Service interface {
	// List 列表查询
	List(ctx context.Context, paginate bool, page, size int, sortBy, sortDirection string) (pagination.Result[*User], error)

	// GetByID 根据ID获取用户
	GetByID(ctx context.Context, id string) (*User, error)

	// Create 创建用户
	Create(ctx context.Context, p CreateParams) (*User, error)

	// Update 字段级部分更新
	Update(ctx context.Context, id string, p UpdateParams) (*User, error)

	// Delete 删除用户(不级联删除其借阅/书评)
	Delete(ctx context.Context, id string) error
}

// CreateParams 创建用户参数
// Password为上游已处理的不透明哈希值,原样入库
type CreateParams struct {
	Username  string
	Email     string
	Password  string
	Role      string
	FirstName string
	LastName  string
}

type service struct {
	repo Repository
	tx   TxManager
}

// NewService 创建用户领域服务
func NewService(repo Repository, tx TxManager) Service {
	return &service{repo: repo, tx: tx}
}

func (s *service) List(ctx context.Context, paginate bool, page, size int, sortBy, sortDirection string) (pagination.Result[*User], error) {
	q := SortPolicy.Normalize(paginate, page, size, sortBy, sortDirection)

	items, err := s.repo.FindPage(ctx, q)
	if err != nil {
		return pagination.Result[*User]{}, err
	}

	if !q.Paginate {
		return pagination.NewList(items), nil
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return pagination.Result[*User]{}, err
	}
	return pagination.NewPage(items, q.Page, q.Size, total), nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, p CreateParams) (*User, error) {
	role := Role(p.Role)
	if p.Role == "" {
		role = RoleMember // 默认普通成员
	}

	u, err := NewUser(p.Username, p.Email, p.Password, role, p.FirstName, p.LastName)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Update 部分更新用户
// 读取-合并-写入在单个事务内执行,行锁串行化并发更新
func (s *service) Update(ctx context.Context, id string, p UpdateParams) (*User, error) {
	var updated *User
	err := s.tx.Transaction(ctx, func(txCtx context.Context) error {
		u, err := s.repo.LockByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := u.ApplyUpdate(p); err != nil {
			return err
		}
		if err := s.repo.Update(txCtx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

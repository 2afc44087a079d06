package book

import (
	"context"

	"github.com/vasujain/booksync/pkg/pagination"
)

// Service 图书领域服务接口
// 实体生命周期管理:创建默认值、部分更新合并、存在性校验、时间戳
type Service interface {
	// List 列表查询
	// paginate=true返回分页结果,false返回完整有序列表
	List(ctx context.Context, paginate bool, page, size int, sortBy, sortDirection string) (pagination.Result[*Book], error)

	// GetByID 根据ID获取图书,不存在返回NotFound
	GetByID(ctx context.Context, id string) (*Book, error)

	// Create 创建图书
	Create(ctx context.Context, p CreateParams) (*Book, error)

	// Update 字段级部分更新(nil字段不修改)
	Update(ctx context.Context, id string, p UpdateParams) (*Book, error)

	// Delete 删除图书(先做存在性校验)
	// 注意:不级联删除关联的借阅/书评(弱引用,悬挂即可)
	Delete(ctx context.Context, id string) error
}

// CreateParams 创建图书参数
// AvailableCopies为nil时默认等于TotalCopies(新书全部可借)
type CreateParams struct {
	Title           string
	Authors         []string
	Description     string
	Publisher       string
	PublishedDate   string
	Category        string
	TotalCopies     int
	AvailableCopies *int
}

// service 领域服务实现
type service struct {
	repo Repository
	tx   TxManager
}

// NewService 创建图书领域服务
func NewService(repo Repository, tx TxManager) Service {
	return &service{repo: repo, tx: tx}
}

// List 列表查询
func (s *service) List(ctx context.Context, paginate bool, page, size int, sortBy, sortDirection string) (pagination.Result[*Book], error) {
	q := SortPolicy.Normalize(paginate, page, size, sortBy, sortDirection)

	items, err := s.repo.FindPage(ctx, q)
	if err != nil {
		return pagination.Result[*Book]{}, err
	}

	if !q.Paginate {
		return pagination.NewList(items), nil
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return pagination.Result[*Book]{}, err
	}
	return pagination.NewPage(items, q.Page, q.Size, total), nil
}

// GetByID 根据ID获取图书
func (s *service) GetByID(ctx context.Context, id string) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// Create 创建图书
func (s *service) Create(ctx context.Context, p CreateParams) (*Book, error) {
	available := p.TotalCopies
	if p.AvailableCopies != nil {
		available = *p.AvailableCopies
	}

	b, err := NewBook(p.Title, p.Authors, p.Description, p.Publisher, p.PublishedDate, p.Category, p.TotalCopies, available)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Update 部分更新图书
// 读取-合并-写入在单个事务内执行,行锁防止与借阅协调器并发修改副本数
func (s *service) Update(ctx context.Context, id string, p UpdateParams) (*Book, error) {
	var updated *Book
	err := s.tx.Transaction(ctx, func(txCtx context.Context) error {
		b, err := s.repo.LockByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := b.ApplyUpdate(p); err != nil {
			return err
		}
		if err := s.repo.Update(txCtx, b); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete 删除图书
// 单条DELETE语句:命中0行即NotFound,不产生任何变更
func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

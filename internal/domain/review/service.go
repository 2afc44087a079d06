package review

import (
	"context"

	"github.com/vasujain/booksync/internal/domain/book"
	"github.com/vasujain/booksync/internal/domain/user"
	"github.com/vasujain/booksync/pkg/pagination"
)

// Service 书评领域服务接口
type Service interface {
	// List 列表查询
	List(ctx context.Context, paginate bool, page, size int, sortBy, sortDirection string) (pagination.Result[*Review], error)

	// GetByID 根据ID获取书评
	GetByID(ctx context.Context, id string) (*Review, error)

	// Create 创建书评
	// 统一校验引用完整性:关联的图书与用户必须存在
	Create(ctx context.Context, p CreateParams) (*Review, error)

	// Update 字段级部分更新(评分重新校验)
	Update(ctx context.Context, id string, p UpdateParams) (*Review, error)

	// Delete 删除书评
	Delete(ctx context.Context, id string) error
}

// CreateParams 创建书评参数
type CreateParams struct {
	BookID     string
	UserID     string
	Rating     int
	ReviewText string
}

type service struct {
	repo  Repository
	books book.Repository
	users user.Repository
	tx    TxManager
}

// NewService 创建书评领域服务
func NewService(repo Repository, books book.Repository, users user.Repository, tx TxManager) Service {
	return &service{repo: repo, books: books, users: users, tx: tx}
}

func (s *service) List(ctx context.Context, paginate bool, page, size int, sortBy, sortDirection string) (pagination.Result[*Review], error) {
	q := SortPolicy.Normalize(paginate, page, size, sortBy, sortDirection)

	items, err := s.repo.FindPage(ctx, q)
	if err != nil {
		return pagination.Result[*Review]{}, err
	}

	if !q.Paginate {
		return pagination.NewList(items), nil
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return pagination.Result[*Review]{}, err
	}
	return pagination.NewPage(items, q.Page, q.Size, total), nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Review, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, p CreateParams) (*Review, error) {
	// 引用完整性:图书与用户必须存在(NotFound向上传播)
	if _, err := s.books.FindByID(ctx, p.BookID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, p.UserID); err != nil {
		return nil, err
	}

	r, err := NewReview(p.BookID, p.UserID, p.Rating, p.ReviewText)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Update 部分更新书评
// 读取-合并-写入在单个事务内执行,行锁串行化并发更新
func (s *service) Update(ctx context.Context, id string, p UpdateParams) (*Review, error) {
	var updated *Review
	err := s.tx.Transaction(ctx, func(txCtx context.Context) error {
		r, err := s.repo.LockByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := r.ApplyUpdate(p); err != nil {
			return err
		}
		if err := s.repo.Update(txCtx, r); err != nil {
			return err
		}
		updated = r
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

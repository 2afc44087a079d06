package mysql

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vasujain/booksync/internal/domain/book"
	apperrors "github.com/vasujain/booksync/pkg/errors"
	"github.com/vasujain/booksync/pkg/pagination"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换(Authors列表 ↔ JSON列)
// 3. 处理数据库特定错误,转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model, err := toBookModel(b)
	if err != nil {
		return err
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id string) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.NotFound(id)
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model)
}

// FindPage 按规范化查询描述符取一页有序结果
// 安全性:q.OrderClause()的列名/方向来自pagination白名单
func (r *bookRepository) FindPage(ctx context.Context, q pagination.Query) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).
		Order(q.OrderClause()).
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		b, err := toBookEntity(&models[i])
		if err != nil {
			return nil, err
		}
		books[i] = b
	}
	return books, nil
}

// Count 图书总数
func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := getDB(ctx, r.db).Model(&BookModel{}).Count(&total).Error; err != nil {
		return 0, apperrors.Wrap(err, "查询图书总数失败")
	}
	return total, nil
}

// Update 更新图书
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model, err := toBookModel(b)
	if err != nil {
		return err
	}
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新图书失败")
	}
	return nil
}

// Delete 删除图书
// 命中0行返回NotFound,不产生任何变更
func (r *bookRepository) Delete(ctx context.Context, id string) error {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&BookModel{})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.NotFound(id)
	}
	return nil
}

// LockByID 悲观锁查询图书(用于借阅创建/归还)
// SELECT ... FOR UPDATE锁定行,必须在TxManager事务内调用
func (r *bookRepository) LockByID(ctx context.Context, id string) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.NotFound(id)
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}
	return toBookEntity(&model)
}

// AdjustAvailableCopies 原子调整可借副本数
// UPDATE book SET available_copies = available_copies + delta
// WHERE id = ? AND调整后仍满足 0 <= available_copies <= total_copies
func (r *bookRepository) AdjustAvailableCopies(ctx context.Context, id string, delta int) error {
	db := getDB(ctx, r.db)
	result := db.Model(&BookModel{}).
		Where("id = ?", id).
		Where("available_copies + ? >= 0", delta).
		Where("available_copies + ? <= total_copies", delta).
		Update("available_copies", gorm.Expr("available_copies + ?", delta))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "调整可借副本失败")
	}

	if result.RowsAffected == 0 {
		// 可能是图书不存在,或者调整会违反不变式;再查一次确定原因
		var model BookModel
		if err := db.Where("id = ?", id).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.NotFound(id)
			}
			return apperrors.Wrap(err, "查询图书失败")
		}
		if delta < 0 {
			return book.ErrNoAvailableCopies
		}
		return book.ErrInvalidCopies
	}
	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookModel 领域实体 → GORM模型(Authors序列化为JSON)
func toBookModel(b *book.Book) (*BookModel, error) {
	authors, err := json.Marshal(b.Authors)
	if err != nil {
		return nil, apperrors.Wrap(err, "序列化作者列表失败")
	}
	return &BookModel{
		ID:              b.ID,
		Title:           b.Title,
		Authors:         authors,
		Description:     b.Description,
		Publisher:       b.Publisher,
		PublishedDate:   b.PublishedDate,
		Category:        b.Category,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}, nil
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) (*book.Book, error) {
	var authors []string
	if len(model.Authors) > 0 {
		if err := json.Unmarshal(model.Authors, &authors); err != nil {
			return nil, apperrors.Wrap(err, "解析作者列表失败")
		}
	}
	return &book.Book{
		ID:              model.ID,
		Title:           model.Title,
		Authors:         authors,
		Description:     model.Description,
		Publisher:       model.Publisher,
		PublishedDate:   model.PublishedDate,
		Category:        model.Category,
		TotalCopies:     model.TotalCopies,
		AvailableCopies: model.AvailableCopies,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}, nil
}

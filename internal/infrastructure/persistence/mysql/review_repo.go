package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vasujain/booksync/internal/domain/review"
	apperrors "github.com/vasujain/booksync/pkg/errors"
	"github.com/vasujain/booksync/pkg/pagination"
)

// reviewRepository 书评仓储实现(MySQL)
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建书评仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

// Create 创建书评
func (r *reviewRepository) Create(ctx context.Context, rv *review.Review) error {
	if err := getDB(ctx, r.db).Create(toReviewModel(rv)).Error; err != nil {
		return apperrors.Wrap(err, "创建书评失败")
	}
	return nil
}

// FindByID 根据ID查找书评
func (r *reviewRepository) FindByID(ctx context.Context, id string) (*review.Review, error) {
	var model BookReviewModel
	err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.NotFound(id)
		}
		return nil, apperrors.Wrap(err, "查询书评失败")
	}
	return toReviewEntity(&model), nil
}

// FindPage 按规范化查询描述符取一页有序结果
func (r *reviewRepository) FindPage(ctx context.Context, q pagination.Query) ([]*review.Review, error) {
	var models []BookReviewModel
	err := getDB(ctx, r.db).
		Order(q.OrderClause()).
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询书评列表失败")
	}

	reviews := make([]*review.Review, len(models))
	for i := range models {
		reviews[i] = toReviewEntity(&models[i])
	}
	return reviews, nil
}

// Count 书评总数
func (r *reviewRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := getDB(ctx, r.db).Model(&BookReviewModel{}).Count(&total).Error; err != nil {
		return 0, apperrors.Wrap(err, "查询书评总数失败")
	}
	return total, nil
}

// Update 更新书评
func (r *reviewRepository) Update(ctx context.Context, rv *review.Review) error {
	if err := getDB(ctx, r.db).Save(toReviewModel(rv)).Error; err != nil {
		return apperrors.Wrap(err, "更新书评失败")
	}
	return nil
}

// Delete 删除书评
func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&BookReviewModel{})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除书评失败")
	}
	if result.RowsAffected == 0 {
		return review.NotFound(id)
	}
	return nil
}

// LockByID 悲观锁查询书评(用于部分更新)
// SELECT ... FOR UPDATE锁定行,必须在TxManager事务内调用
func (r *reviewRepository) LockByID(ctx context.Context, id string) (*review.Review, error) {
	var model BookReviewModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.NotFound(id)
		}
		return nil, apperrors.Wrap(err, "锁定书评失败")
	}
	return toReviewEntity(&model), nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toReviewModel(rv *review.Review) *BookReviewModel {
	return &BookReviewModel{
		ID:         rv.ID,
		BookID:     rv.BookID,
		UserID:     rv.UserID,
		Rating:     rv.Rating,
		ReviewText: rv.ReviewText,
		CreatedAt:  rv.CreatedAt,
	}
}

func toReviewEntity(model *BookReviewModel) *review.Review {
	return &review.Review{
		ID:         model.ID,
		BookID:     model.BookID,
		UserID:     model.UserID,
		Rating:     model.Rating,
		ReviewText: model.ReviewText,
		CreatedAt:  model.CreatedAt,
	}
}

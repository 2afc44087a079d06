package review

import (
	"time"

	"github.com/google/uuid"
)

// 评分范围
const (
	MinRating = 1
	MaxRating = 5
)

// Review 书评实体
// 设计说明:
// 1. BookID/UserID为弱引用(仅存id,不做级联删除)
// 2. CreatedAt创建后不可变,book_review表没有updated_at列
type Review struct {
	ID         string
	BookID     string
	UserID     string
	Rating     int
	ReviewText string
	CreatedAt  time.Time
}

// NewReview 创建新书评(工厂方法)
// 业务规则:评分必须在[1,5]区间
func NewReview(bookID, userID string, rating int, reviewText string) (*Review, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, ErrInvalidRating
	}
	return &Review{
		ID:         uuid.NewString(),
		BookID:     bookID,
		UserID:     userID,
		Rating:     rating,
		ReviewText: reviewText,
		CreatedAt:  time.Now(),
	}, nil
}

// UpdateParams 字段级部分更新参数(nil表示不修改)
type UpdateParams struct {
	Rating     *int
	ReviewText *string
}

// ApplyUpdate 应用部分更新
// 评分在更新时同样需要重新校验
func (r *Review) ApplyUpdate(p UpdateParams) error {
	if p.Rating != nil {
		if *p.Rating < MinRating || *p.Rating > MaxRating {
			return ErrInvalidRating
		}
		r.Rating = *p.Rating
	}
	if p.ReviewText != nil {
		r.ReviewText = *p.ReviewText
	}
	return nil
}

package review

import (
	apperrors "github.com/vasujain/booksync/pkg/errors"
)

// 书评领域错误定义
var (
	// ErrInvalidRating 评分必须在1-5之间
	ErrInvalidRating = apperrors.New(apperrors.ErrCodeInvalidRating, "评分必须在1到5之间")
)

// NotFound 书评不存在
func NotFound(id string) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeReviewNotFound, "书评不存在: %s", id)
}

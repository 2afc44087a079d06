package dto

import (
	"github.com/vasujain/booksync/internal/domain/review"
)

// CreateReviewRequest HTTP书评创建请求
type CreateReviewRequest struct {
	BookID     string `json:"bookId" binding:"required,uuid"`
	UserID     string `json:"userId" binding:"required,uuid"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
	ReviewText string `json:"reviewText" binding:"max=5000"`
}

// ToParams 转换为领域层创建参数
func (r *CreateReviewRequest) ToParams() review.CreateParams {
	return review.CreateParams{
		BookID:     r.BookID,
		UserID:     r.UserID,
		Rating:     r.Rating,
		ReviewText: r.ReviewText,
	}
}

// UpdateReviewRequest HTTP书评部分更新请求
type UpdateReviewRequest struct {
	Rating     *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	ReviewText *string `json:"reviewText" binding:"omitempty,max=5000"`
}

// ToParams 转换为领域层更新参数
func (r *UpdateReviewRequest) ToParams() review.UpdateParams {
	return review.UpdateParams{
		Rating:     r.Rating,
		ReviewText: r.ReviewText,
	}
}

// ReviewResponse HTTP书评响应
type ReviewResponse struct {
	ID         string `json:"id"`
	BookID     string `json:"bookId"`
	UserID     string `json:"userId"`
	Rating     int    `json:"rating" example:"5"`
	ReviewText string `json:"reviewText"`
	CreatedAt  string `json:"createdAt" example:"2024-01-15 10:30:00"`
}

// NewReviewResponse 领域实体 → HTTP响应
func NewReviewResponse(rv *review.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:         rv.ID,
		BookID:     rv.BookID,
		UserID:     rv.UserID,
		Rating:     rv.Rating,
		ReviewText: rv.ReviewText,
		CreatedAt:  formatDateTime(rv.CreatedAt),
	}
}

// NewReviewResponses 批量转换(列表响应)
func NewReviewResponses(reviews []*review.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, len(reviews))
	for i, rv := range reviews {
		out[i] = NewReviewResponse(rv)
	}
	return out
}

package dto

import (
	"github.com/vasujain/booksync/internal/domain/book"
)

// CreateBookRequest HTTP图书创建请求
// availableCopies缺省时默认等于totalCopies(新书全部可借)
type CreateBookRequest struct {
	Title           string   `json:"title" binding:"required,max=200" example:"设计数据密集型应用"`
	Authors         []string `json:"authors" binding:"omitempty,dive,max=100"`
	Description     string   `json:"description" binding:"max=5000"`
	Publisher       string   `json:"publisher" binding:"max=200" example:"O'Reilly"`
	PublishedDate   string   `json:"publishedDate" binding:"omitempty,datetime=2006-01-02" example:"2017-03-16"`
	Category        string   `json:"category" binding:"max=100" example:"技术"`
	TotalCopies     int      `json:"totalCopies" binding:"min=0" example:"5"`
	AvailableCopies *int     `json:"availableCopies" binding:"omitempty,min=0" example:"5"`
}

// ToParams 转换为领域层创建参数
func (r *CreateBookRequest) ToParams() book.CreateParams {
	return book.CreateParams{
		Title:           r.Title,
		Authors:         r.Authors,
		Description:     r.Description,
		Publisher:       r.Publisher,
		PublishedDate:   r.PublishedDate,
		Category:        r.Category,
		TotalCopies:     r.TotalCopies,
		AvailableCopies: r.AvailableCopies,
	}
}

// UpdateBookRequest HTTP图书部分更新请求
// 指针字段为nil表示不修改;副本不变式由领域层合并后校验
type UpdateBookRequest struct {
	Title           *string   `json:"title" binding:"omitempty,max=200"`
	Authors         *[]string `json:"authors" binding:"omitempty,dive,max=100"`
	Description     *string   `json:"description" binding:"omitempty,max=5000"`
	Publisher       *string   `json:"publisher" binding:"omitempty,max=200"`
	PublishedDate   *string   `json:"publishedDate" binding:"omitempty,datetime=2006-01-02"`
	Category        *string   `json:"category" binding:"omitempty,max=100"`
	TotalCopies     *int      `json:"totalCopies" binding:"omitempty,min=0"`
	AvailableCopies *int      `json:"availableCopies" binding:"omitempty,min=0"`
}

// ToParams 转换为领域层更新参数
func (r *UpdateBookRequest) ToParams() book.UpdateParams {
	return book.UpdateParams{
		Title:           r.Title,
		Authors:         r.Authors,
		Description:     r.Description,
		Publisher:       r.Publisher,
		PublishedDate:   r.PublishedDate,
		Category:        r.Category,
		TotalCopies:     r.TotalCopies,
		AvailableCopies: r.AvailableCopies,
	}
}

// BookResponse HTTP图书响应
type BookResponse struct {
	ID              string   `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Title           string   `json:"title" example:"设计数据密集型应用"`
	Authors         []string `json:"authors"`
	Description     string   `json:"description"`
	Publisher       string   `json:"publisher"`
	PublishedDate   string   `json:"publishedDate" example:"2017-03-16"`
	Category        string   `json:"category"`
	TotalCopies     int      `json:"totalCopies" example:"5"`
	AvailableCopies int      `json:"availableCopies" example:"3"`
	CreatedAt       string   `json:"createdAt" example:"2024-01-15 10:30:00"`
	UpdatedAt       string   `json:"updatedAt" example:"2024-01-15 10:30:00"`
}

// NewBookResponse 领域实体 → HTTP响应
func NewBookResponse(b *book.Book) *BookResponse {
	authors := b.Authors
	if authors == nil {
		authors = []string{}
	}
	return &BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Authors:         authors,
		Description:     b.Description,
		Publisher:       b.Publisher,
		PublishedDate:   b.PublishedDate,
		Category:        b.Category,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
		CreatedAt:       formatDateTime(b.CreatedAt),
		UpdatedAt:       formatDateTime(b.UpdatedAt),
	}
}

// NewBookResponses 批量转换(列表响应)
func NewBookResponses(books []*book.Book) []*BookResponse {
	out := make([]*BookResponse, len(books))
	for i, b := range books {
		out[i] = NewBookResponse(b)
	}
	return out
}

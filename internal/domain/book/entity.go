package book

import (
	"time"

	"github.com/google/uuid"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. ID为UUID字符串,由核心层在创建时分配,不依赖数据库自增
// 2. Authors为有序作者列表(持久化为JSON列)
// 3. 核心不变式: 0 <= AvailableCopies <= TotalCopies
// 4. CreatedAt创建后不可变,UpdatedAt单调不减
type Book struct {
	ID              string
	Title           string
	Authors         []string
	Description     string
	Publisher       string
	PublishedDate   string
	Category        string
	TotalCopies     int
	AvailableCopies int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBook 创建新图书(工厂方法)
// 业务规则:
// - TotalCopies >= 0
// - 0 <= AvailableCopies <= TotalCopies
func NewBook(title string, authors []string, description, publisher, publishedDate, category string, totalCopies, availableCopies int) (*Book, error) {
	if totalCopies < 0 || availableCopies < 0 || availableCopies > totalCopies {
		return nil, ErrInvalidCopies
	}
	now := time.Now()
	return &Book{
		ID:              uuid.NewString(),
		Title:           title,
		Authors:         authors,
		Description:     description,
		Publisher:       publisher,
		PublishedDate:   publishedDate,
		Category:        category,
		TotalCopies:     totalCopies,
		AvailableCopies: availableCopies,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// UpdateParams 字段级部分更新参数
// 约定:指针为nil表示不修改该字段(统一的部分合并契约)
type UpdateParams struct {
	Title           *string
	Authors         *[]string
	Description     *string
	Publisher       *string
	PublishedDate   *string
	Category        *string
	TotalCopies     *int
	AvailableCopies *int
}

// ApplyUpdate 应用部分更新(领域行为)
// 业务规则:
// 1. 仅覆盖非nil字段,其余字段保持不变
// 2. 合并后重新校验副本不变式
// 3. 成功后刷新UpdatedAt
func (b *Book) ApplyUpdate(p UpdateParams) error {
	merged := *b
	if p.Title != nil {
		merged.Title = *p.Title
	}
	if p.Authors != nil {
		merged.Authors = *p.Authors
	}
	if p.Description != nil {
		merged.Description = *p.Description
	}
	if p.Publisher != nil {
		merged.Publisher = *p.Publisher
	}
	if p.PublishedDate != nil {
		merged.PublishedDate = *p.PublishedDate
	}
	if p.Category != nil {
		merged.Category = *p.Category
	}
	if p.TotalCopies != nil {
		merged.TotalCopies = *p.TotalCopies
	}
	if p.AvailableCopies != nil {
		merged.AvailableCopies = *p.AvailableCopies
	}

	if merged.TotalCopies < 0 || merged.AvailableCopies < 0 || merged.AvailableCopies > merged.TotalCopies {
		return ErrInvalidCopies
	}

	merged.UpdatedAt = time.Now()
	*b = merged
	return nil
}

// HasAvailableCopies 是否还有可借副本
func (b *Book) HasAvailableCopies() bool {
	return b.AvailableCopies > 0
}

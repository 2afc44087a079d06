// Package pagination 提供统一的分页与排序规范化
//
// 设计说明：
// 1. 每种资源有自己的默认排序列/方向与可排序列白名单
// 2. sortBy必须命中白名单才会传给存储层，否则回退默认列
//    （排序列最终来自白名单常量而非调用方输入，杜绝SQL注入）
// 3. 非法的sortBy/sortDirection静默回退默认值，不报错
// 4. paginate=false时仍然排序，但请求无界结果集，不产生分页元数据
package pagination

import "strings"

// 排序方向
const (
	DirAsc  = "ASC"
	DirDesc = "DESC"
)

// DefaultSize 默认每页数量（页码从0开始）
const DefaultSize = 10

// UnboundedLimit 无界查询的limit值
// GORM约定：负数Limit表示取消LIMIT子句
const UnboundedLimit = -1

// Policy 单个资源的分页/排序策略
type Policy struct {
	DefaultSortBy  string   // 默认排序列
	DefaultSortDir string   // 默认排序方向
	AllowedColumns []string // 可排序列白名单
}

// Query 规范化后的查询描述符（存储层的安全输入）
type Query struct {
	Paginate      bool
	Page          int // 当前页码(从0开始,仅paginate=true有意义)
	Size          int // 每页数量
	Offset        int
	Limit         int
	SortColumn    string
	SortDirection string
}

// OrderClause 生成ORDER BY片段
// 安全性：SortColumn/SortDirection均来自Normalize的白名单校验
func (q Query) OrderClause() string {
	return q.SortColumn + " " + q.SortDirection
}

// Normalize 将原始请求参数规范化为安全的查询描述符
func (p Policy) Normalize(paginate bool, page, size int, sortBy, sortDirection string) Query {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultSize
	}

	q := Query{
		Paginate:      paginate,
		Page:          page,
		Size:          size,
		SortColumn:    p.resolveColumn(sortBy),
		SortDirection: p.resolveDirection(sortDirection),
	}

	if paginate {
		q.Offset = page * size
		q.Limit = size
	} else {
		q.Offset = 0
		q.Limit = UnboundedLimit
	}
	return q
}

// resolveColumn 白名单校验排序列，未命中回退默认列
func (p Policy) resolveColumn(sortBy string) string {
	sortBy = strings.TrimSpace(sortBy)
	for _, col := range p.AllowedColumns {
		if col == sortBy {
			return col // 返回白名单常量,而非调用方输入
		}
	}
	return p.DefaultSortBy
}

// resolveDirection 大小写不敏感校验排序方向，非法值回退默认方向
func (p Policy) resolveDirection(dir string) string {
	switch strings.ToUpper(strings.TrimSpace(dir)) {
	case DirAsc:
		return DirAsc
	case DirDesc:
		return DirDesc
	default:
		return p.DefaultSortDir
	}
}

// =========================================
// 分页结果
// =========================================

// PageInfo 分页元数据
type PageInfo struct {
	CurrentPage   int   `json:"currentPage"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPageInfo 计算分页元数据
// totalPages = ceil(totalElements/size)，0条记录 → 0页
func NewPageInfo(page, size int, total int64) *PageInfo {
	totalPages := int(total) / size
	if int(total)%size != 0 {
		totalPages++
	}
	return &PageInfo{
		CurrentPage:   page,
		PageSize:      size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// Result 列表查询结果：带标签的变体类型
// Page为nil表示未分页的完整列表，非nil表示分页结果
// （取代动态类型的"Object"返回值，由paginate标志在编译期决定分支）
type Result[T any] struct {
	Items []T
	Page  *PageInfo
}

// NewList 未分页的完整列表
func NewList[T any](items []T) Result[T] {
	return Result[T]{Items: items}
}

// NewPage 分页结果
func NewPage[T any](items []T, page, size int, total int64) Result[T] {
	return Result[T]{
		Items: items,
		Page:  NewPageInfo(page, size, total),
	}
}

// Paginated 是否为分页结果
func (r Result[T]) Paginated() bool {
	return r.Page != nil
}

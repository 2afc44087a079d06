package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testPolicy = Policy{
	DefaultSortBy:  "created_at",
	DefaultSortDir: DirDesc,
	AllowedColumns: []string{"id", "title", "created_at"},
}

// TestNormalize 测试查询参数规范化
func TestNormalize(t *testing.T) {
	t.Run("分页查询计算offset和limit", func(t *testing.T) {
		q := testPolicy.Normalize(true, 2, 20, "title", "asc")

		assert.True(t, q.Paginate)
		assert.Equal(t, 2, q.Page)
		assert.Equal(t, 20, q.Size)
		assert.Equal(t, 40, q.Offset, "offset = page * size")
		assert.Equal(t, 20, q.Limit)
		assert.Equal(t, "title", q.SortColumn)
		assert.Equal(t, DirAsc, q.SortDirection)
	})

	t.Run("非分页查询请求无界结果集", func(t *testing.T) {
		q := testPolicy.Normalize(false, 5, 20, "", "")

		assert.False(t, q.Paginate)
		assert.Equal(t, 0, q.Offset)
		assert.Equal(t, UnboundedLimit, q.Limit)
		// 非分页仍然排序
		assert.Equal(t, "created_at DESC", q.OrderClause())
	})

	t.Run("负页码和非法size回退默认值", func(t *testing.T) {
		q := testPolicy.Normalize(true, -3, 0, "", "")

		assert.Equal(t, 0, q.Page)
		assert.Equal(t, DefaultSize, q.Size)
		assert.Equal(t, 0, q.Offset)
	})

	t.Run("白名单外的排序列静默回退默认列", func(t *testing.T) {
		// 注入尝试:排序列不在白名单,回退默认,不报错
		q := testPolicy.Normalize(true, 0, 10, "title; DROP TABLE book", "asc")

		assert.Equal(t, "created_at", q.SortColumn)
	})

	t.Run("排序方向大小写不敏感", func(t *testing.T) {
		assert.Equal(t, DirDesc, testPolicy.Normalize(false, 0, 0, "", "DESC").SortDirection)
		assert.Equal(t, DirDesc, testPolicy.Normalize(false, 0, 0, "", "desc").SortDirection)
		assert.Equal(t, DirAsc, testPolicy.Normalize(false, 0, 0, "", " Asc ").SortDirection)
	})

	t.Run("非法排序方向回退默认方向", func(t *testing.T) {
		q := testPolicy.Normalize(false, 0, 0, "", "sideways")
		assert.Equal(t, DirDesc, q.SortDirection)
	})
}

// TestNewPageInfo 测试分页元数据计算
func TestNewPageInfo(t *testing.T) {
	t.Run("整除", func(t *testing.T) {
		info := NewPageInfo(0, 10, 100)
		assert.Equal(t, 10, info.TotalPages)
		assert.Equal(t, int64(100), info.TotalElements)
	})

	t.Run("有余数向上取整", func(t *testing.T) {
		info := NewPageInfo(2, 10, 101)
		assert.Equal(t, 11, info.TotalPages)
		assert.Equal(t, 2, info.CurrentPage)
		assert.Equal(t, 10, info.PageSize)
	})

	t.Run("零条记录零页", func(t *testing.T) {
		info := NewPageInfo(0, 10, 0)
		assert.Equal(t, 0, info.TotalPages)
	})

	t.Run("不足一页算一页", func(t *testing.T) {
		info := NewPageInfo(0, 10, 3)
		assert.Equal(t, 1, info.TotalPages)
	})
}

// TestResult 测试列表结果变体
func TestResult(t *testing.T) {
	t.Run("未分页列表Page为nil", func(t *testing.T) {
		r := NewList([]string{"a", "b"})
		assert.False(t, r.Paginated())
		assert.Nil(t, r.Page)
		assert.Len(t, r.Items, 2)
	})

	t.Run("分页结果携带元数据", func(t *testing.T) {
		r := NewPage([]string{"a"}, 0, 10, 21)
		assert.True(t, r.Paginated())
		assert.Equal(t, 3, r.Page.TotalPages)
	})
}

// Package dto 定义HTTP层的请求/响应结构
//
// 约定:
// 1. 请求结构带binding tag做参数校验,领域层不再重复校验格式
// 2. 更新请求使用指针字段,nil表示"不修改"(与JSON缺省字段对应)
// 3. 业务日期(借阅日/应还日/归还日)使用yyyy-MM-dd格式
package dto

import (
	"time"
)

// 日期格式
const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// ListQuery 列表查询参数(所有实体通用)
// paginate=false时返回完整列表,page/size被忽略
// sortBy/sortDirection不做格式校验:非法值由排序策略静默回退到
// 实体默认值(大小写不敏感),不产生绑定错误
type ListQuery struct {
	Paginate      bool   `form:"paginate,default=false"`
	Page          int    `form:"page,default=0" binding:"omitempty,min=0"`
	Size          int    `form:"size,default=10" binding:"omitempty,min=1,max=100"`
	SortBy        string `form:"sortBy" binding:"omitempty,max=64"`
	SortDirection string `form:"sortDirection" binding:"omitempty,max=16"`
}

// parseDate 解析yyyy-MM-dd日期
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// formatDate 格式化日期为yyyy-MM-dd
func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// formatDatePtr 格式化可空日期,nil保持为null
func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// formatDateTime 格式化时间戳
func formatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

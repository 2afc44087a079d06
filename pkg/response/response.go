package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/vasujain/booksync/pkg/errors"
	"github.com/vasujain/booksync/pkg/pagination"
)

// Response 统一响应结构
// 设计说明：
// 1. Status是HTTP状态码（与响应头一致，方便客户端直接判断）
// 2. Message是用户友好的提示信息
// 3. Data是业务数据，失败时为null
// 4. Pagination仅分页查询时返回
// 5. Timestamp为响应日期（yyyy-MM-dd）
type Response struct {
	Status     int                  `json:"status"`
	Message    string               `json:"message"`
	Data       interface{}          `json:"data,omitempty"`
	Pagination *pagination.PageInfo `json:"pagination,omitempty"`
	Timestamp  string               `json:"timestamp"`
}

func write(c *gin.Context, status int, message string, data interface{}, page *pagination.PageInfo) {
	c.JSON(status, Response{
		Status:     status,
		Message:    message,
		Data:       data,
		Pagination: page,
		Timestamp:  time.Now().Format("2006-01-02"),
	})
}

// OK 200成功响应
func OK(c *gin.Context, message string, data interface{}) {
	write(c, http.StatusOK, message, data, nil)
}

// Created 201创建成功响应
func Created(c *gin.Context, message string, data interface{}) {
	write(c, http.StatusCreated, message, data, nil)
}

// NoContent 204删除成功响应
// 204不携带响应体(net/http会丢弃204的body,写信封没有意义)
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Paginated 200分页成功响应
// data为当前页内容，分页元数据放在pagination字段
func Paginated(c *gin.Context, message string, data interface{}, page *pagination.PageInfo) {
	write(c, http.StatusOK, message, data, page)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	book, err := bookService.GetByID(ctx, id)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部错误只进日志，不回传客户端
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}

	write(c, apperrors.HTTPStatus(appErr.Code), appErr.Message, nil, nil)
}

// ErrorWithStatus 自定义状态码和消息
func ErrorWithStatus(c *gin.Context, status int, message string) {
	write(c, status, message, nil, nil)
}

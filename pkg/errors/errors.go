package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型，前三位对应HTTP状态码（40400→404）
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`      // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 格式化创建AppError
// 用途：NotFound类错误需要携带具体的id（"Book not found with id: xxx"）
func Newf(code int, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap 包装存储层错误（数据库I/O等）
// 用途：将底层错误转换为StoreFailure，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeStoreFailure,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeStoreFailure,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 400xx: InvalidArgument（参数校验失败）
// - 404xx: NotFound（资源不存在）
// - 409xx: Conflict（业务状态冲突）
// - 500xx: StoreFailure（存储层/内部错误）

const (
	// 参数错误（40000-40099）
	ErrCodeInvalidParams = 40000 // 参数错误(通用)
	ErrCodeInvalidRating = 40001 // 评分超出范围
	ErrCodeInvalidCopies = 40002 // 副本数量非法
	ErrCodeInvalidStatus = 40003 // 借阅状态非法
	ErrCodeInvalidDate   = 40004 // 日期格式非法
	ErrCodeBindError     = 40005 // 参数绑定失败

	// 资源不存在（40400-40499）
	ErrCodeNotFound       = 40400 // 资源不存在(通用)
	ErrCodeUserNotFound   = 40401 // 用户不存在
	ErrCodeBookNotFound   = 40402 // 图书不存在
	ErrCodeLoanNotFound   = 40403 // 借阅记录不存在
	ErrCodeReviewNotFound = 40404 // 书评不存在

	// 业务冲突（40900-40999）
	ErrCodeConflict            = 40900 // 状态冲突(通用)
	ErrCodeNoAvailableCopies   = 40901 // 无可借副本
	ErrCodeLoanAlreadyReturned = 40902 // 借阅已归还
	ErrCodeInvalidTransition   = 40903 // 非法状态流转
	ErrCodeDuplicateEntry      = 40904 // 唯一键冲突(用户名/邮箱)

	// 存储层/内部错误（50000-50099）
	ErrCodeStoreFailure = 50000 // 存储层错误
	ErrCodeInternal     = 50001 // 内部错误
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 存储层
	ErrStoreFailure = New(ErrCodeStoreFailure, "存储层错误")
	ErrInternal     = New(ErrCodeInternal, "系统内部错误")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError     = New(ErrCodeBindError, "参数格式错误")

	// 唯一键冲突
	ErrDuplicateEntry = New(ErrCodeDuplicateEntry, "记录已存在")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成StoreFailure）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}

// HTTPStatus 从错误码推导HTTP状态码
// 约定：错误码前三位即HTTP状态码（40402 → 404）
func HTTPStatus(code int) int {
	status := code / 100
	if status < 100 || status > 599 {
		return 500
	}
	return status
}

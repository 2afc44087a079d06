package loan

import (
	apperrors "github.com/vasujain/booksync/pkg/errors"
)

// 借阅领域错误定义
var (
	// ErrInvalidDates 应还日期不能早于借出日期
	ErrInvalidDates = apperrors.New(apperrors.ErrCodeInvalidDate, "应还日期不能早于借出日期")

	// ErrInvalidStatus 非法的状态值
	ErrInvalidStatus = apperrors.New(apperrors.ErrCodeInvalidStatus, "借阅状态必须为active、returned或overdue")

	// ErrAlreadyReturned 借阅已归还,不可再次更新状态/归还日期
	ErrAlreadyReturned = apperrors.New(apperrors.ErrCodeLoanAlreadyReturned, "借阅已归还,不允许再次操作")

	// ErrInvalidTransition 非法状态流转
	ErrInvalidTransition = apperrors.New(apperrors.ErrCodeInvalidTransition, "不允许的借阅状态流转")

	// ErrReturnedDateRequired 流转到returned必须提供归还日期
	ErrReturnedDateRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "归还操作必须提供returnedDate")
)

// NotFound 借阅记录不存在
func NotFound(id string) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeLoanNotFound, "借阅记录不存在: %s", id)
}

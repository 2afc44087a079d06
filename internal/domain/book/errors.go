package book

import (
	apperrors "github.com/vasujain/booksync/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrInvalidCopies 副本数量违反不变式(0 <= available <= total)
	ErrInvalidCopies = apperrors.New(apperrors.ErrCodeInvalidCopies, "可借副本数必须在0与总副本数之间")

	// ErrNoAvailableCopies 无可借副本(借阅创建时由协调器返回)
	ErrNoAvailableCopies = apperrors.New(apperrors.ErrCodeNoAvailableCopies, "图书当前无可借副本")
)

// NotFound 图书不存在(携带具体id,便于定位)
func NotFound(id string) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeBookNotFound, "图书不存在: %s", id)
}

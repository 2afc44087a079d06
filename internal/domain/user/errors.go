package user

import (
	apperrors "github.com/vasujain/booksync/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrInvalidRole 角色必须为admin或member
	ErrInvalidRole = apperrors.New(apperrors.ErrCodeInvalidParams, "角色必须为admin或member")

	// ErrDuplicate 用户名或邮箱已被占用(存储层唯一索引冲突)
	ErrDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "用户名或邮箱已存在")
)

// NotFound 用户不存在
func NotFound(id string) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeUserNotFound, "用户不存在: %s", id)
}

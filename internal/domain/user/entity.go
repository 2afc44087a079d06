package user

import (
	"time"

	"github.com/google/uuid"
)

// Role 用户角色
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Valid 角色是否合法
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// User 用户实体(图书馆成员)
// 设计说明:
// 1. PasswordHash按原样存储(哈希由上游负责,本服务不做加密)
// 2. Username/Email的唯一性由存储层唯一索引保证
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser 创建新用户(工厂方法)
func NewUser(username, email, passwordHash string, role Role, firstName, lastName string) (*User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	now := time.Now()
	return &User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// UpdateParams 字段级部分更新参数(nil表示不修改)
type UpdateParams struct {
	Username  *string
	Email     *string
	Role      *string
	FirstName *string
	LastName  *string
}

// ApplyUpdate 应用部分更新
func (u *User) ApplyUpdate(p UpdateParams) error {
	if p.Role != nil && !Role(*p.Role).Valid() {
		return ErrInvalidRole
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = Role(*p.Role)
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	u.UpdatedAt = time.Now()
	return nil
}

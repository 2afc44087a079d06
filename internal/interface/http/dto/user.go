package dto

import (
	"github.com/vasujain/booksync/internal/domain/user"
)

// CreateUserRequest HTTP用户创建请求
// password为上游已处理的不透明哈希值,服务端不做加密
type CreateUserRequest struct {
	Username  string `json:"username" binding:"required,min=2,max=50" example:"alice"`
	Email     string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password  string `json:"password" binding:"required,max=200"`
	Role      string `json:"role" binding:"omitempty,oneof=admin member" example:"member"`
	FirstName string `json:"firstName" binding:"max=100"`
	LastName  string `json:"lastName" binding:"max=100"`
}

// ToParams 转换为领域层创建参数
func (r *CreateUserRequest) ToParams() user.CreateParams {
	return user.CreateParams{
		Username:  r.Username,
		Email:     r.Email,
		Password:  r.Password,
		Role:      r.Role,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// UpdateUserRequest HTTP用户部分更新请求
type UpdateUserRequest struct {
	Username  *string `json:"username" binding:"omitempty,min=2,max=50"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Role      *string `json:"role" binding:"omitempty,oneof=admin member"`
	FirstName *string `json:"firstName" binding:"omitempty,max=100"`
	LastName  *string `json:"lastName" binding:"omitempty,max=100"`
}

// ToParams 转换为领域层更新参数
func (r *UpdateUserRequest) ToParams() user.UpdateParams {
	return user.UpdateParams{
		Username:  r.Username,
		Email:     r.Email,
		Role:      r.Role,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// UserResponse HTTP用户响应(不包含密码哈希)
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username" example:"alice"`
	Email     string `json:"email" example:"alice@example.com"`
	Role      string `json:"role" example:"member"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CreatedAt string `json:"createdAt" example:"2024-01-15 10:30:00"`
	UpdatedAt string `json:"updatedAt" example:"2024-01-15 10:30:00"`
}

// NewUserResponse 领域实体 → HTTP响应
func NewUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: formatDateTime(u.CreatedAt),
		UpdatedAt: formatDateTime(u.UpdatedAt),
	}
}

// NewUserResponses 批量转换(列表响应)
func NewUserResponses(users []*user.User) []*UserResponse {
	out := make([]*UserResponse, len(users))
	for i, u := range users {
		out[i] = NewUserResponse(u)
	}
	return out
}

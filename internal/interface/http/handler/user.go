package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vasujain/booksync/internal/domain/user"
	"github.com/vasujain/booksync/internal/interface/http/dto"
	apperrors "github.com/vasujain/booksync/pkg/errors"
	"github.com/vasujain/booksync/pkg/response"
)

// UserHandler 用户HTTP处理器
type UserHandler struct {
	users user.Service
}

// NewUserHandler 创建用户处理器
func NewUserHandler(users user.Service) *UserHandler {
	return &UserHandler{users: users}
}

// List 用户列表
// @Summary      用户列表
// @Tags         用户
// @Produce      json
// @Param        paginate query bool false "是否分页" default(false)
// @Param        page query int false "页码(从0开始)" default(0)
// @Param        size query int false "每页条数" default(10)
// @Param        sortBy query string false "排序列" default(username)
// @Param        sortDirection query string false "排序方向(asc/desc)" default(asc)
// @Success      200 {object} response.Response{data=[]dto.UserResponse}
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeBindError, "参数错误: "+err.Error()))
		return
	}

	result, err := h.users.List(c.Request.Context(), q.Paginate, q.Page, q.Size, q.SortBy, q.SortDirection)
	if err != nil {
		response.Error(c, err)
		return
	}

	data := dto.NewUserResponses(result.Items)
	if result.Page != nil {
		response.Paginated(c, "Users retrieved successfully", data, result.Page)
		return
	}
	response.OK(c, "Users retrieved successfully", data)
}

// Get 用户详情
// @Summary      用户详情
// @Tags         用户
// @Produce      json
// @Param        id path string true "用户ID(UUID)"
// @Success      200 {object} response.Response{data=dto.UserResponse}
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "User retrieved successfully", dto.NewUserResponse(u))
}

// Create 创建用户
// @Summary      创建用户
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateUserRequest true "用户信息"
// @Success      201 {object} response.Response{data=dto.UserResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "用户名/邮箱已存在"
// @Router       /api/v1/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeBindError, "参数错误: "+err.Error()))
		return
	}

	u, err := h.users.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "User created successfully", dto.NewUserResponse(u))
}

// Update 部分更新用户
// @Summary      更新用户
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        id path string true "用户ID(UUID)"
// @Param        request body dto.UpdateUserRequest true "更新字段"
// @Success      200 {object} response.Response{data=dto.UserResponse}
// @Failure      404 {object} response.Response "用户不存在"
// @Failure      409 {object} response.Response "用户名/邮箱已存在"
// @Router       /api/v1/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeBindError, "参数错误: "+err.Error()))
		return
	}

	u, err := h.users.Update(c.Request.Context(), c.Param("id"), req.ToParams())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "User updated successfully", dto.NewUserResponse(u))
}

// Delete 删除用户
// @Summary      删除用户
// @Description  不级联删除该用户的借阅/书评记录
// @Tags         用户
// @Produce      json
// @Param        id path string true "用户ID(UUID)"
// @Success      204 "无响应体"
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

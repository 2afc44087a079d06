package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vasujain/booksync/internal/domain/review"
	"github.com/vasujain/booksync/internal/interface/http/dto"
	apperrors "github.com/vasujain/booksync/pkg/errors"
	"github.com/vasujain/booksync/pkg/response"
)

// ReviewHandler 书评HTTP处理器
type ReviewHandler struct {
	reviews review.Service
}

// NewReviewHandler 创建书评处理器
func NewReviewHandler(reviews review.Service) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// List 书评列表
// @Summary      书评列表
// @Tags         书评
// @Produce      json
// @Param        paginate query bool false "是否分页" default(false)
// @Param        page query int false "页码(从0开始)" default(0)
// @Param        size query int false "每页条数" default(10)
// @Param        sortBy query string false "排序列" default(created_at)
// @Param        sortDirection query string false "排序方向(asc/desc)" default(asc)
// @Success      200 {object} response.Response{data=[]dto.ReviewResponse}
// @Router       /api/v1/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeBindError, "参数错误: "+err.Error()))
		return
	}

	result, err := h.reviews.List(c.Request.Context(), q.Paginate, q.Page, q.Size, q.SortBy, q.SortDirection)
	if err != nil {
		response.Error(c, err)
		return
	}

	data := dto.NewReviewResponses(result.Items)
	if result.Page != nil {
		response.Paginated(c, "Book reviews retrieved successfully", data, result.Page)
		return
	}
	response.OK(c, "Book reviews retrieved successfully", data)
}

// Get 书评详情
// @Summary      书评详情
// @Tags         书评
// @Produce      json
// @Param        id path string true "书评ID(UUID)"
// @Success      200 {object} response.Response{data=dto.ReviewResponse}
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /api/v1/reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	rv, err := h.reviews.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Book review retrieved successfully", dto.NewReviewResponse(rv))
}

// Create 创建书评
// @Summary      创建书评
// @Description  关联的图书与用户必须存在,评分范围[1,5]
// @Tags         书评
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateReviewRequest true "书评信息"
// @Success      201 {object} response.Response{data=dto.ReviewResponse}
// @Failure      400 {object} response.Response "评分超出范围"
// @Failure      404 {object} response.Response "图书/用户不存在"
// @Router       /api/v1/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeBindError, "参数错误: "+err.Error()))
		return
	}

	rv, err := h.reviews.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Book review created successfully", dto.NewReviewResponse(rv))
}

// Update 部分更新书评
// @Summary      更新书评
// @Tags         书评
// @Accept       json
// @Produce      json
// @Param        id path string true "书评ID(UUID)"
// @Param        request body dto.UpdateReviewRequest true "更新字段"
// @Success      200 {object} response.Response{data=dto.ReviewResponse}
// @Failure      400 {object} response.Response "评分超出范围"
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /api/v1/reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeBindError, "参数错误: "+err.Error()))
		return
	}

	rv, err := h.reviews.Update(c.Request.Context(), c.Param("id"), req.ToParams())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Book review updated successfully", dto.NewReviewResponse(rv))
}

// Delete 删除书评
// @Summary      删除书评
// @Tags         书评
// @Produce      json
// @Param        id path string true "书评ID(UUID)"
// @Success      204 "无响应体"
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /api/v1/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviews.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

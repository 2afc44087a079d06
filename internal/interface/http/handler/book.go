package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vasujain/booksync/internal/domain/book"
	"github.com/vasujain/booksync/internal/interface/http/dto"
	apperrors "github.com/vasujain/booksync/pkg/errors"
	"github.com/vasujain/booksync/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	books book.Service
}

// NewBookHandler 创建图书处理器
func NewBookHandler(books book.Service) *BookHandler {
	return &BookHandler{books: books}
}

// List 图书列表
// @Summary      图书列表
// @Description  查询图书列表,paginate=true时分页返回
// @Tags         图书
// @Produce      json
// @Param        paginate query bool false "是否分页" default(false)
// @Param        page query int false "页码(从0开始)" default(0)
// @Param        size query int false "每页条数" default(10)
// @Param        sortBy query string false "排序列" default(created_at)
// @Param        sortDirection query string false "排序方向(asc/desc)" default(desc)
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeBindError, "参数错误: "+err.Error()))
		return
	}

	result, err := h.books.List(c.Request.Context(), q.Paginate, q.Page, q.Size, q.SortBy, q.SortDirection)
	if err != nil {
		response.Error(c, err)
		return
	}

	data := dto.NewBookResponses(result.Items)
	if result.Page != nil {
		response.Paginated(c, "Books retrieved successfully", data, result.Page)
		return
	}
	response.OK(c, "Books retrieved successfully", data)
}

// Get 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path string true "图书ID(UUID)"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	b, err := h.books.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Book retrieved successfully", dto.NewBookResponse(b))
}

// Create 创建图书
// @Summary      创建图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeBindError, "参数错误: "+err.Error()))
		return
	}

	b, err := h.books.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Book created successfully", dto.NewBookResponse(b))
}

// Update 部分更新图书
// @Summary      更新图书
// @Description  字段级部分更新,缺省字段保持不变
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path string true "图书ID(UUID)"
// @Param        request body dto.UpdateBookRequest true "更新字段"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "副本数量非法"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeBindError, "参数错误: "+err.Error()))
		return
	}

	b, err := h.books.Update(c.Request.Context(), c.Param("id"), req.ToParams())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Book updated successfully", dto.NewBookResponse(b))
}

// Delete 删除图书
// @Summary      删除图书
// @Description  不级联删除关联的借阅/书评记录
// @Tags         图书
// @Produce      json
// @Param        id path string true "图书ID(UUID)"
// @Success      204 "无响应体"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	if err := h.books.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

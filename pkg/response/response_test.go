package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/vasujain/booksync/pkg/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// TestEnvelope 测试统一响应信封
func TestEnvelope(t *testing.T) {
	t.Run("OK返回200信封", func(t *testing.T) {
		c, w := newTestContext()
		OK(c, "Books retrieved successfully", []string{"a"})

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Equal(t, 200, resp.Status)
		assert.Equal(t, "Books retrieved successfully", resp.Message)
		assert.NotEmpty(t, resp.Timestamp)
		assert.Nil(t, resp.Pagination)
	})

	t.Run("Created返回201信封", func(t *testing.T) {
		c, w := newTestContext()
		Created(c, "Book created successfully", gin.H{"id": "book-1"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 201, decodeEnvelope(t, w).Status)
	})

	t.Run("NoContent返回204且无响应体", func(t *testing.T) {
		// net/http对204静默丢弃body,所以不写信封
		c, w := newTestContext()
		NoContent(c)
		c.Writer.WriteHeaderNow() // 引擎在handler链结束后才真正写头

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("Error按错误码映射HTTP状态", func(t *testing.T) {
		c, w := newTestContext()
		Error(c, apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Equal(t, 404, resp.Status)
		assert.Equal(t, "图书不存在", resp.Message)
	})
}

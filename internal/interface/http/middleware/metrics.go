package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vasujain/booksync/pkg/metrics"
)

// Metrics HTTP指标采集中间件
//
// 采集三类指标:
// 1. http_requests_total{method,path,status} 请求总数
// 2. http_request_duration_seconds{method,path} 请求耗时
// 3. http_requests_in_progress 在途请求数
//
// path标签使用路由模板(/api/v1/books/:id)而非实际URL,
// 避免每个UUID产生一个新的时间序列(基数爆炸)。
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		metrics.IncGauge(metrics.HTTPRequestsInProgress)
		defer metrics.DecGauge(metrics.HTTPRequestsInProgress)

		c.Next()

		path := c.FullPath()
		if path == "" {
			// 未匹配任何路由(404)
			path = "unmatched"
		}

		labels := map[string]string{
			"method": c.Request.Method,
			"path":   path,
		}

		metrics.ObserveHistogramVec(metrics.HTTPRequestDuration, labels, time.Since(start).Seconds())
		metrics.IncCounterVec(metrics.HTTPRequestsTotal, map[string]string{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		})
	}
}

// Package metrics 提供基于Prometheus的指标收集
//
// 指标设计：
// 1. HTTP层: 请求总数/耗时/在途数(由gin中间件采集)
// 2. 借阅业务: 借出/归还总数、无副本冲突数、借出耗时
//
// 使用方式：
// 1. 程序启动时调用InitMetrics()注册所有指标
// 2. 通过/metrics端点暴露给Prometheus抓取
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP请求指标
	HTTPRequestsTotal      *prometheus.CounterVec
	HTTPRequestDuration    *prometheus.HistogramVec
	HTTPRequestsInProgress prometheus.Gauge

	// 借阅业务指标
	LoansCreatedTotal    prometheus.Counter
	LoansReturnedTotal   prometheus.Counter
	LoanConflictsTotal   prometheus.Counter
	LoanCreationDuration prometheus.Histogram
)

// initialized 防止重复注册(promauto重复注册会panic)
var initialized bool

// InitMetrics 初始化所有指标
// 必须在程序启动时调用一次，注册到默认Registry
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

	// HTTP请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	// 借阅业务指标
	LoansCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "loans_created_total",
			Help: "借阅创建总数",
		},
	)

	LoansReturnedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "loans_returned_total",
			Help: "借阅归还总数",
		},
	)

	LoanConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "loan_conflicts_total",
			Help: "因无可借副本被拒绝的借阅请求总数",
		},
	)

	LoanCreationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "loan_creation_duration_seconds",
			Help: "借阅创建耗时（秒），含行锁等待",
			// 借阅创建涉及行锁,长尾偏长
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
	)
}

// =========================================
// 辅助函数
// =========================================

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	if counter != nil {
		counter.Inc()
	}
}

// IncCounterVec 按标签递增CounterVec
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter != nil {
		counter.With(labels).Inc()
	}
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Inc()
	}
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Dec()
	}
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	if gauge != nil {
		gauge.Set(value)
	}
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	if histogram != nil {
		histogram.Observe(value)
	}
}

// ObserveHistogramVec 按标签记录HistogramVec观测值
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram != nil {
		histogram.With(labels).Observe(value)
	}
}

// ObserveDuration 记录耗时(从start到现在)
func ObserveDuration(histogram prometheus.Histogram, start time.Time) {
	ObserveHistogram(histogram, time.Since(start).Seconds())
}

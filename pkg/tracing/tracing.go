// Package tracing 提供基于OpenTelemetry的分布式追踪框架
//
// 核心概念：
//
//  1. Trace（追踪）：一个完整的请求链路，如一次借阅创建从HTTP入口到
//     数据库提交、事件发布的全过程
//  2. Span（跨度）：链路中的一个操作单元，记录操作名称、起止时间和状态
//  3. SpanContext：跨服务传递的元数据（TraceID、SpanID、ParentSpanID）
//
// 使用OTLP协议导出，厂商中立（Jaeger、Zipkin、Datadog均可接收）。
// 追踪按配置开关启用，未启用时不初始化全局Provider，业务代码零开销。
package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// InitTracer 初始化全局Tracer Provider
//
// 参数：
//   - serviceName: 服务名称（在Jaeger UI中显示）
//   - endpoint: OTLP gRPC端点（如 localhost:4317）
//
// 返回关闭函数，程序退出前调用以刷新未发送的Span。
//
// 设计要点：
// 1. 采样策略：AlwaysSample（100%采样），适合开发/测试环境；
//    生产环境建议改为 sdktrace.TraceIDRatioBased(0.01)
// 2. BatchSpanProcessor批量发送Span，性能优于逐条发送
func InitTracer(serviceName, endpoint string) (func(context.Context) error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// gRPC传输（默认端口4317），连接为惰性建立
	exporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(), // 禁用TLS（生产环境应启用）
	)
	if err != nil {
		return nil, fmt.Errorf("创建OTLP exporter失败: %w", err)
	}

	// Resource描述产生遥测数据的实体,属性附加到所有Span
	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("创建资源属性失败: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	// 全局Provider: 业务代码直接用otel.Tracer()获取,无需逐层传递
	otel.SetTracerProvider(tp)

	// W3C Trace Context + Baggage,跨服务HTTP调用自动传递TraceID
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return tp.Shutdown(ctx)
	}

	return shutdown, nil
}

// StartSpan 创建一个新的Span（便捷函数）
//
// 必须使用返回的ctx调用下游函数，否则无法构建调用树。
// Span命名使用操作名（如CreateLoan），动态值放属性而非名称。
func StartSpan(ctx context.Context, tracerName, spanName string) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	return tracer.Start(ctx, spanName)
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vasujain/booksync/internal/domain/book"
	"github.com/vasujain/booksync/internal/domain/loan"
	"github.com/vasujain/booksync/internal/domain/review"
	"github.com/vasujain/booksync/internal/domain/user"
	"github.com/vasujain/booksync/internal/infrastructure/config"
	"github.com/vasujain/booksync/internal/infrastructure/persistence/mysql"
	"github.com/vasujain/booksync/internal/interface/http/handler"
	"github.com/vasujain/booksync/internal/interface/http/middleware"
	"github.com/vasujain/booksync/pkg/metrics"
	"github.com/vasujain/booksync/pkg/mq"
	"github.com/vasujain/booksync/pkg/response"
	"github.com/vasujain/booksync/pkg/tracing"
)

// @title        BookSync API
// @version      1.0
// @description  图书馆管理服务:图书/用户/借阅/书评的CRUD与借阅生命周期协调
// @BasePath     /api/v1
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// 2. 初始化指标
	metrics.InitMetrics()

	// 3. 初始化追踪(按配置开关)
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.Service, cfg.Tracing.Endpoint)
		if err != nil {
			log.Fatalf("初始化追踪失败: %v", err)
		}
		defer shutdown(context.Background())
	}

	// 4. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 5. 借阅事件发布器(按配置开关,未启用时使用空发布器)
	var events loan.EventPublisher = loan.NopPublisher{}
	if cfg.MQ.Enabled {
		publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
		if err != nil {
			log.Fatalf("初始化消息发布器失败: %v", err)
		}
		defer publisher.Close()
		events = publisher
	}

	// 6. 依赖注入(手动组装)
	// Repository ← Service ← Handler
	txManager := mysql.NewTxManager(db)
	bookRepo := mysql.NewBookRepository(db)
	userRepo := mysql.NewUserRepository(db)
	loanRepo := mysql.NewLoanRepository(db)
	reviewRepo := mysql.NewReviewRepository(db)

	bookService := book.NewService(bookRepo, txManager)
	userService := user.NewService(userRepo, txManager)
	loanService := loan.NewService(loanRepo, bookRepo, userRepo, txManager, events)
	reviewService := review.NewService(reviewRepo, bookRepo, userRepo, txManager)

	bookHandler := handler.NewBookHandler(bookService)
	userHandler := handler.NewUserHandler(userService)
	loanHandler := handler.NewLoanHandler(loanService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	// 7. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Logger(), middleware.Metrics(), gin.Recovery())

	// 8. 注册路由
	registerRoutes(r, bookHandler, userHandler, loanHandler, reviewHandler)

	// 9. 启动服务(优雅退出)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		fmt.Printf("\n🚀 服务启动成功！\n")
		fmt.Printf("   访问地址: http://localhost%s\n", addr)
		fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
		fmt.Printf("   API文档:  http://localhost%s/swagger/index.html\n", addr)
		fmt.Printf("   指标端点: http://localhost%s/metrics\n", addr)
		fmt.Printf("\n按Ctrl+C停止服务\n\n")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("启动服务失败: %v", err)
		}
	}()

	// 等待退出信号,给在途请求10秒完成
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n正在关闭服务...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务关闭失败: %v", err)
	}
	fmt.Println("服务已退出")
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	bookHandler *handler.BookHandler,
	userHandler *handler.UserHandler,
	loanHandler *handler.LoanHandler,
	reviewHandler *handler.ReviewHandler,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.OK(c, "pong", gin.H{"status": "healthy"})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.List)
			books.GET("/:id", bookHandler.Get)
			books.POST("", bookHandler.Create)
			books.PUT("/:id", bookHandler.Update)
			books.DELETE("/:id", bookHandler.Delete)
		}

		users := v1.Group("/users")
		{
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.Get)
			users.POST("", userHandler.Create)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
		}

		loans := v1.Group("/loans")
		{
			loans.GET("", loanHandler.List)
			loans.GET("/:id", loanHandler.Get)
			loans.POST("", loanHandler.Create)
			loans.PUT("/:id", loanHandler.Update)
			loans.DELETE("/:id", loanHandler.Delete)
		}

		reviews := v1.Group("/reviews")
		{
			reviews.GET("", reviewHandler.List)
			reviews.GET("/:id", reviewHandler.Get)
			reviews.POST("", reviewHandler.Create)
			reviews.PUT("/:id", reviewHandler.Update)
			reviews.DELETE("/:id", reviewHandler.Delete)
		}
	}
}

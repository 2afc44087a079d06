//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// Wire是编译期依赖注入工具:运行 `wire gen ./cmd/api` 生成wire_gen.go,
// 零运行时开销、类型安全、编译期检测循环依赖。
// 当前main.go使用手动组装,本文件描述同一条依赖链,二者保持一致。
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	"github.com/vasujain/booksync/internal/domain/book"
	"github.com/vasujain/booksync/internal/domain/loan"
	"github.com/vasujain/booksync/internal/domain/review"
	"github.com/vasujain/booksync/internal/domain/user"
	"github.com/vasujain/booksync/internal/infrastructure/config"
	"github.com/vasujain/booksync/internal/infrastructure/persistence/mysql"
	"github.com/vasujain/booksync/internal/interface/http/handler"
	"github.com/vasujain/booksync/internal/interface/http/middleware"
	"github.com/vasujain/booksync/pkg/mq"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,       // 加载配置文件
	mysql.NewDB,       // 创建MySQL连接
	newEventPublisher, // 借阅事件发布器(按配置开关)
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewBookRepository,
	mysql.NewUserRepository,
	mysql.NewLoanRepository,
	mysql.NewReviewRepository,
	mysql.NewTxManager,
	wire.Bind(new(book.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(user.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(loan.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(review.TxManager), new(*mysql.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService,
	user.NewService,
	loan.NewService,
	review.NewService,
)

// handlerSet 接口层依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewUserHandler,
	handler.NewLoanHandler,
	handler.NewReviewHandler,
)

// newEventPublisher 根据配置创建事件发布器
func newEventPublisher(cfg *config.Config) (loan.EventPublisher, error) {
	if !cfg.MQ.Enabled {
		return loan.NopPublisher{}, nil
	}
	return mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
}

// newRouter 组装Gin引擎
func newRouter(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	userHandler *handler.UserHandler,
	loanHandler *handler.LoanHandler,
	reviewHandler *handler.ReviewHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Logger(), middleware.Metrics(), gin.Recovery())
	registerRoutes(r, bookHandler, userHandler, loanHandler, reviewHandler)
	return r
}

// InitializeRouter Wire注入器:构造完整的HTTP路由
func InitializeRouter() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		handlerSet,
		newRouter,
	)
	return nil, nil
}

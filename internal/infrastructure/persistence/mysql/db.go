package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vasujain/booksync/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构（开发环境便利;生产环境应使用版本化迁移脚本）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&BookModel{},
		&UserModel{},
		&LoanModel{},
		&BookReviewModel{},
	)
}

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. domain/book/entity.go是领域实体,不依赖GORM
// 3. Repository负责两者之间的转换
// 4. ID为UUID字符串(char(36)),由核心层分配,数据库不生成主键
// 5. Authors为JSON列,保持作者列表的顺序
type BookModel struct {
	ID              string         `gorm:"type:char(36);primaryKey"`
	Title           string         `gorm:"size:200;not null;comment:书名"`
	Authors         datatypes.JSON `gorm:"comment:作者列表(有序,JSON数组)"`
	Description     string         `gorm:"type:text;comment:图书描述"`
	Publisher       string         `gorm:"size:100;comment:出版社"`
	PublishedDate   string         `gorm:"size:50;comment:出版日期"`
	Category        string         `gorm:"size:100;index;comment:分类"`
	TotalCopies     int            `gorm:"not null;default:0;comment:总副本数"`
	AvailableCopies int            `gorm:"not null;default:0;comment:可借副本数"`
	CreatedAt       time.Time      `gorm:"index;comment:创建时间"`
	UpdatedAt       time.Time      `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "book"
}

// UserModel GORM用户模型
// PasswordHash按原样存储,服务本身不做加密
type UserModel struct {
	ID           string    `gorm:"type:char(36);primaryKey"`
	Username     string    `gorm:"uniqueIndex;size:100;not null;comment:用户名"`
	Email        string    `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	PasswordHash string    `gorm:"size:255;not null;comment:密码哈希(不透明)"`
	Role         string    `gorm:"size:20;not null;default:member;comment:角色(admin/member)"`
	FirstName    string    `gorm:"size:50;comment:名"`
	LastName     string    `gorm:"size:50;comment:姓"`
	CreatedAt    time.Time `gorm:"comment:创建时间"`
	UpdatedAt    time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "user"
}

// LoanModel GORM借阅模型
// 设计说明:
// 1. UserID/BookID为弱引用(仅索引,不做外键级联)
// 2. ReturnedDate可空,非空 ⇔ status=returned
// 3. 日期列使用DATE类型(借出/应还/归还均为日期粒度)
type LoanModel struct {
	ID           string     `gorm:"type:char(36);primaryKey"`
	UserID       string     `gorm:"type:char(36);index;not null;comment:借阅人ID"`
	BookID       string     `gorm:"type:char(36);index;not null;comment:图书ID"`
	BorrowedDate time.Time  `gorm:"type:date;not null;comment:借出日期"`
	DueDate      time.Time  `gorm:"type:date;not null;comment:应还日期"`
	ReturnedDate *time.Time `gorm:"type:date;comment:归还日期"`
	Status       string     `gorm:"size:20;index;not null;default:active;comment:状态(active/returned/overdue)"`
	CreatedAt    time.Time  `gorm:"comment:创建时间"`
	UpdatedAt    time.Time  `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (LoanModel) TableName() string {
	return "loan"
}

// BookReviewModel GORM书评模型
// book_review表没有updated_at列(书评创建时间不可变,内容可改但不跟踪时间)
type BookReviewModel struct {
	ID         string    `gorm:"type:char(36);primaryKey"`
	BookID     string    `gorm:"type:char(36);index;not null;comment:图书ID"`
	UserID     string    `gorm:"type:char(36);index;not null;comment:用户ID"`
	Rating     int       `gorm:"not null;comment:评分(1-5)"`
	ReviewText string    `gorm:"type:text;comment:书评内容"`
	CreatedAt  time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (BookReviewModel) TableName() string {
	return "book_review"
}

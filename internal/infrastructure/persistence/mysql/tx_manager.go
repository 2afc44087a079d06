package mysql

import (
	"context"

	"gorm.io/gorm"
)

// txKey 事务DB在context中的键(非导出类型,避免键冲突)
type txKey struct{}

// TxManager 事务管理器
// 设计说明:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. 满足各domain包定义的TxManager接口
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn函数内的所有Repository操作都在同一事务中执行:
// fn返回error时自动ROLLBACK,返回nil时自动COMMIT
//
// 使用示例(借阅创建):
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    b, err := bookRepo.LockByID(ctx, bookID) // SELECT FOR UPDATE
//	    if err != nil {
//	        return err
//	    }
//	    if !b.HasAvailableCopies() {
//	        return book.ErrNoAvailableCopies
//	    }
//	    if err := loanRepo.Create(ctx, l); err != nil {
//	        return err // 自动回滚
//	    }
//	    return bookRepo.AdjustAvailableCopies(ctx, bookID, -1)
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 将事务DB注入到Context中,Repository的getDB会提取
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// getDB 从context获取事务DB,没有事务则使用默认DB
// 所有Repository的写路径都必须经过这里,保证参与外层事务
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

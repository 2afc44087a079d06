package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vasujain/booksync/internal/domain/loan"
	apperrors "github.com/vasujain/booksync/pkg/errors"
	"github.com/vasujain/booksync/pkg/pagination"
)

// loanRepository 借阅仓储实现(MySQL)
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository 创建借阅仓储
func NewLoanRepository(db *gorm.DB) loan.Repository {
	return &loanRepository{db: db}
}

// Create 创建借阅记录
func (r *loanRepository) Create(ctx context.Context, l *loan.Loan) error {
	if err := getDB(ctx, r.db).Create(toLoanModel(l)).Error; err != nil {
		return apperrors.Wrap(err, "创建借阅记录失败")
	}
	return nil
}

// FindByID 根据ID查找借阅
func (r *loanRepository) FindByID(ctx context.Context, id string) (*loan.Loan, error) {
	var model LoanModel
	err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.NotFound(id)
		}
		return nil, apperrors.Wrap(err, "查询借阅记录失败")
	}
	return toLoanEntity(&model), nil
}

// FindPage 按规范化查询描述符取一页有序结果
func (r *loanRepository) FindPage(ctx context.Context, q pagination.Query) ([]*loan.Loan, error) {
	var models []LoanModel
	err := getDB(ctx, r.db).
		Order(q.OrderClause()).
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询借阅列表失败")
	}

	loans := make([]*loan.Loan, len(models))
	for i := range models {
		loans[i] = toLoanEntity(&models[i])
	}
	return loans, nil
}

// Count 借阅总数
func (r *loanRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := getDB(ctx, r.db).Model(&LoanModel{}).Count(&total).Error; err != nil {
		return 0, apperrors.Wrap(err, "查询借阅总数失败")
	}
	return total, nil
}

// Update 更新借阅记录
func (r *loanRepository) Update(ctx context.Context, l *loan.Loan) error {
	if err := getDB(ctx, r.db).Save(toLoanModel(l)).Error; err != nil {
		return apperrors.Wrap(err, "更新借阅记录失败")
	}
	return nil
}

// Delete 删除借阅记录
func (r *loanRepository) Delete(ctx context.Context, id string) error {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&LoanModel{})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除借阅记录失败")
	}
	if result.RowsAffected == 0 {
		return loan.NotFound(id)
	}
	return nil
}

// LockByID 悲观锁查询借阅(归还时串行化重复请求)
func (r *loanRepository) LockByID(ctx context.Context, id string) (*loan.Loan, error) {
	var model LoanModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.NotFound(id)
		}
		return nil, apperrors.Wrap(err, "锁定借阅记录失败")
	}
	return toLoanEntity(&model), nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toLoanModel(l *loan.Loan) *LoanModel {
	return &LoanModel{
		ID:           l.ID,
		UserID:       l.UserID,
		BookID:       l.BookID,
		BorrowedDate: l.BorrowedDate,
		DueDate:      l.DueDate,
		ReturnedDate: l.ReturnedDate,
		Status:       string(l.Status),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func toLoanEntity(model *LoanModel) *loan.Loan {
	return &loan.Loan{
		ID:           model.ID,
		UserID:       model.UserID,
		BookID:       model.BookID,
		BorrowedDate: model.BorrowedDate,
		DueDate:      model.DueDate,
		ReturnedDate: model.ReturnedDate,
		Status:       loan.Status(model.Status),
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

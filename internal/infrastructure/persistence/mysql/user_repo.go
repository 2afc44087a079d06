package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vasujain/booksync/internal/domain/user"
	apperrors "github.com/vasujain/booksync/pkg/errors"
	"github.com/vasujain/booksync/pkg/pagination"
)

// userRepository 用户仓储实现(MySQL)
// 用户名/邮箱的唯一性由数据库唯一索引保证,冲突转换为业务错误
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

// Create 创建用户
func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	model := toUserModel(u)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return user.ErrDuplicate
		}
		return apperrors.Wrap(err, "创建用户失败")
	}
	return nil
}

// FindByID 根据ID查找用户
func (r *userRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	var model UserModel
	err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.NotFound(id)
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}
	return toUserEntity(&model), nil
}

// FindPage 按规范化查询描述符取一页有序结果
func (r *userRepository) FindPage(ctx context.Context, q pagination.Query) ([]*user.User, error) {
	var models []UserModel
	err := getDB(ctx, r.db).
		Order(q.OrderClause()).
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询用户列表失败")
	}

	users := make([]*user.User, len(models))
	for i := range models {
		users[i] = toUserEntity(&models[i])
	}
	return users, nil
}

// Count 用户总数
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := getDB(ctx, r.db).Model(&UserModel{}).Count(&total).Error; err != nil {
		return 0, apperrors.Wrap(err, "查询用户总数失败")
	}
	return total, nil
}

// Update 更新用户
func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	model := toUserModel(u)
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return user.ErrDuplicate
		}
		return apperrors.Wrap(err, "更新用户失败")
	}
	return nil
}

// Delete 删除用户
func (r *userRepository) Delete(ctx context.Context, id string) error {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&UserModel{})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除用户失败")
	}
	if result.RowsAffected == 0 {
		return user.NotFound(id)
	}
	return nil
}

// LockByID 悲观锁查询用户(用于部分更新)
// SELECT ... FOR UPDATE锁定行,必须在TxManager事务内调用
func (r *userRepository) LockByID(ctx context.Context, id string) (*user.User, error) {
	var model UserModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.NotFound(id)
		}
		return nil, apperrors.Wrap(err, "锁定用户失败")
	}
	return toUserEntity(&model), nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toUserModel(u *user.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toUserEntity(model *UserModel) *user.User {
	return &user.User{
		ID:           model.ID,
		Username:     model.Username,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Role:         user.Role(model.Role),
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

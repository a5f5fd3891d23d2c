package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"etraxis/internal/domain/security"
	"etraxis/internal/infrastructure/persistence/mappers"
	"etraxis/internal/infrastructure/persistence/models"
	"etraxis/internal/shared/db"
	"etraxis/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint) (*security.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", userID))
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	var groupIDs []uint
	err := tx.
		Model(&models.MembershipModel{}).
		Where("user_id = ?", userID).
		Pluck("group_id", &groupIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load user memberships: %w", err)
	}

	return r.mapper.ToDomain(&model, groupIDs)
}

func (r *UserRepository) Save(ctx context.Context, user *security.User) error {
	model := r.mapper.ToModel(user)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return user.SetID(model.ID)
}

type GroupRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *GroupRepository) GetByID(ctx context.Context, groupID uint) (*security.Group, error) {
	var model models.GroupModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, groupID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("group %d not found", groupID))
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	return r.mapper.GroupToDomain(&model)
}

func (r *GroupRepository) Save(ctx context.Context, group *security.Group) error {
	model := r.mapper.GroupToModel(group)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save group: %w", err)
	}

	return group.SetID(model.ID)
}

func (r *GroupRepository) ListMembers(ctx context.Context, groupID uint) ([]uint, error) {
	var userIDs []uint
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.MembershipModel{}).
		Where("group_id = ?", groupID).
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}
	return userIDs, nil
}

// AddMember adds a user to a group. Adding an existing member is a no-op.
func (r *GroupRepository) AddMember(ctx context.Context, groupID, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := models.MembershipModel{GroupID: groupID, UserID: userID}
	if err := tx.Create(&model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to add group member: %w", err)
	}
	return nil
}

func (r *GroupRepository) RemoveMember(ctx context.Context, groupID, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&models.MembershipModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove group member: %w", err)
	}
	return nil
}

package mappers

import (
	"etraxis/internal/domain/security"
	"etraxis/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between security entities and
// persistence models. Group memberships live in their own table, so the
// caller loads them and passes the IDs in.
type UserMapper interface {
	ToModel(u *security.User) *models.UserModel
	ToDomain(model *models.UserModel, groupIDs []uint) (*security.User, error)

	GroupToModel(g *security.Group) *models.GroupModel
	GroupToDomain(model *models.GroupModel) (*security.Group, error)
}

type UserMapperImpl struct{}

// NewUserMapper creates a new UserMapper.
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *security.User) *models.UserModel {
	return &models.UserModel{
		ID:       u.ID(),
		Fullname: u.Fullname(),
		Timezone: u.Timezone(),
		IsAdmin:  u.IsAdmin(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel, groupIDs []uint) (*security.User, error) {
	return security.ReconstructUser(model.ID, model.Fullname, model.Timezone, model.IsAdmin, groupIDs)
}

func (m *UserMapperImpl) GroupToModel(g *security.Group) *models.GroupModel {
	return &models.GroupModel{
		ID:          g.ID(),
		ProjectID:   g.ProjectID(),
		Name:        g.Name(),
		Description: g.Description(),
	}
}

func (m *UserMapperImpl) GroupToDomain(model *models.GroupModel) (*security.Group, error) {
	return security.ReconstructGroup(model.ID, model.ProjectID, model.Name, model.Description)
}

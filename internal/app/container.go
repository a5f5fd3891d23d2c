// Package app wires the engine together: repositories over the database,
// the dictionary cache, the permission machinery, and every use case.
package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"etraxis/internal/application/access"
	fieldUsecases "etraxis/internal/application/fields/usecases"
	issueUsecases "etraxis/internal/application/issues/usecases"
	workflowUsecases "etraxis/internal/application/workflow/usecases"
	"etraxis/internal/domain/dictionary"
	"etraxis/internal/domain/field"
	"etraxis/internal/domain/issue"
	"etraxis/internal/domain/security"
	"etraxis/internal/domain/state"
	"etraxis/internal/domain/template"
	"etraxis/internal/infrastructure/cache"
	"etraxis/internal/infrastructure/config"
	"etraxis/internal/infrastructure/permission"
	"etraxis/internal/infrastructure/repository"
	"etraxis/internal/shared/db"
	"etraxis/internal/shared/logger"
)

// Repositories bundles every persistence port of the engine.
type Repositories struct {
	Templates   template.Repository
	States      state.Repository
	Fields      field.Repository
	Issues      issue.Repository
	Events      issue.EventRepository
	FieldValues issue.FieldValueRepository
	Changes     issue.ChangeRepository
	Users       security.UserRepository
	Groups      security.GroupRepository
	Decimals    dictionary.DecimalValues
	Strings     dictionary.StringValues
	Texts       dictionary.TextValues
	ListItems   dictionary.ListItems
}

// Engine is the assembled issue tracking engine.
type Engine struct {
	Repos    Repositories
	Resolver *access.Resolver
	Tracker  *issue.Tracker

	CreateField        *fieldUsecases.CreateFieldUseCase
	UpdateField        *fieldUsecases.UpdateFieldUseCase
	SetFieldPosition   *fieldUsecases.SetFieldPositionUseCase
	RemoveField        *fieldUsecases.RemoveFieldUseCase
	DeleteField        *fieldUsecases.DeleteFieldUseCase
	SetFieldPermission *fieldUsecases.SetFieldPermissionUseCase

	CreateState         *workflowUsecases.CreateStateUseCase
	SetInitialState     *workflowUsecases.SetInitialStateUseCase
	SetTransition       *workflowUsecases.SetTransitionUseCase
	SetResponsibleGroup *workflowUsecases.SetResponsibleGroupUseCase
	ChangeState         *workflowUsecases.ChangeStateUseCase

	CreateIssue   *issueUsecases.CreateIssueUseCase
	SetFieldValue *issueUsecases.SetFieldValueUseCase
	GetFieldValue *issueUsecases.GetFieldValueUseCase
}

// NewEngine assembles the engine on top of an open database connection. The
// Redis client is optional; without it the dictionary pools are hit
// directly. The enforcer is optional as well and only widens the
// administrative gate beyond the user admin flag.
func NewEngine(gormDB *gorm.DB, redisClient *redis.Client, enforcer security.PermissionEnforcer, log logger.Interface) *Engine {
	repos := newRepositories(gormDB, redisClient)

	resolver := access.NewResolver(repos.Templates, repos.Fields, enforcer)
	tracker := issue.NewTracker(repos.Issues, repos.FieldValues, repos.Changes, field.CodecStores{
		Decimals: repos.Decimals,
		Strings:  repos.Strings,
		Texts:    repos.Texts,
		Items:    repos.ListItems,
		Issues:   repos.Issues,
	})
	txMgr := db.NewTransactionManager(gormDB)

	return &Engine{
		Repos:    repos,
		Resolver: resolver,
		Tracker:  tracker,

		CreateField: fieldUsecases.NewCreateFieldUseCase(
			repos.Fields, repos.States, repos.Templates, repos.Users, repos.ListItems, resolver, txMgr, log),
		UpdateField: fieldUsecases.NewUpdateFieldUseCase(
			repos.Fields, repos.States, repos.Templates, repos.Users, repos.ListItems, resolver, txMgr, log),
		SetFieldPosition: fieldUsecases.NewSetFieldPositionUseCase(
			repos.Fields, repos.States, repos.Templates, repos.Users, resolver, txMgr, log),
		RemoveField: fieldUsecases.NewRemoveFieldUseCase(
			repos.Fields, repos.States, repos.Templates, repos.Users, resolver, txMgr, log),
		DeleteField: fieldUsecases.NewDeleteFieldUseCase(
			repos.Fields, repos.States, repos.Templates, repos.Users, repos.ListItems, repos.FieldValues, resolver, txMgr, log),
		SetFieldPermission: fieldUsecases.NewSetFieldPermissionUseCase(
			repos.Fields, repos.States, repos.Templates, repos.Users, repos.Groups, resolver, txMgr, log),

		CreateState: workflowUsecases.NewCreateStateUseCase(
			repos.States, repos.Templates, repos.Users, resolver, txMgr, log),
		SetInitialState: workflowUsecases.NewSetInitialStateUseCase(
			repos.States, repos.Templates, repos.Users, resolver, txMgr, log),
		SetTransition: workflowUsecases.NewSetTransitionUseCase(
			repos.States, repos.Templates, repos.Users, repos.Groups, resolver, txMgr, log),
		SetResponsibleGroup: workflowUsecases.NewSetResponsibleGroupUseCase(
			repos.States, repos.Templates, repos.Users, repos.Groups, resolver, txMgr, log),
		ChangeState: workflowUsecases.NewChangeStateUseCase(
			repos.Issues, repos.Events, repos.States, repos.Fields, repos.Users, repos.Groups, tracker, txMgr, log),

		CreateIssue: issueUsecases.NewCreateIssueUseCase(
			repos.Issues, repos.Events, repos.States, repos.Fields, repos.Templates, repos.Users, repos.Groups, resolver, tracker, txMgr, log),
		SetFieldValue: issueUsecases.NewSetFieldValueUseCase(
			repos.Issues, repos.Events, repos.Fields, repos.Users, resolver, tracker, txMgr, log),
		GetFieldValue: issueUsecases.NewGetFieldValueUseCase(
			repos.Issues, repos.FieldValues, repos.Fields, repos.Users, resolver, tracker, log),
	}
}

// NewEnforcer builds the casbin enforcer persisting its policy in the same
// database.
func NewEnforcer(gormDB *gorm.DB, log logger.Interface) (security.PermissionEnforcer, error) {
	return permission.NewEnforcer(gormDB, log)
}

// NewRedisClient connects to Redis when the cache is enabled, and returns
// nil otherwise.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}
	return cache.NewRedisClient(&cfg.Redis)
}

func newRepositories(gormDB *gorm.DB, redisClient *redis.Client) Repositories {
	repos := Repositories{
		Templates:   repository.NewTemplateRepository(gormDB),
		States:      repository.NewStateRepository(gormDB),
		Fields:      repository.NewFieldRepository(gormDB),
		Issues:      repository.NewIssueRepository(gormDB),
		Events:      repository.NewEventRepository(gormDB),
		FieldValues: repository.NewFieldValueRepository(gormDB),
		Changes:     repository.NewChangeRepository(gormDB),
		Users:       repository.NewUserRepository(gormDB),
		Groups:      repository.NewGroupRepository(gormDB),
		Decimals:    repository.NewDecimalValueRepository(gormDB),
		Strings:     repository.NewStringValueRepository(gormDB),
		Texts:       repository.NewTextValueRepository(gormDB),
		ListItems:   repository.NewListItemRepository(gormDB),
	}

	if redisClient != nil {
		repos.Decimals = cache.NewValueCache(repos.Decimals, redisClient, "decimal")
		repos.Strings = cache.NewValueCache(repos.Strings, redisClient, "string")
		repos.Texts = cache.NewValueCache(repos.Texts, redisClient, "text")
	}

	return repos
}

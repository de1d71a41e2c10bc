package user

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/muhammadheryan/tuba-user/cmd/config"
	"github.com/muhammadheryan/tuba-user/constant"
	"github.com/muhammadheryan/tuba-user/model"
	redisrepo "github.com/muhammadheryan/tuba-user/repository/redis"
	userrepo "github.com/muhammadheryan/tuba-user/repository/user"
	"github.com/muhammadheryan/tuba-user/thirdparty/rabbitmq"
	"github.com/muhammadheryan/tuba-user/utils/errors"
	"github.com/muhammadheryan/tuba-user/utils/logger"
	"github.com/muhammadheryan/tuba-user/utils/naming"
	validatorx "github.com/muhammadheryan/tuba-user/utils/validator"
	"go.uber.org/zap"
)

type UserApp interface {
	GetStatus(ctx context.Context, exitOnError bool) (*model.HealthStatus, error)

	GetAllUsers(ctx context.Context, rc *model.RequestContext) ([]model.User, error)
	GetUserByID(ctx context.Context, rc *model.RequestContext, id uint64) (*model.User, error)
	GetUser(ctx context.Context, rc *model.RequestContext, ref model.UserRef) (*model.User, error)
	GetUsersByID(ctx context.Context, rc *model.RequestContext, ids []uint64) ([]model.User, error)
	GetUsers(ctx context.Context, rc *model.RequestContext, refs []model.UserRef) ([]model.User, error)
	SearchUsers(ctx context.Context, rc *model.RequestContext, filter *model.UserSearchFilter) ([]model.User, error)

	CreateUser(ctx context.Context, rc *model.RequestContext, req *model.UserNew) (*model.User, error)
	UpdateUser(ctx context.Context, rc *model.RequestContext, upd *model.UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, rc *model.RequestContext, id uint64) (*model.User, error)

	FindUsersByAccount(ctx context.Context, rc *model.RequestContext, ref model.AccountRef) ([]model.User, error)
	GetUserBySubAccount(ctx context.Context, rc *model.RequestContext, ref model.AccountRef) (*model.User, error)
	ResolveUser(ctx context.Context, rc *model.RequestContext, ref model.UserRef) (*model.User, error)
	ResolveUserIDs(ctx context.Context, rc *model.RequestContext, refs []model.UserRef) ([]uint64, error)
	InjectUserIDs(ctx context.Context, rc *model.RequestContext, refs []model.UserRef) error

	ValidateUser(ctx context.Context, rc *model.RequestContext, candidate *model.User) ([]model.Conflict, error)
	ValidateAccount(ctx context.Context, rc *model.RequestContext, userID uint64, acc *model.Account) ([]model.Conflict, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
	publisher rabbitmq.EventPublisher
}

// NewUserApp builds the user service. redisRepo and publisher are optional.
func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository, publisher rabbitmq.EventPublisher) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
		publisher: publisher,
	}
}

// GetStatus probes the datastore and the cache. With exitOnError an unreachable
// datastore is reported as an error so the caller can stop.
func (s *UserAppImpl) GetStatus(ctx context.Context, exitOnError bool) (*model.HealthStatus, error) {
	status := &model.HealthStatus{Name: "users", Status: model.HealthOK}

	store := model.HealthStatus{Name: "datastore", Status: model.HealthOK}
	now, storeErr := s.userRepo.Ping(ctx)
	if storeErr != nil {
		logger.Error("[GetStatus] err userRepo.Ping", zap.String("error", storeErr.Error()))
		store.Status = model.HealthError
		store.Info = storeErr.Error()
		status.Status = model.HealthError
	} else {
		store.Info = now
	}
	status.Services = append(status.Services, store)

	if s.redisRepo != nil {
		cache := model.HealthStatus{Name: "cache", Status: model.HealthOK}
		if err := s.redisRepo.Ping(ctx); err != nil {
			logger.Warn("[GetStatus] err redisRepo.Ping", zap.String("error", err.Error()))
			cache.Status = model.HealthError
			cache.Info = err.Error()
		}
		status.Services = append(status.Services, cache)
	}

	if storeErr != nil && exitOnError {
		return status, errors.Wrap(constant.ErrInternal, storeErr, "datastore unreachable")
	}
	return status, nil
}

func (s *UserAppImpl) GetAllUsers(ctx context.Context, rc *model.RequestContext) ([]model.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		logger.Error("[GetAllUsers] err userRepo.FindAll", append(rc.Fields(), zap.String("error", err.Error()))...)
		return nil, errors.Wrap(constant.ErrInternal, err, "failed to retrieve users")
	}
	return users, nil
}

// GetUserByID returns nil when the user does not exist.
func (s *UserAppImpl) GetUserByID(ctx context.Context, rc *model.RequestContext, id uint64) (*model.User, error) {
	if id == 0 {
		return nil, errors.NewCustomError(constant.ErrInvalidRequest, "user ID is required")
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("[GetUserByID] err userRepo.FindByID", append(rc.Fields(), zap.Uint64("user_id", id), zap.String("error", err.Error()))...)
		return nil, errors.Wrap(constant.ErrInternal, err, fmt.Sprintf("failed to retrieve user %d", id))
	}
	if user == nil {
		logger.Warn("[GetUserByID] user not found", append(rc.Fields(), zap.Uint64("user_id", id))...)
	}
	return user, nil
}

// GetUser is the retrieve entry point: unlike the lookups it fails with NotFound.
// ID lookups go through the cache.
func (s *UserAppImpl) GetUser(ctx context.Context, rc *model.RequestContext, ref model.UserRef) (*model.User, error) {
	rc = rc.OrFlow(constant.UserFlowRetrieve)

	if id := ref.ID(); id > 0 && s.redisRepo != nil {
		cached, err := s.redisRepo.GetUser(ctx, id)
		if err != nil {
			logger.Warn("[GetUser] err redisRepo.GetUser", append(rc.Fields(), zap.String("error", err.Error()))...)
		}
		if cached != nil {
			return cached, nil
		}
	}

	user, err := s.ResolveUser(ctx, rc, ref)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NewCustomError(constant.ErrNotFound, fmt.Sprintf("user %s not found", ref))
	}

	if s.redisRepo != nil {
		if err := s.redisRepo.SetUser(ctx, user); err != nil {
			logger.Warn("[GetUser] err redisRepo.SetUser", append(rc.Fields(), zap.String("error", err.Error()))...)
		}
	}
	return user, nil
}

// GetUsersByID loads the users in the order of ids, skipping zeros, duplicates and missing users.
func (s *UserAppImpl) GetUsersByID(ctx context.Context, rc *model.RequestContext, ids []uint64) ([]model.User, error) {
	wanted := distinctIDs(ids)
	if len(wanted) == 0 {
		return []model.User{}, nil
	}

	found, err := s.userRepo.FindByIDs(ctx, wanted)
	if err != nil {
		logger.Error("[GetUsersByID] err userRepo.FindByIDs", append(rc.Fields(), zap.String("error", err.Error()))...)
		return nil, errors.Wrap(constant.ErrInternal, err, "failed to retrieve users")
	}

	byID := make(map[uint64]model.User, len(found))
	for _, u := range found {
		byID[u.ID] = u
	}
	users := make([]model.User, 0, len(wanted))
	for _, id := range wanted {
		u, ok := byID[id]
		if !ok {
			logger.Warn("[GetUsersByID] user not found", append(rc.Fields(), zap.Uint64("user_id", id))...)
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

// SearchUsers returns the referenced users once each, in first-seen order.
// Unresolved references are skipped.
func (s *UserAppImpl) SearchUsers(ctx context.Context, rc *model.RequestContext, filter *model.UserSearchFilter) ([]model.User, error) {
	if filter == nil || len(filter.User) == 0 {
		return []model.User{}, nil
	}
	rc = rc.WithFlow(constant.UserFlowRetrieve)
	rc.SubEntities = filter.SubEntities

	users, err := s.GetUsers(ctx, rc, filter.User)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint64]bool, len(users))
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if seen[u.ID] {
			continue
		}
		seen[u.ID] = true
		out = append(out, u)
	}
	return out, nil
}

// CreateUser registers a user with at least one sub-account none of which may belong to
// another user. Name and handle are derived from the accounts when not provided.
func (s *UserAppImpl) CreateUser(ctx context.Context, rc *model.RequestContext, req *model.UserNew) (*model.User, error) {
	rc = rc.OrFlow(constant.UserFlowRegister)
	if req == nil || len(req.Account) == 0 {
		return nil, errors.NewCustomError(constant.ErrInvalidRequest, "a user requires at least one account")
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.Wrap(constant.ErrInvalidRequest, err, err.Error())
	}

	accounts, err := normalizeNewAccounts(req.Account)
	if err != nil {
		return nil, err
	}

	for _, acc := range accounts {
		owner, err := s.GetUserBySubAccount(ctx, rc, model.AccountRef{Type: acc.Type, Identifier: acc.Identifier})
		if err != nil {
			return nil, err
		}
		if owner != nil {
			logger.Info("[CreateUser] account already linked", append(rc.Fields(),
				zap.String("account_type", string(acc.Type)),
				zap.Uint64("owner_id", owner.ID))...)
			return nil, errors.NewCustomError(constant.ErrAlreadyExists,
				fmt.Sprintf("account '%s' of type '%s' is already linked to a user", acc.Identifier, acc.Type)).
				WithConflicts([]model.Conflict{{
					TargetID: owner.ID,
					Name:     constant.ConflictAccountIdentifierPrefix + string(acc.Type),
					Type:     constant.ConflictAlreadyExist,
				}})
		}
	}

	name := ""
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}
	if name == "" {
		if name, err = naming.DefaultUserName(accounts); err != nil {
			return nil, errors.Wrap(constant.ErrInvalidRequest, err, err.Error())
		}
	}

	userType := req.Type
	if userType == "" {
		userType = constant.UserTypeDefault
	}

	candidate := &model.User{
		Status:   constant.UserStatusDefault,
		Handle:   naming.Handle(name, accounts),
		Name:     name,
		NameLast: req.NameLast,
		Type:     userType,
		Account:  newAccounts(accounts),
	}

	conflicts, err := s.ValidateUser(ctx, rc, candidate)
	if err != nil {
		return nil, err
	}
	if len(conflicts) == 1 && conflicts[0].Name == constant.ConflictUserHandle {
		logger.Info("[CreateUser] handle taken, regenerating", append(rc.Fields(), zap.String("handle", candidate.Handle))...)
		candidate.Handle = naming.Handle(name, accounts)
		if conflicts, err = s.ValidateUser(ctx, rc, candidate); err != nil {
			return nil, err
		}
	}
	if len(conflicts) > 0 {
		return nil, errors.NewCustomError(constant.ErrAlreadyExists, "user conflicts with existing records").WithConflicts(conflicts)
	}

	user, err := s.userRepo.SaveUser(ctx, candidate)
	if err != nil {
		logger.Error("[CreateUser] err userRepo.SaveUser", append(rc.Fields(), zap.String("error", err.Error()))...)
		return nil, errors.Wrap(constant.ErrInternal, err, "failed to store user")
	}

	logger.Info("[CreateUser] user created", append(rc.Fields(), zap.Uint64("user_id", user.ID), zap.String("handle", user.Handle))...)
	s.publish(ctx, rc, constant.EventUserCreated, user.ID, 0)
	return user, nil
}

// UpdateUser applies a partial update. Only the partial is written, the merged
// record is used for conflict checks.
func (s *UserAppImpl) UpdateUser(ctx context.Context, rc *model.RequestContext, upd *model.UserUpdate) (*model.User, error) {
	if upd == nil || upd.ID == 0 {
		return nil, errors.NewCustomError(constant.ErrInvalidRequest, "user ID is required")
	}
	rc = rc.OrFlow(constant.UserFlowUpdate).WithTarget(upd.ID)
	if err := validatorx.ValidateStruct(upd); err != nil {
		return nil, errors.Wrap(constant.ErrInvalidRequest, err, err.Error())
	}

	existing, err := s.GetUserByID(ctx, rc, upd.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewCustomError(constant.ErrNotFound, fmt.Sprintf("user %d not found", upd.ID))
	}
	if upd.IsEmpty() {
		return existing, nil
	}

	conflicts, err := s.ValidateUser(ctx, rc, upd.ApplyTo(existing))
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, errors.NewCustomError(constant.ErrAlreadyExists, "user update conflicts with existing records").WithConflicts(conflicts)
	}

	user, err := s.userRepo.UpdateUser(ctx, upd)
	if stderrors.Is(err, userrepo.ErrNotFound) {
		return nil, errors.Wrap(constant.ErrNotFound, err, fmt.Sprintf("user %d not found", upd.ID))
	}
	if err != nil {
		logger.Error("[UpdateUser] err userRepo.UpdateUser", append(rc.Fields(), zap.String("error", err.Error()))...)
		return nil, errors.Wrap(constant.ErrInternal, err, fmt.Sprintf("failed to update user %d", upd.ID))
	}

	s.invalidate(ctx, rc, user.ID)
	s.publish(ctx, rc, constant.EventUserUpdated, user.ID, 0)
	return user, nil
}

// DeleteUser removes the user and all its accounts, and returns what was removed.
func (s *UserAppImpl) DeleteUser(ctx context.Context, rc *model.RequestContext, id uint64) (*model.User, error) {
	if id == 0 {
		return nil, errors.NewCustomError(constant.ErrInvalidRequest, "user ID is required")
	}
	rc = rc.OrFlow(constant.UserFlowDelete).WithTarget(id)

	user, err := s.userRepo.DeleteUser(ctx, id)
	if err != nil {
		logger.Error("[DeleteUser] err userRepo.DeleteUser", append(rc.Fields(), zap.String("error", err.Error()))...)
		return nil, errors.Wrap(constant.ErrInternal, err, fmt.Sprintf("failed to delete user %d", id))
	}

	logger.Info("[DeleteUser] user deleted", append(rc.Fields(), zap.Int("accounts", len(user.Account)))...)
	s.invalidate(ctx, rc, id)
	s.publish(ctx, rc, constant.EventUserDeleted, id, 0)
	return user, nil
}

// normalizeNewAccounts canonicalizes identifiers and rejects duplicates within the request.
func normalizeNewAccounts(accounts []model.AccountNew) ([]model.AccountNew, error) {
	out := make([]model.AccountNew, 0, len(accounts))
	seen := make(map[string]bool, len(accounts))
	for _, acc := range accounts {
		if !acc.Type.IsValid() || strings.TrimSpace(acc.Identifier) == "" {
			return nil, errors.NewCustomError(constant.ErrInvalidRequest,
				fmt.Sprintf("invalid account '%s' of type '%s'", acc.Identifier, acc.Type))
		}
		identifier, err := naming.NormalizeIdentifier(acc.Type, acc.Identifier)
		if err != nil {
			return nil, errors.Wrap(constant.ErrInvalidRequest, err, err.Error())
		}
		acc.Identifier = identifier

		key := model.AccountRef{Type: acc.Type, Identifier: identifier}.Key()
		if seen[key] {
			return nil, errors.NewCustomError(constant.ErrInvalidRequest,
				fmt.Sprintf("account '%s' of type '%s' is submitted twice", identifier, acc.Type))
		}
		seen[key] = true
		out = append(out, acc)
	}
	return out, nil
}

// newAccounts builds the stored accounts of a new user: enabled, one default per type,
// the first flagged one or else the first of its type.
func newAccounts(accounts []model.AccountNew) []model.Account {
	defaults := make(map[constant.AccountType]int)
	for i, acc := range accounts {
		if _, ok := defaults[acc.Type]; !ok || (acc.Default && !accounts[defaults[acc.Type]].Default) {
			defaults[acc.Type] = i
		}
	}

	out := make([]model.Account, 0, len(accounts))
	for i, acc := range accounts {
		out = append(out, model.Account{
			Status:     constant.AccountStatusDefault,
			Type:       acc.Type,
			SubType:    acc.SubType,
			Identifier: acc.Identifier,
			Name:       acc.Name,
			Default:    defaults[acc.Type] == i,
		})
	}
	return out
}

func (s *UserAppImpl) invalidate(ctx context.Context, rc *model.RequestContext, id uint64) {
	if s.redisRepo == nil {
		return
	}
	if err := s.redisRepo.DeleteUser(ctx, id); err != nil {
		logger.Warn("[invalidate] err redisRepo.DeleteUser", append(rc.Fields(), zap.Uint64("user_id", id), zap.String("error", err.Error()))...)
	}
}

func (s *UserAppImpl) publish(ctx context.Context, rc *model.RequestContext, name constant.UserEventName, userID, accountID uint64) {
	if s.publisher == nil {
		return
	}
	event := model.UserEvent{
		Name:       name,
		UserID:     userID,
		AccountID:  accountID,
		OccurredAt: time.Now().UTC(),
	}
	if rc != nil {
		event.RequesterID = rc.UserID
		event.RequestID = rc.RequestID
	}
	if err := s.publisher.PublishUserEvent(ctx, event); err != nil {
		logger.Error("[publish] err publisher.PublishUserEvent", append(rc.Fields(), zap.String("event", string(name)), zap.String("error", err.Error()))...)
	}
}

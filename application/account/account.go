package account

import (
	"context"
	"fmt"
	"time"

	userapp "github.com/muhammadheryan/tuba-user/application/user"
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
	"golang.org/x/sync/errgroup"
)

type AccountApp interface {
	AddAccount(ctx context.Context, rc *model.RequestContext, ref model.UserRef, req *model.AccountNew) (*model.Account, error)
	AddAccounts(ctx context.Context, rc *model.RequestContext, ref model.UserRef, reqs []model.AccountNew) ([]model.Account, error)
	RemoveAccount(ctx context.Context, rc *model.RequestContext, ref model.UserRef, accRef model.AccountRef) (*model.Account, error)
	FindOrCreateUserWithWallet(ctx context.Context, rc *model.RequestContext, ref model.UserRef) (*model.User, error)
}

type AccountAppImpl struct {
	userApp   userapp.UserApp
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
	publisher rabbitmq.EventPublisher
}

// NewAccountApp builds the account service. redisRepo and publisher are optional.
func NewAccountApp(userApp userapp.UserApp, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository, publisher rabbitmq.EventPublisher) AccountApp {
	return &AccountAppImpl{
		userApp:   userApp,
		userRepo:  userRepo,
		redisRepo: redisRepo,
		publisher: publisher,
	}
}

// AddAccount links a sub-account to the referenced user. Adding an account the user
// already has returns it unchanged. The account becomes the default of its type when
// requested or when the user has none yet.
func (s *AccountAppImpl) AddAccount(ctx context.Context, rc *model.RequestContext, ref model.UserRef, req *model.AccountNew) (*model.Account, error) {
	rc = rc.OrFlow(constant.UserFlowUpdateAccount)
	if req == nil {
		return nil, errors.NewCustomError(constant.ErrInvalidRequest, "no account info provided")
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.Wrap(constant.ErrInvalidRequest, err, err.Error())
	}
	identifier, err := naming.NormalizeIdentifier(req.Type, req.Identifier)
	if err != nil {
		return nil, errors.Wrap(constant.ErrInvalidRequest, err, err.Error())
	}

	userID, err := s.resolveUserID(ctx, rc, ref)
	if err != nil {
		return nil, err
	}
	rc = rc.WithTarget(userID)

	user, err := s.userApp.GetUserByID(ctx, rc, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NewCustomError(constant.ErrNotFound, fmt.Sprintf("user %d not found", userID))
	}

	if existing := user.FindAccount(req.Type, identifier); existing != nil {
		logger.Info("[AddAccount] account already linked to user", append(rc.Fields(), zap.Uint64("account_id", existing.ID))...)
		return existing.Clone(), nil
	}

	candidate := &model.Account{
		Status:     constant.AccountStatusDefault,
		Type:       req.Type,
		SubType:    req.SubType,
		Identifier: identifier,
		Name:       req.Name,
		Default:    req.Default || !user.HasDefaultAccount(req.Type),
	}

	conflicts, err := s.userApp.ValidateAccount(ctx, rc, userID, candidate)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, errors.NewCustomError(constant.ErrAlreadyExists,
			fmt.Sprintf("account '%s' of type '%s' is already linked to a user", identifier, req.Type)).WithConflicts(conflicts)
	}

	acc, err := s.userRepo.SaveAccount(ctx, userID, candidate)
	if err != nil {
		logger.Error("[AddAccount] err userRepo.SaveAccount", append(rc.Fields(), zap.String("error", err.Error()))...)
		return nil, errors.Wrap(constant.ErrInternal, err, fmt.Sprintf("failed to store account '%s' of user %d", identifier, userID))
	}

	s.invalidate(ctx, rc, userID)
	s.publish(ctx, rc, constant.EventAccountAdded, userID, acc.ID)
	return acc, nil
}

// AddAccounts adds every account concurrently and returns the first failure.
// Accounts stored before a failure are kept: the user's account list is the source of truth afterwards.
func (s *AccountAppImpl) AddAccounts(ctx context.Context, rc *model.RequestContext, ref model.UserRef, reqs []model.AccountNew) ([]model.Account, error) {
	rc = rc.OrFlow(constant.UserFlowUpdateAccount)
	if len(reqs) == 0 {
		return nil, errors.NewCustomError(constant.ErrInvalidRequest, "no account info provided")
	}

	userID, err := s.resolveUserID(ctx, rc, ref)
	if err != nil {
		return nil, err
	}

	accounts := make([]model.Account, len(reqs))
	var g errgroup.Group
	for i := range reqs {
		i := i
		g.Go(func() error {
			acc, err := s.AddAccount(ctx, rc, model.UserRefByID(userID), &reqs[i])
			if err != nil {
				return err
			}
			accounts[i] = *acc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Warn("[AddAccounts] stopped on failure, stored accounts are kept", append(rc.Fields(), zap.String("error", err.Error()))...)
		return nil, err
	}
	return accounts, nil
}

// RemoveAccount unlinks the sub-account from the referenced user and returns it.
func (s *AccountAppImpl) RemoveAccount(ctx context.Context, rc *model.RequestContext, ref model.UserRef, accRef model.AccountRef) (*model.Account, error) {
	rc = rc.OrFlow(constant.UserFlowUpdateAccount)
	if !accRef.IsValid() {
		return nil, errors.NewCustomError(constant.ErrInvalidRequest,
			fmt.Sprintf("invalid account identifier '%s' of type '%s'", accRef.Identifier, accRef.Type))
	}
	identifier, err := naming.NormalizeIdentifier(accRef.Type, accRef.Identifier)
	if err != nil {
		return nil, errors.Wrap(constant.ErrInvalidRequest, err, err.Error())
	}

	userID, err := s.resolveUserID(ctx, rc, ref)
	if err != nil {
		return nil, err
	}
	rc = rc.WithTarget(userID)

	acc, err := s.userRepo.FindAccountByIdentifier(ctx, userID, accRef.Type, identifier)
	if err != nil {
		logger.Error("[RemoveAccount] err userRepo.FindAccountByIdentifier", append(rc.Fields(), zap.String("error", err.Error()))...)
		return nil, errors.Wrap(constant.ErrInternal, err, fmt.Sprintf("failed to retrieve account '%s' of user %d", identifier, userID))
	}
	if acc == nil {
		return nil, errors.NewCustomError(constant.ErrNotFound,
			fmt.Sprintf("account '%s' of type '%s' not found for user %d", identifier, accRef.Type, userID))
	}
	if acc.ID == 0 {
		return nil, errors.NewCustomError(constant.ErrInvalidRequest, fmt.Sprintf("invalid account ID for '%s'", identifier))
	}

	removed, err := s.userRepo.DeleteAccount(ctx, acc.ID)
	if err != nil {
		logger.Error("[RemoveAccount] err userRepo.DeleteAccount", append(rc.Fields(), zap.Uint64("account_id", acc.ID), zap.String("error", err.Error()))...)
		return nil, errors.Wrap(constant.ErrInternal, err, fmt.Sprintf("failed to delete account %d", acc.ID))
	}
	if removed == nil {
		return nil, errors.NewCustomError(constant.ErrNotFound, fmt.Sprintf("account %d not found", acc.ID))
	}

	s.invalidate(ctx, rc, userID)
	s.publish(ctx, rc, constant.EventAccountRemoved, userID, removed.ID)
	return removed, nil
}

// FindOrCreateUserWithWallet returns the referenced user, registering a new one
// when the reference is an unknown wallet.
func (s *AccountAppImpl) FindOrCreateUserWithWallet(ctx context.Context, rc *model.RequestContext, ref model.UserRef) (*model.User, error) {
	rc = rc.OrFlow(constant.UserFlowAuthenticate)

	user, err := s.userApp.ResolveUser(ctx, rc, ref)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	if ref.ID() > 0 {
		return nil, errors.NewCustomError(constant.ErrNotFound, fmt.Sprintf("user %d not found", ref.ID()))
	}
	acc, ok := ref.Account()
	if !ok || acc.Type != constant.AccountTypeWallet {
		return nil, errors.NewCustomError(constant.ErrInvalidRequest, fmt.Sprintf("cannot register a user from '%s'", ref))
	}

	logger.Info("[FindOrCreateUserWithWallet] registering wallet user", rc.Fields()...)
	return s.userApp.CreateUser(ctx, rc.WithFlow(constant.UserFlowRegister), &model.UserNew{
		Account: []model.AccountNew{{
			Type:       constant.AccountTypeWallet,
			Identifier: acc.Identifier,
			Default:    true,
		}},
	})
}

func (s *AccountAppImpl) resolveUserID(ctx context.Context, rc *model.RequestContext, ref model.UserRef) (uint64, error) {
	refs := []model.UserRef{ref}
	if err := s.userApp.InjectUserIDs(ctx, rc, refs); err != nil {
		return 0, err
	}
	if refs[0].ID() == 0 {
		return 0, errors.NewCustomError(constant.ErrInvalidRequest, fmt.Sprintf("invalid user reference '%s'", ref))
	}
	return refs[0].ID(), nil
}

func (s *AccountAppImpl) invalidate(ctx context.Context, rc *model.RequestContext, userID uint64) {
	if s.redisRepo == nil {
		return
	}
	if err := s.redisRepo.DeleteUser(ctx, userID); err != nil {
		logger.Warn("[invalidate] err redisRepo.DeleteUser", append(rc.Fields(), zap.String("error", err.Error()))...)
	}
}

func (s *AccountAppImpl) publish(ctx context.Context, rc *model.RequestContext, name constant.UserEventName, userID, accountID uint64) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishUserEvent(ctx, model.UserEvent{
		Name:        name,
		UserID:      userID,
		AccountID:   accountID,
		RequesterID: rc.UserID,
		RequestID:   rc.RequestID,
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		logger.Error("[publish] err publisher.PublishUserEvent", append(rc.Fields(), zap.String("event", string(name)), zap.String("error", err.Error()))...)
	}
}

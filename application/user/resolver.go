package user

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/tuba-user/constant"
	"github.com/muhammadheryan/tuba-user/model"
	"github.com/muhammadheryan/tuba-user/utils/errors"
	"github.com/muhammadheryan/tuba-user/utils/logger"
	"github.com/muhammadheryan/tuba-user/utils/naming"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FindUsersByAccount returns every user owning the sub-account, normally at most one.
func (s *UserAppImpl) FindUsersByAccount(ctx context.Context, rc *model.RequestContext, ref model.AccountRef) ([]model.User, error) {
	if !ref.IsValid() {
		return nil, errors.NewCustomError(constant.ErrInvalidRequest,
			fmt.Sprintf("invalid account identifier '%s' of type '%s'", ref.Identifier, ref.Type))
	}
	identifier, err := naming.NormalizeIdentifier(ref.Type, ref.Identifier)
	if err != nil {
		return nil, errors.Wrap(constant.ErrInvalidRequest, err, err.Error())
	}

	users, err := s.userRepo.FindUsersByAccount(ctx, identifier, ref.Type)
	if err != nil {
		logger.Error("[FindUsersByAccount] err userRepo.FindUsersByAccount", append(rc.Fields(),
			zap.String("account_type", string(ref.Type)),
			zap.String("identifier", identifier),
			zap.String("error", err.Error()))...)
		return nil, errors.Wrap(constant.ErrInternal, err,
			fmt.Sprintf("failed to retrieve user by account '%s' of type '%s'", identifier, ref.Type))
	}

	switch {
	case len(users) == 0:
		logger.Debug("[FindUsersByAccount] no user found", append(rc.Fields(),
			zap.String("account_type", string(ref.Type)),
			zap.String("identifier", identifier))...)
		return []model.User{}, nil
	case len(users) > 1:
		// the identifier is expected unique per type but the store does not enforce it across users
		logger.Error("[FindUsersByAccount] multiple users share one account", append(rc.Fields(),
			zap.String("account_type", string(ref.Type)),
			zap.String("identifier", identifier),
			zap.Int("count", len(users)),
			zap.Uint64("first_user_id", users[0].ID))...)
	}
	return users, nil
}

// GetUserBySubAccount returns the first user owning the sub-account, nil when none does.
func (s *UserAppImpl) GetUserBySubAccount(ctx context.Context, rc *model.RequestContext, ref model.AccountRef) (*model.User, error) {
	users, err := s.FindUsersByAccount(ctx, rc, ref)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// ResolveUser loads the user a reference points at. A missing user is not an error.
func (s *UserAppImpl) ResolveUser(ctx context.Context, rc *model.RequestContext, ref model.UserRef) (*model.User, error) {
	if id := ref.ID(); id > 0 {
		return s.GetUserByID(ctx, rc, id)
	}
	if acc, ok := ref.Account(); ok {
		return s.GetUserBySubAccount(ctx, rc, acc)
	}
	return nil, errors.NewCustomError(constant.ErrInvalidRequest, "no identification info provided")
}

type accountLookup struct {
	ref    model.AccountRef
	slots  []int
	userID uint64
}

// ResolveUserIDs maps every reference to a user ID, keeping the input order.
// Unresolved references yield 0. Each distinct sub-account is looked up once, concurrently.
func (s *UserAppImpl) ResolveUserIDs(ctx context.Context, rc *model.RequestContext, refs []model.UserRef) ([]uint64, error) {
	if len(refs) == 0 {
		return nil, errors.NewCustomError(constant.ErrInvalidRequest, "no user identifiers specified")
	}

	ids := make([]uint64, len(refs))
	lookups := make(map[string]*accountLookup)
	for i, ref := range refs {
		if id := ref.ID(); id > 0 {
			ids[i] = id
			continue
		}
		acc, ok := ref.Account()
		if !ok {
			continue
		}
		// spellings of one stored identifier share a lookup, invalid ones fail in the lookup itself
		if identifier, err := naming.NormalizeIdentifier(acc.Type, acc.Identifier); err == nil {
			acc.Identifier = identifier
		}
		l, ok := lookups[acc.Key()]
		if !ok {
			l = &accountLookup{ref: acc}
			lookups[acc.Key()] = l
		}
		l.slots = append(l.slots, i)
	}

	var g errgroup.Group
	for _, l := range lookups {
		l := l
		g.Go(func() error {
			user, err := s.GetUserBySubAccount(ctx, rc, l.ref)
			if err != nil {
				return err
			}
			// 0 is kept as the negative result so the key is never queried twice
			if user != nil {
				l.userID = user.ID
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, l := range lookups {
		for _, slot := range l.slots {
			ids[slot] = l.userID
		}
	}
	for i, id := range ids {
		if id == 0 {
			logger.Warn("[ResolveUserIDs] no user found", append(rc.Fields(), zap.String("ref", refs[i].String()))...)
		}
	}
	return ids, nil
}

// InjectUserIDs rewrites the resolved references in place as ID references.
func (s *UserAppImpl) InjectUserIDs(ctx context.Context, rc *model.RequestContext, refs []model.UserRef) error {
	ids, err := s.ResolveUserIDs(ctx, rc, refs)
	if err != nil {
		return err
	}

	resolved := 0
	for i, id := range ids {
		if id > 0 {
			refs[i] = model.UserRefByID(id)
			resolved++
		}
	}
	if resolved == 0 {
		return errors.NewCustomError(constant.ErrNotFound, fmt.Sprintf("users %v not found", refs))
	}
	if resolved != len(refs) {
		logger.Warn("[InjectUserIDs] some users not found", append(rc.Fields(), zap.Int("resolved", resolved), zap.Int("requested", len(refs)))...)
	}
	return nil
}

// GetUsers resolves and loads the referenced users. Outside the retrieve flow every
// reference must match a stored user.
func (s *UserAppImpl) GetUsers(ctx context.Context, rc *model.RequestContext, refs []model.UserRef) ([]model.User, error) {
	ids, err := s.ResolveUserIDs(ctx, rc, refs)
	if err != nil {
		return nil, err
	}

	users, err := s.GetUsersByID(ctx, rc, ids)
	if err != nil {
		return nil, err
	}

	if len(users) != len(distinctIDs(ids)) && (rc == nil || rc.Flow != constant.UserFlowRetrieve) {
		logger.Error("[GetUsers] not all users found", append(rc.Fields(), zap.Int("found", len(users)), zap.Int("requested", len(refs)))...)
		return nil, errors.NewCustomError(constant.ErrInternal,
			fmt.Sprintf("only %d of the %d specified users found", len(users), len(refs)))
	}
	return users, nil
}

// distinctIDs drops zeros and duplicates, keeping the first-seen order.
func distinctIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]bool, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

package user

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/tuba-user/constant"
	"github.com/muhammadheryan/tuba-user/model"
	"github.com/muhammadheryan/tuba-user/utils/errors"
	"github.com/muhammadheryan/tuba-user/utils/logger"
	"go.uber.org/zap"
)

// ValidateUser reports the stored records the candidate would collide with: its handle,
// then each of its sub-accounts. It never writes.
func (s *UserAppImpl) ValidateUser(ctx context.Context, rc *model.RequestContext, candidate *model.User) ([]model.Conflict, error) {
	if candidate == nil {
		return nil, errors.NewCustomError(constant.ErrInvalidRequest, "no user info provided")
	}
	if len(candidate.Account) == 0 && (rc == nil || rc.Flow != constant.UserFlowUpdate) {
		return nil, errors.NewCustomError(constant.ErrInvalidRequest, "no user account info provided")
	}

	conflicts := make([]model.Conflict, 0)
	if candidate.Handle != "" {
		matches, err := s.userRepo.FindUsersByHandle(ctx, candidate.Handle)
		if err != nil {
			logger.Error("[ValidateUser] err userRepo.FindUsersByHandle", append(rc.Fields(), zap.String("error", err.Error()))...)
			return nil, errors.Wrap(constant.ErrInternal, err, fmt.Sprintf("failed to validate user handle '%s'", candidate.Handle))
		}
		for _, m := range matches {
			if candidate.ID == 0 || m.ID != candidate.ID {
				conflicts = append(conflicts, model.Conflict{
					TargetID: m.ID,
					Name:     constant.ConflictUserHandle,
					Type:     constant.ConflictDBValueUnique,
				})
			}
		}
	}

	for i := range candidate.Account {
		accConflicts, err := s.ValidateAccount(ctx, rc, candidate.ID, &candidate.Account[i])
		if err != nil {
			return nil, err
		}
		conflicts = append(conflicts, accConflicts...)
	}

	if len(conflicts) > 0 {
		logger.Info("[ValidateUser] conflicts found", append(rc.Fields(),
			zap.String("handle", candidate.Handle),
			zap.Any("conflicts", conflicts))...)
	}
	return conflicts, nil
}

// ValidateAccount reports the stored accounts sharing the identifier of acc,
// other than acc itself.
func (s *UserAppImpl) ValidateAccount(ctx context.Context, rc *model.RequestContext, userID uint64, acc *model.Account) ([]model.Conflict, error) {
	if acc == nil || acc.Identifier == "" || acc.Type == "" {
		return nil, errors.NewCustomError(constant.ErrInvalidRequest, "no account info provided")
	}

	matches, err := s.userRepo.FindAccountsByIdentifier(ctx, acc.Identifier, acc.Type)
	if err != nil {
		logger.Error("[ValidateAccount] err userRepo.FindAccountsByIdentifier", append(rc.Fields(), zap.String("error", err.Error()))...)
		return nil, errors.Wrap(constant.ErrInternal, err,
			fmt.Sprintf("failed to validate account '%s' of type '%s'", acc.Identifier, acc.Type))
	}

	conflicts := make([]model.Conflict, 0)
	for _, m := range matches {
		if userID == 0 || m.UserID != userID || m.ID != acc.ID {
			conflicts = append(conflicts, model.Conflict{
				TargetID: m.ID,
				Name:     constant.ConflictAccountIdentifierPrefix + string(acc.Type),
				Type:     constant.ConflictDBValueUnique,
			})
		}
	}
	return conflicts, nil
}

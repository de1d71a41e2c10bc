package transport

import (
	"github.com/muhammadheryan/tuba-user/constant"
	"github.com/muhammadheryan/tuba-user/model"
	"github.com/muhammadheryan/tuba-user/utils/naming"
)

// toUserResponse converts u for the wire. Identifiers are obfuscated unless reveal is set;
// an empty datasets list renders everything.
func toUserResponse(u model.User, reveal bool, datasets []constant.SubEntityDataset) model.UserResponse {
	res := model.UserResponse{ID: u.ID}

	if wants(datasets, constant.SubEntityUserInfo) {
		createdAt := u.CreatedAt
		res.Status = u.Status
		res.Handle = u.Handle
		res.Name = u.Name
		res.NameLast = u.NameLast
		res.Type = u.Type
		res.CreatedAt = &createdAt
		res.UpdatedAt = u.UpdatedAt
	}
	if wants(datasets, constant.SubEntityUserAccount) {
		res.Account = make([]model.AccountResponse, 0, len(u.Account))
		for _, acc := range u.Account {
			res.Account = append(res.Account, toAccountResponse(acc, reveal))
		}
	}
	return res
}

func toAccountResponse(acc model.Account, reveal bool) model.AccountResponse {
	identifier := acc.Identifier
	if !reveal {
		identifier = naming.Obfuscate(acc.Type, identifier)
	}
	return model.AccountResponse{
		ID:         acc.ID,
		Status:     acc.Status,
		Type:       acc.Type,
		SubType:    acc.SubType,
		Identifier: identifier,
		Name:       acc.Name,
		Default:    acc.Default,
	}
}

// toUsersResponse reveals only the requester's own identifiers.
func toUsersResponse(users []model.User, requesterID uint64, datasets []constant.SubEntityDataset) []model.UserResponse {
	res := make([]model.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, toUserResponse(u, u.ID == requesterID, datasets))
	}
	return res
}

func wants(datasets []constant.SubEntityDataset, dataset constant.SubEntityDataset) bool {
	if len(datasets) == 0 {
		return true
	}
	for _, d := range datasets {
		if d == dataset {
			return true
		}
	}
	return false
}

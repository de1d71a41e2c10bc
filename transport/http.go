package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	accountapp "github.com/muhammadheryan/tuba-user/application/account"
	userapp "github.com/muhammadheryan/tuba-user/application/user"
	"github.com/muhammadheryan/tuba-user/cmd/config"
	"github.com/muhammadheryan/tuba-user/constant"
	"github.com/muhammadheryan/tuba-user/model"
	utilsContext "github.com/muhammadheryan/tuba-user/utils/context"
	"github.com/muhammadheryan/tuba-user/utils/errors"
	"github.com/muhammadheryan/tuba-user/utils/naming"
	validatorx "github.com/muhammadheryan/tuba-user/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp    userapp.UserApp
	AccountApp accountapp.AccountApp
}

func NewTransport(UserApp userapp.UserApp, AccountApp accountapp.AccountApp, cfg config.ServerConfig) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:    UserApp,
		AccountApp: AccountApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/health", rh.GetStatus).Methods(http.MethodGet)
	mux.HandleFunc("/users", rh.CreateUser).Methods(http.MethodPost)
	mux.HandleFunc("/users/check", rh.CheckUser).Methods(http.MethodPost)
	mux.HandleFunc("/users/wallet", rh.FindOrCreateUserWithWallet).Methods(http.MethodPost)

	// requester routes
	mux.HandleFunc("/users/current", rh.GetCurrentUser).Methods(http.MethodGet)
	mux.HandleFunc("/users/search", rh.SearchUsers).Methods(http.MethodPost)
	mux.HandleFunc("/users/search/account", rh.SearchUsersByAccount).Methods(http.MethodPost)
	mux.HandleFunc("/users/{id:[0-9]+}", rh.GetUser).Methods(http.MethodGet)
	mux.HandleFunc("/users/{id:[0-9]+}", rh.UpdateUser).Methods(http.MethodPatch)
	mux.HandleFunc("/users/{id:[0-9]+}/accounts", rh.AddAccounts).Methods(http.MethodPost)
	mux.HandleFunc("/users/{id:[0-9]+}/accounts", rh.RemoveAccount).Methods(http.MethodDelete)

	// internal routes
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.HandleFunc("/users", rh.GetAllUsers).Methods(http.MethodGet)
	internal.HandleFunc("/users/{id:[0-9]+}", rh.DeleteUser).Methods(http.MethodDelete)
	internal.Use(InternalMiddleware(cfg.InternalAPIKey))

	// middleware
	mux.Use(RequestIDMiddleware())
	mux.Use(LoggingMiddleware())
	mux.Use(RateLimitMiddleware(cfg.RateLimit, cfg.RateBurst))
	mux.Use(RequesterMiddleware())

	return mux
}

// GetStatus handler
// @Summary Service health
// @Description Probe the datastore and the cache
// @Tags Health
// @Produce json
// @Success 200 {object} model.HealthStatus
// @Failure 503 {object} model.HealthStatus
// @Router /health [get]
func (s *RestHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.UserApp.GetStatus(r.Context(), false)
	if err != nil {
		writeError(w, err)
		return
	}

	code := http.StatusOK
	if status.Status != model.HealthOK {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}

// CreateUser handler
// @Summary Register user
// @Description Register a new user with at least one sub-account
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.UserNew true "User"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users [post]
func (s *RestHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UserNew
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.NewCustomError(constant.ErrInvalidRequest, err.Error()))
		return
	}

	user, err := s.UserApp.CreateUser(ctx, utilsContext.NewRequestContext(ctx, constant.UserFlowRegister), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, toUserResponse(*user, true, nil))
}

// CheckUser handler
// @Summary Check user
// @Description Report the conflicts registering the given user would raise
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.UserNew true "User"
// @Success 200 {object} model.UserCheckResponse
// @Failure 400 {object} ErrorResponse
// @Router /users/check [post]
func (s *RestHandler) CheckUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UserNew
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.NewCustomError(constant.ErrInvalidRequest, err.Error()))
		return
	}

	candidate := &model.User{}
	for _, acc := range req.Account {
		identifier, err := naming.NormalizeIdentifier(acc.Type, acc.Identifier)
		if err != nil {
			writeError(w, errors.NewCustomError(constant.ErrInvalidRequest, err.Error()))
			return
		}
		candidate.Account = append(candidate.Account, model.Account{Type: acc.Type, Identifier: identifier})
	}

	conflicts, err := s.UserApp.ValidateUser(ctx, utilsContext.NewRequestContext(ctx, constant.UserFlowRegister), candidate)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.UserCheckResponse{Valid: len(conflicts) == 0, Conflicts: conflicts})
}

// FindOrCreateUserWithWallet handler
// @Summary Wallet sign-in
// @Description Return the user owning the wallet, registering one when the wallet is unknown
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.AccountRef true "Wallet"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} ErrorResponse
// @Router /users/wallet [post]
func (s *RestHandler) FindOrCreateUserWithWallet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AccountRef
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.NewCustomError(constant.ErrInvalidRequest, err.Error()))
		return
	}

	rc := utilsContext.NewRequestContext(ctx, constant.UserFlowAuthenticate)
	user, err := s.AccountApp.FindOrCreateUserWithWallet(ctx, rc, model.UserRefByAccount(req.Type, req.Identifier))
	if err != nil {
		writeError(w, err)
		return
	}

	// anonymous callers only ever see obfuscated identifiers
	requesterID, _ := utilsContext.GetUserID(ctx)
	writeSuccess(w, toUserResponse(*user, requesterID > 0 && user.ID == requesterID, nil))
}

// GetCurrentUser handler
// @Summary Current user
// @Description Get the requesting user
// @Tags Users
// @Produce json
// @Param X-User-Id header int true "Requester"
// @Success 200 {object} model.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/current [get]
func (s *RestHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requesterID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	user, err := s.UserApp.GetUser(ctx, utilsContext.NewRequestContext(ctx, constant.UserFlowRetrieve), model.UserRefByID(requesterID))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, toUserResponse(*user, true, nil))
}

// GetUser handler
// @Summary Get user
// @Description Get a user by ID, identifiers of other users are obfuscated
// @Tags Users
// @Produce json
// @Param X-User-Id header int true "Requester"
// @Param id path int true "User ID"
// @Success 200 {object} model.UserResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func (s *RestHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := s.UserApp.GetUser(ctx, utilsContext.NewRequestContext(ctx, constant.UserFlowRetrieve), model.UserRefByID(id))
	if err != nil {
		writeError(w, err)
		return
	}

	requesterID, _ := utilsContext.GetUserID(ctx)
	writeSuccess(w, toUserResponse(*user, user.ID == requesterID, nil))
}

// UpdateUser handler
// @Summary Update user
// @Description Partially update the requesting user
// @Tags Users
// @Accept json
// @Produce json
// @Param X-User-Id header int true "Requester"
// @Param id path int true "User ID"
// @Param request body model.UserUpdate true "Fields to change"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/{id} [patch]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := selfID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.ID = id

	user, err := s.UserApp.UpdateUser(ctx, utilsContext.NewRequestContext(ctx, constant.UserFlowUpdate), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, toUserResponse(*user, true, nil))
}

// SearchUsers handler
// @Summary Search users
// @Description Retrieve the users matching the given references, unknown references are skipped
// @Tags Users
// @Accept json
// @Produce json
// @Param X-User-Id header int true "Requester"
// @Param request body model.UserSearchRequest true "References"
// @Success 200 {object} model.UserSearchResponse
// @Failure 400 {object} ErrorResponse
// @Router /users/search [post]
func (s *RestHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UserSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.NewCustomError(constant.ErrInvalidRequest, err.Error()))
		return
	}

	filter := &model.UserSearchFilter{SubEntities: req.SubEntities}
	for i, refReq := range req.User {
		ref, ok := refReq.ToUserRef()
		if !ok {
			writeError(w, errors.NewCustomError(constant.ErrInvalidRequest, fmt.Sprintf("invalid user reference at index %d", i)))
			return
		}
		filter.User = append(filter.User, ref)
	}

	users, err := s.UserApp.SearchUsers(ctx, utilsContext.NewRequestContext(ctx, constant.UserFlowRetrieve), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	requesterID, _ := utilsContext.GetUserID(ctx)
	writeSuccess(w, model.UserSearchResponse{User: toUsersResponse(users, requesterID, req.SubEntities)})
}

// SearchUsersByAccount handler
// @Summary Search users by account
// @Description List the users owning the given sub-account
// @Tags Users
// @Accept json
// @Produce json
// @Param X-User-Id header int true "Requester"
// @Param request body model.AccountSearchRequest true "Account"
// @Success 200 {object} model.UserSearchResponse
// @Failure 400 {object} ErrorResponse
// @Router /users/search/account [post]
func (s *RestHandler) SearchUsersByAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AccountSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.NewCustomError(constant.ErrInvalidRequest, err.Error()))
		return
	}

	users, err := s.UserApp.FindUsersByAccount(ctx, utilsContext.NewRequestContext(ctx, constant.UserFlowRetrieve), req.AccountRef)
	if err != nil {
		writeError(w, err)
		return
	}

	requesterID, _ := utilsContext.GetUserID(ctx)
	writeSuccess(w, model.UserSearchResponse{User: toUsersResponse(users, requesterID, nil)})
}

// AddAccounts handler
// @Summary Add accounts
// @Description Link sub-accounts to the requesting user. Accounts stored before a failure are kept
// @Tags Accounts
// @Accept json
// @Produce json
// @Param X-User-Id header int true "Requester"
// @Param id path int true "User ID"
// @Param request body model.AddAccountsRequest true "Accounts"
// @Success 200 {array} model.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/{id}/accounts [post]
func (s *RestHandler) AddAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := selfID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.AddAccountsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.NewCustomError(constant.ErrInvalidRequest, err.Error()))
		return
	}

	rc := utilsContext.NewRequestContext(ctx, constant.UserFlowUpdateAccount)
	accounts, err := s.AccountApp.AddAccounts(ctx, rc, model.UserRefByID(id), req.Account)
	if err != nil {
		writeError(w, err)
		return
	}

	res := make([]model.AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		res = append(res, toAccountResponse(acc, true))
	}
	writeSuccess(w, res)
}

// RemoveAccount handler
// @Summary Remove account
// @Description Unlink a sub-account from the requesting user
// @Tags Accounts
// @Accept json
// @Produce json
// @Param X-User-Id header int true "Requester"
// @Param id path int true "User ID"
// @Param request body model.AccountRef true "Account"
// @Success 200 {object} model.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id}/accounts [delete]
func (s *RestHandler) RemoveAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := selfID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.AccountRef
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.NewCustomError(constant.ErrInvalidRequest, err.Error()))
		return
	}

	rc := utilsContext.NewRequestContext(ctx, constant.UserFlowUpdateAccount)
	removed, err := s.AccountApp.RemoveAccount(ctx, rc, model.UserRefByID(id), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, toAccountResponse(*removed, true))
}

// GetAllUsers handler
// @Summary List users
// @Description List every user
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserSearchResponse
// @Failure 401 {object} ErrorResponse
// @Router /internal/users [get]
func (s *RestHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := s.UserApp.GetAllUsers(ctx, utilsContext.NewRequestContext(ctx, constant.UserFlowRetrieve))
	if err != nil {
		writeError(w, err)
		return
	}

	res := make([]model.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, toUserResponse(u, true, nil))
	}
	writeSuccess(w, model.UserSearchResponse{User: res})
}

// DeleteUser handler
// @Summary Delete user
// @Description Delete a user and all of its sub-accounts
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /internal/users/{id} [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := s.UserApp.DeleteUser(ctx, utilsContext.NewRequestContext(ctx, constant.UserFlowDelete), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, toUserResponse(*user, true, nil))
}

func pathID(r *http.Request, name string) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewCustomError(constant.ErrInvalidRequest, fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}

// selfID returns the path user ID, which must be the requester.
func selfID(r *http.Request) (uint64, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return 0, err
	}
	requesterID, ok := utilsContext.GetUserID(r.Context())
	if !ok || requesterID != id {
		return 0, errors.NewCustomError(constant.ErrUnauthorize, "requester is not the target user")
	}
	return id, nil
}

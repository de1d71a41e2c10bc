package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/muhammadheryan/tuba-user/cmd/config"
	"github.com/muhammadheryan/tuba-user/constant"
	accountmocks "github.com/muhammadheryan/tuba-user/mocks/application/account"
	usermocks "github.com/muhammadheryan/tuba-user/mocks/application/user"
	"github.com/muhammadheryan/tuba-user/model"
	"github.com/muhammadheryan/tuba-user/utils/errors"
	"github.com/muhammadheryan/tuba-user/utils/logger"
	"github.com/muhammadheryan/tuba-user/utils/naming"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAPIKey = "secret"

func TestMain(m *testing.M) {
	logger.Set(zap.NewNop())
	os.Exit(m.Run())
}

type fields struct {
	userApp    *usermocks.UserApp
	accountApp *accountmocks.AccountApp
}

func newFields(t *testing.T) fields {
	return fields{
		userApp:    usermocks.NewUserApp(t),
		accountApp: accountmocks.NewAccountApp(t),
	}
}

type args struct {
	method  string
	path    string
	body    interface{}
	headers map[string]string
}

func (f fields) serve(a args) *httptest.ResponseRecorder {
	var body bytes.Buffer
	switch b := a.body.(type) {
	case nil:
	case string:
		body.WriteString(b)
	default:
		_ = json.NewEncoder(&body).Encode(b)
	}
	req := httptest.NewRequest(a.method, a.path, &body)
	for k, v := range a.headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	NewTransport(f.userApp, f.accountApp, config.ServerConfig{InternalAPIKey: testAPIKey}).ServeHTTP(rec, req)
	return rec
}

func requester(id string) map[string]string {
	return map[string]string{constant.HeaderUserID: id}
}

type envelope struct {
	Code        string           `json:"code"`
	Message     string           `json:"message"`
	Description string           `json:"description"`
	TraceID     string           `json:"trace_id"`
	Conflicts   []model.Conflict `json:"conflicts"`
	Data        json.RawMessage  `json:"data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// withFlow matches a request context of the given flow and requester.
func withFlow(flow constant.UserFlow, requesterID uint64) interface{} {
	return mock.MatchedBy(func(rc *model.RequestContext) bool {
		return rc != nil && rc.Flow == flow && rc.UserID == requesterID && rc.RequestID != ""
	})
}

func jane() *model.User {
	return &model.User{
		ID:     7,
		Status: constant.UserStatusValid,
		Handle: "jane#123456",
		Name:   "Jane",
		Type:   constant.UserTypeIndividual,
		Account: []model.Account{
			{ID: 1, UserID: 7, Status: constant.AccountStatusEnabled, Type: constant.AccountTypeEmail, Identifier: "jane@test.com", Default: true},
		},
	}
}

func TestRestHandler_CreateUser(t *testing.T) {
	tests := []struct {
		name       string
		args       args
		mockCall   func(f fields)
		wantStatus int
		errCode    constant.ErrorType
	}{
		{
			name: "success",
			args: args{method: http.MethodPost, path: "/users", body: model.UserNew{Account: []model.AccountNew{
				{Type: constant.AccountTypeEmail, Identifier: "jane@test.com"},
			}}},
			mockCall: func(f fields) {
				f.userApp.On("CreateUser", mock.Anything, withFlow(constant.UserFlowRegister, 0), mock.AnythingOfType("*model.UserNew")).
					Return(jane(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed body",
			args:       args{method: http.MethodPost, path: "/users", body: "{"},
			mockCall:   func(f fields) {},
			wantStatus: http.StatusBadRequest,
			errCode:    constant.ErrInvalidRequest,
		},
		{
			name:       "no account",
			args:       args{method: http.MethodPost, path: "/users", body: model.UserNew{}},
			mockCall:   func(f fields) {},
			wantStatus: http.StatusBadRequest,
			errCode:    constant.ErrInvalidRequest,
		},
		{
			name: "already exists",
			args: args{method: http.MethodPost, path: "/users", body: model.UserNew{Account: []model.AccountNew{
				{Type: constant.AccountTypeEmail, Identifier: "jane@test.com"},
			}}},
			mockCall: func(f fields) {
				f.userApp.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errors.NewCustomError(constant.ErrAlreadyExists, "taken").WithConflicts([]model.Conflict{
						{TargetID: 7, Name: "account-identifier-email", Type: constant.ConflictAlreadyExist},
					})).Once()
			},
			wantStatus: http.StatusConflict,
			errCode:    constant.ErrAlreadyExists,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			rec := f.serve(tt.args)
			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decode(t, rec)
			if tt.errCode != 0 {
				assert.Equal(t, constant.ErrorTypeCode[tt.errCode], env.Code)
				assert.Equal(t, rec.Header().Get(constant.HeaderRequestID), env.TraceID)
				return
			}

			var got model.UserResponse
			require.NoError(t, json.Unmarshal(env.Data, &got))
			assert.Equal(t, uint64(7), got.ID)
			assert.Equal(t, "jane@test.com", got.Account[0].Identifier)
		})
	}
}

func TestRestHandler_CreateUserConflicts(t *testing.T) {
	f := newFields(t)
	f.userApp.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.NewCustomError(constant.ErrAlreadyExists, "taken").WithConflicts([]model.Conflict{
			{TargetID: 7, Name: "account-identifier-email", Type: constant.ConflictAlreadyExist},
		})).Once()

	rec := f.serve(args{method: http.MethodPost, path: "/users", body: model.UserNew{Account: []model.AccountNew{
		{Type: constant.AccountTypeEmail, Identifier: "jane@test.com"},
	}}})

	env := decode(t, rec)
	assert.Equal(t, "taken", env.Description)
	assert.Equal(t, []model.Conflict{{TargetID: 7, Name: "account-identifier-email", Type: constant.ConflictAlreadyExist}}, env.Conflicts)
}

func TestRestHandler_GetUser(t *testing.T) {
	tests := []struct {
		name           string
		args           args
		mockCall       func(f fields)
		wantStatus     int
		wantIdentifier string
	}{
		{
			name: "self sees identifiers",
			args: args{method: http.MethodGet, path: "/users/7", headers: requester("7")},
			mockCall: func(f fields) {
				f.userApp.On("GetUser", mock.Anything, withFlow(constant.UserFlowRetrieve, 7), model.UserRefByID(7)).Return(jane(), nil).Once()
			},
			wantStatus:     http.StatusOK,
			wantIdentifier: "jane@test.com",
		},
		{
			name: "other user sees obfuscated identifiers",
			args: args{method: http.MethodGet, path: "/users/7", headers: requester("8")},
			mockCall: func(f fields) {
				f.userApp.On("GetUser", mock.Anything, withFlow(constant.UserFlowRetrieve, 8), model.UserRefByID(7)).Return(jane(), nil).Once()
			},
			wantStatus:     http.StatusOK,
			wantIdentifier: naming.Obfuscate(constant.AccountTypeEmail, "jane@test.com"),
		},
		{
			name: "current user",
			args: args{method: http.MethodGet, path: "/users/current", headers: requester("7")},
			mockCall: func(f fields) {
				f.userApp.On("GetUser", mock.Anything, mock.Anything, model.UserRefByID(7)).Return(jane(), nil).Once()
			},
			wantStatus:     http.StatusOK,
			wantIdentifier: "jane@test.com",
		},
		{
			name: "not found",
			args: args{method: http.MethodGet, path: "/users/9", headers: requester("7")},
			mockCall: func(f fields) {
				f.userApp.On("GetUser", mock.Anything, mock.Anything, model.UserRefByID(9)).
					Return(nil, errors.NewCustomError(constant.ErrNotFound, "user 9 not found")).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing requester",
			args:       args{method: http.MethodGet, path: "/users/7"},
			mockCall:   func(f fields) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed requester",
			args:       args{method: http.MethodGet, path: "/users/7", headers: requester("jane")},
			mockCall:   func(f fields) {},
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			rec := f.serve(tt.args)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantIdentifier == "" {
				return
			}

			var got model.UserResponse
			require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
			require.Len(t, got.Account, 1)
			assert.Equal(t, tt.wantIdentifier, got.Account[0].Identifier)
			assert.Equal(t, "jane#123456", got.Handle)
		})
	}
}

func TestRestHandler_UpdateUser(t *testing.T) {
	tests := []struct {
		name       string
		args       args
		mockCall   func(f fields)
		wantStatus int
	}{
		{
			name: "success",
			args: args{method: http.MethodPatch, path: "/users/7", headers: requester("7"), body: map[string]string{"name": "Janet"}},
			mockCall: func(f fields) {
				f.userApp.On("UpdateUser", mock.Anything, withFlow(constant.UserFlowUpdate, 7), mock.MatchedBy(func(upd *model.UserUpdate) bool {
					return upd.ID == 7 && upd.Name != nil && *upd.Name == "Janet"
				})).Return(jane(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "another user",
			args:       args{method: http.MethodPatch, path: "/users/7", headers: requester("8"), body: map[string]string{"name": "Janet"}},
			mockCall:   func(f fields) {},
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			rec := f.serve(tt.args)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRestHandler_SearchUsers(t *testing.T) {
	t.Run("references and datasets", func(t *testing.T) {
		f := newFields(t)
		f.userApp.On("SearchUsers", mock.Anything, withFlow(constant.UserFlowRetrieve, 7), &model.UserSearchFilter{
			User: []model.UserRef{
				model.UserRefByID(7),
				model.UserRefByAccount(constant.AccountTypeEmail, "jane@test.com"),
			},
			SubEntities: []constant.SubEntityDataset{constant.SubEntityUserAccount},
		}).Return([]model.User{*jane()}, nil).Once()

		rec := f.serve(args{method: http.MethodPost, path: "/users/search", headers: requester("7"), body: model.UserSearchRequest{
			User: []model.UserRefRequest{
				{ID: 7},
				{AccountRef: &model.AccountRef{Type: constant.AccountTypeEmail, Identifier: "jane@test.com"}},
			},
			SubEntities: []constant.SubEntityDataset{constant.SubEntityUserAccount},
		}})
		require.Equal(t, http.StatusOK, rec.Code)

		var got model.UserSearchResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
		require.Len(t, got.User, 1)
		assert.Empty(t, got.User[0].Handle)
		assert.Len(t, got.User[0].Account, 1)
	})

	t.Run("invalid reference", func(t *testing.T) {
		f := newFields(t)
		rec := f.serve(args{method: http.MethodPost, path: "/users/search", headers: requester("7"), body: model.UserSearchRequest{
			User: []model.UserRefRequest{{ID: 7}, {}},
		}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec).Description, "index 1")
	})
}

func TestRestHandler_SearchUsersByAccount(t *testing.T) {
	f := newFields(t)
	ref := model.AccountRef{Type: constant.AccountTypeEmail, Identifier: "jane@test.com"}
	f.userApp.On("FindUsersByAccount", mock.Anything, mock.Anything, ref).Return([]model.User{}, nil).Once()

	rec := f.serve(args{method: http.MethodPost, path: "/users/search/account", headers: requester("8"), body: model.AccountSearchRequest{AccountRef: ref}})
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.UserSearchResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Empty(t, got.User)
}

func TestRestHandler_CheckUser(t *testing.T) {
	f := newFields(t)
	conflicts := []model.Conflict{{TargetID: 7, Name: "account-identifier-email", Type: constant.ConflictDBValueUnique}}
	f.userApp.On("ValidateUser", mock.Anything, mock.Anything, &model.User{Account: []model.Account{
		{Type: constant.AccountTypeEmail, Identifier: "jane@test.com"},
	}}).Return(conflicts, nil).Once()

	rec := f.serve(args{method: http.MethodPost, path: "/users/check", body: model.UserNew{Account: []model.AccountNew{
		{Type: constant.AccountTypeEmail, Identifier: " Jane@Test.com "},
	}}})
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.UserCheckResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.False(t, got.Valid)
	assert.Equal(t, conflicts, got.Conflicts)
}

func TestRestHandler_FindOrCreateUserWithWallet(t *testing.T) {
	const address = "0x00000000000000000000000000000000000000aa"
	tests := []struct {
		name           string
		headers        map[string]string
		requesterID    uint64
		wantIdentifier string
	}{
		{
			name:           "anonymous caller gets obfuscated identifiers",
			wantIdentifier: naming.Obfuscate(constant.AccountTypeEmail, "jane@test.com"),
		},
		{
			name:           "other requester gets obfuscated identifiers",
			headers:        requester("9"),
			requesterID:    9,
			wantIdentifier: naming.Obfuscate(constant.AccountTypeEmail, "jane@test.com"),
		},
		{
			name:           "owner gets own identifiers",
			headers:        requester("7"),
			requesterID:    7,
			wantIdentifier: "jane@test.com",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.accountApp.On("FindOrCreateUserWithWallet", mock.Anything, withFlow(constant.UserFlowAuthenticate, tt.requesterID),
				model.UserRefByAccount(constant.AccountTypeWallet, address)).Return(jane(), nil).Once()

			rec := f.serve(args{
				method:  http.MethodPost,
				path:    "/users/wallet",
				body:    model.AccountRef{Type: constant.AccountTypeWallet, Identifier: address},
				headers: tt.headers,
			})
			require.Equal(t, http.StatusOK, rec.Code)

			var got model.UserResponse
			require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
			require.Len(t, got.Account, 1)
			assert.Equal(t, tt.wantIdentifier, got.Account[0].Identifier)
			if tt.wantIdentifier != "jane@test.com" {
				assert.NotContains(t, rec.Body.String(), "jane@test.com")
			}
		})
	}
}

func TestRestHandler_Accounts(t *testing.T) {
	tests := []struct {
		name       string
		args       args
		mockCall   func(f fields)
		wantStatus int
	}{
		{
			name: "add accounts",
			args: args{method: http.MethodPost, path: "/users/7/accounts", headers: requester("7"), body: model.AddAccountsRequest{Account: []model.AccountNew{
				{Type: constant.AccountTypeEmail, Identifier: "jane@work.com"},
			}}},
			mockCall: func(f fields) {
				f.accountApp.On("AddAccounts", mock.Anything, withFlow(constant.UserFlowUpdateAccount, 7), model.UserRefByID(7), []model.AccountNew{
					{Type: constant.AccountTypeEmail, Identifier: "jane@work.com"},
				}).Return([]model.Account{{ID: 2, UserID: 7, Type: constant.AccountTypeEmail, Identifier: "jane@work.com"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "add accounts to another user",
			args: args{method: http.MethodPost, path: "/users/7/accounts", headers: requester("8"), body: model.AddAccountsRequest{Account: []model.AccountNew{
				{Type: constant.AccountTypeEmail, Identifier: "jane@work.com"},
			}}},
			mockCall:   func(f fields) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "remove account",
			args: args{method: http.MethodDelete, path: "/users/7/accounts", headers: requester("7"), body: model.AccountRef{Type: constant.AccountTypeEmail, Identifier: "jane@work.com"}},
			mockCall: func(f fields) {
				f.accountApp.On("RemoveAccount", mock.Anything, mock.Anything, model.UserRefByID(7), model.AccountRef{Type: constant.AccountTypeEmail, Identifier: "jane@work.com"}).
					Return(&model.Account{ID: 2, UserID: 7, Type: constant.AccountTypeEmail, Identifier: "jane@work.com"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "remove unknown account",
			args: args{method: http.MethodDelete, path: "/users/7/accounts", headers: requester("7"), body: model.AccountRef{Type: constant.AccountTypeEmail, Identifier: "ghost@test.com"}},
			mockCall: func(f fields) {
				f.accountApp.On("RemoveAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errors.NewCustomError(constant.ErrNotFound, "account not found")).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			rec := f.serve(tt.args)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRestHandler_Internal(t *testing.T) {
	bearer := map[string]string{"Authorization": "Bearer " + testAPIKey}
	tests := []struct {
		name       string
		args       args
		mockCall   func(f fields)
		wantStatus int
	}{
		{
			name: "delete user",
			args: args{method: http.MethodDelete, path: "/internal/users/7", headers: bearer},
			mockCall: func(f fields) {
				f.userApp.On("DeleteUser", mock.Anything, withFlow(constant.UserFlowDelete, 0), uint64(7)).Return(jane(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "list users",
			args: args{method: http.MethodGet, path: "/internal/users", headers: bearer},
			mockCall: func(f fields) {
				f.userApp.On("GetAllUsers", mock.Anything, mock.Anything).Return([]model.User{*jane()}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong key",
			args:       args{method: http.MethodDelete, path: "/internal/users/7", headers: map[string]string{"Authorization": "Bearer nope"}},
			mockCall:   func(f fields) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "delete failure",
			args: args{method: http.MethodDelete, path: "/internal/users/7", headers: bearer},
			mockCall: func(f fields) {
				f.userApp.On("DeleteUser", mock.Anything, mock.Anything, uint64(7)).
					Return(nil, errors.NewCustomError(constant.ErrInternal, "failed to delete user 7")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			rec := f.serve(tt.args)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRestHandler_GetStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		wantStatus int
	}{
		{name: "ok", status: model.HealthOK, wantStatus: http.StatusOK},
		{name: "datastore down", status: model.HealthError, wantStatus: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.userApp.On("GetStatus", mock.Anything, false).Return(&model.HealthStatus{Name: "users", Status: tt.status}, nil).Once()

			rec := f.serve(args{method: http.MethodGet, path: "/health"})
			assert.Equal(t, tt.wantStatus, rec.Code)

			var got model.HealthStatus
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.status, got.Status)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	f := newFields(t)
	f.userApp.On("GetStatus", mock.Anything, false).Return(&model.HealthStatus{Status: model.HealthOK}, nil).Twice()

	rec := f.serve(args{method: http.MethodGet, path: "/health", headers: map[string]string{constant.HeaderRequestID: "req-1"}})
	assert.Equal(t, "req-1", rec.Header().Get(constant.HeaderRequestID))

	rec = f.serve(args{method: http.MethodGet, path: "/health"})
	assert.NotEmpty(t, rec.Header().Get(constant.HeaderRequestID))
}

func TestIsPublicPath(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   bool
	}{
		{http.MethodGet, "/health", true},
		{http.MethodGet, "/swagger/index.html", true},
		{http.MethodPost, "/users", true},
		{http.MethodPost, "/users/check", true},
		{http.MethodPost, "/users/wallet", true},
		{http.MethodGet, "/users/7", false},
		{http.MethodPost, "/users/search", false},
		{http.MethodPatch, "/users/7", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isPublicPath(tt.method, tt.path), "%s %s", tt.method, tt.path)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := RateLimitMiddleware(1, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	rec := httptest.NewRecorder()
	RateLimitMiddleware(0, 0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

package constant

type UserStatus string

const (
	UserStatusValid   UserStatus = "valid"
	UserStatusBlocked UserStatus = "blocked"
	UserStatusPending UserStatus = "pending"
	UserStatusUnknown UserStatus = "unknown"

	UserStatusDefault = UserStatusValid
)

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusValid, UserStatusBlocked, UserStatusPending, UserStatusUnknown:
		return true
	}
	return false
}

type UserType string

const (
	UserTypeIndividual UserType = "individual"
	UserTypeBusiness   UserType = "business"

	UserTypeDefault = UserTypeIndividual
)

func (t UserType) IsValid() bool {
	return t == UserTypeIndividual || t == UserTypeBusiness
}

type AccountStatus string

const (
	AccountStatusEnabled  AccountStatus = "enabled"
	AccountStatusDisabled AccountStatus = "disabled"
	AccountStatusBlocked  AccountStatus = "blocked"

	AccountStatusDefault = AccountStatusEnabled
)

// AccountType is the kind of external identity linked to a user.
// The identifier semantics depend on it: an email address or a wallet address.
type AccountType string

const (
	AccountTypeWallet AccountType = "wallet"
	AccountTypeEmail  AccountType = "email"
)

var AccountTypes = []AccountType{AccountTypeWallet, AccountTypeEmail}

func (t AccountType) IsValid() bool {
	for _, v := range AccountTypes {
		if v == t {
			return true
		}
	}
	return false
}

// UserFlow tags the operation a request runs in.
type UserFlow string

const (
	UserFlowAuthenticate  UserFlow = "authenticate"
	UserFlowRegister      UserFlow = "register"
	UserFlowRetrieve      UserFlow = "retrieve"
	UserFlowUpdate        UserFlow = "update"
	UserFlowUpdateAccount UserFlow = "account-update"
	UserFlowDelete        UserFlow = "delete"
)

type SubEntityDataset string

const (
	SubEntityUserInfo    SubEntityDataset = "user-info"
	SubEntityUserAccount SubEntityDataset = "user-account"
)

type ConflictType string

const (
	ConflictAlreadyExist  ConflictType = "ALREADY_EXIST"
	ConflictDBValueUnique ConflictType = "DB_VALUE_UNIQUE"
)

const (
	ConflictUserHandle              = "user-handle"
	ConflictAccountIdentifierPrefix = "account-identifier-"
)

const (
	UserNameUnknownPrefix = "u_"
	UserNameMinLength     = 4
	UserHandleDigits      = 6
)

type ContextKey string

const (
	UserIDKey    ContextKey = "user_id"
	RequestIDKey ContextKey = "request_id"
)

const (
	HeaderUserID    = "X-User-Id"
	HeaderRequestID = "X-Request-Id"
)

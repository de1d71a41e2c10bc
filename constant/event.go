package constant

type UserEventName string

const (
	EventUserCreated    UserEventName = "user.created"
	EventUserUpdated    UserEventName = "user.updated"
	EventUserDeleted    UserEventName = "user.deleted"
	EventAccountAdded   UserEventName = "account.added"
	EventAccountRemoved UserEventName = "account.removed"
)

const (
	UserEventsExchange   = "user_events_exchange"
	UserEventsAuditQueue = "user_events_audit_queue"
)

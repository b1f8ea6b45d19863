package domain

// Activity actions recorded by the manager.
const (
	ActionLogin       = "login"
	ActionLoginFailed = "login_failed"
	ActionCreateAdmin = "create_admin"
	ActionUpdateAdmin = "update_admin"
	ActionCreateEvent = "create_event"
	ActionUpdateEvent = "update_event"
	ActionCancelEvent = "cancel_event"
)

// Activity target types.
const (
	TargetTypeAdmin = "admin"
	TargetTypeEvent = "event"
)

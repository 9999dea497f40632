package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPlayerID       = "Invalid player id"
	ErrMsgInvalidLimit          = "Invalid limit parameter"

	// Action error messages
	ErrMsgHandleActionFailed = "Failed to handle action"
	ErrMsgQueueActionsFailed = "Failed to queue actions"

	// Player error messages
	ErrMsgConnectFailed          = "Failed to register player session"
	ErrMsgDisconnectFailed       = "Failed to end player session"
	ErrMsgGetJobInfoFailed       = "Failed to retrieve job info"
	ErrMsgSetJobFailed           = "Failed to change job"
	ErrMsgSetNotificationsFailed = "Failed to update notifications"
	ErrMsgGetBalanceFailed       = "Failed to retrieve balance"
	ErrMsgGetHistoryFailed       = "Failed to retrieve job history"

	// Catalog error messages
	ErrMsgGetJobsFailed = "Failed to retrieve jobs"
	ErrMsgJobNotFound   = "Job not found"

	// Admin error messages
	ErrMsgReloadConfigFailed = "Failed to reload job configuration"
	ErrMsgSalaryRunFailed    = "Failed to run salary payout"
)

// Success messages for API responses
const (
	MsgPlayerConnected      = "Player connected"
	MsgPlayerDisconnected   = "Player disconnected"
	MsgNotificationsUpdated = "Notifications updated"
	MsgConfigReloaded       = "Job configuration reloaded"
	MsgActionsQueued        = "Actions queued"
)

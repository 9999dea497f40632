package postgres

// Error Messages
const (
	ErrMsgFailedToGetRecord     = "failed to get player job record"
	ErrMsgFailedToGetStats      = "failed to get player job stats"
	ErrMsgFailedToSaveRecord    = "failed to save player job record"
	ErrMsgFailedToSaveStats     = "failed to save player job stats"
	ErrMsgFailedToCommit        = "failed to commit transaction"
	ErrMsgFailedToGetBalance    = "failed to get balance"
	ErrMsgFailedToDeposit       = "failed to deposit"
	ErrMsgFailedToListBalances  = "failed to list balances"
	ErrMsgFailedToParseBalance  = "failed to parse stored balance"
	ErrMsgFailedToLogEvent      = "failed to log event"
	ErrMsgFailedToListEvents    = "failed to list events"
	ErrMsgFailedToCleanupEvents = "failed to cleanup events"
)

package economy

// Leaderboard limits
const (
	DefaultTopLimit = 10
	MaxTopLimit     = 100
)

// Log messages
const (
	LogMsgDeposited     = "Deposited to player account"
	LogMsgDepositFailed = "Deposit failed"
)

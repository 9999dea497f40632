package reward

// PayDecimalPlaces is the precision pay is truncated to before deposit
const PayDecimalPlaces = 2

// Log messages
const (
	LogMsgActionSkipped = "Action does not qualify for a reward"
	LogMsgNoReward      = "No reward configured for action"
	LogMsgRewardGranted = "Reward granted"
	LogMsgDepositFailed = "Failed to deposit reward"
	LogMsgExpFailed     = "Failed to grant exp"
	LogMsgLevelFailed   = "Failed to check level"
	LogMsgMessageFailed = "Failed to send reward message"
	LogMsgHandleFailed  = "Failed to handle action event"
	LogMsgDecodeFailed  = "Failed to decode action event"
	LogMsgPublishFailed = "Failed to publish reward event"
)

// Skip reasons reported in Outcome.SkipReason
const (
	SkipPlayerPlaced    = "player_placed_block"
	SkipKillerNotPlayer = "killer_not_player"
	SkipNotFish         = "not_a_fish"
	SkipNoReward        = "no_reward"
)

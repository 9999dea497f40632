package presence

// Redis key layout
const (
	DefaultKeyPrefix = "jobs:"
	onlineSetKey     = "online"
	sessionKeyPrefix = "session:"
)

// Log messages
const (
	LogMsgPlayerConnected    = "Player connected"
	LogMsgPlayerDisconnected = "Player disconnected"
	LogMsgEnsurePlayerFailed = "Failed to create player record on connect"
	LogMsgPublishFailed      = "Failed to publish session event"
	LogMsgSessionDecode      = "Stored session could not be decoded"
)

// Error messages
const (
	ErrMsgRedisParseURL = "failed to parse redis url"
	ErrMsgRedisPing     = "redis ping failed"
	ErrMsgEncodeSession = "failed to encode session"
)

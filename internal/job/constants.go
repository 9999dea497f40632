package job

// ExpPerLevel is the threshold multiplier: leaving level L takes L*ExpPerLevel exp
const ExpPerLevel = 100

// Log messages
const (
	LogMsgJobChanged          = "Player job changed"
	LogMsgLevelUp             = "Player leveled up"
	LogMsgPersistFailed       = "Failed to persist player job record"
	LogMsgMessageFailed       = "Failed to send player message"
	LogMsgPublishFailed       = "Failed to publish job event"
	LogMsgPermissionDenied    = "Job change denied, missing permission"
	LogMsgUnknownJobRequested = "Job change denied, unknown job"
	LogMsgCatalogReloaded     = "Job catalog reloaded"
	LogMsgCatalogReloadFailed = "Job catalog reload failed"
)

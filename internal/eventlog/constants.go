package eventlog

import "time"

// History query limits
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// CleanupJobName is the scheduler entry for retention cleanup
const CleanupJobName = "eventlog.cleanup"

// CleanupInterval is how often expired entries are deleted
const CleanupInterval = time.Hour

// JSON payload field keys
const (
	PayloadKeyPlayerID = "player_id"
)

// Log messages - service events
const (
	LogMsgEventPayloadNotMap = "Event payload is not an object, skipping log"
	LogMsgFailedToLogEvent   = "Failed to log event"
	LogMsgEventLogged        = "Event logged"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

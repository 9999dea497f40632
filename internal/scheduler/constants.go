package scheduler

import "time"

// MinInterval is the finest interval the cron runner supports
const MinInterval = time.Second

// Log messages
const (
	LogMsgJobScheduled   = "Job scheduled"
	LogMsgJobUnscheduled = "Job unscheduled"
	LogMsgJobEnqueued    = "Scheduled job enqueued"
	LogMsgJobDropped     = "Scheduled job dropped, worker queue full"
	LogMsgStarted        = "Scheduler started"
	LogMsgStopped        = "Scheduler stopped"
	LogMsgStopTimedOut   = "Scheduler stop timed out"
	LogMsgCron           = "cron"
)

// Error messages
const (
	ErrMsgInvalidInterval = "invalid schedule interval"
	ErrMsgAddJob          = "failed to add scheduled job"
)

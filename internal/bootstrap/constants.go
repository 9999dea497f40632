package bootstrap

// File System Permissions
const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0o755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0o644
)

// Logger Configuration
const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting job economy engine"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgFailedCreateDeadLetter     = "failed to create dead-letter writer"
	LogMsgEventHandlersRegistered    = "Event handlers registered"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
)

// Log messages for store and presence selection
const (
	LogMsgStoreOpened         = "Player store opened"
	LogMsgPresenceSelected    = "Presence backend selected"
	LogMsgCatalogLoadWarning  = "Job catalog loaded with warnings"
	LogMsgSalaryDisabled      = "Salary payouts disabled"
	LogMsgSalaryScheduled     = "Salary payouts scheduled"
	LogMsgEventLogDisabled    = "Event log disabled"
	LogMsgStoreCloseFailed    = "Failed to close store"
	LogMsgPresenceCloseFailed = "Failed to close presence store"
)

// Error messages for startup failures
const (
	ErrMsgUnknownStoreDriver = "unknown store driver"
	ErrMsgOpenStore          = "failed to open player store"
	ErrMsgMigrate            = "failed to migrate database"
	ErrMsgOpenPresence       = "failed to open presence store"
	ErrMsgLoadCatalog        = "failed to load job catalog"
	ErrMsgStartSalary        = "failed to schedule salary payouts"
	ErrMsgScheduleCleanup    = "failed to schedule event log cleanup"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgSchedulerShutdownFailed    = "Scheduler shutdown failed"
	LogMsgWorkerPoolShutdownFailed   = "Worker pool shutdown failed"
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgDeadLetterCloseFailed      = "Failed to close dead-letter file"
	LogMsgServerStopped              = "Server stopped"
)

// Health check names reported by /readyz
const (
	HealthCheckStore    = "store"
	HealthCheckPresence = "presence"
)

package salary

// JobName is the scheduler entry the payroll runs under
const JobName = "salary"

// Log messages
const (
	LogMsgTickStarted       = "Salary tick started"
	LogMsgTickComplete      = "Salary tick complete"
	LogMsgDirectoryFailed   = "Failed to list online players"
	LogMsgResolveJobFailed  = "Failed to resolve job for salary"
	LogMsgUnknownJob        = "Player job missing from catalog, salary skipped"
	LogMsgDepositFailed     = "Failed to deposit salary"
	LogMsgMessageFailed     = "Failed to send salary message"
	LogMsgPublishFailed     = "Failed to publish salary event"
	LogMsgScheduleFailed    = "Failed to schedule salary"
	LogMsgSalaryRescheduled = "Salary interval changed, rescheduling"
	LogMsgDecodeFailed      = "Failed to decode catalog reloaded event"
)

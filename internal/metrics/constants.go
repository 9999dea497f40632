package metrics

// Metric namespace shared by every collector
const Namespace = "jobs"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameRewardsPaid    = "rewards_paid_total"
	MetricNameRewardPay      = "reward_pay_total"
	MetricNameExpGranted     = "exp_granted_total"
	MetricNameLevelUps       = "level_ups_total"
	MetricNameJobChanges     = "job_changes_total"
	MetricNameSalaryPayments = "salary_payments_total"
	MetricNameSalaryAmount   = "salary_amount_total"
	MetricNameSalaryFailures = "salary_failures_total"
	MetricNameSalaryTicks    = "salary_ticks_total"
	MetricNameCatalogReloads = "catalog_reloads_total"
	MetricNamePlayerSessions = "player_sessions_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event and business metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
	HelpTextRewardsPaid     = "Qualifying actions rewarded, by job and category"
	HelpTextRewardPay       = "Currency paid out for actions"
	HelpTextExpGranted      = "Exp granted, by job"
	HelpTextLevelUps        = "Level ups, by job"
	HelpTextJobChanges      = "Job changes, by new job"
	HelpTextSalaryPayments  = "Salary deposits, by job"
	HelpTextSalaryAmount    = "Currency paid out as salary"
	HelpTextSalaryFailures  = "Players whose salary could not be paid"
	HelpTextSalaryTicks     = "Completed payroll runs"
	HelpTextCatalogReloads  = "Catalog reload attempts, by result"
	HelpTextPlayerSessions  = "Player connects and disconnects"
)

// Label names
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelJob      = "job"
	LabelCategory = "category"
	LabelResult   = "result"
	LabelKind     = "kind"
)

// Label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	KindConnect   = "connect"
	KindLeave     = "disconnect"
)

// HTTPLatencyBuckets ranges from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Log messages
const (
	LogMsgEventDecodeFailed = "Failed to decode event for metrics"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)

package worker

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed  = "Worker job failed"
	LogMsgWorkerJobPanic   = "Worker job panicked"
	LogMsgQueueFull        = "Worker queue full, job dropped"
	LogMsgPoolStarted      = "Worker pool started"
	LogMsgPoolStopped      = "Worker pool stopped"
	LogMsgPoolStopTimedOut = "Worker pool stop timed out"
)

// Defaults
const (
	DefaultWorkerCount = 2
	DefaultQueueSize   = 16
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)

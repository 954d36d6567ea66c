package worker

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerJobPanic  = "Worker job panicked"
	LogMsgJobQueueFull    = "Job queue full, job dropped"
)

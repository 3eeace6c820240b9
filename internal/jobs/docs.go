// Package jobs provides scheduled background tasks for the depot.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field, so a schedule has
// six fields ("*/5 * * * * *") or is a descriptor ("@every 10s").
//
// # Available Jobs
//
// QueueProcessingJob serves one queued customer per tick, acting as the depot
// worker while the HTTP interface is running. Ticks that find the queue empty
// do nothing and leave no log or report entry.
//
// # Usage
//
//	job := jobs.NewQueueProcessingJob(guarded, "*/5 * * * * *", logger)
//	if err := job.Start(); err != nil {
//		log.Fatal("Failed to start job:", err)
//	}
//	defer job.Stop()
package jobs

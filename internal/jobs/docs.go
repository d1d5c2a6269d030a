// Package jobs provides scheduled background tasks for the restaurant system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order queue.
//
// # Available Jobs
//
// 1. KitchenJob - Advances the head order one status step per tick, simulating
// the kitchen and delivery pipeline. The tick schedule is configurable.
// 2. QueueReportJob - Logs the open-order queue depth once a minute.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(advanceHandler, listOpenOrdersHandler, cronSpec, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - KitchenJob treats an empty queue as a no-op, not an error
// - Both jobs log failures and keep running; a bad tick never kills the schedule
// - Failed job starts stop any already running jobs
package jobs

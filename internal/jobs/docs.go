// Package jobs provides scheduled background tasks for the tailor shop.
//
// Jobs run on github.com/robfig/cron/v3 schedulers with the seconds field
// enabled.
//
// # Available Jobs
//
// DeadlineReminderJob logs every unfinished order whose deadline is within
// the configured number of days, overdue ones included.
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(jobs.Config{
//		DeadlineReminderSpec: "0 0 * * * *",
//		DeadlineReminderDays: 3,
//	}, dueOrdersHandler, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	jobManager.StartAll()
//	defer jobManager.StopAll()
package jobs

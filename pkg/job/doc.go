// Package job runs background glossary work on River, a Postgres-native
// queue.
//
// Tasks are plain structs. Name identifies the task in the queue and Handle
// receives the decoded JSON payload:
//
//	type ImportTask struct{ imp *importer.Importer }
//
//	func (t *ImportTask) Name() string { return "glossary_import" }
//	func (t *ImportTask) Handle(ctx context.Context, p ImportPayload) error {
//		_, err := t.imp.Import(ctx, p.Path)
//		return err
//	}
//
// Periodic tasks add Schedule, a five field cron expression parsed with
// robfig/cron:
//
//	func (t *PublishTask) Schedule() string { return "0 3 * * *" }
//
// A [Manager] registers tasks and processes them. The payload type argument
// of WithTask is explicit; the task type is inferred:
//
//	m, err := job.NewManager(pool,
//		job.WithTask[tasks.ImportPayload](tasks.NewImport(imp)),
//		job.WithScheduledTask(tasks.NewPublish(pub, schedule)),
//		job.WithLogger(log),
//	)
//	if err := m.Start(ctx); err != nil { ... }
//	defer m.Stop(ctx)
//
// An [Enqueuer] only inserts jobs, which suits the CLI: `glossary import
// --async` hands the file to whichever server is running workers.
//
// All tasks share one River job kind; the task name travels in the job
// arguments together with the raw payload. River's tables are created by
// [Migrate].
package job

package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type importPayload struct {
	Path    string `json:"path"`
	Replace bool   `json:"replace"`
}

type importTask struct {
	got   importPayload
	calls int
	err   error
}

func (t *importTask) Name() string { return "glossary_import" }

func (t *importTask) Handle(_ context.Context, p importPayload) error {
	t.calls++
	t.got = p
	return t.err
}

type publishTask struct {
	schedule string
	calls    int
}

func (t *publishTask) Name() string     { return "glossary_publish" }
func (t *publishTask) Schedule() string { return t.schedule }
func (t *publishTask) Handle(context.Context) error {
	t.calls++
	return nil
}

func TestTaskRegistry(t *testing.T) {
	t.Parallel()

	r := newTaskRegistry()
	assert.Empty(t, r.names())

	r.register("glossary_publish", &scheduledExecutor{handle: (&publishTask{}).Handle})
	r.register("glossary_import", newTaskWrapper[importPayload](&importTask{}))

	assert.Equal(t, []string{"glossary_import", "glossary_publish"}, r.names())

	exec, ok := r.get("glossary_import")
	assert.True(t, ok)
	assert.NotNil(t, exec)

	_, ok = r.get("missing")
	assert.False(t, ok)
}

func TestTaskWrapper_Execute(t *testing.T) {
	t.Parallel()

	t.Run("decodes payload", func(t *testing.T) {
		t.Parallel()

		task := &importTask{}
		raw, err := json.Marshal(importPayload{Path: "terms.yaml", Replace: true})
		require.NoError(t, err)

		require.NoError(t, newTaskWrapper[importPayload](task).Execute(context.Background(), raw))
		assert.Equal(t, importPayload{Path: "terms.yaml", Replace: true}, task.got)
	})

	t.Run("empty payload is the zero value", func(t *testing.T) {
		t.Parallel()

		task := &importTask{}
		require.NoError(t, newTaskWrapper[importPayload](task).Execute(context.Background(), nil))
		assert.Equal(t, 1, task.calls)
		assert.Equal(t, importPayload{}, task.got)
	})

	t.Run("invalid payload", func(t *testing.T) {
		t.Parallel()

		task := &importTask{}
		err := newTaskWrapper[importPayload](task).Execute(context.Background(), []byte("{"))
		require.ErrorIs(t, err, ErrInvalidPayload)
		assert.Zero(t, task.calls)
	})

	t.Run("handler error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		err := newTaskWrapper[importPayload](&importTask{err: boom}).Execute(context.Background(), nil)
		require.ErrorIs(t, err, boom)
	})
}

func TestWithScheduledTask(t *testing.T) {
	t.Parallel()

	task := &publishTask{schedule: "0 3 * * *"}
	cfg := newConfig()
	WithScheduledTask(task)(cfg)
	WithRunOnStart()(cfg)

	jobs, err := periodicJobs(cfg)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)

	exec, ok := cfg.registry.get("glossary_publish")
	require.True(t, ok)
	require.NoError(t, exec.Execute(context.Background(), json.RawMessage(`{"ignored":true}`)))
	assert.Equal(t, 1, task.calls)
}

func TestWithScheduledTask_InvalidSchedule(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	WithScheduledTask(&publishTask{schedule: "every night"})(cfg)

	_, err := periodicJobs(cfg)
	require.ErrorIs(t, err, ErrInvalidSchedule)
	assert.Contains(t, err.Error(), "glossary_publish")
}

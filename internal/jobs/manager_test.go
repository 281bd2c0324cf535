package jobs

import (
	"database/sql"
	"testing"
	"time"

	"github.com/nurania/nurania-go/internal/config"
	"github.com/nurania/nurania-go/internal/websocket"
)

// fakeContext is a minimal JobContext for manager tests.
type fakeContext struct {
	jm *JobManager
}

func (f *fakeContext) DB() *sql.DB             { return nil }
func (f *fakeContext) Config() *config.Config  { return &config.Config{} }
func (f *fakeContext) WsHub() *websocket.Hub   { return websocket.NewHub() }
func (f *fakeContext) JobManager() *JobManager { return f.jm }

func waitForStatus(t *testing.T, jm *JobManager, name, want string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, s := range jm.GetStatus() {
			if s.Name == name && s.Status == want {
				return
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("job %q never reached status %q", name, want)
}

func TestRunJobLifecycle(t *testing.T) {
	ctx := &fakeContext{}
	jm := NewManager(ctx)
	ctx.jm = jm

	done := make(chan struct{})
	jm.Register("noop", func(ctx JobContext) { <-done })

	if err := jm.RunJob("noop", ctx); err != nil {
		t.Fatalf("RunJob failed: %v", err)
	}
	waitForStatus(t, jm, "noop", "running")

	// A second job may not start while one is running.
	if err := jm.RunJob("noop", ctx); err == nil {
		t.Error("expected an error while another job is running")
	}

	close(done)
	waitForStatus(t, jm, "noop", "success")
}

func TestRunJobUnknown(t *testing.T) {
	ctx := &fakeContext{}
	jm := NewManager(ctx)
	ctx.jm = jm

	if err := jm.RunJob("does-not-exist", ctx); err == nil {
		t.Fatal("expected an error for an unregistered job")
	}
}

func TestJobPanicMarksFailure(t *testing.T) {
	ctx := &fakeContext{}
	jm := NewManager(ctx)
	ctx.jm = jm

	jm.Register("explode", func(ctx JobContext) { panic("boom") })
	if err := jm.RunJob("explode", ctx); err != nil {
		t.Fatalf("RunJob failed: %v", err)
	}
	waitForStatus(t, jm, "explode", "failed")

	// The manager recovers and can run the next job.
	jm.Register("after", func(ctx JobContext) {})
	if err := jm.RunJob("after", ctx); err != nil {
		t.Fatalf("manager did not recover after a panic: %v", err)
	}
	waitForStatus(t, jm, "after", "success")
}

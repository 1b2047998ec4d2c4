package observability

import (
	"context"
	"testing"
	"time"
)

type recordingToolHooks struct {
	starts    []string
	completes []string
	errors    int
}

func (r *recordingToolHooks) OnCallStart(_ context.Context, tool string) {
	r.starts = append(r.starts, tool)
}

func (r *recordingToolHooks) OnCallComplete(_ context.Context, tool string, _ time.Duration, isError bool) {
	r.completes = append(r.completes, tool)
	if isError {
		r.errors++
	}
}

type recordingHTTPHooks struct {
	requests int
	statuses []int
}

func (r *recordingHTTPHooks) OnRequest(_ context.Context, _, _ string) {
	r.requests++
}

func (r *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	r.statuses = append(r.statuses, status)
}

func (r *recordingHTTPHooks) OnError(_ context.Context, _, _ string, _ error) {}

func TestToolHooksRegistration(t *testing.T) {
	defer Reset()

	rec := &recordingToolHooks{}
	SetToolHooks(rec)

	ctx := context.Background()
	Tool().OnCallStart(ctx, "list-spaces")
	Tool().OnCallComplete(ctx, "list-spaces", time.Millisecond, false)
	Tool().OnCallStart(ctx, "render-chart")
	Tool().OnCallComplete(ctx, "render-chart", time.Millisecond, true)

	if len(rec.starts) != 2 || len(rec.completes) != 2 {
		t.Fatalf("starts = %d, completes = %d, want 2 each", len(rec.starts), len(rec.completes))
	}
	if rec.errors != 1 {
		t.Errorf("errors = %d, want 1", rec.errors)
	}
}

func TestHTTPHooksRegistration(t *testing.T) {
	defer Reset()

	rec := &recordingHTTPHooks{}
	SetHTTPHooks(rec)

	ctx := context.Background()
	HTTP().OnRequest(ctx, "GET", "/api/v1/spaces")
	HTTP().OnResponse(ctx, "GET", "/api/v1/spaces", 200, time.Millisecond)

	if rec.requests != 1 {
		t.Errorf("requests = %d, want 1", rec.requests)
	}
	if len(rec.statuses) != 1 || rec.statuses[0] != 200 {
		t.Errorf("statuses = %v", rec.statuses)
	}
}

func TestSetNilKeepsExisting(t *testing.T) {
	defer Reset()

	rec := &recordingToolHooks{}
	SetToolHooks(rec)
	SetToolHooks(nil)

	Tool().OnCallStart(context.Background(), "list-users")
	if len(rec.starts) != 1 {
		t.Errorf("nil registration replaced the active hooks")
	}
}

func TestResetRestoresNoops(t *testing.T) {
	SetToolHooks(&recordingToolHooks{})
	SetHTTPHooks(&recordingHTTPHooks{})
	Reset()

	if _, ok := Tool().(NoopToolHooks); !ok {
		t.Error("tool hooks not reset")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("http hooks not reset")
	}
	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Error("engine hooks not reset")
	}
}

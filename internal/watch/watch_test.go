package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const storyV1 = `
content: {width: 2000, height: 1000}
scenes:
  - key: intro
    annotations:
      - {key: first, title: First}
`

const storyV2 = `
content: {width: 3000, height: 1000}
scenes:
  - key: intro
    annotations:
      - {key: first, title: First}
  - key: outro
    annotations:
      - {key: last, title: Last}
`

func startWatcher(t *testing.T, path string) *Watcher {
	t.Helper()
	w := New(path, 20*time.Millisecond, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Run: %v", err)
		}
	})
	// Give the watcher time to register before the test writes.
	time.Sleep(50 * time.Millisecond)
	return w
}

func waitResult(t *testing.T, w *Watcher) Result {
	t.Helper()
	select {
	case r := <-w.Results():
		return r
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
		return Result{}
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "story.yaml")
	if err := os.WriteFile(path, []byte(storyV1), 0o644); err != nil {
		t.Fatal(err)
	}
	w := startWatcher(t, path)

	if err := os.WriteFile(path, []byte(storyV2), 0o644); err != nil {
		t.Fatal(err)
	}
	r := waitResult(t, w)
	if r.Err != nil {
		t.Fatalf("reload error: %v", r.Err)
	}
	if len(r.Story.Scenes) != 2 || r.Story.Content.Width != 3000 {
		t.Errorf("reloaded story = %+v", r.Story)
	}
}

func TestWatcherReportsInvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "story.yaml")
	if err := os.WriteFile(path, []byte(storyV1), 0o644); err != nil {
		t.Fatal(err)
	}
	w := startWatcher(t, path)

	if err := os.WriteFile(path, []byte("scenes: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := waitResult(t, w)
	if r.Err == nil || r.Story != nil {
		t.Errorf("result = %+v, want error", r)
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "story.yaml")
	if err := os.WriteFile(path, []byte(storyV1), 0o644); err != nil {
		t.Fatal(err)
	}
	w := startWatcher(t, path)

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case r := <-w.Results():
		t.Errorf("unexpected reload: %+v", r)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestDrainKeepsLatest(t *testing.T) {
	ch := make(chan Result, 3)
	if _, ok := Drain(ch); ok {
		t.Error("empty channel should report nothing")
	}
	e1 := os.ErrNotExist
	ch <- Result{Err: e1}
	ch <- Result{Err: os.ErrPermission}
	r, ok := Drain(ch)
	if !ok || r.Err != os.ErrPermission {
		t.Errorf("Drain = %+v, %v", r, ok)
	}
	close(ch)
	if _, ok := Drain(ch); ok {
		t.Error("closed channel should report nothing")
	}
}

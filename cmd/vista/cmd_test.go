package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const tourYAML = `
content: {width: 4000, height: 2000}
scenes:
  - key: intro
    annotations:
      - {key: welcome, title: Welcome}
      - {key: floor, title: Factory floor}
    regions:
      - {id: intel, x: 0, y: 0, width: 100, height: 100, title: Intelligence, target: {action: next}}
  - key: shipping
    annotations:
      - {key: dock, title: Dock, kind: launch, app: shipping-app}
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", tourYAML)
	bad := writeFile(t, dir, "bad.yaml", "content: {width: 10, height: 10}\nscenes: []\n")
	missing := filepath.Join(dir, "missing.yaml")

	var out bytes.Buffer
	if err := runCheck(context.Background(), []string{good}, &out); err != nil {
		t.Fatalf("valid story rejected: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "(2 scenes, 3 annotations, 1 regions)") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	err := runCheck(context.Background(), []string{good, bad, missing}, &out)
	if err == nil || !strings.Contains(err.Error(), "2 of 3") {
		t.Fatalf("err = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %q", lines)
	}
	if !strings.HasPrefix(lines[0], "ok") || !strings.HasPrefix(lines[1], "FAIL "+bad) || !strings.HasPrefix(lines[2], "FAIL "+missing) {
		t.Errorf("results not in argument order: %q", lines)
	}
}

func TestRunReplay(t *testing.T) {
	dir := t.TempDir()
	story := writeFile(t, dir, "tour.yaml", tourYAML)
	script := writeFile(t, dir, "script.yaml", `
steps:
  - {action: click, x: 60, y: 60}
  - {action: snapshot, label: opened}
  - {action: activate}
  - {action: snapshot, label: advanced}
`)

	var out bytes.Buffer
	if err := runReplay(story, script, true, &out); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"opened",
		"open region:intel",
		"advanced",
		"seq 2/3 (0,1)",
		"event region-hit intel",
		"event sequence   (0,1)",
		"4 steps",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunReplayErrors(t *testing.T) {
	dir := t.TempDir()
	story := writeFile(t, dir, "tour.yaml", tourYAML)
	badScript := writeFile(t, dir, "bad.yaml", "steps: []")

	if err := runReplay(filepath.Join(dir, "nope.yaml"), badScript, false, &bytes.Buffer{}); err == nil {
		t.Error("expected error for missing story")
	}
	if err := runReplay(story, filepath.Join(dir, "nope.yaml"), false, &bytes.Buffer{}); err == nil {
		t.Error("expected error for missing script")
	}
	if err := runReplay(story, badScript, false, &bytes.Buffer{}); err == nil {
		t.Error("expected error for empty script")
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{
		"-config", "examples/sketchgeom.yaml",
		"-probes", "examples/probes.yaml",
		"-json",
		"examples/cart.sketch",
	}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}

	var reports []fileReport
	if err := json.Unmarshal(stdout.Bytes(), &reports); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout.String())
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	r := reports[0]
	if len(r.Result.Shapes) != 7 {
		t.Errorf("expected 7 shapes, got %d", len(r.Result.Shapes))
	}

	hits := make(map[string]string)
	for _, p := range r.Probes {
		hits[p.Name] = strings.Join(p.Hits, ",")
	}
	want := map[string]string{
		"rear-hub": "rear-wheel,axle,ground",
		"cab":      "body",
		"sky":      "",
	}
	for name, w := range want {
		if got, ok := hits[name]; !ok || got != w {
			t.Errorf("probe %s hits %q, want %q", name, got, w)
		}
	}
}

func TestRunText(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-probes", "examples/probes.yaml", "examples/cart.sketch"}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{
		"examples/cart.sketch",
		"7 shapes",
		"2 circle",
		"[-inf, +inf]",
		"rear-wheel, axle, ground",
		"nothing",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunScriptErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.sketch")
	if err := os.WriteFile(bad, []byte(`(shape "nowhere")`), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"examples/cart.sketch", bad}, &stdout, &stderr)
	if code != exitErrors {
		t.Errorf("exit %d, want %d", code, exitErrors)
	}
	out := stdout.String()
	if !strings.Contains(out, "nowhere") {
		t.Errorf("output should report the script error:\n%s", out)
	}
	if strings.Index(out, "cart.sketch") > strings.Index(out, "bad.sketch") {
		t.Error("reports should follow argument order")
	}
}

func TestRunUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no files", nil},
		{"bad flag", []string{"-nope", "x.sketch"}},
		{"missing config", []string{"-config", "does-not-exist.yaml", "examples/cart.sketch"}},
		{"missing probes", []string{"-probes", "does-not-exist.yaml", "examples/cart.sketch"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != exitUsage {
				t.Errorf("exit %d, want %d", code, exitUsage)
			}
			if stderr.Len() == 0 {
				t.Error("expected a message on stderr")
			}
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"does-not-exist.sketch"}, &stdout, &stderr)
	if code != exitErrors {
		t.Errorf("exit %d, want %d", code, exitErrors)
	}
	if !strings.Contains(stderr.String(), "does-not-exist.sketch") {
		t.Errorf("stderr should name the file, got %q", stderr.String())
	}
}

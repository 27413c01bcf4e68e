// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/mmark5466-dev/pass-fail/internal/logging"
	"github.com/mmark5466-dev/pass-fail/internal/report"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
	// Redirect the user config dir so setup's first-run config write
	// never touches the real one.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return dir
}

func TestRootCmdHasSubcommands(t *testing.T) {
	root := newRootCmd()
	want := map[string]bool{"verify": false, "wordlists": false, "algorithms": false, "version": false}
	for _, c := range root.Commands() {
		name := strings.Fields(c.Use)[0]
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestVerifyCommandEndToEnd(t *testing.T) {
	dir := chdirTemp(t)
	listsDir := filepath.Join(dir, "lists")
	if err := os.MkdirAll(listsDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "123456\npassword\n"
	if err := os.WriteFile(filepath.Join(listsDir, "common.txt"), []byte(content), 0644); err != nil {
		t.Fatalf("write wordlist: %v", err)
	}

	root := newRootCmd()
	root.SetArgs([]string{
		"--wordlists.dir", listsDir,
		"verify", "5f4dcc3b5aa765d61d8327deb882cf99",
		"--wordlist", "common.txt",
		"--quiet",
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("verify command failed: %v", err)
	}
}

func TestFirstRunWritesDefaultConfig(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("relies on XDG_CONFIG_HOME to redirect the user config dir")
	}
	chdirTemp(t)

	root := newRootCmd()
	root.SetArgs([]string{"algorithms"})
	if err := root.Execute(); err != nil {
		t.Fatalf("algorithms command failed: %v", err)
	}

	path := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "passfail", "passfail.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default config not written on first run: %v", err)
	}
	if !strings.Contains(string(data), "language: en") {
		t.Errorf("written defaults incomplete:\n%s", data)
	}
}

func TestVerifyInterruptNotice(t *testing.T) {
	dir := chdirTemp(t)
	listsDir := filepath.Join(dir, "lists")
	if err := os.MkdirAll(listsDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(listsDir, "common.txt"), []byte("letmein\n"), 0644); err != nil {
		t.Fatalf("write wordlist: %v", err)
	}

	var buf bytes.Buffer
	logging.L.SetOutput(&buf)
	t.Cleanup(func() { logging.L.SetOutput(os.Stderr) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := newRootCmd()
	root.SetArgs([]string{
		"--wordlists.dir", listsDir,
		"verify", "5f4dcc3b5aa765d61d8327deb882cf99",
		"--wordlist", "common.txt",
		"--quiet",
	})
	if err := root.ExecuteContext(ctx); err != nil {
		t.Fatalf("interrupted verify should not error: %v", err)
	}
	if !strings.Contains(buf.String(), "Interrupt received") {
		t.Errorf("interrupt notice not logged:\n%s", buf.String())
	}
}

func TestVerifyCommandMissingDigestFile(t *testing.T) {
	dir := chdirTemp(t)
	listsDir := filepath.Join(dir, "lists")
	if err := os.MkdirAll(listsDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(listsDir, "common.txt"), []byte("a\n"), 0644); err != nil {
		t.Fatalf("write wordlist: %v", err)
	}

	root := newRootCmd()
	root.SetArgs([]string{
		"--wordlists.dir", listsDir,
		"verify", filepath.Join(dir, "ghost.txt"),
		"--wordlist", "common.txt",
	})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for missing digest file")
	}
}

func TestVerifyCommandRequiresWordlists(t *testing.T) {
	chdirTemp(t)
	root := newRootCmd()
	root.SetArgs([]string{"verify", "5f4dcc3b5aa765d61d8327deb882cf99"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error when no wordlists are selected")
	}
}

type recordingStatus struct {
	appended, replaced int
}

func (r *recordingStatus) Append(...report.Segment)      { r.appended++ }
func (r *recordingStatus) ReplaceLast(...report.Segment) { r.replaced++ }

func TestAppendOnlyDropsReplaceLast(t *testing.T) {
	rec := &recordingStatus{}
	sink := appendOnly{inner: rec}
	sink.Append(report.Seg("kept", report.Plain))
	sink.ReplaceLast(report.Seg("dropped", report.Plain))
	if rec.appended != 1 || rec.replaced != 0 {
		t.Errorf("appendOnly passed wrong events: appended=%d replaced=%d", rec.appended, rec.replaced)
	}
}

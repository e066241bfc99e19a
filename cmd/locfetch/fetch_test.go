package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T, host string) string {
	t.Helper()

	content := fmt.Sprintf(`
host: %s
maps:
  springfield_il_1925:
    filename_segments:
      name: [Sanborn-LOC, Springfield, IL]
      year: 1925
      extension: jpg
    paths:
      - prefix: p
        default_path: /img/_PLACEHOLDER.jpg
        regex: _PLACEHOLDER
        index:
          start: 1
          stop: 4
          zfill_width: 4
`, host)

	path := filepath.Join(t.TempDir(), "loc_config.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestFetchEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("image " + r.URL.Path))
	}))
	defer server.Close()

	configPath := writeTestConfig(t, server.URL)
	outDir := t.TempDir()

	code := runFetch([]string{"-key", "springfield_il_1925", "-out", outDir, "-config", configPath})
	if code != ExitSuccess {
		t.Fatalf("expected exit %d, got %d", ExitSuccess, code)
	}

	for i := 1; i < 4; i++ {
		name := fmt.Sprintf("Sanborn-LOC-Springfield-IL-1925-%04d.jpg", i)
		data, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if want := fmt.Sprintf("image /img/p%04d.jpg", i); string(data) != want {
			t.Errorf("%s: expected %q, got %q", name, want, data)
		}
	}

	logData, err := os.ReadFile(filepath.Join(outDir, "Sanborn-LOC-Springfield-IL-1925.log"))
	if err != nil {
		t.Fatalf("read run log: %v", err)
	}
	log := string(logData)
	for _, want := range []string{
		"INFO: Start run:",
		"INFO: Stored Sanborn-LOC-Springfield-IL-1925-0001.jpg",
		"INFO: Stored Sanborn-LOC-Springfield-IL-1925-0003.jpg",
		"INFO: End run:",
	} {
		if !strings.Contains(log, want) {
			t.Errorf("run log missing %q:\n%s", want, log)
		}
	}
}

func TestFetchExitsZeroDespiteItemFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/img/p0002.jpg" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("image"))
	}))
	defer server.Close()

	configPath := writeTestConfig(t, server.URL)
	outDir := t.TempDir()

	code := runFetch([]string{
		"-key", "springfield_il_1925",
		"-out", outDir,
		"-config", configPath,
		"-strict",
	})
	if code != ExitSuccess {
		t.Fatalf("expected exit %d despite item failure, got %d", ExitSuccess, code)
	}

	if _, err := os.Stat(filepath.Join(outDir, "Sanborn-LOC-Springfield-IL-1925-0002.jpg")); !os.IsNotExist(err) {
		t.Error("expected file for failed index to be absent")
	}

	logData, err := os.ReadFile(filepath.Join(outDir, "Sanborn-LOC-Springfield-IL-1925.log"))
	if err != nil {
		t.Fatalf("read run log: %v", err)
	}
	if !strings.Contains(string(logData), "ERROR: Retrieve") {
		t.Errorf("expected error record in run log:\n%s", logData)
	}
}

func TestFetchMissingArgs(t *testing.T) {
	if code := runFetch([]string{"-key", "only-key"}); code != ExitInvalidArgs {
		t.Errorf("expected exit %d, got %d", ExitInvalidArgs, code)
	}
}

func TestFetchConfigErrors(t *testing.T) {
	outDir := t.TempDir()

	code := runFetch([]string{
		"-key", "any",
		"-out", outDir,
		"-config", filepath.Join(t.TempDir(), "absent.yml"),
	})
	if code != ExitConfigError {
		t.Errorf("expected exit %d for missing config, got %d", ExitConfigError, code)
	}

	configPath := writeTestConfig(t, "https://example.org")
	code = runFetch([]string{"-key", "no_such_job", "-out", outDir, "-config", configPath})
	if code != ExitConfigError {
		t.Errorf("expected exit %d for unknown key, got %d", ExitConfigError, code)
	}
}

func TestRunDispatch(t *testing.T) {
	if code := run(nil); code != ExitInvalidArgs {
		t.Errorf("expected exit %d for no args, got %d", ExitInvalidArgs, code)
	}
	if code := run([]string{"bogus"}); code != ExitInvalidArgs {
		t.Errorf("expected exit %d for unknown command, got %d", ExitInvalidArgs, code)
	}
	if code := run([]string{"help"}); code != ExitSuccess {
		t.Errorf("expected exit %d for help, got %d", ExitSuccess, code)
	}
}

func TestJobsCommand(t *testing.T) {
	configPath := writeTestConfig(t, "https://example.org")

	if code := runJobs([]string{"-config", configPath}); code != ExitSuccess {
		t.Errorf("expected exit %d, got %d", ExitSuccess, code)
	}
	if code := runJobs([]string{"-config", filepath.Join(t.TempDir(), "absent.yml")}); code != ExitConfigError {
		t.Errorf("expected exit %d for missing config, got %d", ExitConfigError, code)
	}
}

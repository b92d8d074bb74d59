package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// runCommand executes the root command against a test server, routing the
// syllabus lookups there via the config url_template override. Returns
// captured stdout and stderr.
func runCommand(t *testing.T, serverURL string, args ...string) (string, string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := "url_template: " + serverURL + "/{code}/{year}/{nextYear}\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.RunE = func(c *cobra.Command, _ []string) error {
		return runLookup(c, &stdout, &stderr)
	}
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func serveFixture(t *testing.T, name string) *httptest.Server {
	t.Helper()

	body, err := os.ReadFile("../../testdata/fixtures/" + name)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body) // nolint:errcheck
	}))
}

func TestRun_NoCoursesFound_PageWithoutMain(t *testing.T) {
	server := serveFixture(t, "not_found.html")
	defer server.Close()

	stdout, _, err := runCommand(t, server.URL, "-c", "XXX000")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	// A not-found course prints an empty placeholder line, then the
	// no-courses message since nothing was extracted.
	want := "Course codes: (XXX000)\n\nNo courses found\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRun_NoCoursesFound_PageWithoutExamTables(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><main>
			<div><h1>AAA111 / BBB222 Some course</h1></div>
		</main></body></html>`)) // nolint:errcheck
	}))
	defer server.Close()

	stdout, _, err := runCommand(t, server.URL, "-c", "AAA111")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	want := "Course codes: (AAA111)\nNo courses found\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRun_PrintsExamsSorted(t *testing.T) {
	server := serveFixture(t, "sample_syllabus.html")
	defer server.Close()

	// --all keeps the fixture's fixed dates in play regardless of the
	// clock at test time.
	stdout, _, err := runCommand(t, server.URL, "-c", "TMA970", "--all")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	want := "Course codes: (TMA970)\n" +
		"Exams:\n" +
		"\t2025-01-15 08:30 - TMA970 - Linear algebra and applications\n" +
		"\t2025-04-17 14:00 - TMA970 - Linear algebra and applications\n" +
		"\t2025-06-03 14:00 - TMA970 - Linear algebra and applications\n" +
		"\t2025-08-28 08:30 - TMA970 - Linear algebra and applications\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRun_ProgressGoesToStderr(t *testing.T) {
	server := serveFixture(t, "not_found.html")
	defer server.Close()

	stdout, stderr, err := runCommand(t, server.URL, "-c", "XXX000")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	if !strings.Contains(stderr, "Looking up course XXX000") {
		t.Errorf("stderr = %q, want progress bar output", stderr)
	}
	if strings.Contains(stdout, "Looking up course") {
		t.Errorf("stdout = %q, progress output must not leak into program output", stdout)
	}
}

package cmd

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/taskcloud/internal/version"
)

// fakeAPI serves a tiny slice of the remote API.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
	f.mu.Unlock()

	if r.URL.Query().Get("signature") == "" {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"Code":401,"Status":"unsigned"}`))
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/tasks/a.mpp/tasks/3":
		w.Write([]byte(`{"Code":200,"Task":{"Uid":3,"Id":3,"Name":"Design"}}`))
	case r.Method == http.MethodGet && r.URL.Path == "/tasks/a.mpp/tasks/4":
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"Code":404,"Status":"Task not found"}`))
	case r.Method == http.MethodPost && r.URL.Path == "/tasks/a.mpp/tasks":
		w.Write([]byte(`{"Code":200,"Status":"OK"}`))
	case r.Method == http.MethodDelete && r.URL.Path == "/tasks/a.mpp/taskLinks/9":
		w.Write([]byte(`Link index out of range`))
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/storage/file/"):
		w.Write([]byte("project-bytes"))
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"Code":404}`))
	}
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func setupCLI(t *testing.T) (*fakeAPI, string) {
	t.Helper()

	api := &fakeAPI{}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	t.Setenv("TASKCLOUD_BASE_URL", server.URL)
	t.Setenv("TASKCLOUD_APP_SID", "sid")
	t.Setenv("TASKCLOUD_APP_KEY", "key")
	t.Setenv("TASKCLOUD_OUTPUT_DIR", "")

	return api, t.TempDir()
}

func runCLI(args ...string) (int, *cli.MockUi) {
	ui := cli.NewMockUi()
	code := run("taskcloud", args, hclog.NewNullLogger(), ui)
	return code, ui
}

func TestVersion(t *testing.T) {
	code, ui := runCLI("version")
	assert.Equal(t, 0, code)
	assert.Equal(t, version.Version, strings.TrimSpace(ui.OutputWriter.String()))
}

func TestTasksGet(t *testing.T) {
	_, out := setupCLI(t)

	code, ui := runCLI("tasks", "get", "-document", "a.mpp", "-id", "3", "-output-dir", out)
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), `"Name": "Design"`)

	code, ui = runCLI("tasks", "get", "-document", "a.mpp", "-id", "3", "-format", "yaml")
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), "name: Design")
}

func TestTasksGet_NotFound(t *testing.T) {
	setupCLI(t)

	code, ui := runCLI("tasks", "get", "-document", "a.mpp", "-id", "4")
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "code 404")
	assert.Contains(t, ui.ErrorWriter.String(), "Task not found")
}

func TestTasksAdd(t *testing.T) {
	api, out := setupCLI(t)

	code, ui := runCLI("tasks", "add", "-document", "a.mpp", "-name", "Review", "-before", "2", "-output-dir", out)
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	path := filepath.Join(out, "a.mpp")
	assert.Equal(t, path, strings.TrimSpace(ui.OutputWriter.String()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "project-bytes", string(data))
	assert.Equal(t, 2, api.count())
}

func TestTaskLinksDelete_ServerMessage(t *testing.T) {
	api, out := setupCLI(t)

	code, ui := runCLI("task-links", "delete", "-document", "a.mpp", "-index", "9", "-output-dir", out)
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "Link index out of range")
	assert.Equal(t, 1, api.count())

	_, err := os.Stat(filepath.Join(out, "a.mpp"))
	assert.True(t, os.IsNotExist(err))
}

func TestArgumentErrors(t *testing.T) {
	api, _ := setupCLI(t)

	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"missing document", []string{"tasks", "list"}, "document flag is required"},
		{"missing task name", []string{"tasks", "add", "-document", "a.mpp", "-before", "2"}, "taskName not specified"},
		{"missing id", []string{"outline-codes", "get", "-document", "a.mpp"}, "outlineCodeId not specified"},
		{"bad format", []string{"properties", "-document", "a.mpp", "-format", "xml"}, "unsupported format"},
		{"bad log level", []string{"properties", "-document", "a.mpp", "-log-level", "loud"}, "unknown log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ui := runCLI(tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, ui.ErrorWriter.String(), tt.msg)
		})
	}

	assert.Equal(t, 0, api.count())
}

func TestHistory(t *testing.T) {
	setupCLI(t)
	dir := t.TempDir()

	configPath := filepath.Join(dir, "taskcloud.hcl")
	require.NoError(t, os.WriteFile(configPath, []byte(fmt.Sprintf(`
output {
  dir = %q
}

journal {
  driver = "sqlite"
  dsn    = %q
}
`, filepath.Join(dir, "out"), filepath.Join(dir, "journal.db"))), 0o600))

	code, ui := runCLI("tasks", "get", "-config", configPath, "-document", "a.mpp", "-id", "3")
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	code, ui = runCLI("history", "-config", configPath, "-document", "a.mpp")
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), `"method": "GET"`)
	assert.Contains(t, ui.OutputWriter.String(), "/tasks/a.mpp/tasks/3")
	assert.NotContains(t, ui.OutputWriter.String(), "signature")
}

func TestHistory_NoJournal(t *testing.T) {
	setupCLI(t)

	code, ui := runCLI("history")
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "no journal block")
}

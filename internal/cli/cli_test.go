package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/kanban/internal/board"
	"github.com/idilsaglam/kanban/internal/model"
)

const fixture = `{"tickets":[
	{"id":"CAM-1","title":"B","status":"Todo","userId":"usr-1","priority":2},
	{"id":"CAM-2","title":"A","status":"Todo","userId":"usr-2","priority":4},
	{"id":"CAM-3","title":"C","status":"Done","userId":"usr-1","priority":7}
]}`

type result struct {
	code   int
	stdout string
	stderr string
}

// isolate keeps user config files and logs out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

func writeFixture(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, "tickets.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func runCLI(t *testing.T, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, &out, &errOut)
	return result{code: code, stdout: ansi.Strip(out.String()), stderr: ansi.Strip(errOut.String())}
}

func TestList(t *testing.T) {
	dir := isolate(t)
	p := writeFixture(t, dir, fixture)

	r := runCLI(t, "ls", "--file", p, "--no-color")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Kanban Board")
	assert.Contains(t, r.stdout, "Total 3")
	assert.Contains(t, r.stdout, "Unknown 1")
	assert.Contains(t, r.stdout, "grouped by status · ordered by priority")
	assert.Contains(t, r.stdout, "Todo 2")
	assert.Contains(t, r.stdout, "Done 1")
	assert.Contains(t, r.stdout, "Assigned to: usr-2")
}

func TestList_Flat(t *testing.T) {
	dir := isolate(t)
	p := writeFixture(t, dir, fixture)

	r := runCLI(t, "ls", "--flat", "--order", "title", "--file", p)
	require.Equal(t, ExitOK, r.code, r.stderr)

	a := strings.Index(r.stdout, "CAM-2 A")
	b := strings.Index(r.stdout, "CAM-1 B")
	c := strings.Index(r.stdout, "CAM-3 C")
	require.True(t, a >= 0 && b >= 0 && c >= 0, r.stdout)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
	assert.Contains(t, r.stdout, "(Todo, usr-2)")
}

func TestList_FlatClipsLongTitles(t *testing.T) {
	dir := isolate(t)
	title := strings.Repeat("é", 60)
	p := writeFixture(t, dir, `{"tickets":[{"id":"CAM-9","title":"`+title+`","status":"Todo","userId":"usr-1","priority":1}]}`)

	r := runCLI(t, "ls", "--flat", "--file", p, "--no-color")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.True(t, utf8.ValidString(r.stdout))
	assert.Contains(t, r.stdout, "CAM-9 "+title+" (Todo, usr-1)")

	long := strings.Repeat("é", 100)
	p = writeFixture(t, dir, `{"tickets":[{"id":"CAM-9","title":"`+long+`","status":"Todo","userId":"usr-1","priority":1}]}`)
	r = runCLI(t, "ls", "--flat", "--file", p, "--no-color")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.True(t, utf8.ValidString(r.stdout))
	assert.Contains(t, r.stdout, "CAM-9 "+strings.Repeat("é", 79)+"… (Todo, usr-1)")
}

func TestExport_JSON(t *testing.T) {
	dir := isolate(t)
	p := writeFixture(t, dir, fixture)

	r := runCLI(t, "export", "--file", p, "--group", "priority")
	require.Equal(t, ExitOK, r.code, r.stderr)

	var v board.View
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &v))
	assert.Equal(t, model.GroupByPriority, v.Grouping)
	require.Len(t, v.Columns, 3)
	assert.Equal(t, []string{"2", "4", "7"}, []string{v.Columns[0].Key, v.Columns[1].Key, v.Columns[2].Key})
	assert.Equal(t, "Unknown", v.Columns[2].Title)
	require.Len(t, v.Ordered, 3)
	assert.Equal(t, "CAM-3", string(v.Ordered[0].ID))
}

func TestExport_YAML(t *testing.T) {
	dir := isolate(t)
	p := writeFixture(t, dir, fixture)

	r := runCLI(t, "export", "-f", "yaml", "--file", p, "-g", "user", "-o", "title")
	require.Equal(t, ExitOK, r.code, r.stderr)

	var doc struct {
		Grouping string `yaml:"grouping"`
		Ordering string `yaml:"ordering"`
		Columns  []struct {
			Key     string `yaml:"key"`
			Tickets []struct {
				ID string `yaml:"id"`
			} `yaml:"tickets"`
		} `yaml:"columns"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(r.stdout), &doc))
	assert.Equal(t, "user", doc.Grouping)
	assert.Equal(t, "title", doc.Ordering)
	require.Len(t, doc.Columns, 2)
	assert.Equal(t, "usr-1", doc.Columns[0].Key)
	require.Len(t, doc.Columns[0].Tickets, 2)
	assert.Equal(t, "CAM-1", doc.Columns[0].Tickets[0].ID)
}

func TestExport_HTTPSource(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fixture))
	}))
	defer srv.Close()

	r := runCLI(t, "export", "--url", srv.URL)
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, `"CAM-2"`)
}

func TestEnvOverridesConfig(t *testing.T) {
	dir := isolate(t)
	p := writeFixture(t, dir, fixture)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("board:\n  grouping: user\n"), 0o644))

	r := runCLI(t, "export", "--file", p)
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, `"grouping": "user"`)

	t.Setenv("KANBAN_BOARD_GROUPING", "priority")
	r = runCLI(t, "export", "--file", p)
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, `"grouping": "priority"`)

	r = runCLI(t, "export", "--file", p, "--group", "status")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, `"grouping": "status"`)
}

func TestMalformedPayloadIsEmptyBoard(t *testing.T) {
	dir := isolate(t)
	p := writeFixture(t, dir, `{"tickets":{"CAM-1":{}}}`)
	logFile := filepath.Join(dir, "kanban.log")

	r := runCLI(t, "export", "--file", p, "--log-file", logFile)
	require.Equal(t, ExitOK, r.code, r.stderr)

	var v board.View
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &v))
	assert.Empty(t, v.Columns)
	assert.Empty(t, v.Ordered)

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "ticket payload malformed")
}

func TestUnreadableTicketsAreSkipped(t *testing.T) {
	dir := isolate(t)
	p := writeFixture(t, dir, `{"tickets":[
		{"id":"CAM-1","title":"A","status":"Todo","priority":"3"},
		{"id":true,"title":"B","status":"Todo"},
		{"id":"CAM-3","title":"C","status":"Done","priority":1.0}
	]}`)
	logFile := filepath.Join(dir, "kanban.log")

	r := runCLI(t, "export", "--file", p, "--log-file", logFile)
	require.Equal(t, ExitOK, r.code, r.stderr)

	var v board.View
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &v))
	require.Len(t, v.Ordered, 2)
	assert.Equal(t, model.Ident("CAM-1"), v.Ordered[0].ID)
	assert.Equal(t, model.PriorityHigh, v.Ordered[0].Priority)
	assert.Equal(t, model.PriorityLow, v.Ordered[1].Priority)

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "skipped unreadable entries")
}

func TestFetchFailure(t *testing.T) {
	dir := isolate(t)
	logFile := filepath.Join(dir, "kanban.log")

	r := runCLI(t, "ls", "--file", filepath.Join(dir, "missing.json"), "--log-file", logFile)
	assert.Equal(t, ExitError, r.code)
	assert.Contains(t, r.stderr, "fetch tickets")

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "error fetching tickets")
}

func TestUsageErrors(t *testing.T) {
	dir := isolate(t)
	p := writeFixture(t, dir, fixture)

	for name, args := range map[string][]string{
		"bad group":      {"ls", "--file", p, "--group", "title"},
		"bad order":      {"ls", "--file", p, "--order", "created"},
		"bad theme":      {"ls", "--file", p, "--theme", "solarized"},
		"unknown flag":   {"ls", "--nope"},
		"extra argument": {"ls", "extra"},
		"bad format":     {"export", "--file", p, "--format", "xml"},
	} {
		t.Run(name, func(t *testing.T) {
			r := runCLI(t, args...)
			assert.Equal(t, ExitUsage, r.code, r.stderr)
			assert.Contains(t, r.stderr, "Usage:")
		})
	}
}

func TestVersion(t *testing.T) {
	isolate(t)
	r := runCLI(t, "version")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Equal(t, "kanban dev\n", r.stdout)
}

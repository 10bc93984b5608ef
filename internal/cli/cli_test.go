package cli

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/shenikar/city_incidents/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const dataset = `[
  {"id": 1, "title": "Burst water main", "category": "Communal Accident", "severity": 3, "createdAt": "2024-03-01T08:00:00Z", "location": {"lat": 50.44, "lng": 30.52}},
  {"id": 2, "title": "Warehouse fire", "category": "Fire", "severity": 5, "createdAt": "2024-03-03T02:00:00Z", "location": {"lat": 50.46, "lng": 30.51}},
  {"id": 3, "title": "Kitchen fire", "category": "Fire", "severity": 2, "createdAt": "2024-03-02T12:00:00Z", "location": {"lat": "n/a", "lng": 30.50}}
]`

var fixedNow = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "incidents.json")
	require.NoError(t, os.WriteFile(path, []byte(dataset), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCommand(func() time.Time { return fixedNow })
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestList_JSON(t *testing.T) {
	path := writeDataset(t)

	out, _, err := execute(t, "list", "--file", path, "--category", "Fire", "-o", "json")
	require.NoError(t, err)

	var got []models.Incident
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	// Новые сверху
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
	assert.Equal(t, "n/a", got[1].Location.Lat.Raw)
}

func TestList_YAMLSorted(t *testing.T) {
	path := writeDataset(t)

	out, _, err := execute(t, "list", "-f", path, "--sort", "severity", "--desc", "-o", "yaml")
	require.NoError(t, err)

	var got []models.Incident
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	assert.Equal(t, []int{2, 1, 3}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestList_Table(t *testing.T) {
	path := writeDataset(t)

	out, _, err := execute(t, "list", "-f", path, "--search", "WATER")
	require.NoError(t, err)
	assert.Contains(t, out, "Burst water main")
	assert.Contains(t, out, "2 days ago")
	assert.Contains(t, out, "Showing 1 of 1 incidents (page 1)")
	assert.NotContains(t, out, "Warehouse fire")
}

func TestList_NoMatches(t *testing.T) {
	path := writeDataset(t)

	out, stderr, err := execute(t, "list", "-f", path, "--severity", "4", "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "No incidents match the current filters.")
	assert.Contains(t, stderr, "no incidents match the current filters")
}

func TestList_InvalidInput(t *testing.T) {
	path := writeDataset(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"bad date", []string{"--from", "yesterday"}, "invalid filter criteria"},
		{"bad severity", []string{"--severity", "9"}, "out of range"},
		{"bad output", []string{"-o", "xml"}, `unknown output format "xml"`},
		{"bad sort", []string{"--sort", "location"}, `unknown sort field "location"`},
		{"bad limit", []string{"--limit", "0"}, "limit must be between"},
		{"bad page", []string{"--page", "0"}, "page must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"list", "-f", path}, tt.args...)
			_, _, err := execute(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestList_HugePage(t *testing.T) {
	path := writeDataset(t)

	out, _, err := execute(t, "list", "-f", path, "--page", strconv.Itoa(math.MaxInt), "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestList_MissingFile(t *testing.T) {
	_, _, err := execute(t, "list", "-f", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load incidents")
}

func TestShow(t *testing.T) {
	path := writeDataset(t)

	out, _, err := execute(t, "show", "3", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Kitchen fire")
	assert.Contains(t, out, `invalid (lat="n/a", lng=30.5)`)
}

func TestShow_Errors(t *testing.T) {
	path := writeDataset(t)

	_, _, err := execute(t, "show", "42", "-f", path)
	require.Error(t, err)
	assert.Equal(t, "incident 42 not found", err.Error())

	_, _, err = execute(t, "show", "abc", "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid incident ID")
}

func TestCategories(t *testing.T) {
	out, _, err := execute(t, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "Medical Emergency\n")
}

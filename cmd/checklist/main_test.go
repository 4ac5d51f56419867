package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/adanyl0v/event-planner/internal/planner"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestChecklist_Text(t *testing.T) {
	out, err := run(t,
		"--event-date", "2026-07-29",
		"--now", "2026-01-10T00:00:00Z",
		"--timezone", "UTC",
		"--completed", "book-venue",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "200 days (6 months) until your wedding")
	assert.Contains(t, out, "OVERDUE (3)")
	assert.Contains(t, out, "UPCOMING (2)")
	assert.Contains(t, out, "[x] Book your venue")
	assert.NotContains(t, out, "URGENT")
}

func TestChecklist_JSON(t *testing.T) {
	out, err := run(t,
		"--event-date", "2026-07-29",
		"--event-type", "party",
		"--now", "2026-01-10T00:00:00Z",
		"--timezone", "UTC",
		"-o", "json",
	)
	require.NoError(t, err)

	var checklist planner.Checklist
	require.NoError(t, json.Unmarshal([]byte(out), &checklist))
	assert.Equal(t, "party", checklist.EventType)
	assert.Equal(t, 200, checklist.DaysUntilEvent)
	assert.Len(t, checklist.Groups.Overdue, 4)
	assert.Equal(t, "book-venue", checklist.Groups.Overdue[0].ID)
}

func TestChecklist_YAML(t *testing.T) {
	out, err := run(t,
		"--event-date", "2026-01-10",
		"--now", "2026-01-10T09:00:00Z",
		"--timezone", "UTC",
		"--output", "yaml",
	)
	require.NoError(t, err)

	var checklist planner.Checklist
	require.NoError(t, yaml.Unmarshal([]byte(out), &checklist))
	assert.Equal(t, planner.PhaseEventDay, checklist.Phase)
	require.Len(t, checklist.Groups.Urgent, 1)
	assert.Equal(t, "return-hire-items", checklist.Groups.Urgent[0].ID)
}

func TestChecklist_HeadlineSingular(t *testing.T) {
	tests := map[string]struct {
		now  string
		want string
	}{
		"day before":  {"2026-07-28T00:00:00Z", "1 day (0 months) until your wedding"},
		"day after":   {"2026-07-30T12:00:00Z", "Your wedding was 1 day ago"},
		"a month out": {"2026-06-27T00:00:00Z", "32 days (1 month) until your wedding"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := run(t,
				"--event-date", "2026-07-29",
				"--now", tt.now,
				"--timezone", "UTC",
			)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestChecklist_Errors(t *testing.T) {
	tests := map[string][]string{
		"missing event date": {"--now", "2026-01-10T00:00:00Z"},
		"bad event date":     {"--event-date", "29/07/2026"},
		"bad event type":     {"--event-date", "2026-07-29", "--event-type", "funeral"},
		"bad now":            {"--event-date", "2026-07-29", "--now", "yesterday"},
		"unknown task":       {"--event-date", "2026-07-29", "--completed", "hire-a-castle"},
		"bad timezone":       {"--event-date", "2026-07-29", "--timezone", "Mars/Olympus"},
		"bad output":         {"--event-date", "2026-07-29", "-o", "xml"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestCatalog(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "book-venue")
	assert.Contains(t, out, "return-hire-items")

	out, err = run(t, "catalog", "-o", "json")
	require.NoError(t, err)
	var defs []planner.TaskDefinition
	require.NoError(t, json.Unmarshal([]byte(out), &defs))
	assert.Len(t, defs, len(planner.Catalog()))
}

package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/hostenum/internal/config"
	"github.com/imamik/hostenum/internal/enumerate"
	"github.com/imamik/hostenum/internal/pattern"
)

// mockInventory implements enumerate.Inventory for handler tests.
type mockInventory struct {
	instances []enumerate.Instance
	listErr   error
	applied   map[string]string
}

func (m *mockInventory) List(_ context.Context, _ string, _ map[string]string) ([]enumerate.Instance, error) {
	return m.instances, m.listErr
}

func (m *mockInventory) ApplyTag(_ context.Context, instanceID, _, value string) error {
	if m.applied == nil {
		m.applied = map[string]string{}
	}
	m.applied[instanceID] = value
	return nil
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Pattern = "web[01:99]"
	cfg.Tag = "hostname"
	cfg.HCloud.Token = "secret"
	return cfg
}

func TestResolveConfig_FlagOverrides(t *testing.T) {
	t.Setenv("HCLOUD_TOKEN", "from-env")
	t.Chdir(t.TempDir())

	cfg, err := resolveConfig(Options{
		Pattern:  "db[001:200]",
		Tag:      "hostname",
		Provider: config.ProviderEC2,
		Filters:  []string{"env=staging"},
		Output:   config.OutputJSON,
	})
	require.NoError(t, err)

	assert.Equal(t, "db[001:200]", cfg.Pattern)
	assert.Equal(t, "hostname", cfg.Tag)
	assert.Equal(t, config.ProviderEC2, cfg.Provider)
	assert.Equal(t, map[string]string{"env": "staging"}, cfg.Filters)
	assert.Equal(t, config.OutputJSON, cfg.Output)
}

func TestResolveConfig_InvalidPattern(t *testing.T) {
	t.Setenv("HCLOUD_TOKEN", "x")
	t.Chdir(t.TempDir())

	_, err := resolveConfig(Options{Pattern: "no-brackets", Tag: "Name"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestResolveConfig_BadFilterFlag(t *testing.T) {
	t.Setenv("HCLOUD_TOKEN", "x")
	t.Chdir(t.TempDir())

	_, err := resolveConfig(Options{Pattern: "web[01:99]", Filters: []string{"nope"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter")
}

func TestBuildPlan(t *testing.T) {
	t.Parallel()

	inv := &mockInventory{instances: []enumerate.Instance{
		{ID: "1", Name: "a", TagValue: "web01"},
		{ID: "2", Name: "b", TagValue: "stale"},
	}}

	plan, err := buildPlan(context.Background(), testConfig(), inv)
	require.NoError(t, err)

	require.Len(t, plan.Changes, 1)
	assert.Equal(t, "web02", plan.Changes[0].After)
}

func TestBuildPlan_CapacityError(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Pattern = "web[1:1]"
	inv := &mockInventory{instances: []enumerate.Instance{
		{ID: "1", TagValue: "web1"},
		{ID: "2", TagValue: ""},
	}}

	_, err := buildPlan(context.Background(), cfg, inv)
	require.Error(t, err)
	assert.True(t, pattern.IsCapacityExceeded(err))
}

func TestNewInventory_UnknownProvider(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Provider = "gcp"
	_, err := newInventory(context.Background(), cfg)
	require.Error(t, err)
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	plan := &enumerate.Plan{
		Conforming: []enumerate.Conforming{
			{Instance: enumerate.Instance{ID: "1", Name: "srv-a", TagValue: "web01"}, ID: 1},
		},
		Changes: []enumerate.Change{
			{InstanceID: "2", Name: "srv-b", Before: "stale", After: "web02"},
			{InstanceID: "3", Name: "srv-c", Before: "", After: "web03"},
		},
	}

	out := renderText(testConfig(), plan, false)

	assert.Contains(t, out, "hostenum plan: web[01:99]")
	assert.Contains(t, out, "Conforming (1)")
	assert.Contains(t, out, "To rename (2)")
	assert.Contains(t, out, "web01")
	assert.Contains(t, out, "web02")
	// Absent tags render as a placeholder, not as an empty column.
	assert.Contains(t, out, "(none)")

	applied := renderText(testConfig(), plan, true)
	assert.Contains(t, applied, "hostenum applied")
	assert.Contains(t, applied, "Renamed (2)")
}

func TestRenderText_NothingToDo(t *testing.T) {
	t.Parallel()

	plan := &enumerate.Plan{
		Conforming: []enumerate.Conforming{
			{Instance: enumerate.Instance{ID: "1", TagValue: "web01"}, ID: 1},
		},
	}

	out := renderText(testConfig(), plan, false)
	assert.Contains(t, out, "every instance already conforms")
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Output = config.OutputJSON

	plan := &enumerate.Plan{
		Conforming: []enumerate.Conforming{
			{Instance: enumerate.Instance{ID: "1", Name: "srv-a", TagValue: "web05"}, ID: 5},
		},
		Changes: []enumerate.Change{
			{InstanceID: "2", Name: "srv-b", Before: "stale", After: "web06"},
		},
	}

	out, err := renderReport(cfg, plan, true)
	require.NoError(t, err)

	var got report
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "web[01:99]", got.Pattern)
	assert.Equal(t, "hostname", got.Tag)
	assert.True(t, got.Applied)
	require.Len(t, got.Conforming, 1)
	assert.Equal(t, 5, got.Conforming[0].ID)
	require.Len(t, got.Changes, 1)
	assert.Equal(t, "web06", got.Changes[0].After)
}

func TestRenderJSON_EmptyPlan(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Output = config.OutputJSON

	out, err := renderReport(cfg, &enumerate.Plan{}, false)
	require.NoError(t, err)

	// Empty collections encode as [], not null.
	assert.Contains(t, out, `"conforming": []`)
	assert.Contains(t, out, `"changes": []`)
}

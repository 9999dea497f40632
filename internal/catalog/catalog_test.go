package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JobEconomy_Go/internal/domain"
)

const minerCatalog = `jobs: "Miner"
salarydelay: 60
Unemployed:
  disablesalary: false
  salary: 20
Miner:
  salary: 15.5
  disablesalary: false
  break:
    stone:
      expreward: 10
      pay: 1.00
    minecraft:coal_ore:
      expreward: 5
      pay: 0.25
`

// MockStore
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Read(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStore) Write(ctx context.Context, data []byte) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func writeCatalog(t *testing.T, content string) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return NewFileStore(path)
}

func TestLoad_SeedsDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", DefaultFileName)
	c := New(NewFileStore(path))

	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, []string{"Miner", "Lumberjack", "Warrior", "Fisherman"}, c.JobNames())
	assert.True(t, c.JobExists("Unemployed"))
	assert.Equal(t, domain.DefaultSalaryDelaySeconds, c.SalaryDelay())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "jobs: Miner, Lumberjack, Warrior, Fisherman")
	assert.Contains(t, string(data), "salarydelay: 300")

	// Loading the seeded file again yields the same catalog
	reloaded := New(NewFileStore(path))
	require.NoError(t, reloaded.Load(context.Background()))
	r, ok := reloaded.LookupReward("Miner", domain.CategoryBreak, "coal_ore")
	require.True(t, ok)
	assert.Equal(t, 5, r.ExpReward)
	assert.True(t, decimal.RequireFromString("0.25").Equal(r.Pay))
}

func TestLoad_SeedWriteFailureKeepsDefaults(t *testing.T) {
	store := new(MockStore)
	store.On("Read", mock.Anything).Return(nil, os.ErrNotExist)
	store.On("Write", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	c := New(store)
	err := c.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrConfigIO)
	assert.True(t, c.JobExists("Fisherman"))
	store.AssertExpectations(t)
}

func TestLoad_ReadFailure(t *testing.T) {
	store := new(MockStore)
	store.On("Read", mock.Anything).Return(nil, errors.New("permission denied"))

	err := New(store).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrConfigIO)
}

func TestLoad_ExistingFile(t *testing.T) {
	c := New(writeCatalog(t, minerCatalog))
	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, []string{"Miner"}, c.JobNames())
	assert.Equal(t, 60, c.SalaryDelay())
	assert.False(t, c.JobExists("Warrior"))

	miner, ok := c.Job("MINER")
	require.True(t, ok)
	assert.Equal(t, "Miner", miner.Name)
	assert.True(t, decimal.RequireFromString("15.5").Equal(miner.Salary))

	r, ok := c.LookupReward("miner", domain.CategoryBreak, "stone")
	require.True(t, ok)
	assert.Equal(t, 10, r.ExpReward)

	_, ok = c.LookupReward("Miner", domain.CategoryBreak, "coal_ore")
	assert.True(t, ok, "namespaced subjects are normalized")
}

func TestLookupReward_Absent(t *testing.T) {
	c := New(writeCatalog(t, minerCatalog))
	require.NoError(t, c.Load(context.Background()))

	tests := []struct {
		name     string
		job      string
		category domain.ActionCategory
		subject  string
	}{
		{"unknown job", "Wizard", domain.CategoryBreak, "stone"},
		{"missing category", "Miner", domain.CategoryKill, "zombie"},
		{"missing subject", "Miner", domain.CategoryBreak, "dirt"},
		{"unemployed has no tables", "Unemployed", domain.CategoryBreak, "stone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := c.LookupReward(tt.job, tt.category, tt.subject)
			assert.False(t, ok)
		})
	}
}

func TestReload_FailureKeepsPreviousCatalog(t *testing.T) {
	store := writeCatalog(t, minerCatalog)
	c := New(store)
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, os.WriteFile(store.Path(), []byte(`Miner:
  break:
    stone:
      expreward: 10
      pay: lots
`), 0o644))

	err := c.Reload(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigIO)
	assert.ErrorIs(t, err, domain.ErrInvalidReward)
	assert.Contains(t, err.Error(), "Miner.break.stone.pay")

	r, ok := c.LookupReward("Miner", domain.CategoryBreak, "stone")
	require.True(t, ok)
	assert.Equal(t, 10, r.ExpReward)
	assert.Equal(t, 60, c.SalaryDelay())
}

func TestReload_SwapsCatalog(t *testing.T) {
	store := writeCatalog(t, minerCatalog)
	c := New(store)
	require.NoError(t, c.Load(context.Background()))
	before := c.Snapshot()

	require.NoError(t, os.WriteFile(store.Path(), []byte(`jobs: "Warrior"
salarydelay: 30
Warrior:
  salary: 5
  kill:
    zombie:
      expreward: 7
      pay: 0.5
`), 0o644))

	require.NoError(t, c.Reload(context.Background()))
	assert.False(t, c.JobExists("Miner"))
	assert.True(t, c.JobExists("warrior"))
	assert.Equal(t, 30, c.SalaryDelay())

	// A snapshot captured before the reload still answers from the old data
	_, ok := before.LookupReward("Miner", domain.CategoryBreak, "stone")
	assert.True(t, ok)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		sentinel error
		path     string
	}{
		{"non numeric exp", "Miner:\n  break:\n    stone:\n      expreward: ten\n", domain.ErrInvalidReward, "Miner.break.stone.expreward"},
		{"negative pay", "Miner:\n  place:\n    torch:\n      pay: -1\n", domain.ErrInvalidReward, "Miner.place.torch.pay"},
		{"bad salary", "Miner:\n  salary: free\n", domain.ErrInvalidReward, "Miner.salary"},
		{"bad delay", "salarydelay: 0\n", domain.ErrInvalidCatalog, "salarydelay"},
		{"job not a map", "Miner: 3\n", domain.ErrInvalidCatalog, "Miner"},
		{"not a mapping", "- a\n- b\n", domain.ErrInvalidCatalog, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(context.Background(), []byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}

func TestEncode_KeepsOrderAndPrecision(t *testing.T) {
	snap := NewSnapshot([]string{"Miner"}, 120,
		&domain.JobDefinition{Name: "unemployed", Salary: decimal.NewFromInt(10)},
		&domain.JobDefinition{
			Name:           "miner",
			Salary:         decimal.NewFromInt(20),
			SalaryDisabled: true,
			Rewards: map[domain.ActionCategory]map[string]domain.Reward{
				domain.CategoryBreak: {"stone": {ExpReward: 1, Pay: decimal.RequireFromString("0.125")}},
			},
		},
	)

	data, err := Encode(snap)
	require.NoError(t, err)

	out := string(data)
	assert.Less(t, strings.Index(out, "jobs:"), strings.Index(out, "salarydelay:"))
	assert.Less(t, strings.Index(out, "salarydelay:"), strings.Index(out, "Unemployed:"))
	assert.Less(t, strings.Index(out, "Unemployed:"), strings.Index(out, "Miner:"))
	assert.Contains(t, out, "pay: 0.125")

	decoded, err := Decode(context.Background(), data)
	require.NoError(t, err)
	miner, ok := decoded.Job("Miner")
	require.True(t, ok)
	assert.True(t, miner.SalaryDisabled)
	assert.Equal(t, 120, decoded.SalaryDelay())
}

func TestNormalizeJobName(t *testing.T) {
	assert.Equal(t, "Miner", NormalizeJobName("miner"))
	assert.Equal(t, "Miner", NormalizeJobName("MINER"))
	assert.Equal(t, "Lumberjack", NormalizeJobName("lUmBeRjAcK"))
	assert.Equal(t, "", NormalizeJobName("  "))
}

func TestParseJobList(t *testing.T) {
	assert.Equal(t, []string{"Miner", "Warrior"}, ParseJobList(" Miner, ,Warrior "))
	assert.Empty(t, ParseJobList(""))
}

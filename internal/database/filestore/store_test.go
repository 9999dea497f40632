package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JobEconomy_Go/internal/domain"
)

const (
	steve = "069a79f4-44e9-4726-a5be-fca90e38aaf5"
	alex  = "853c80ef-3c37-49fd-aa49-938b674adae6"
)

const existingAccounts = `069a79f4-44e9-4726-a5be-fca90e38aaf5:
  name: Steve
  job: Miner
  jobnotifications: false
  jobstats:
    MinerLevel: 4
    MinerExp: 120
    WarriorLevel: 2
    WarriorExp: 7
  dollar-balance: 10.50
`

func TestGetRecord_ReadsLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(existingAccounts), 0o644))

	s, err := Open(path)
	require.NoError(t, err)

	rec, err := s.GetRecord(context.Background(), steve)
	require.NoError(t, err)
	assert.Equal(t, "Miner", rec.CurrentJob)
	assert.False(t, rec.NotificationsEnabled)
	assert.Equal(t, domain.JobStats{Level: 4, Exp: 120}, rec.Stats["Miner"])
	assert.Equal(t, domain.JobStats{Level: 2, Exp: 7}, rec.Stats["Warrior"])

	_, err = s.GetRecord(context.Background(), alex)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestSaveRecord_PreservesForeignKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(existingAccounts), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	ctx := context.Background()

	rec, err := s.GetRecord(ctx, steve)
	require.NoError(t, err)
	rec.CurrentJob = "Warrior"
	rec.Stats["Warrior"] = domain.JobStats{Level: 2, Exp: 50}
	require.NoError(t, s.SaveRecord(ctx, rec))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "name: Steve")
	assert.Contains(t, out, "job: Warrior")
	assert.Contains(t, out, "WarriorExp: 50")
	assert.Contains(t, out, "MinerLevel: 4")

	// A fresh store sees the same data
	reopened, err := Open(path)
	require.NoError(t, err)
	got, err := reopened.GetRecord(ctx, steve)
	require.NoError(t, err)
	assert.Equal(t, rec.Stats, got.Stats)
}

func TestSaveRecord_NewPlayerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", DefaultFileName)
	s, err := Open(path)
	require.NoError(t, err)

	rec := domain.NewPlayerJobRecord(alex)
	rec.EnsureStats(domain.UnemployedJob)
	require.NoError(t, s.SaveRecord(context.Background(), rec))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), alex+":")
	assert.Contains(t, string(data), "jobnotifications: true")
	assert.Contains(t, string(data), "UnemployedLevel: 1")
}

func TestSaveRecord_WriteFailureKeepsMemory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	s, err := Open(filepath.Join(dir, DefaultFileName))
	require.NoError(t, err)
	s.path = filepath.Join(blocker, DefaultFileName)

	rec := domain.NewPlayerJobRecord(alex)
	rec.CurrentJob = "Miner"
	err = s.SaveRecord(context.Background(), rec)
	assert.ErrorIs(t, err, domain.ErrConfigIO)

	got, err := s.GetRecord(context.Background(), alex)
	require.NoError(t, err)
	assert.Equal(t, "Miner", got.CurrentJob)
}

func TestOpen_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("- just\n- a list\n"), 0o644))

	_, err := Open(path)
	assert.ErrorIs(t, err, domain.ErrConfigIO)
}

func TestGetRecord_MalformedStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(steve+":\n  jobstats:\n    MinerLevel: high\n"), 0o644))

	s, err := Open(path)
	require.NoError(t, err)

	_, err = s.GetRecord(context.Background(), steve)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jobstats.MinerLevel")
}

func TestLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(existingAccounts), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	ctx := context.Background()

	bal, err := s.Deposit(ctx, steve, "dollar", decimal.RequireFromString("0.25"))
	require.NoError(t, err)
	assert.Equal(t, "10.75", bal.String())

	_, err = s.Deposit(ctx, alex, "dollar", decimal.NewFromInt(100))
	require.NoError(t, err)

	_, err = s.Deposit(ctx, alex, "dollar", decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = s.Balance(ctx, "not-a-uuid", "dollar")
	assert.ErrorIs(t, err, domain.ErrInvalidPlayerID)

	top, err := s.TopBalances(ctx, "dollar", 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, alex, top[0].PlayerID)
	assert.Equal(t, steve, top[1].PlayerID)

	none, err := s.TopBalances(ctx, "gem", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}
